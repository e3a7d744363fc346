package models

import (
	"github.com/stratzilla/id3-decision-tree/internal/data"
)

type Model interface {
	Fit(t *data.Table) error
	Predict(example data.Row) (string, bool)
	GetType() string
	GetName() string
	GetParams() map[string]any
	Reset()
}

type BaseModel struct {
	Name   string
	Params map[string]any
}

func (bm *BaseModel) GetType() string {
	return bm.Name
}

func (bm *BaseModel) GetName() string {
	return bm.Name
}

func (bm *BaseModel) GetParams() map[string]any {
	return bm.Params
}
