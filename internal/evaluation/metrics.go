package evaluation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/stratzilla/id3-decision-tree/internal/data"
	"github.com/stratzilla/id3-decision-tree/internal/models"
)

// ClassificationReport summarizes how a fitted model classifies one table.
// Accuracy is a percentage in [0, 100] rounded to one decimal place.
// Unclassified counts rows for which the model made no prediction; those
// rows are incorrect.
type ClassificationReport struct {
	Total        int
	Correct      int
	Unclassified int
	Accuracy     decimal.Decimal
	ClassSupport map[string]int
}

func Evaluate(model models.Model, t *data.Table) (*ClassificationReport, error) {
	if t == nil || t.NumRows() == 0 {
		return nil, fmt.Errorf("cannot evaluate on an empty table")
	}

	target := t.Target()
	report := &ClassificationReport{
		Total:        t.NumRows(),
		ClassSupport: make(map[string]int),
	}

	for _, row := range t.Rows {
		truth := row[target]
		report.ClassSupport[truth]++

		predicted, ok := model.Predict(row)
		if !ok {
			report.Unclassified++
			continue
		}
		if predicted == truth {
			report.Correct++
		}
	}

	report.Accuracy = decimal.NewFromInt(int64(report.Correct)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(report.Total))).
		Round(1)

	return report, nil
}

func (r *ClassificationReport) FormatMetrics() string {
	result := fmt.Sprintf("Accuracy: %s%%\n", r.Accuracy.StringFixed(1))
	result += fmt.Sprintf("Correct: %d/%d\n", r.Correct, r.Total)
	if r.Unclassified > 0 {
		result += fmt.Sprintf("Unclassified: %d\n", r.Unclassified)
	}
	return result
}
