package persistence

import (
	"encoding/gob"
	"fmt"
	"os"
	"time"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
	"github.com/shopspring/decimal"

	"github.com/stratzilla/id3-decision-tree/internal/models"
)

// TreeBundle is the on-disk form of a fitted ID3 tree plus run metadata.
// Branch maps are flattened into ordered records because gob cannot encode
// the linked map directly; order is preserved on reload.
type TreeBundle struct {
	Target    string
	Root      NodeRecord
	Metadata  BundleMetadata
	CreatedAt time.Time
}

type BundleMetadata struct {
	Dataset       string
	TrainRows     int
	TestRows      int
	TrainAccuracy decimal.Decimal
	TestAccuracy  decimal.Decimal
	BuildTime     time.Duration
}

type NodeRecord struct {
	Leaf      bool
	Value     string
	Attribute string
	Branches  []BranchRecord
}

type BranchRecord struct {
	Value string
	Child NodeRecord
}

func NewTreeBundle(model *models.ID3) (*TreeBundle, error) {
	if model == nil || model.Root == nil {
		return nil, fmt.Errorf("cannot bundle an unfitted model")
	}

	root, err := flatten(model.Root)
	if err != nil {
		return nil, err
	}

	return &TreeBundle{
		Target:    model.Target,
		Root:      root,
		CreatedAt: time.Now(),
	}, nil
}

func (tb *TreeBundle) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	encoder := gob.NewEncoder(file)
	if err := encoder.Encode(tb); err != nil {
		return fmt.Errorf("failed to encode bundle: %w", err)
	}

	return nil
}

func LoadTreeBundle(filename string) (*TreeBundle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	var bundle TreeBundle
	decoder := gob.NewDecoder(file)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("failed to decode bundle: %w", err)
	}

	return &bundle, nil
}

// Tree rebuilds the in-memory model from the bundle.
func (tb *TreeBundle) Tree() *models.ID3 {
	model := models.NewID3()
	model.Target = tb.Target
	model.Root = unflatten(tb.Root)
	return model
}

func flatten(node models.Node) (NodeRecord, error) {
	switch n := node.(type) {
	case *models.Leaf:
		return NodeRecord{Leaf: true, Value: n.Value}, nil
	case *models.Decision:
		record := NodeRecord{
			Attribute: n.Attribute,
			Branches:  make([]BranchRecord, 0, n.Branches.Size()),
		}
		for _, value := range n.Branches.Keys() {
			child, _ := n.Branches.Get(value)
			childRecord, err := flatten(child)
			if err != nil {
				return NodeRecord{}, err
			}
			record.Branches = append(record.Branches, BranchRecord{Value: value, Child: childRecord})
		}
		return record, nil
	default:
		return NodeRecord{}, fmt.Errorf("unknown node type %T", node)
	}
}

func unflatten(record NodeRecord) models.Node {
	if record.Leaf {
		return &models.Leaf{Value: record.Value}
	}

	branches := linkedhashmap.New[string, models.Node]()
	for _, branch := range record.Branches {
		branches.Put(branch.Value, unflatten(branch.Child))
	}
	return &models.Decision{Attribute: record.Attribute, Branches: branches}
}
