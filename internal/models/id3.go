package models

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"

	"github.com/stratzilla/id3-decision-tree/internal/data"
)

// ID3 induces a decision tree by recursively splitting on the candidate
// feature with the highest information gain. All attributes are treated as
// categorical; a feature is used at most once along any root-to-leaf path.
type ID3 struct {
	BaseModel
	Target string
	Root   Node
}

func NewID3() *ID3 {
	return &ID3{
		BaseModel: BaseModel{
			Name: "ID3",
			Params: map[string]any{
				"criterion": "information_gain",
			},
		},
	}
}

func (t *ID3) Fit(tbl *data.Table) error {
	if tbl == nil || tbl.NumRows() == 0 {
		return fmt.Errorf("cannot fit on an empty table")
	}

	t.Target = tbl.Target()
	features := tbl.Features()

	h, err := Entropy(tbl.Column(t.Target))
	if err != nil {
		return err
	}

	// Degenerate top level: nothing to split on, or already pure. A single
	// majority-vote leaf is the only sensible tree.
	if len(features) == 0 || h == 0 {
		t.Root = &Leaf{Value: majorityValue(tbl.Column(t.Target))}
		return nil
	}

	root, err := t.build(tbl, features)
	if err != nil {
		return err
	}
	t.Root = root
	return nil
}

func (t *ID3) build(tbl *data.Table, features []string) (Node, error) {
	best := ""
	bestGain := 0.0
	for i, feature := range features {
		gain, err := InformationGain(tbl, t.Target, feature)
		if err != nil {
			return nil, err
		}
		// Strict comparison keeps the first feature in column order on ties.
		if i == 0 || gain > bestGain {
			best = feature
			bestGain = gain
		}
	}

	remaining := make([]string, 0, len(features)-1)
	for _, feature := range features {
		if feature != best {
			remaining = append(remaining, feature)
		}
	}

	branches := linkedhashmap.New[string, Node]()
	groups := tbl.Partition(best)
	for _, value := range groups.Keys() {
		group, _ := groups.Get(value)
		labels := group.Column(t.Target)

		h, err := Entropy(labels)
		if err != nil {
			return nil, err
		}

		switch {
		case h == 0:
			branches.Put(value, &Leaf{Value: labels[0]})
		case len(remaining) == 0:
			// Impure group with no features left: majority vote. Sibling
			// groups still get their own nodes.
			branches.Put(value, &Leaf{Value: majorityValue(labels)})
		default:
			child, err := t.build(group.DropColumn(best), remaining)
			if err != nil {
				return nil, err
			}
			branches.Put(value, child)
		}
	}

	return &Decision{Attribute: best, Branches: branches}, nil
}

// Predict traverses the tree for one example. The second result is false
// when no prediction can be made, i.e. the example carries an attribute
// value never observed during training.
func (t *ID3) Predict(example data.Row) (string, bool) {
	if t.Root == nil {
		return "", false
	}
	return t.Root.predict(example)
}

// Dump renders the tree in an indented human-readable form.
func (t *ID3) Dump() string {
	if t.Root == nil {
		return ""
	}
	var sb strings.Builder
	t.Root.format(&sb, 0)
	return sb.String()
}

func (t *ID3) Reset() {
	t.Root = nil
	t.Target = ""
}

// majorityValue returns the most frequent value; ties go to the value that
// occurs first in the sequence.
func majorityValue(values []string) string {
	counts := make(map[string]int)
	order := make([]string, 0, len(values))
	for _, v := range values {
		if counts[v] == 0 {
			order = append(order, v)
		}
		counts[v]++
	}

	majority := ""
	best := 0
	for _, v := range order {
		if counts[v] > best {
			best = counts[v]
			majority = v
		}
	}
	return majority
}
