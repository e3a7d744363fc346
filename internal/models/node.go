package models

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"

	"github.com/stratzilla/id3-decision-tree/internal/data"
)

// Node is either a *Decision or a *Leaf. Keeping the two variants behind a
// small interface avoids any runtime type inspection during traversal.
type Node interface {
	predict(example data.Row) (string, bool)
	format(sb *strings.Builder, indent int)
}

// Decision holds a splitting attribute and one child per value observed for
// that attribute during training. Branches keeps insertion order, which is
// the first-occurrence order of values in the training rows.
type Decision struct {
	Attribute string
	Branches  *linkedhashmap.Map[string, Node]
}

// Leaf holds a fixed predicted target value.
type Leaf struct {
	Value string
}

func (d *Decision) predict(example data.Row) (string, bool) {
	value, ok := example[d.Attribute]
	if !ok {
		return "", false
	}
	child, found := d.Branches.Get(value)
	if !found {
		return "", false
	}
	return child.predict(example)
}

func (l *Leaf) predict(data.Row) (string, bool) {
	return l.Value, true
}

func (d *Decision) format(sb *strings.Builder, indent int) {
	pad := strings.Repeat("  ", indent)
	sb.WriteString(pad + d.Attribute + "\n")
	for _, value := range d.Branches.Keys() {
		child, _ := d.Branches.Get(value)
		sb.WriteString(pad + "  " + value + "\n")
		child.format(sb, indent+2)
	}
}

func (l *Leaf) format(sb *strings.Builder, indent int) {
	sb.WriteString(strings.Repeat("  ", indent) + l.Value + "\n")
}

// String renders the tree in a compact nested form, e.g.
// {F1: {0: 1, 1: 0}}.
func (d *Decision) String() string {
	parts := make([]string, 0, d.Branches.Size())
	for _, value := range d.Branches.Keys() {
		child, _ := d.Branches.Get(value)
		parts = append(parts, fmt.Sprintf("%s: %v", value, child))
	}
	return fmt.Sprintf("{%s: {%s}}", d.Attribute, strings.Join(parts, ", "))
}

func (l *Leaf) String() string {
	return l.Value
}
