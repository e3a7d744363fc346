package report

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/stratzilla/id3-decision-tree/internal/evaluation"
	"github.com/stratzilla/id3-decision-tree/internal/models"
)

// NodeCount tallies the decision (non-leaf) and leaf nodes of a tree.
type NodeCount struct {
	Decisions int
	Leaves    int
}

func CountNodes(root models.Node) NodeCount {
	var count NodeCount
	countInto(root, &count)
	return count
}

func countInto(node models.Node, count *NodeCount) {
	switch n := node.(type) {
	case *models.Decision:
		count.Decisions++
		for _, value := range n.Branches.Keys() {
			child, _ := n.Branches.Get(value)
			countInto(child, count)
		}
	case *models.Leaf:
		count.Leaves++
	}
}

type Reporter struct {
	out io.Writer

	green  func(a ...any) string
	yellow func(a ...any) string
	cyan   func(a ...any) string
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		cyan:   color.New(color.FgCyan).SprintFunc(),
	}
}

// PrintTree writes the compact nested form followed by the indented form.
func (r *Reporter) PrintTree(model *models.ID3) {
	if model.Root == nil {
		return
	}
	fmt.Fprintf(r.out, "%v\n\n", model.Root)
	fmt.Fprint(r.out, model.Dump())
	fmt.Fprintln(r.out)
}

// PrintStatistics writes the run summary: dataset sizes, node counts, build
// time and train/test classification accuracy.
func (r *Reporter) PrintStatistics(model *models.ID3, buildTime time.Duration, train, test *evaluation.ClassificationReport) {
	count := CountNodes(model.Root)

	fmt.Fprintf(r.out, "Using %s training examples and %s testing examples.\n",
		r.cyan(train.Total), r.cyan(test.Total))
	fmt.Fprintf(r.out, "Tree contains %s non-leaf nodes and %s leaf nodes.\n",
		r.cyan(count.Decisions), r.cyan(count.Leaves))
	fmt.Fprintf(r.out, "Took %s to generate.\n", r.yellow(fmt.Sprintf("%.2fs", buildTime.Seconds())))
	fmt.Fprintf(r.out, "Was able to classify %s of training data.\n",
		r.green(train.Accuracy.StringFixed(1)+"%"))
	fmt.Fprintf(r.out, "Was able to classify %s of testing data.\n",
		r.green(test.Accuracy.StringFixed(1)+"%"))
}
