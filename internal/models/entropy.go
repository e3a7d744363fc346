package models

import (
	"fmt"
	"math"

	"github.com/stratzilla/id3-decision-tree/internal/data"
)

// Entropy returns the Shannon entropy H = sum(-p(x) * log2(p(x))) over the
// distinct values in the sequence. An empty sequence is an explicit error
// rather than a NaN result.
func Entropy(values []string) (float64, error) {
	if len(values) == 0 {
		return 0, fmt.Errorf("cannot compute entropy of an empty sequence")
	}

	counts := make(map[string]int)
	for _, v := range values {
		counts[v]++
	}

	h := 0.0
	n := float64(len(values))
	for _, count := range counts {
		p := float64(count) / n
		h -= p * math.Log2(p)
	}

	return h, nil
}

// InformationGain returns the reduction in target entropy obtained by
// splitting the table on the given feature:
// IG = H(target) - sum(p(v) * H(target | feature = v)).
func InformationGain(t *data.Table, target, feature string) (float64, error) {
	total, err := Entropy(t.Column(target))
	if err != nil {
		return 0, err
	}

	n := float64(t.NumRows())
	splitEntropy := 0.0

	groups := t.Partition(feature)
	for _, value := range groups.Keys() {
		group, _ := groups.Get(value)
		h, err := Entropy(group.Column(target))
		if err != nil {
			return 0, err
		}
		splitEntropy += float64(group.NumRows()) / n * h
	}

	return total - splitEntropy, nil
}
