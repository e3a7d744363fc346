package evaluation

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/stratzilla/id3-decision-tree/internal/data"
)

// HoldoutSplitter randomly partitions one table into training and testing
// subsets. trainSize is the proportion of rows kept for training and must
// lie strictly inside (0, 1).
type HoldoutSplitter struct {
	trainSize  float64
	randomSeed int64
	shuffle    bool
}

func NewHoldoutSplitter(trainSize float64, randomSeed int64, shuffle bool) *HoldoutSplitter {
	return &HoldoutSplitter{
		trainSize:  trainSize,
		randomSeed: randomSeed,
		shuffle:    shuffle,
	}
}

func DefaultHoldoutSplitter() *HoldoutSplitter {
	return NewHoldoutSplitter(0.8, time.Now().UnixNano(), true)
}

func (hs *HoldoutSplitter) Split(t *data.Table) (*data.Table, *data.Table, error) {
	if t == nil || t.NumRows() == 0 {
		return nil, nil, fmt.Errorf("cannot split empty dataset")
	}

	if hs.trainSize <= 0 || hs.trainSize >= 1 {
		return nil, nil, fmt.Errorf("proportion of training examples must be between 0 and 1 exclusive, got %g", hs.trainSize)
	}

	n := t.NumRows()
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	if hs.shuffle {
		rng := rand.New(rand.NewSource(hs.randomSeed))
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	trainCount := int(float64(n) * hs.trainSize)
	testCount := n - trainCount

	if testCount == 0 {
		return nil, nil, fmt.Errorf("proportion of training examples is too high: no test rows remain")
	}
	if trainCount == 0 {
		return nil, nil, fmt.Errorf("proportion of training examples is too low: no training rows remain")
	}

	train, err := t.Select(indices[:trainCount])
	if err != nil {
		return nil, nil, err
	}
	test, err := t.Select(indices[trainCount:])
	if err != nil {
		return nil, nil, err
	}

	return train, test, nil
}

// StratifiedSplit holds out rows per target class so both subsets keep
// roughly the same class distribution.
func (hs *HoldoutSplitter) StratifiedSplit(t *data.Table) (*data.Table, *data.Table, error) {
	if t == nil || t.NumRows() == 0 {
		return nil, nil, fmt.Errorf("cannot split empty dataset")
	}

	if hs.trainSize <= 0 || hs.trainSize >= 1 {
		return nil, nil, fmt.Errorf("proportion of training examples must be between 0 and 1 exclusive, got %g", hs.trainSize)
	}

	target := t.Target()
	classIndices := make(map[string][]int)
	var classOrder []string
	for i, row := range t.Rows {
		label := row[target]
		if _, seen := classIndices[label]; !seen {
			classOrder = append(classOrder, label)
		}
		classIndices[label] = append(classIndices[label], i)
	}

	rng := rand.New(rand.NewSource(hs.randomSeed))

	var trainIndices, testIndices []int
	for _, label := range classOrder {
		indices := classIndices[label]
		if hs.shuffle {
			rng.Shuffle(len(indices), func(i, j int) {
				indices[i], indices[j] = indices[j], indices[i]
			})
		}

		trainCount := int(float64(len(indices)) * hs.trainSize)
		if trainCount == len(indices) && len(indices) > 0 {
			trainCount = len(indices) - 1
		}

		trainIndices = append(trainIndices, indices[:trainCount]...)
		testIndices = append(testIndices, indices[trainCount:]...)
	}

	if len(testIndices) == 0 {
		return nil, nil, fmt.Errorf("proportion of training examples is too high: no test rows remain")
	}
	if len(trainIndices) == 0 {
		return nil, nil, fmt.Errorf("proportion of training examples is too low: no training rows remain")
	}

	if hs.shuffle {
		rng.Shuffle(len(trainIndices), func(i, j int) {
			trainIndices[i], trainIndices[j] = trainIndices[j], trainIndices[i]
		})
		rng.Shuffle(len(testIndices), func(i, j int) {
			testIndices[i], testIndices[j] = testIndices[j], testIndices[i]
		})
	}

	train, err := t.Select(trainIndices)
	if err != nil {
		return nil, nil, err
	}
	test, err := t.Select(testIndices)
	if err != nil {
		return nil, nil, err
	}

	return train, test, nil
}
