package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratzilla/id3-decision-tree/internal/data"
)

func weatherTable() *data.Table {
	columns := []string{"Outlook", "Temperature", "Humidity", "Wind", "Play"}
	rows := []data.Row{
		{"Outlook": "Sunny", "Temperature": "Hot", "Humidity": "High", "Wind": "Weak", "Play": "No"},
		{"Outlook": "Sunny", "Temperature": "Hot", "Humidity": "High", "Wind": "Strong", "Play": "No"},
		{"Outlook": "Overcast", "Temperature": "Hot", "Humidity": "High", "Wind": "Weak", "Play": "Yes"},
		{"Outlook": "Rain", "Temperature": "Mild", "Humidity": "High", "Wind": "Weak", "Play": "Yes"},
		{"Outlook": "Rain", "Temperature": "Cool", "Humidity": "Normal", "Wind": "Weak", "Play": "Yes"},
		{"Outlook": "Rain", "Temperature": "Cool", "Humidity": "Normal", "Wind": "Strong", "Play": "No"},
		{"Outlook": "Overcast", "Temperature": "Cool", "Humidity": "Normal", "Wind": "Strong", "Play": "Yes"},
		{"Outlook": "Sunny", "Temperature": "Mild", "Humidity": "High", "Wind": "Weak", "Play": "No"},
		{"Outlook": "Sunny", "Temperature": "Cool", "Humidity": "Normal", "Wind": "Weak", "Play": "Yes"},
		{"Outlook": "Rain", "Temperature": "Mild", "Humidity": "Normal", "Wind": "Weak", "Play": "Yes"},
		{"Outlook": "Sunny", "Temperature": "Mild", "Humidity": "Normal", "Wind": "Strong", "Play": "Yes"},
		{"Outlook": "Overcast", "Temperature": "Mild", "Humidity": "High", "Wind": "Strong", "Play": "Yes"},
		{"Outlook": "Overcast", "Temperature": "Hot", "Humidity": "Normal", "Wind": "Weak", "Play": "Yes"},
		{"Outlook": "Rain", "Temperature": "Mild", "Humidity": "High", "Wind": "Strong", "Play": "No"},
	}
	return data.NewTable(columns, rows)
}

func TestFitPerfectSplit(t *testing.T) {
	model := NewID3()
	require.NoError(t, model.Fit(xorTable()))

	root, ok := model.Root.(*Decision)
	require.True(t, ok)
	assert.Equal(t, "F1", root.Attribute)
	require.Equal(t, 2, root.Branches.Size())

	zero, found := root.Branches.Get("0")
	require.True(t, found)
	assert.Equal(t, &Leaf{Value: "1"}, zero)

	one, found := root.Branches.Get("1")
	require.True(t, found)
	assert.Equal(t, &Leaf{Value: "0"}, one)
}

func TestFitClassifiesAllTrainingRows(t *testing.T) {
	for _, table := range []*data.Table{xorTable(), weatherTable()} {
		model := NewID3()
		require.NoError(t, model.Fit(table))

		for _, row := range table.Rows {
			predicted, ok := model.Predict(row)
			require.True(t, ok)
			assert.Equal(t, row[table.Target()], predicted)
		}
	}
}

func TestFitWeatherRoot(t *testing.T) {
	model := NewID3()
	require.NoError(t, model.Fit(weatherTable()))

	root, ok := model.Root.(*Decision)
	require.True(t, ok)
	assert.Equal(t, "Outlook", root.Attribute)
}

func TestFitNeverRepeatsAttributeOnPath(t *testing.T) {
	model := NewID3()
	require.NoError(t, model.Fit(weatherTable()))

	assertNoRepeats(t, model.Root, map[string]bool{})
}

func assertNoRepeats(t *testing.T, node Node, seen map[string]bool) {
	decision, ok := node.(*Decision)
	if !ok {
		return
	}

	require.False(t, seen[decision.Attribute], "attribute %s repeated on path", decision.Attribute)
	seen[decision.Attribute] = true
	for _, value := range decision.Branches.Keys() {
		child, _ := decision.Branches.Get(value)
		assertNoRepeats(t, child, seen)
	}
	delete(seen, decision.Attribute)
}

func TestPredictUnseenValue(t *testing.T) {
	model := NewID3()
	require.NoError(t, model.Fit(xorTable()))

	_, ok := model.Predict(data.Row{"F1": "2", "F2": "0"})
	assert.False(t, ok)
}

func TestPredictMissingAttribute(t *testing.T) {
	model := NewID3()
	require.NoError(t, model.Fit(xorTable()))

	_, ok := model.Predict(data.Row{"F2": "0"})
	assert.False(t, ok)
}

func TestPredictUnfitted(t *testing.T) {
	model := NewID3()

	_, ok := model.Predict(data.Row{"F1": "0"})
	assert.False(t, ok)
}

func TestFitEmptyTable(t *testing.T) {
	model := NewID3()

	assert.Error(t, model.Fit(nil))
	assert.Error(t, model.Fit(data.NewTable([]string{"F1", "D"}, nil)))
}

func TestFitPureTable(t *testing.T) {
	table := data.NewTable([]string{"F1", "D"}, []data.Row{
		{"F1": "a", "D": "1"},
		{"F1": "b", "D": "1"},
	})

	model := NewID3()
	require.NoError(t, model.Fit(table))

	assert.Equal(t, &Leaf{Value: "1"}, model.Root)
}

func TestFitNoFeatures(t *testing.T) {
	table := data.NewTable([]string{"D"}, []data.Row{
		{"D": "1"},
		{"D": "0"},
		{"D": "1"},
	})

	model := NewID3()
	require.NoError(t, model.Fit(table))

	assert.Equal(t, &Leaf{Value: "1"}, model.Root)
}

func TestFitMajorityLeafWhenFeaturesExhausted(t *testing.T) {
	// Contradictory rows force a majority vote once the only feature is used.
	table := data.NewTable([]string{"F1", "D"}, []data.Row{
		{"F1": "a", "D": "1"},
		{"F1": "a", "D": "1"},
		{"F1": "a", "D": "0"},
		{"F1": "b", "D": "0"},
	})

	model := NewID3()
	require.NoError(t, model.Fit(table))

	root, ok := model.Root.(*Decision)
	require.True(t, ok)
	assert.Equal(t, "F1", root.Attribute)

	impure, found := root.Branches.Get("a")
	require.True(t, found)
	assert.Equal(t, &Leaf{Value: "1"}, impure)

	// The sibling group is still processed after the majority leaf.
	pure, found := root.Branches.Get("b")
	require.True(t, found)
	assert.Equal(t, &Leaf{Value: "0"}, pure)
}

func TestMajorityValue(t *testing.T) {
	tests := []struct {
		values []string
		want   string
	}{
		{[]string{"1", "1", "0"}, "1"},
		{[]string{"0", "1", "1", "0"}, "0"},
		{[]string{"b", "a", "a", "b", "a"}, "a"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, majorityValue(tt.values))
	}
}

func TestDump(t *testing.T) {
	model := NewID3()
	require.NoError(t, model.Fit(xorTable()))

	assert.Equal(t, "F1\n  0\n    1\n  1\n    0\n", model.Dump())
	assert.Equal(t, "{F1: {0: 1, 1: 0}}", model.Root.(*Decision).String())
}
