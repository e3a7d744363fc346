package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTable(t *testing.T) {
	path := writeCSV(t, "F1,F2,D\n0,0,1\n0,1,1\n1,0,0\n1,1,0\n")

	reader, err := NewCSVReader(path)
	require.NoError(t, err)

	table, err := reader.LoadTable()
	require.NoError(t, err)

	assert.Equal(t, []string{"F1", "F2", "D"}, table.Columns)
	assert.Equal(t, 4, table.NumRows())
	assert.Equal(t, "D", table.Target())
	assert.Equal(t, Row{"F1": "0", "F2": "0", "D": "1"}, table.Rows[0])
}

func TestLoadTableRemovesRowsWithEmptyCells(t *testing.T) {
	path := writeCSV(t, "F1,D\na,1\n,0\nb, \nc,0\n")

	reader, err := NewCSVReader(path)
	require.NoError(t, err)

	table, err := reader.LoadTable()
	require.NoError(t, err)

	assert.Equal(t, 2, table.NumRows())
	assert.Equal(t, []string{"a", "c"}, table.Column("F1"))
}

func TestLoadTableKeepsValuesOpaque(t *testing.T) {
	path := writeCSV(t, "F1,D\n007,01\n7,1\n")

	reader, err := NewCSVReader(path)
	require.NoError(t, err)

	table, err := reader.LoadTable()
	require.NoError(t, err)

	// No numeric coercion: "007" and "7" are distinct categories.
	assert.Equal(t, []string{"007", "7"}, table.Column("F1"))
}

func TestLoadTableErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"header only", "F1,D\n"},
		{"single column", "D\n1\n"},
		{"all rows removed", "F1,D\n,1\n,0\n"},
		{"ragged rows", "F1,D\na,1,extra\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader, err := NewCSVReader(writeCSV(t, tt.content))
			require.NoError(t, err)

			_, err = reader.LoadTable()
			assert.Error(t, err)
		})
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	reader, err := NewCSVReader(filepath.Join(t.TempDir(), "absent.csv"))
	require.NoError(t, err)

	_, err = reader.LoadTable()
	assert.Error(t, err)
}
