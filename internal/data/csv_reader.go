package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

type CSVReader struct {
	filename string
}

func NewCSVReader(filename string) (*CSVReader, error) {
	return &CSVReader{filename: filename}, nil
}

// LoadTable reads the whole file into a Table. The first record is the
// header row, the last column is the target attribute and every cell is
// kept as an opaque categorical string. Rows with empty cells are removed.
func (cr *CSVReader) LoadTable() (*Table, error) {
	file, err := os.Open(cr.filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cr.filename, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("insufficient data in %s", cr.filename)
	}

	headers := records[0]
	if len(headers) < 2 {
		return nil, fmt.Errorf("%s must have at least one feature column and a target column", cr.filename)
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		hasEmpty := false
		for _, val := range record {
			if strings.TrimSpace(val) == "" {
				hasEmpty = true
				break
			}
		}
		if hasEmpty {
			continue
		}

		row := make(Row, len(headers))
		for j, val := range record {
			row[headers[j]] = val
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no usable rows in %s", cr.filename)
	}

	return NewTable(headers, rows), nil
}
