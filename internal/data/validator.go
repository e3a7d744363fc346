package data

import (
	"fmt"
	"strings"
)

type TableValidator struct{}

func NewTableValidator() *TableValidator {
	return &TableValidator{}
}

func (tv *TableValidator) ValidateTable(t *Table) error {
	if t == nil || len(t.Rows) == 0 {
		return fmt.Errorf("table is empty")
	}

	if len(t.Columns) < 2 {
		return fmt.Errorf("table must have at least 2 columns, found %d", len(t.Columns))
	}

	seen := make(map[string]bool, len(t.Columns))
	for _, col := range t.Columns {
		if seen[col] {
			return fmt.Errorf("duplicate column name: %s", col)
		}
		seen[col] = true
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Columns) {
			return fmt.Errorf("inconsistent cell count at row %d: expected %d, got %d", i, len(t.Columns), len(row))
		}
		for _, col := range t.Columns {
			val, ok := row[col]
			if !ok {
				return fmt.Errorf("missing value for column %s at row %d", col, i)
			}
			if strings.TrimSpace(val) == "" {
				return fmt.Errorf("empty value for column %s at row %d", col, i)
			}
		}
	}

	return nil
}

func (tv *TableValidator) ValidateLabels(t *Table) error {
	if err := tv.ValidateTable(t); err != nil {
		return err
	}

	classCount := make(map[string]int)
	for _, row := range t.Rows {
		classCount[row[t.Target()]]++
	}

	if len(classCount) < 2 {
		return fmt.Errorf("dataset must have at least 2 classes, found %d", len(classCount))
	}

	return nil
}

func (tv *TableValidator) ValidateTrainTestSplit(train, test *Table) error {
	if err := tv.ValidateTable(train); err != nil {
		return fmt.Errorf("training set validation failed: %v", err)
	}

	if err := tv.ValidateTable(test); err != nil {
		return fmt.Errorf("test set validation failed: %v", err)
	}

	if len(train.Columns) != len(test.Columns) {
		return fmt.Errorf("train and test sets have different column counts: %d vs %d", len(train.Columns), len(test.Columns))
	}

	for i, col := range train.Columns {
		if test.Columns[i] != col {
			return fmt.Errorf("train and test sets disagree at column %d: %s vs %s", i, col, test.Columns[i])
		}
	}

	return nil
}

func (tv *TableValidator) GetDatasetStats(t *Table) map[string]any {
	if t == nil || len(t.Rows) == 0 {
		return map[string]any{}
	}

	stats := make(map[string]any)
	stats["rows"] = len(t.Rows)
	stats["features"] = len(t.Columns) - 1

	classCount := make(map[string]int)
	for _, row := range t.Rows {
		classCount[row[t.Target()]]++
	}
	stats["classes"] = len(classCount)
	stats["class_distribution"] = classCount

	return stats
}
