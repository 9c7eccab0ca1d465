// Package snapshot reads and writes complete leaf-value snapshots as CSV.
// A snapshot file is the at-rest form of the map the engine consumes: one
// row per leaf account, account_name then value.
package snapshot

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

const (
	numFields = 2
	colName   = 0
	colValue  = 1
)

// Read reads a snapshot CSV (with header) into a leaf-value map.
func Read(r io.Reader) (map[string]decimal.Decimal, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading snapshot CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	values := make(map[string]decimal.Decimal, len(records)-1)
	for i, rec := range records[1:] {
		name, value, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if _, dup := values[name]; dup {
			return nil, fmt.Errorf("row %d: duplicate account %q", i+2, name)
		}
		values[name] = value
	}
	return values, nil
}

// Write writes a snapshot CSV. names fixes row order; every name must have
// a value.
func Write(w io.Writer, names []string, values map[string]decimal.Decimal) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_name", "value"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, name := range names {
		v, ok := values[name]
		if !ok {
			return fmt.Errorf("row %d: no value for account %q", i+2, name)
		}
		row := make([]string, numFields)
		row[colName] = name
		row[colValue] = v.String()
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func unmarshalRow(record []string) (string, decimal.Decimal, error) {
	if len(record) != numFields {
		return "", decimal.Decimal{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	value, err := decimal.NewFromString(record[colValue])
	if err != nil {
		return "", decimal.Decimal{}, fmt.Errorf("parsing value %q: %w", record[colValue], err)
	}
	return record[colName], value, nil
}
