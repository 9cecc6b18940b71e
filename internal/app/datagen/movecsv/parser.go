// Package movecsv parses move tables (CSV with a header row) into move records.
// Pure function: file path in, domain structs out.
package movecsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/Dragomordor/SimpleTMs/internal/domain"
)

const utf8BOM = "\ufeff"

// Columns maps record fields to CSV header names. Name and Type are required;
// an empty name for any other field means the column is not read.
type Columns struct {
	Name       string
	Type       string
	Category   string
	Identifier string
	Generation string
	PP         string
	Power      string
	Accuracy   string
}

// Stats holds parsing statistics.
type Stats struct {
	TotalRows   int
	SkippedRows int
	// MissingOptional lists configured optional columns absent from the header.
	MissingOptional []string
}

// Result holds the parsed records in file order.
type Result struct {
	Records []domain.MoveRecord
	Stats   Stats
}

// Parse opens the CSV file at path and parses it with the given column mapping.
func Parse(path string, cols Columns) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open move table: %w", err)
	}
	defer f.Close()

	res, err := parse(f, cols)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return res, nil
}

// columnIndex holds the resolved header position of each field, -1 if absent.
type columnIndex struct {
	name, typ, category, identifier int
	generation, pp, power, accuracy int
}

func parse(r io.Reader, cols Columns) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // allow variable column count

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty file, no header row: %w", domain.ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx, missing, err := resolveColumns(header, cols)
	if err != nil {
		return nil, err
	}

	res := &Result{Stats: Stats{MissingOptional: missing}}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		res.Stats.TotalRows++
		line, _ := reader.FieldPos(0)

		field := func(i int) string {
			if i < 0 || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		name := norm.NFC.String(field(idx.name))
		if name == "" {
			res.Stats.SkippedRows++
			continue
		}

		moveType := field(idx.typ)
		if moveType == "" {
			return nil, fmt.Errorf("line %d: move %q has no type", line, name)
		}

		id := norm.NFC.String(field(idx.identifier))
		if id == "" {
			id = name
		}
		id = domain.NormalizeMoveName(id)
		if id == "" {
			return nil, fmt.Errorf("line %d: move %q normalizes to an empty identifier", line, name)
		}
		if !domain.IsResourceName(id) {
			return nil, fmt.Errorf("line %d: move %q: identifier %q: %w", line, name, id, domain.ErrInvalidResourceName)
		}

		category := field(idx.category)
		for _, group := range []struct{ column, value string }{{"type", moveType}, {"category", category}} {
			if group.value != "" && !domain.IsResourceName(domain.NormalizeGroupKey(group.value)) {
				return nil, fmt.Errorf("line %d: move %q: %s %q: %w", line, name, group.column, group.value, domain.ErrInvalidResourceName)
			}
		}

		res.Records = append(res.Records, domain.MoveRecord{
			Identifier:  id,
			DisplayName: name,
			Type:        moveType,
			Category:    category,
			Generation:  field(idx.generation),
			PP:          field(idx.pp),
			Power:       field(idx.power),
			Accuracy:    field(idx.accuracy),
			Line:        line,
		})
	}

	return res, nil
}

// resolveColumns finds each configured column in the header. Header names are
// matched case-insensitively after trimming. Missing required columns are an
// error; missing optional columns are reported and read as empty.
func resolveColumns(header []string, cols Columns) (columnIndex, []string, error) {
	positions := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := positions[key]; !dup {
			positions[key] = i
		}
	}

	lookup := func(name string) int {
		if name == "" {
			return -1
		}
		if i, ok := positions[strings.ToLower(strings.TrimSpace(name))]; ok {
			return i
		}
		return -1
	}

	idx := columnIndex{
		name:       lookup(cols.Name),
		typ:        lookup(cols.Type),
		category:   lookup(cols.Category),
		identifier: lookup(cols.Identifier),
		generation: lookup(cols.Generation),
		pp:         lookup(cols.PP),
		power:      lookup(cols.Power),
		accuracy:   lookup(cols.Accuracy),
	}

	if idx.name < 0 {
		return idx, nil, fmt.Errorf("name column %q: %w", cols.Name, domain.ErrMissingColumn)
	}
	if idx.typ < 0 {
		return idx, nil, fmt.Errorf("type column %q: %w", cols.Type, domain.ErrMissingColumn)
	}

	var missing []string
	optional := []struct {
		name string
		pos  int
	}{
		{cols.Category, idx.category},
		{cols.Identifier, idx.identifier},
		{cols.Generation, idx.generation},
		{cols.PP, idx.pp},
		{cols.Power, idx.power},
		{cols.Accuracy, idx.accuracy},
	}
	for _, o := range optional {
		if o.name != "" && o.pos < 0 {
			missing = append(missing, o.name)
		}
	}

	return idx, missing, nil
}
