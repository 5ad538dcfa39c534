// Package ingest reads uploaded CSV and XLSX exports into raw row tables.
// Readers preserve header order and hand cells over as untyped strings; all
// interpretation belongs to the domain layer.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/podium-rank/podium/internal/domain/model"
)

// File dispatches on the file extension. Unrecognized extensions are read
// as CSV, which matches what tournament software exports by default.
func File(name string, r io.Reader) ([]model.Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return XLSX(r)
	default:
		t, err := CSV(r)
		if err != nil {
			return nil, err
		}
		return []model.Table{t}, nil
	}
}

// CSV reads one table: first record is the header, every following record
// is one row. Ragged records are tolerated; short rows simply lack cells.
func CSV(r io.Reader) (model.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return model.Table{}, ErrEmptyFile
	}
	if err != nil {
		return model.Table{}, fmt.Errorf("read csv header: %w", err)
	}

	table := model.Table{Labels: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return model.Table{}, fmt.Errorf("read csv record: %w", err)
		}
		row := make(model.RawRow, len(header))
		for i, label := range header {
			if i < len(record) {
				row[label] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	if len(table.Rows) == 0 {
		return model.Table{}, ErrEmptyFile
	}
	return table, nil
}

// XLSX reads every non-empty sheet of a workbook as one table.
func XLSX(r io.Reader) ([]model.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var tables []model.Table
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}
		header := rows[0]
		table := model.Table{Labels: header}
		for _, record := range rows[1:] {
			row := make(model.RawRow, len(header))
			for i, label := range header {
				if i < len(record) {
					row[label] = record[i]
				}
			}
			table.Rows = append(table.Rows, row)
		}
		tables = append(tables, table)
	}
	if len(tables) == 0 {
		return nil, ErrEmptyFile
	}
	return tables, nil
}

// TournamentName derives a tournament name from an uploaded file name,
// using the stem the way exports are usually named after the event.
func TournamentName(filename string) string {
	base := filepath.Base(filename)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return strings.TrimSpace(base)
}
