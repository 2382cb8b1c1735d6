package dataset

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads sheets from a workbook on disk, typically a downloaded
// copy of the monitoring spreadsheet.
type XLSXSource struct {
	Path string
}

func NewXLSXSource(path string) *XLSXSource {
	return &XLSXSource{Path: path}
}

func (s *XLSXSource) Name() string {
	return "xlsx"
}

func (s *XLSXSource) Fetch(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("xlsx: open %s: %w", s.Path, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
		return nil, fmt.Errorf("xlsx: %q in %s: %w", name, s.Path, ErrSheetNotFound)
	}

	// Raw values keep date cells as serial numbers instead of the
	// month-first display format of the built-in date styles.
	rows, err := f.GetRows(name, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("xlsx: read %q: %w", name, err)
	}

	table := &Table{Name: name, Header: []string{}, Rows: [][]string{}}
	if len(rows) == 0 {
		return table, nil
	}
	table.Header = rows[0]
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}
