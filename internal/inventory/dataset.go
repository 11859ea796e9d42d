package inventory

import "strings"

// headerRow is the workbook row holding column titles; data starts on
// the next row.
const headerRow = 1

// Row is one inventory entry: its 1-based position in the backing
// workbook, its code, and any other columns passed through unchanged.
type Row struct {
	Position int
	Code     string
	Extra    []string
}

// Dataset is the in-memory working copy of the inventory rows.
//
// Lookups scan the current rows on every call; there is deliberately no
// precomputed code-to-row index, so a lookup immediately after an append
// sees the new row.
type Dataset struct {
	header []string
	rows   []Row
}

// NewDataset builds a dataset from a header row and data rows.
func NewDataset(header []string, rows []Row) *Dataset {
	return &Dataset{header: header, rows: rows}
}

// Header returns the column titles from the backing store's header row.
func (d *Dataset) Header() []string { return d.header }

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.rows) }

// Rows returns the data rows in workbook order.
func (d *Dataset) Rows() []Row { return d.rows }

// Find searches for the row holding the given code. The comparison is
// case-insensitive over trimmed cell values; rows are scanned as they
// are now, not as they were at load time.
func (d *Dataset) Find(code Code) (Row, bool) {
	for _, r := range d.rows {
		if strings.EqualFold(strings.TrimSpace(r.Code), string(code)) {
			return r, true
		}
	}
	return Row{}, false
}

// Contains reports whether any row holds the given code.
func (d *Dataset) Contains(code Code) bool {
	_, ok := d.Find(code)
	return ok
}

// Append adds a new row holding the code at the end of the dataset and
// returns it. The position continues the workbook numbering: one past
// the last known row, or the first data row when the dataset is empty.
//
// The caller is responsible for keeping the backing store in step; the
// dataset itself only tracks the in-memory copy.
func (d *Dataset) Append(code Code) Row {
	pos := headerRow + 1
	for _, r := range d.rows {
		if r.Position >= pos {
			pos = r.Position + 1
		}
	}
	row := Row{Position: pos, Code: string(code)}
	d.rows = append(d.rows, row)
	return row
}

// Codes returns every code in workbook order.
func (d *Dataset) Codes() []string {
	codes := make([]string, 0, len(d.rows))
	for _, r := range d.rows {
		codes = append(codes, r.Code)
	}
	return codes
}
