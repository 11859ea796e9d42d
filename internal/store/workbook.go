// Package store persists the inventory to its backing XLSX workbook.
//
// The workbook has one sheet of interest: row 1 is the header, data
// starts at row 2, and the code column is whichever header cell contains
// "codigo" (case- and accent-insensitive). Mutations touch the code cell
// only; all other columns pass through untouched.
//
// The store assumes a single writer. Concurrent processes sharing one
// workbook file can race and corrupt it; run one session at a time.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/mcastrillon/labelscan/internal/inventory"
)

// ErrStoreMissing reports that the backing workbook does not exist. The
// session cannot mutate anything until the caller supplies an initial
// file.
var ErrStoreMissing = errors.New("inventory workbook not found")

// Marker fills for the code cell, paired with bold text.
const (
	FoundFillHex = "#00FF00" // matched, pre-existing row
	AddedFillHex = "#800080" // newly added row
)

// Workbook is an open inventory workbook. It implements the
// reconciler's Store interface; mutations accumulate in memory until
// Flush backs up the prior file state and saves.
type Workbook struct {
	path       string
	backupPath string
	f          *excelize.File
	sheet      string
	codeCol    int // 1-based column of the code cell
	header     []string
	foundStyle int
	addedStyle int
	logger     *slog.Logger
}

// Open loads the workbook at path. The backup written before each flush
// goes to backupPath, overwriting any prior backup (single generation).
func Open(path, backupPath string, logger *slog.Logger) (*Workbook, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStoreMissing, path)
		}
		return nil, fmt.Errorf("failed to stat workbook: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}

	sheet := f.GetSheetName(0)
	if sheet == "" {
		f.Close()
		return nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		f.Close()
		return nil, fmt.Errorf("workbook %s has no header row", path)
	}

	header := rows[0]
	codeCol, err := findCodeColumn(header)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &Workbook{
		path:       path,
		backupPath: backupPath,
		f:          f,
		sheet:      sheet,
		codeCol:    codeCol,
		header:     header,
		foundStyle: -1,
		addedStyle: -1,
		logger:     logger,
	}, nil
}

// Dataset reads the current data rows into an in-memory dataset. Call
// once per session; lookups afterwards run against the in-memory copy.
func (w *Workbook) Dataset() (*inventory.Dataset, error) {
	rows, err := w.f.GetRows(w.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	data := make([]inventory.Row, 0, len(rows))
	for i := 1; i < len(rows); i++ {
		cells := rows[i]
		row := inventory.Row{Position: i + 1}
		for j, cell := range cells {
			if j == w.codeCol-1 {
				row.Code = strings.TrimSpace(cell)
			} else {
				row.Extra = append(row.Extra, cell)
			}
		}
		if row.Code == "" && len(row.Extra) == 0 {
			continue // trailing blank row
		}
		data = append(data, row)
	}

	return inventory.NewDataset(w.header, data), nil
}

// MarkFound highlights the code cell of an existing row with the
// "found" marker. Re-marking produces the same visible state.
func (w *Workbook) MarkFound(row int) error {
	style, err := w.ensureStyle(&w.foundStyle, FoundFillHex)
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(w.codeCol, row)
	if err != nil {
		return fmt.Errorf("invalid cell coordinates: %w", err)
	}
	if err := w.f.SetCellStyle(w.sheet, cell, cell, style); err != nil {
		return fmt.Errorf("failed to style cell %s: %w", cell, err)
	}
	return nil
}

// AppendCode writes a new code at the given row with the "newly added"
// marker.
func (w *Workbook) AppendCode(code inventory.Code, row int) error {
	cell, err := excelize.CoordinatesToCellName(w.codeCol, row)
	if err != nil {
		return fmt.Errorf("invalid cell coordinates: %w", err)
	}
	if err := w.f.SetCellValue(w.sheet, cell, string(code)); err != nil {
		return fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
	style, err := w.ensureStyle(&w.addedStyle, AddedFillHex)
	if err != nil {
		return err
	}
	if err := w.f.SetCellStyle(w.sheet, cell, cell, style); err != nil {
		return fmt.Errorf("failed to style cell %s: %w", cell, err)
	}
	return nil
}

// Flush copies the current on-disk workbook to the backup path, then
// saves the in-memory state over the original file.
func (w *Workbook) Flush() error {
	if err := w.Backup(); err != nil {
		return err
	}
	if err := w.f.Save(); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	w.logger.Debug("workbook saved", "path", w.path)
	return nil
}

// Backup copies the on-disk workbook (the state before the pending
// save) to the backup path.
func (w *Workbook) Backup() error {
	if w.backupPath == "" {
		return nil
	}
	data, err := os.ReadFile(w.path)
	if err != nil {
		return fmt.Errorf("failed to read workbook for backup: %w", err)
	}
	if err := os.WriteFile(w.backupPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	w.logger.Debug("backup written", "path", w.backupPath)
	return nil
}

// Close releases the workbook file handle without saving.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// Path returns the workbook's file path.
func (w *Workbook) Path() string { return w.path }

// CodeColumn returns the 1-based column index of the code cells.
func (w *Workbook) CodeColumn() int { return w.codeCol }

func (w *Workbook) ensureStyle(cached *int, fill string) (int, error) {
	if *cached >= 0 {
		return *cached, nil
	}
	style, err := w.f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{strings.TrimPrefix(fill, "#")},
		},
		Font: &excelize.Font{
			Bold:  true,
			Color: FontColorFor(fill),
		},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create cell style: %w", err)
	}
	*cached = style
	return style, nil
}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// findCodeColumn locates the header cell containing "codigo". Headers
// written as "Código" match too: the comparison lower-cases and strips
// accents first.
func findCodeColumn(header []string) (int, error) {
	for i, h := range header {
		folded, _, err := transform.String(foldAccents, strings.ToLower(h))
		if err != nil {
			folded = strings.ToLower(h)
		}
		if strings.Contains(folded, "codigo") {
			return i + 1, nil
		}
	}
	return 0, errors.New(`no column containing "codigo" in the header row`)
}
