// Package export renders read-only projections of the inventory
// dataset: a CSV dump of every column and a paginated text listing.
// Neither touches the dataset or the backing store.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/mcastrillon/labelscan/internal/inventory"
)

// DefaultPageSize is how many listing lines fit on one page, matching
// the letter-page layout the listing replaced.
const DefaultPageSize = 33

// CSV writes the full dataset as comma-separated values: header row
// first, then every row with the code in its original column position
// and all other columns passed through. No index column is added.
func CSV(w io.Writer, d *inventory.Dataset, codeColumn int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(d.Header()); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range d.Rows() {
		if err := cw.Write(recordFor(row, codeColumn, len(d.Header()))); err != nil {
			return fmt.Errorf("failed to write csv row %d: %w", row.Position, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// recordFor reassembles a row's cells in workbook column order. The
// dataset stores the code separately from the passthrough columns;
// codeColumn is the 1-based workbook column the code came from.
func recordFor(row inventory.Row, codeColumn, width int) []string {
	if width < len(row.Extra)+1 {
		width = len(row.Extra) + 1
	}
	record := make([]string, width)
	extra := row.Extra
	for i := range record {
		if i == codeColumn-1 {
			record[i] = row.Code
			continue
		}
		if len(extra) > 0 {
			record[i] = extra[0]
			extra = extra[1:]
		}
	}
	return record
}

// Listing writes the paginated text listing: a title line, then one
// "Código: <value>" line per row, with a form-feed page break after
// every pageSize lines. pageSize <= 0 selects DefaultPageSize.
func Listing(w io.Writer, d *inventory.Dataset, title string, pageSize int) error {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	for i, code := range d.Codes() {
		if i > 0 && i%pageSize == 0 {
			if _, err := fmt.Fprint(w, "\f"); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "Código: %s\n", code); err != nil {
			return err
		}
	}
	return nil
}

// FileName builds a unique export file name like
// "inventario_20260831_143000_5f4dcc3b.csv" so successive exports never
// clobber each other.
func FileName(prefix, ext string) string {
	id := uuid.New().String()[:8]
	return fmt.Sprintf("%s_%s_%s.%s", prefix, time.Now().Format("20060102_150405"), id, ext)
}
