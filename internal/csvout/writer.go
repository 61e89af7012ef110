// Package csvout serializes generated tables to CSV files: UTF-8 with a BOM
// signature, comma-delimited, header row first, columns in the table's field
// order.
package csvout

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/insight-engine/datagen/internal/dataset"
)

// Write serializes the table into dir and returns the full path written and
// the number of data rows. The directory must already exist; a missing
// directory is the caller's problem and surfaces as the create error.
func Write(dir string, t *dataset.Table) (string, int, error) {
	path := filepath.Join(dir, t.FileName)

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("creating %s: %w", path, err)
	}

	// The BOM keeps spreadsheet tools from mangling accented Latin text.
	enc := transform.NewWriter(f, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(enc)

	if err := w.Write(t.Header); err != nil {
		f.Close()
		return "", 0, fmt.Errorf("writing header for %s: %w", t.Domain, err)
	}

	record := make([]string, len(t.Header))
	for i, row := range t.Rows {
		for j, v := range row {
			record[j] = dataset.FormatValue(v)
		}
		if err := w.Write(record); err != nil {
			f.Close()
			return "", 0, fmt.Errorf("writing %s row %d: %w", t.Domain, i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", 0, fmt.Errorf("flushing %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return "", 0, fmt.Errorf("closing encoder for %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("closing %s: %w", path, err)
	}

	return path, len(t.Rows), nil
}
