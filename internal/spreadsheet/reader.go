// Package spreadsheet is the boundary between the record pipeline and
// spreadsheet files: it extracts raw rows from source workbooks and writes
// per-bank export artifacts. The core packages never touch file formats.
package spreadsheet

import (
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"swift-batch/internal/logging"
)

var log = logging.GetLogger()

// ReadRows extracts every row of the first sheet as string cells.
func ReadRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("error reading rows: %w", err)
	}
	return rows, nil
}

// ReadDataRows reads the first sheet of the workbook at path and returns its
// data rows with the header row removed. A workbook holding only a header
// yields an empty (valid) row set.
func ReadDataRows(path string) ([][]string, error) {
	log.WithField(logging.FieldFile, path).Info("Reading source workbook")

	f, err := os.Open(path) // #nosec G304 -- path is an operator-supplied input file
	if err != nil {
		return nil, fmt.Errorf("error opening source file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	rows, err := ReadRows(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}
