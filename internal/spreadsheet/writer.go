package spreadsheet

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"

	"swift-batch/internal/bankregistry"
	"swift-batch/internal/logging"
	"swift-batch/internal/models"
)

// Export formats supported by the writer.
const (
	FormatXLSX = "xlsx"
	FormatCSV  = "csv"
)

// arabicMonths names the months used in export filenames, matching the
// operator-facing convention of the reference deployment.
var arabicMonths = []string{
	"كانون الثاني",
	"شباط",
	"آذار",
	"نيسان",
	"أيار",
	"حزيران",
	"تموز",
	"آب",
	"أيلول",
	"تشرين الأول",
	"تشرين الثاني",
	"كانون الأول",
}

// Writer produces one export artifact per bank group.
type Writer struct {
	Directory      string
	Format         string
	FilenamePrefix string
	CSVDelimiter   rune
}

// NewWriter builds a writer for the given output directory and format.
func NewWriter(directory, format, filenamePrefix string, csvDelimiter rune) *Writer {
	if csvDelimiter == 0 {
		csvDelimiter = ','
	}
	return &Writer{
		Directory:      directory,
		Format:         format,
		FilenamePrefix: filenamePrefix,
		CSVDelimiter:   csvDelimiter,
	}
}

// WriteGroup writes a single bank group and returns the artifact path.
func (w *Writer) WriteGroup(group bankregistry.BankGroup) (string, error) {
	if err := os.MkdirAll(w.Directory, models.PermissionDirectory); err != nil {
		return "", fmt.Errorf("error creating export directory: %w", err)
	}

	path := filepath.Join(w.Directory, w.filename(group.Bank, time.Now()))

	log.WithFields(map[string]interface{}{
		logging.FieldBank:       group.Bank,
		logging.FieldCount:      len(group.Records),
		logging.FieldOutputFile: path,
	}).Info("Writing bank group export")

	var err error
	switch w.Format {
	case FormatCSV:
		err = writeCSV(path, group.Records, w.CSVDelimiter)
	default:
		err = writeXLSX(path, group.Records)
	}
	if err != nil {
		return "", fmt.Errorf("error exporting %s: %w", group.Bank, err)
	}
	return path, nil
}

// WriteAll writes every group and returns the artifact paths in group order.
func (w *Writer) WriteAll(groups []bankregistry.BankGroup) ([]string, error) {
	paths := make([]string, 0, len(groups))
	for _, group := range groups {
		path, err := w.WriteGroup(group)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// filename follows the operator convention: optional prefix, bank name,
// Arabic month name, year, extension.
func (w *Writer) filename(bank string, at time.Time) string {
	parts := []string{}
	if w.FilenamePrefix != "" {
		parts = append(parts, w.FilenamePrefix)
	}
	parts = append(parts, bank, arabicMonths[at.Month()-1], fmt.Sprintf("%d", at.Year()))
	return strings.Join(parts, " ") + "." + w.extension()
}

func (w *Writer) extension() string {
	if w.Format == FormatCSV {
		return FormatCSV
	}
	return FormatXLSX
}

func writeXLSX(path string, records []models.TransactionRecord) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	const sheet = "Transactions"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	header := make([]interface{}, len(models.ExportHeader))
	for i, col := range models.ExportHeader {
		header[i] = col
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("error writing header row: %w", err)
	}

	for i, rec := range records {
		row := make([]interface{}, 0, len(models.ExportHeader))
		for _, value := range rec.ExportRow() {
			row = append(row, value)
		}
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error computing cell name: %w", err)
		}
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}
	return nil
}

func writeCSV(path string, records []models.TransactionRecord, delimiter rune) error {
	file, err := os.Create(path) // #nosec G304 -- path is built from operator config
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV: %w", err)
	}
	return nil
}
