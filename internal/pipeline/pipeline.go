// Package pipeline orchestrates the record lifecycle: ingestion from raw
// spreadsheet rows, per-record validation, review-time mutation, duplicate
// detection and removal, and the gate in front of export.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"swift-batch/internal/bankregistry"
	"swift-batch/internal/duplicates"
	"swift-batch/internal/logging"
	"swift-batch/internal/models"
	"swift-batch/internal/textutils"
	"swift-batch/internal/validation"
)

// now is swapped out by tests that need a fixed value date.
var now = time.Now

// valueDateFormat is the fixed calendar stamp assigned at ingestion.
const valueDateFormat = "20060102"

// Field names accepted by UpdateField.
const (
	FieldReference             = "reference"
	FieldValueDate             = "valueDate"
	FieldPayerName             = "payerName"
	FieldPayerAccount          = "payerAccount"
	FieldAmount                = "amount"
	FieldCurrency              = "currency"
	FieldReceiverBIC           = "receiverBIC"
	FieldBeneficiaryName       = "beneficiaryName"
	FieldBeneficiaryAccount    = "beneficiaryAccount"
	FieldRemittanceInformation = "remittanceInformation"
	FieldDetailsOfCharges      = "detailsOfCharges"
)

// Pipeline owns the working record set between ingestion and export.
type Pipeline struct {
	log     *logrus.Logger
	records []models.TransactionRecord
}

// New creates an empty pipeline. A nil logger falls back to the shared one.
func New(log *logrus.Logger) *Pipeline {
	if log == nil {
		log = logging.GetLogger()
	}
	return &Pipeline{log: log}
}

// Records returns the current record set in order.
func (p *Pipeline) Records() []models.TransactionRecord {
	return p.records
}

// Len returns the number of records currently held.
func (p *Pipeline) Len() int {
	return len(p.records)
}

// IngestSources consolidates one or more per-file row sets into a single
// record set. IDs are re-assigned after the merge so they stay unique across
// sources, and a duplicate-detection pass runs over the merged set.
func (p *Pipeline) IngestSources(sources ...[][]string) error {
	if len(sources) == 0 {
		return fmt.Errorf("no sources provided for ingestion")
	}

	var merged []models.TransactionRecord
	for _, rows := range sources {
		merged = append(merged, RecordsFromRows(rows)...)
	}
	for i := range merged {
		merged[i].ID = uuid.NewString()
	}

	p.records = duplicates.Detect(merged)
	p.log.WithFields(logrus.Fields{
		logging.FieldCount:      len(p.records),
		logging.FieldDuplicates: duplicates.Count(p.records),
	}).Info("Ingested transaction records")
	return nil
}

// RecordsFromRows builds records from raw data rows (header already removed).
// Rows whose cells are all empty are dropped. Field positions follow the
// fixed source layout; the beneficiary name is normalized before it is
// stored, and the full validation rule set runs on creation.
func RecordsFromRows(rows [][]string) []models.TransactionRecord {
	var records []models.TransactionRecord
	for _, row := range rows {
		if rowIsEmpty(row) {
			continue
		}
		rec := models.TransactionRecord{
			ID:                    uuid.NewString(),
			Reference:             NewReference(),
			ValueDate:             now().Format(valueDateFormat),
			PayerName:             cell(row, models.ColPayerName),
			PayerAccount:          cell(row, models.ColPayerAccount),
			Amount:                cell(row, models.ColAmount),
			Currency:              models.CurrencyIQD,
			ReceiverBIC:           cell(row, models.ColReceiverBIC),
			BeneficiaryName:       textutils.NormalizeName(cell(row, models.ColBeneficiaryName)),
			BeneficiaryAccount:    cell(row, models.ColBeneficiaryAccount),
			RemittanceInformation: cell(row, models.ColRemittanceInformation),
			DetailsOfCharges:      models.ChargesSLEV,
		}
		rec.ValidationError = validation.ValidateRecord(rec)
		records = append(records, rec)
	}
	return records
}

// UpdateField mutates one field of the identified record and re-runs the full
// validation rule set. The rules cross-read fields, so every rule runs no
// matter which field changed.
func (p *Pipeline) UpdateField(id, field, value string) error {
	for i := range p.records {
		if p.records[i].ID != id {
			continue
		}
		if err := setField(&p.records[i], field, value); err != nil {
			return err
		}
		p.records[i].ValidationError = validation.ValidateRecord(p.records[i])
		return nil
	}
	return fmt.Errorf("no record with id %s", id)
}

func setField(rec *models.TransactionRecord, field, value string) error {
	switch field {
	case FieldReference:
		rec.Reference = value
	case FieldValueDate:
		rec.ValueDate = value
	case FieldPayerName:
		rec.PayerName = value
	case FieldPayerAccount:
		rec.PayerAccount = value
	case FieldAmount:
		rec.Amount = value
	case FieldCurrency:
		rec.Currency = value
	case FieldReceiverBIC:
		rec.ReceiverBIC = value
	case FieldBeneficiaryName:
		rec.BeneficiaryName = value
	case FieldBeneficiaryAccount:
		rec.BeneficiaryAccount = value
	case FieldRemittanceInformation:
		rec.RemittanceInformation = value
	case FieldDetailsOfCharges:
		rec.DetailsOfCharges = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// ApplyPayerAccount overwrites the payer account on every record and
// revalidates them.
func (p *Pipeline) ApplyPayerAccount(account string) {
	if strings.TrimSpace(account) == "" {
		return
	}
	for i := range p.records {
		p.records[i].PayerAccount = account
		p.records[i].ValidationError = validation.ValidateRecord(p.records[i])
	}
}

// TrimNames normalizes every beneficiary name and caps it at the network's
// length ceiling, then revalidates.
func (p *Pipeline) TrimNames() {
	for i := range p.records {
		name := []rune(textutils.NormalizeName(p.records[i].BeneficiaryName))
		if len(name) > validation.MaxBeneficiaryNameLength {
			name = name[:validation.MaxBeneficiaryNameLength]
		}
		p.records[i].BeneficiaryName = string(name)
		p.records[i].ValidationError = validation.ValidateRecord(p.records[i])
	}
}

// CheckDuplicates recomputes the duplicate flags over the full set and
// returns the number of flagged records.
func (p *Pipeline) CheckDuplicates() int {
	p.records = duplicates.Detect(p.records)
	count := duplicates.Count(p.records)
	p.log.WithField(logging.FieldDuplicates, count).Info("Duplicate check completed")
	return count
}

// RemoveDuplicates drops every record currently flagged as a duplicate and
// returns the number removed.
func (p *Pipeline) RemoveDuplicates() int {
	before := len(p.records)
	p.records = duplicates.Remove(p.records)
	removed := before - len(p.records)
	if removed > 0 {
		p.log.WithField(logging.FieldCount, removed).Info("Removed duplicate records")
	}
	return removed
}

// ValidationErrors lists outstanding validation failures, one row-numbered
// line per failing record.
func (p *Pipeline) ValidationErrors() []string {
	var errs []string
	for i, rec := range p.records {
		if rec.ValidationError != "" {
			errs = append(errs, fmt.Sprintf("Row %d: %s", i+1, rec.ValidationError))
		}
	}
	return errs
}

// DuplicateDetails lists the duplicate groups currently flagged in the set.
func (p *Pipeline) DuplicateDetails() []string {
	return duplicates.Details(p.records)
}

// Gate checks the export precondition: no record may carry a validation error
// or a duplicate flag. An empty set passes.
func (p *Pipeline) Gate() error {
	errCount := 0
	for _, rec := range p.records {
		if rec.ValidationError != "" {
			errCount++
		}
	}
	dupCount := duplicates.Count(p.records)
	if errCount > 0 || dupCount > 0 {
		return &GateError{ValidationErrors: errCount, Duplicates: dupCount}
	}
	return nil
}

// Groups resolves each record's destination bank and partitions the set for
// export. Callers are expected to have passed Gate first.
func (p *Pipeline) Groups(registry *bankregistry.Registry) []bankregistry.BankGroup {
	return registry.Group(p.records)
}

// GateError reports why a record set may not proceed to export.
type GateError struct {
	ValidationErrors int
	Duplicates       int
}

func (e *GateError) Error() string {
	return fmt.Sprintf("cannot proceed to export: %d validation errors and %d duplicates remain",
		e.ValidationErrors, e.Duplicates)
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}

func rowIsEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
