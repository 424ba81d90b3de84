// Package models defines the transaction record that flows through the
// validation, duplicate-detection and grouping stages.
package models

// TransactionRecord represents a single payment instruction extracted from a
// source spreadsheet row. Identity fields (ID, Reference, ValueDate) and the
// fixed Currency/DetailsOfCharges values are assigned by the pipeline at
// ingestion; everything else originates from the source row and may be edited
// during review.
type TransactionRecord struct {
	ID                    string `csv:"-"`
	Reference             string `csv:"Reference"`
	ValueDate             string `csv:"Value Date"`
	PayerName             string `csv:"Payer Name"`
	PayerAccount          string `csv:"Payer Account"`
	Amount                string `csv:"Amount"`
	Currency              string `csv:"Currency"`
	ReceiverBIC           string `csv:"Receiver BIC"`
	BeneficiaryName       string `csv:"Beneficiary Name"`
	BeneficiaryAccount    string `csv:"Beneficiary Account"`
	RemittanceInformation string `csv:"Remittance Information"`
	DetailsOfCharges      string `csv:"Details of Charges"`

	// ValidationError holds every failing rule joined with "; ". Empty means
	// the record is valid. Recomputed on every mutation of the record.
	ValidationError string `csv:"-"`

	// IsDuplicate is a snapshot relative to the set the last detection pass
	// ran over. It is never maintained incrementally.
	IsDuplicate bool `csv:"-"`
}

// IsValid reports whether the record has no outstanding validation error.
func (r TransactionRecord) IsValid() bool {
	return r.ValidationError == ""
}

// ExportRow returns the record's values in the fixed export column order.
func (r TransactionRecord) ExportRow() []string {
	return []string{
		r.Reference,
		r.ValueDate,
		r.PayerName,
		r.PayerAccount,
		r.Amount,
		r.Currency,
		r.ReceiverBIC,
		r.BeneficiaryName,
		r.BeneficiaryAccount,
		r.RemittanceInformation,
		r.DetailsOfCharges,
	}
}
