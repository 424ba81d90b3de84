package models

// Pipeline-assigned constants. The batch format is single-currency with
// sender-levied charges; neither value is read from the source file.
const (
	CurrencyIQD = "IQD"
	ChargesSLEV = "SLEV"
)

// Source column positions in a raw spreadsheet row (0-indexed). The header
// row and columns outside this set are ignored.
const (
	ColPayerName             = 2
	ColPayerAccount          = 3
	ColAmount                = 4
	ColReceiverBIC           = 6
	ColBeneficiaryName       = 7
	ColBeneficiaryAccount    = 8
	ColRemittanceInformation = 9
)

// ExportHeader is the fixed column order of every exported artifact.
var ExportHeader = []string{
	"Reference",
	"Value Date",
	"Payer Name",
	"Payer Account",
	"Amount",
	"Currency",
	"Receiver BIC",
	"Beneficiary Name",
	"Beneficiary Account",
	"Remittance Information",
	"Details of Charges",
}

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionExportFile = 0644
)
