package logging

// Standardized field names for structured logging. Keeping these in one place
// makes log output consistent and easy to filter.
const (
	FieldFile       = "file_path"
	FieldRecordID   = "record_id"
	FieldBank       = "bank"
	FieldBIC        = "bic"
	FieldCount      = "count"
	FieldDuplicates = "duplicates"
	FieldErrors     = "errors"
	FieldOutputFile = "output_file"
	FieldReason     = "reason"
)
