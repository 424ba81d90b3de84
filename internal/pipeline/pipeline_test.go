package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swift-batch/internal/bankregistry"
	"swift-batch/internal/models"
)

// sourceRow builds a raw spreadsheet row with values at the fixed positions.
func sourceRow(payerName, payerAccount, amount, bic, benName, benAccount, remittance string) []string {
	row := make([]string, 10)
	row[models.ColPayerName] = payerName
	row[models.ColPayerAccount] = payerAccount
	row[models.ColAmount] = amount
	row[models.ColReceiverBIC] = bic
	row[models.ColBeneficiaryName] = benName
	row[models.ColBeneficiaryAccount] = benAccount
	row[models.ColRemittanceInformation] = remittance
	return row
}

func TestRecordsFromRows(t *testing.T) {
	restore := now
	now = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	defer func() { now = restore }()

	rows := [][]string{
		sourceRow("Ahmed Ali", "ACC1", "1000", "UCFXIQBA005", "محمد علي", "XXUCFX005XX", "Salary"),
		make([]string, 10), // fully empty, must be dropped
		{"", "  ", ""},     // whitespace only, must be dropped
		sourceRow("Omar", "ACC2", "2000", "ABCD1234", "Name", "NOMATCH", ""),
	}

	records := RecordsFromRows(rows)
	require.Len(t, records, 2)

	first := records[0]
	assert.NotEmpty(t, first.ID)
	assert.Len(t, first.Reference, 9)
	assert.Equal(t, strings.ToUpper(first.Reference), first.Reference)
	assert.Equal(t, "20260830", first.ValueDate)
	assert.Equal(t, "Ahmed Ali", first.PayerName)
	assert.Equal(t, "ACC1", first.PayerAccount)
	assert.Equal(t, "1000", first.Amount)
	assert.Equal(t, models.CurrencyIQD, first.Currency)
	assert.Equal(t, "UCFXIQBA005", first.ReceiverBIC)
	assert.Equal(t, "محمد علي", first.BeneficiaryName)
	assert.Equal(t, "XXUCFX005XX", first.BeneficiaryAccount)
	assert.Equal(t, "Salary", first.RemittanceInformation)
	assert.Equal(t, models.ChargesSLEV, first.DetailsOfCharges)
	assert.Empty(t, first.ValidationError)
	assert.False(t, first.IsDuplicate)

	// The second surviving record fails validation on creation.
	assert.Contains(t, records[1].ValidationError, "not found in beneficiary account")
}

func TestRecordsFromRowsNormalizesBeneficiaryName(t *testing.T) {
	rows := [][]string{
		sourceRow("P", "A", "1", "", "  Ahmed \u200B Ali ", "", ""),
	}
	records := RecordsFromRows(rows)
	require.Len(t, records, 1)
	assert.Equal(t, "Ahmed Ali", records[0].BeneficiaryName)
}

func TestRecordsFromRowsShortRow(t *testing.T) {
	// Rows narrower than the expected layout must not panic.
	records := RecordsFromRows([][]string{{"x", "y", "Payer"}})
	require.Len(t, records, 1)
	assert.Equal(t, "Payer", records[0].PayerName)
	assert.Empty(t, records[0].ReceiverBIC)
}

func TestIngestSourcesMergesAndDetects(t *testing.T) {
	p := New(nil)
	source1 := [][]string{
		sourceRow("Ahmed Ali", "ACC1", "1000", "", "x", "BEN1", ""),
	}
	source2 := [][]string{
		sourceRow("ALI AHMED", "ACC1", "1000", "", "y", "BEN1", ""),
		sourceRow("Other Person", "ACC2", "500", "", "z", "BEN2", ""),
	}

	require.NoError(t, p.IngestSources(source1, source2))
	require.Equal(t, 3, p.Len())

	// IDs are unique across the merged set.
	seen := make(map[string]struct{})
	for _, rec := range p.Records() {
		_, dup := seen[rec.ID]
		assert.False(t, dup, "record IDs must be unique after merge")
		seen[rec.ID] = struct{}{}
	}

	// Cross-file duplicates are flagged by the post-merge detection pass.
	assert.True(t, p.Records()[0].IsDuplicate)
	assert.True(t, p.Records()[1].IsDuplicate)
	assert.False(t, p.Records()[2].IsDuplicate)
}

func TestIngestSourcesRequiresInput(t *testing.T) {
	assert.Error(t, New(nil).IngestSources())
}

func TestIngestSourcesEmptyRows(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.IngestSources([][]string{}))
	assert.Zero(t, p.Len())
	assert.NoError(t, p.Gate())
	assert.Empty(t, p.ValidationErrors())
}

func TestUpdateFieldRevalidatesFullRuleSet(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.IngestSources([][]string{
		sourceRow("P", "A", "1", "ABCD1234", "Name", "NOMATCH", ""),
	}))
	id := p.Records()[0].ID
	require.Contains(t, p.Records()[0].ValidationError, "ABCD234")

	// Editing the account must re-check the BIC rule even though the BIC
	// field itself did not change.
	require.NoError(t, p.UpdateField(id, FieldBeneficiaryAccount, "XXABCD234XX"))
	assert.Empty(t, p.Records()[0].ValidationError)

	// And a name edit re-runs the name rule alongside the BIC rule.
	require.NoError(t, p.UpdateField(id, FieldBeneficiaryName, strings.Repeat("x", 40)))
	assert.Equal(t, "Beneficiary name exceeds 32 characters", p.Records()[0].ValidationError)
}

func TestUpdateFieldErrors(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.IngestSources([][]string{sourceRow("P", "A", "1", "", "n", "", "")}))
	id := p.Records()[0].ID

	assert.Error(t, p.UpdateField("missing-id", FieldAmount, "5"))
	assert.Error(t, p.UpdateField(id, "noSuchField", "5"))
}

func TestApplyPayerAccount(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.IngestSources([][]string{
		sourceRow("P1", "OLD1", "1", "", "a", "", ""),
		sourceRow("P2", "OLD2", "2", "", "b", "", ""),
	}))

	p.ApplyPayerAccount("GLOBAL")
	for _, rec := range p.Records() {
		assert.Equal(t, "GLOBAL", rec.PayerAccount)
	}

	// Blank input is a no-op.
	p.ApplyPayerAccount("   ")
	assert.Equal(t, "GLOBAL", p.Records()[0].PayerAccount)
}

func TestTrimNames(t *testing.T) {
	p := New(nil)
	longName := strings.Repeat("a", 40)
	require.NoError(t, p.IngestSources([][]string{
		sourceRow("P", "A", "1", "", longName, "", ""),
	}))
	require.NotEmpty(t, p.Records()[0].ValidationError)

	p.TrimNames()
	assert.Equal(t, strings.Repeat("a", 32), p.Records()[0].BeneficiaryName)
	assert.Empty(t, p.Records()[0].ValidationError)
}

func TestGate(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.IngestSources([][]string{
		sourceRow("Ahmed Ali", "ACC1", "1000", "", "x", "BEN1", ""),
		sourceRow("ALI AHMED", "ACC1", "1000", "", "y", "BEN1", ""),
		sourceRow("P", "A", "1", "ABCD1234", "n", "NOMATCH", ""),
	}))

	err := p.Gate()
	require.Error(t, err)
	var gateErr *GateError
	require.ErrorAs(t, err, &gateErr)
	assert.Equal(t, 1, gateErr.ValidationErrors)
	assert.Equal(t, 2, gateErr.Duplicates)
	assert.Contains(t, err.Error(), "cannot proceed to export")
}

func TestValidationErrorsAreRowNumbered(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.IngestSources([][]string{
		sourceRow("P", "A", "1", "", "ok", "", ""),
		sourceRow("P", "A", "1", "ABCD1234", "n", "NOMATCH", ""),
	}))

	errs := p.ValidationErrors()
	require.Len(t, errs, 1)
	assert.True(t, strings.HasPrefix(errs[0], "Row 2: "))
}

func TestEndToEndDuplicateRemoval(t *testing.T) {
	// Two rows with identical accounts and amounts whose beneficiary names
	// are the same words in a different order: both flagged, both removed,
	// nothing left.
	p := New(nil)
	require.NoError(t, p.IngestSources([][]string{
		sourceRow("Payer", "ACC1", "1000", "", "Ahmed Ali", "BEN1", ""),
		sourceRow("Other", "ACC1", "1000", "", "ALI AHMED", "BEN1", ""),
	}))

	assert.Equal(t, 2, p.CheckDuplicates())
	assert.Equal(t, 2, p.RemoveDuplicates())
	assert.Zero(t, p.Len())
	assert.NoError(t, p.Gate())

	// Removal is idempotent.
	assert.Zero(t, p.RemoveDuplicates())
}

func TestGroups(t *testing.T) {
	p := New(nil)
	require.NoError(t, p.IngestSources([][]string{
		sourceRow("P1", "A", "1", "UCFXIQBA005", "a", "XXUCFX005XX", ""),
		sourceRow("P2", "B", "2", "ZZZZIQBA999", "b", "", ""),
	}))

	groups := p.Groups(bankregistry.Default())
	require.Len(t, groups, 2)
	assert.Equal(t, "اسيا الاسلامي", groups[0].Bank)
	assert.Equal(t, bankregistry.UnknownBank, groups[1].Bank)
}

func TestNewReference(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		ref := NewReference()
		assert.Len(t, ref, 9)
		assert.Equal(t, strings.ToUpper(ref), ref)
		seen[ref] = struct{}{}
	}
	assert.Greater(t, len(seen), 90, "references should be effectively unique")
}
