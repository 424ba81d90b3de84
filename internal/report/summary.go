// Package report builds operator-facing summaries of a processed batch.
package report

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"swift-batch/internal/bankregistry"
	"swift-batch/internal/logging"
)

// BankSummary aggregates one bank group.
type BankSummary struct {
	Bank            string          `json:"bank" yaml:"bank"`
	Records         int             `json:"records" yaml:"records"`
	BICs            []string        `json:"bics" yaml:"bics"`
	Total           decimal.Decimal `json:"total" yaml:"total"`
	UnparsedAmounts int             `json:"unparsed_amounts,omitempty" yaml:"unparsed_amounts,omitempty"`
}

// Summary describes a whole batch after grouping.
type Summary struct {
	TotalRecords int             `json:"total_records" yaml:"total_records"`
	Currency     string          `json:"currency" yaml:"currency"`
	Banks        []BankSummary   `json:"banks" yaml:"banks"`
	Total        decimal.Decimal `json:"total" yaml:"total"`
}

// Generator produces batch summaries.
type Generator struct {
	logger *logrus.Logger
}

// NewGenerator creates a summary generator. A nil logger falls back to the
// shared one.
func NewGenerator(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// Summarize aggregates record counts, distinct BICs and amount totals per
// bank group. Amounts travel as text; values that fail to parse are counted
// rather than silently dropped.
func (g *Generator) Summarize(groups []bankregistry.BankGroup, currency string) Summary {
	summary := Summary{Currency: currency, Total: decimal.Zero}

	for _, group := range groups {
		bank := BankSummary{
			Bank:    group.Bank,
			Records: len(group.Records),
			BICs:    group.BICs(),
			Total:   decimal.Zero,
		}
		for _, rec := range group.Records {
			amount, err := parseAmount(rec.Amount)
			if err != nil {
				bank.UnparsedAmounts++
				g.logger.WithFields(logrus.Fields{
					logging.FieldBank:     group.Bank,
					logging.FieldRecordID: rec.ID,
				}).Warnf("Unparseable amount %q", rec.Amount)
				continue
			}
			bank.Total = bank.Total.Add(amount)
		}
		summary.TotalRecords += bank.Records
		summary.Total = summary.Total.Add(bank.Total)
		summary.Banks = append(summary.Banks, bank)
	}

	return summary
}

// Log writes the summary through the generator's logger, one line per bank.
func (g *Generator) Log(summary Summary) {
	for _, bank := range summary.Banks {
		g.logger.WithFields(logrus.Fields{
			logging.FieldBank:  bank.Bank,
			logging.FieldCount: bank.Records,
			logging.FieldBIC:   strings.Join(bank.BICs, ", "),
		}).Infof("%s %s", bank.Total.String(), summary.Currency)
	}
	g.logger.WithField(logging.FieldCount, summary.TotalRecords).
		Infof("Batch total: %s %s across %d banks", summary.Total.String(), summary.Currency, len(summary.Banks))
}

// parseAmount tolerates thousands separators in source amounts.
func parseAmount(amount string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(amount), ",", "")
	return decimal.NewFromString(cleaned)
}
