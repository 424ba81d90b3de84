// Package process handles the batch review command: ingest, validate, and
// report duplicates without exporting anything.
package process

import (
	"swift-batch/cmd/root"
	"swift-batch/internal/models"
	"swift-batch/internal/pipeline"
	"swift-batch/internal/report"
	"swift-batch/internal/spreadsheet"

	"github.com/spf13/cobra"
)

var (
	payerAccount string
	trimNames    bool

	// Cmd represents the process command
	Cmd = &cobra.Command{
		Use:   "process",
		Short: "Validate source spreadsheets and report errors and duplicates",
		Long: `Process ingests one or more source spreadsheets, validates every record
against the payment-network rules, runs duplicate detection over the merged
set, and reports what would block an export.`,
		Run: processFunc,
	}
)

func init() {
	Cmd.Flags().StringVar(&payerAccount, "payer-account", "", "Apply this payer account to every record")
	Cmd.Flags().BoolVar(&trimNames, "trim-names", false, "Normalize and cap beneficiary names at the network limit")
}

func processFunc(cmd *cobra.Command, args []string) {
	p := Ingest()

	if payerAccount != "" {
		p.ApplyPayerAccount(payerAccount)
	}
	if trimNames {
		p.TrimNames()
	}
	p.CheckDuplicates()

	for _, line := range p.ValidationErrors() {
		root.Log.Warn(line)
	}
	for _, line := range p.DuplicateDetails() {
		root.Log.Warn(line)
	}

	registry, err := root.LoadRegistry()
	if err != nil {
		root.Log.Fatalf("Error loading bank registry: %v", err)
	}

	generator := report.NewGenerator(root.Log)
	generator.Log(generator.Summarize(p.Groups(registry), models.CurrencyIQD))

	if err := p.Gate(); err != nil {
		root.Log.Warnf("Batch is not exportable yet: %v", err)
		return
	}
	root.Log.Info("Batch is clean and ready for export")
}

// Ingest reads every --input workbook and merges them into one pipeline.
// Shared by the process and export commands.
func Ingest() *pipeline.Pipeline {
	if len(root.SharedFlags.Inputs) == 0 {
		root.Log.Fatal("No input files provided, use --input")
	}

	sources := make([][][]string, 0, len(root.SharedFlags.Inputs))
	for _, path := range root.SharedFlags.Inputs {
		rows, err := spreadsheet.ReadDataRows(path)
		if err != nil {
			root.Log.Fatalf("Error reading %s: %v", path, err)
		}
		sources = append(sources, rows)
	}

	p := pipeline.New(root.Log)
	if err := p.IngestSources(sources...); err != nil {
		root.Log.Fatalf("Error ingesting records: %v", err)
	}
	return p
}
