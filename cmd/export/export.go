// Package export handles the per-bank export command.
package export

import (
	"swift-batch/cmd/process"
	"swift-batch/cmd/root"
	"swift-batch/internal/models"
	"swift-batch/internal/report"
	"swift-batch/internal/spreadsheet"

	"github.com/spf13/cobra"
)

var (
	removeDuplicates bool
	trimNames        bool

	// Cmd represents the export command
	Cmd = &cobra.Command{
		Use:   "export",
		Short: "Group validated records by destination bank and write one file per bank",
		Long: `Export re-runs validation and duplicate detection over the merged input,
refuses to proceed while any validation error or duplicate remains, then
partitions the batch by destination bank and writes one artifact per group.`,
		Run: exportFunc,
	}
)

func init() {
	Cmd.Flags().BoolVar(&removeDuplicates, "remove-duplicates", false, "Drop flagged duplicates instead of refusing to export")
	Cmd.Flags().BoolVar(&trimNames, "trim-names", false, "Normalize and cap beneficiary names at the network limit")
}

func exportFunc(cmd *cobra.Command, args []string) {
	p := process.Ingest()

	if trimNames {
		p.TrimNames()
	}
	p.CheckDuplicates()
	if removeDuplicates {
		p.RemoveDuplicates()
	}

	// The gate is the workflow precondition, not the exporter's job: nothing
	// with an outstanding error or duplicate flag may reach a bank file.
	if err := p.Gate(); err != nil {
		for _, line := range p.ValidationErrors() {
			root.Log.Warn(line)
		}
		for _, line := range p.DuplicateDetails() {
			root.Log.Warn(line)
		}
		root.Log.Fatalf("Export rejected: %v", err)
	}

	registry, err := root.LoadRegistry()
	if err != nil {
		root.Log.Fatalf("Error loading bank registry: %v", err)
	}
	groups := p.Groups(registry)

	writer := spreadsheet.NewWriter(
		root.ExportDir(),
		root.Cfg.Export.Format,
		root.Cfg.Export.FilenamePrefix,
		[]rune(root.Cfg.Export.CSVDelimiter)[0],
	)
	paths, err := writer.WriteAll(groups)
	if err != nil {
		root.Log.Fatalf("Error writing exports: %v", err)
	}
	for _, path := range paths {
		root.Log.Infof("Wrote %s", path)
	}

	generator := report.NewGenerator(root.Log)
	generator.Log(generator.Summarize(groups, models.CurrencyIQD))
	root.Log.Info("Export completed successfully!")
}
