// Package banks handles registry inspection commands.
package banks

import (
	"strings"

	"swift-batch/cmd/root"
	"swift-batch/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the banks command
var Cmd = &cobra.Command{
	Use:   "banks [BIC]",
	Short: "List the bank registry, or resolve a receiver BIC to its bank",
	Args:  cobra.MaximumNArgs(1),
	Run:   banksFunc,
}

func banksFunc(cmd *cobra.Command, args []string) {
	registry, err := root.LoadRegistry()
	if err != nil {
		root.Log.Fatalf("Error loading bank registry: %v", err)
	}

	if len(args) == 1 {
		bic := args[0]
		root.Log.WithFields(map[string]interface{}{
			logging.FieldBIC:  bic,
			logging.FieldBank: registry.Resolve(bic),
		}).Info("Resolved receiver BIC")
		return
	}

	for _, entry := range registry.Entries() {
		root.Log.WithFields(map[string]interface{}{
			logging.FieldBank: entry.Name,
			logging.FieldBIC:  strings.Join(entry.BICs, ", "),
		}).Info("Registered bank")
	}
}
