// Package root contains the root command for the application
package root

import (
	"swift-batch/internal/bankregistry"
	"swift-batch/internal/config"
	"swift-batch/internal/logging"

	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by the processing commands.
type CommonFlags struct {
	Inputs       []string
	OutputDir    string
	RegistryFile string
}

var (
	// Log is the shared logger instance for commands
	Log = logging.GetLogger()

	// Cfg holds the resolved application configuration after PersistentPreRun.
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "swift-batch",
		Short: "Validate spreadsheet payment batches and export them per destination bank.",
		Long: `swift-batch ingests bank-transfer records from spreadsheet files, validates
them against payment-network formatting rules, flags fuzzy-duplicate
transactions, and partitions clean batches into one export file per
destination bank.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to swift-batch!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Error loading configuration: %v", err)
			}
			Cfg = cfg
			logging.Configure(Log, cfg.Log.Level, cfg.Log.Format)
		},
	}

	// SharedFlags are the common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringSliceVarP(&SharedFlags.Inputs, "input", "i", nil, "Source spreadsheet file (repeatable)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.OutputDir, "output", "o", "", "Export directory (overrides config)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.RegistryFile, "registry", "r", "", "Bank registry YAML file (overrides built-in registry)")
}

// LoadRegistry resolves the bank registry: the --registry flag wins, then the
// configured registry file, then the built-in default.
func LoadRegistry() (*bankregistry.Registry, error) {
	path := SharedFlags.RegistryFile
	if path == "" && Cfg != nil {
		path = Cfg.Registry.File
	}
	if path == "" {
		return bankregistry.Default(), nil
	}
	Log.WithField(logging.FieldFile, path).Debug("Loading bank registry")
	return bankregistry.Load(path)
}

// ExportDir resolves the export directory: the --output flag wins over config.
func ExportDir() string {
	if SharedFlags.OutputDir != "" {
		return SharedFlags.OutputDir
	}
	if Cfg != nil {
		return Cfg.Export.Directory
	}
	return "."
}
