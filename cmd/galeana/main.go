package main

import (
	"fmt"
	"os"

	"galeana-pepper/internal/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	// plant timezone must load on hosts without zoneinfo
	_ "time/tzdata"
)

var (
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "galeana",
	Short: "Galeana pepper plant tracking backend",
	Long: `galeana tracks every pepper delivery through the plant: intake, weighing,
unloading, salt processing, tank assignment and shipment.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := utils.LoadConfig(configPath); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config.yaml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
