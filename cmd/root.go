// Package cmd provides the root command and CLI setup for v8tojsni.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/v8tojsni/internal/adapter"
	"github.com/mouse-blink/v8tojsni/internal/config"
	"github.com/mouse-blink/v8tojsni/internal/controller"
	"github.com/mouse-blink/v8tojsni/internal/domain"
	m "github.com/mouse-blink/v8tojsni/internal/model"
)

var logger *zap.Logger
var workflow domain.Workflow

// wire builds the workflow once flags are parsed. Tests replace it.
var wire = wireWorkflow

func wireWorkflow(cmd *cobra.Command, cfg config.Config, log *zap.Logger) domain.Workflow {
	fsAdapter := adapter.NewLocalSourceFSAdapter()
	orchestrator := domain.NewOrchestrator(fsAdapter, adapter.NewLocalBackupStore(fsAdapter), cfg, log)
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		fsAdapter,
		adapter.NewReportStore(),
		ui,
		orchestrator,
		domain.NewVerifier(fsAdapter, orchestrator),
		log,
	)
}

var configFlag string
var noObjectWrapFlag bool
var verboseFlag bool
var noBackupFlag bool
var backupSuffixFlag string
var dryRunFlag bool
var reportFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "v8tojsni <file>",
		Short: "Migrate a V8/node addon source file to JSNI",
		Long: `v8tojsni rewrites a C++ source file written against the V8 and node addon
APIs so that it targets JSNI instead. The file is rewritten in place by a fixed
sequence of textual stages; a backup of the original is kept next to it.

Examples:
  v8tojsni src/addon.cc
  v8tojsni --dry-run --no-backup src/addon.cc
  v8tojsni --report migration.yaml src/addon.cc`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(verboseFlag)
			if err != nil {
				return err
			}

			logger = log

			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}

			workflow = wire(cmd, cfg, logger)

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				printUsage(cmd)
				return nil
			}

			return workflow.Migrate(domain.MigrateArgs{
				Path:   m.Path(args[0]),
				DryRun: dryRunFlag,
				Report: m.Path(reportFlag),
			})
		},
	}

	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVar(&noObjectWrapFlag, "no-object-wrap", false, "do not inject the jsniObjectWrap adapter class")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every stage at debug level")

	cmd.Flags().BoolVar(&noBackupFlag, "no-backup", false, "do not keep a copy of the original file")
	cmd.Flags().StringVar(&backupSuffixFlag, "backup-suffix", config.DefaultBackupSuffix, "suffix appended to the backup copy")
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "print the migrated text instead of writing it")
	cmd.Flags().StringVarP(&reportFlag, "report", "r", "", "write a YAML migration report to this file")

	return cmd
}

func printUsage(cmd *cobra.Command) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "# Usage:")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "# v8tojsni $file")
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return log, nil
}

// buildConfig loads --config and applies the single-field overrides on top.
func buildConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return config.Config{}, err
	}

	if noObjectWrapFlag {
		cfg = cfg.WithInjectObjectWrap(false)
	}

	if noBackupFlag {
		cfg = cfg.WithBackup(false, cfg.BackupSuffix)
	}

	if cmd.Flags().Changed("backup-suffix") {
		cfg = cfg.WithBackup(cfg.BackupOriginal, backupSuffixFlag)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
