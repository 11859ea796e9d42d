// Package cli wires the labelscan commands: scan photos, add codes by
// hand, confirm staged additions, and export the inventory.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcastrillon/labelscan/internal/config"
	"github.com/mcastrillon/labelscan/internal/inventory"
	"github.com/mcastrillon/labelscan/internal/ocr"
	"github.com/mcastrillon/labelscan/internal/pipeline"
	"github.com/mcastrillon/labelscan/internal/reconcile"
	"github.com/mcastrillon/labelscan/internal/store"
)

var (
	cfgFile   string
	storePath string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "labelscan",
	Short: "Scan printed inventory labels and reconcile their codes against the inventory workbook",
	Long: `labelscan reads a photographed inventory label, extracts the asset code
(letter B followed by 6 to 8 digits) via OCR, and reconciles it against
the inventory workbook: codes already on file are highlighted as found,
new codes are appended after confirmation.

Example usage:
  labelscan scan shelf-04.jpg              # scan one photo
  labelscan scan --yes photos/*.jpg        # batch scan, auto-confirm new codes
  labelscan add B1234567                   # manual entry
  labelscan export csv --out inventario.csv`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "labelscan.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "inventory workbook (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// loadConfig resolves the effective configuration from file and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags().Changed("config"))
	if err != nil {
		return cfg, err
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newLogger builds the process logger writing to stderr, keeping stdout
// for command output.
func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// session is one open reconciliation session over the workbook.
type session struct {
	cfg      config.Config
	logger   *slog.Logger
	workbook *store.Workbook
	dataset  *inventory.Dataset
	pipe     *pipeline.Pipeline
}

// openSession loads config, workbook, and dataset, and assembles the
// pipeline. The engine may be nil for commands that never scan.
func openSession(cmd *cobra.Command, engine ocr.Engine, opts pipeline.Options) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	wb, err := store.Open(cfg.StorePath, cfg.BackupPath, logger)
	if err != nil {
		if errors.Is(err, store.ErrStoreMissing) {
			return nil, fmt.Errorf("%w (supply an initial workbook or point --store at one)", err)
		}
		return nil, err
	}

	dataset, err := wb.Dataset()
	if err != nil {
		wb.Close()
		return nil, err
	}

	if opts.Contrast == 0 {
		opts.Contrast = cfg.Contrast
	}
	if opts.MinOCRWidth == 0 {
		opts.MinOCRWidth = cfg.MinOCRWidth
	}
	if opts.Exclusions == nil && len(cfg.Exclusions) > 0 {
		opts.Exclusions = cfg.Exclusions
	}

	rec := reconcile.New(dataset, wb, logger)
	return &session{
		cfg:      cfg,
		logger:   logger,
		workbook: wb,
		dataset:  dataset,
		pipe:     pipeline.New(opts, engine, dataset, rec, logger),
	}, nil
}

func (s *session) close() {
	if err := s.workbook.Close(); err != nil {
		s.logger.Warn("failed to close workbook", "error", err)
	}
}
