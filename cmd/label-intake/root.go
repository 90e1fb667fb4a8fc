package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/label-intake/internal/common"
	"github.com/joseph-ayodele/label-intake/internal/export"
	"github.com/joseph-ayodele/label-intake/internal/extract"
	"github.com/joseph-ayodele/label-intake/internal/pipeline"
	"github.com/joseph-ayodele/label-intake/internal/vision"
	"github.com/joseph-ayodele/label-intake/version"
)

// app is the state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	cfgFile      string
	outputFormat string
	logLevel     string

	cfg    *common.Config
	format export.Format
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "label-intake",
		Short: "Validate and normalize shipping-label extractions for package check-in",
		Long: `label-intake takes the raw fields a vision model read off a shipping label
and turns them into a trustworthy check-in record.

For every label it:
  - identifies the carrier from the tracking number, then the label text
  - validates and normalizes the tracking number
  - cleans the recipient name and flags businesses
  - detects the delivery program (PMB customer, UPS Access Point, Amazon Hub...)
  - scores overall confidence and flags records that need a human review`,
		Version:       version.GitRelease,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().StringVar(
		&a.cfgFile, "config", "", "config file (default: ./label-intake.yaml or ~/.label-intake/label-intake.yaml)",
	)
	root.PersistentFlags().StringVarP(
		&a.outputFormat, "output", "o", "", "output format: yaml or json (default from config)",
	)
	root.PersistentFlags().StringVar(
		&a.logLevel, "log-level", "", "log level: debug, info, warn or error (default from config)",
	)

	root.AddCommand(
		newProcessCmd(a),
		newReportCmd(a),
		newExportCmd(a),
		newWatchCmd(a),
		newPromptCmd(),
		newVersionCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := common.LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.outputFormat != "" {
		cfg.Output.Format = a.outputFormat
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	if format == export.FormatXLSX {
		return common.NewAppError("BAD_FORMAT", "xlsx output is written by the export command", common.ErrInvalidInput)
	}

	a.cfg = cfg
	a.format = format
	a.logger = common.NewLogger(cfg.Log, cmd.ErrOrStderr())
	slog.SetDefault(a.logger)
	return nil
}

func (a *app) runner() *pipeline.Runner {
	decoder := vision.NewDecoder(
		vision.WithDecodeLogger(a.logger),
		vision.WithSchemaValidation(a.cfg.Vision.ValidateSchema),
	)
	proc := extract.NewProcessor(
		extract.WithLogger(a.logger),
		extract.WithWorkers(a.cfg.Batch.Workers),
		extract.WithTextTrackingFallback(a.cfg.Extract.TextTrackingFallback),
	)
	return pipeline.NewRunner(a.logger, decoder, proc, a.cfg.Review.MinConfidence)
}
