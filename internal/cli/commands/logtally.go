package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logtally/internal/logging"
	"github.com/ccollicutt/logtally/pkg/analyzer"
	"github.com/ccollicutt/logtally/pkg/config"
	"github.com/ccollicutt/logtally/pkg/export"
	"github.com/ccollicutt/logtally/pkg/output"
	"github.com/ccollicutt/logtally/pkg/parser"
	"github.com/ccollicutt/logtally/pkg/webhook"
)

// LogtallyOptions holds command-line options for logtally.
type LogtallyOptions struct {
	ConfigPath string
	Output     string
	NoColor    bool
	Verbose    bool

	ExportPath   string
	ExportFormat string

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewLogtallyCommand creates the logtally root command.
func NewLogtallyCommand() *cobra.Command {
	opts := &LogtallyOptions{}

	cmd := &cobra.Command{
		Use:   "logtally <log_file_path> [<level>]",
		Short: "Count log records by level",
		Long: `Count the records of a log file by level and optionally list the
records of one level.

Each line is expected to look like:
  <date> <time> <LEVEL> <message...>
Lines with fewer than three fields are skipped. Files ending in .gz or .zst
are decompressed transparently.

Exit codes:
  0 - Report printed (including an empty log)
  1 - Usage, read, configuration or export error`,
		Args:          logtallyArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogtally(cmd, args, opts)
		},
	}
	withVersion(cmd)

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", config.DefaultOutput, "Output format (text|json)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log skipped lines and progress to stderr")

	cmd.Flags().StringVar(&opts.ExportPath, "export", "", "Write the selected records to this file")
	cmd.Flags().StringVar(&opts.ExportFormat, "export-format", "", "Export format (jsonl|csv|parquet), inferred from the file extension if omitted")

	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", string(config.WebhookTriggerAlways), "When to fire webhook (always|on_match|never)")

	return cmd
}

func logtallyArgs(_ *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return usageError("Error: no log file specified.")
	case len(args) > 2:
		return usageError("Error: too many arguments.")
	}
	return nil
}

func runLogtally(cmd *cobra.Command, args []string, opts *LogtallyOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	path := args[0]
	var level string
	if len(args) == 2 {
		level = args[1]
	}

	cfg, err := config.Load(ctx, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)

	coll, err := parser.Load(ctx, path, parser.WithSkipHook(func(lineNum int, line string) {
		logger.Debug("skipped line", "line", lineNum, "text", line)
	}))
	if err != nil {
		logger.Debug("load failed", "path", path, "error", err)
		return loadFailure(path, err)
	}
	logger.Debug("loaded log",
		"path", path,
		"lines", coll.Lines(),
		"records", coll.Len(),
		"skipped", coll.Skipped(),
	)

	var analyzerOpts []analyzer.AnalyzerOption
	if level != "" {
		analyzerOpts = append(analyzerOpts, analyzer.WithLevelFilter(level))
	}
	result, err := analyzer.NewAnalyzer(analyzerOpts...).Analyze(ctx, coll)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	report := output.NewReport(result)

	formatter, err := output.NewFormatter(cfg.Output, output.FormatOptions{Color: !cfg.NoColor})
	if err != nil {
		return err
	}
	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if report.Empty() {
		return nil
	}

	if cfg.Export.Enabled() {
		if err := exportRecords(cfg.Export, coll, result, logger); err != nil {
			return err
		}
	}

	sendWebhooks(ctx, cfg.Webhooks, report, cmd.ErrOrStderr())
	return nil
}

// applyFlags overrides cfg with the flags the user set explicitly and
// re-validates it.
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *LogtallyOptions) error {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.NoColor
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	if flags.Changed("export") {
		cfg.Export.Path = opts.ExportPath
		cfg.Export.Format = ""
	}
	if flags.Changed("export-format") {
		cfg.Export.Format = opts.ExportFormat
	}

	if opts.WebhookURL != "" {
		cfg.Webhooks = append(cfg.Webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: config.WebhookTrigger(opts.WebhookTrigger),
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// exportRecords writes the filtered records when a known level was
// requested, otherwise every record.
func exportRecords(ex config.ExportConfig, coll *parser.Collection, result *analyzer.AnalysisResult, logger *slog.Logger) error {
	records := coll.Records()
	if result.Filter != nil && result.Filter.Known {
		records = result.Filter.Records
	}

	n, err := export.Export(records, ex.Path, export.Format(ex.Format))
	if err != nil {
		return fmt.Errorf("exporting records: %w", err)
	}
	logger.Info("exported records", "path", ex.Path, "format", ex.Format, "records", n)
	return nil
}

// sendWebhooks posts the report to every configured webhook. Failures are
// reported on w and never fail the run.
func sendWebhooks(ctx context.Context, hooks []config.WebhookConfig, report *output.Report, w io.Writer) {
	if len(hooks) == 0 {
		return
	}

	for _, d := range webhook.NewClient().Deliver(ctx, hooks, report) {
		if d.Response.Success() {
			_, _ = fmt.Fprintf(w, "Webhook %s: sent (%d, %s)\n", d.Name, d.Response.StatusCode, d.Response.Duration)
		} else {
			_, _ = fmt.Fprintf(w, "Webhook %s: failed (%v)\n", d.Name, d.Response.Error)
		}
	}
}
