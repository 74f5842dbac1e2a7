package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/crimson-sun/anchorlog/internal/config"
	"github.com/crimson-sun/anchorlog/internal/decoder"
	"github.com/crimson-sun/anchorlog/internal/engine"
	"github.com/crimson-sun/anchorlog/internal/filter"
	"github.com/crimson-sun/anchorlog/internal/logging"
	"github.com/crimson-sun/anchorlog/internal/output"
	"github.com/crimson-sun/anchorlog/internal/output/async"
	fileout "github.com/crimson-sun/anchorlog/internal/output/file"
	"github.com/crimson-sun/anchorlog/internal/output/multi"
	"github.com/crimson-sun/anchorlog/internal/output/stdout"
	"github.com/crimson-sun/anchorlog/internal/output/webhook"
	"github.com/crimson-sun/anchorlog/internal/pipeline"
	"github.com/crimson-sun/anchorlog/internal/source"

	// Register source implementations.
	_ "github.com/crimson-sun/anchorlog/internal/source/file"
	_ "github.com/crimson-sun/anchorlog/internal/source/stdin"
	_ "github.com/crimson-sun/anchorlog/internal/source/txjson"
)

type scanFlags struct {
	program    string
	sourceKind string
	path       string
	filterExpr string
	outFormat  string
	outPath    string
	webhookURL string
	verbosity  string
	pretty     bool
	strict     bool
	logLevel   string
}

func newScanCmd() *cobra.Command {
	var flags scanFlags
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a log source and emit the target program's decoded events",
		Long: `Scan reads an ordered Solana transaction log (file, stdin, or a
getTransaction JSON document), reconstructs the invocation stack, and
emits the target program's events as NDJSON. Without a schema the events
are emitted raw, named by their discriminator.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), flags)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&flags.program, "program", "", "target program id, base58 (env: ANCHORLOG_PROGRAM)")
	fl.StringVar(&flags.sourceKind, "source", "", "log source kind: file, stdin, txjson")
	fl.StringVar(&flags.path, "path", "", "input path for file/txjson sources")
	fl.StringVar(&flags.filterExpr, "filter", "", "event filter expression over {name, program, data}")
	fl.StringVar(&flags.outFormat, "output", "", "output: stdout, file, webhook")
	fl.StringVar(&flags.outPath, "output-path", "", "output file path when --output=file")
	fl.StringVar(&flags.webhookURL, "webhook-url", "", "webhook endpoint; combined with the primary output when set")
	fl.StringVar(&flags.verbosity, "verbosity", "", "event verbosity: minimal, standard, full")
	fl.BoolVar(&flags.pretty, "pretty", false, "pretty-print stdout JSON")
	fl.BoolVar(&flags.strict, "strict", false, "treat malformed mid-stream lines as fatal")
	fl.StringVar(&flags.logLevel, "log-level", "", "diagnostic log level: debug, info, warn, error")
	return cmd
}

func runScan(ctx context.Context, flags scanFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(&cfg, flags)

	logging.Init(cfg.Output.Format == "stdout", logging.ParseLevel(cfg.LogLevel))

	if cfg.Program == "" {
		return fmt.Errorf("a target program id is required (--program or ANCHORLOG_PROGRAM)")
	}
	if err := config.ValidateProgram(cfg.Program); err != nil {
		return err
	}

	ctor, err := source.Get(cfg.Source.Kind)
	if err != nil {
		return err
	}
	src, err := ctor(source.Config{Kind: cfg.Source.Kind, Path: cfg.Source.Path})
	if err != nil {
		return err
	}

	f, err := filter.New(cfg.Filter)
	if err != nil {
		return err
	}

	out, err := buildOutput(cfg.Output)
	if err != nil {
		return err
	}

	var engineOpts []engine.Option
	if cfg.Strict {
		engineOpts = append(engineOpts, engine.WithStrict())
	}
	parser := engine.New(cfg.Program, decoder.Raw(), engineOpts...)

	p := pipeline.New(src, parser, f, out)
	defer p.Close()

	stats, err := p.Run(ctx)
	if err != nil {
		return err
	}
	slog.Info("scan complete",
		"lines", stats.Lines, "events", stats.Events, "filtered", stats.Filtered)
	return nil
}

// applyFlags overlays non-empty flag values onto the env-derived config.
func applyFlags(cfg *config.Config, flags scanFlags) {
	if flags.program != "" {
		cfg.Program = flags.program
	}
	if flags.sourceKind != "" {
		cfg.Source.Kind = flags.sourceKind
	}
	if flags.path != "" {
		cfg.Source.Path = flags.path
	}
	if flags.filterExpr != "" {
		cfg.Filter = flags.filterExpr
	}
	if flags.outFormat != "" {
		cfg.Output.Format = flags.outFormat
	}
	if flags.outPath != "" {
		cfg.Output.Path = flags.outPath
	}
	if flags.webhookURL != "" {
		cfg.Output.WebhookURL = flags.webhookURL
	}
	if flags.verbosity != "" {
		cfg.Output.Verbosity = flags.verbosity
	}
	if flags.pretty {
		cfg.Output.Pretty = true
	}
	if flags.strict {
		cfg.Strict = true
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}
}

// buildOutput constructs the primary sink, fanning out to an async
// webhook when a URL is configured alongside it.
func buildOutput(cfg config.OutputConfig) (output.Output, error) {
	verbosity := output.ParseVerbosity(cfg.Verbosity)

	var primary output.Output
	switch cfg.Format {
	case "stdout":
		primary = stdout.New(verbosity, cfg.Pretty)
	case "file":
		if cfg.Path == "" {
			return nil, fmt.Errorf("file output requires --output-path")
		}
		out, err := fileout.New(cfg.Path, verbosity)
		if err != nil {
			return nil, err
		}
		primary = out
	case "webhook":
		if cfg.WebhookURL == "" {
			return nil, fmt.Errorf("webhook output requires --webhook-url")
		}
		return webhook.New(cfg.WebhookURL, verbosity), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s", cfg.Format)
	}

	if cfg.WebhookURL != "" {
		hook := async.New(webhook.New(cfg.WebhookURL, verbosity), async.WithDropOnFull())
		return multi.New(primary, hook), nil
	}
	return primary, nil
}
