package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gardar/porename/pkg/ocr"
	"github.com/gardar/porename/pkg/porename"
)

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Date, split and rename every PDF of the working directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(opts)
			if err != nil {
				return err
			}
			return runPipeline(cmd.Context(), cfg, cmd)
		},
	}
}

// resolveConfig loads the configuration and applies the --dir override
func resolveConfig(opts *options) (config, error) {
	exeDir, err := executableDir()
	if err != nil {
		return config{}, err
	}
	cfg, err := loadConfig(opts.configPath, exeDir)
	if err != nil {
		return config{}, err
	}
	if opts.dir != "" {
		cfg.WorkDir = opts.dir
	}
	return cfg, nil
}

// runPipeline processes cfg.WorkDir. Per-file failures are printed and do not
// make the command fail.
func runPipeline(ctx context.Context, cfg config, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), cfg).With("run_id", uuid.NewString())

	if err := os.MkdirAll(cfg.WorkDir, 0o755); err != nil {
		return fmt.Errorf("create working directory: %w", err)
	}

	engine, closeEngine, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeEngine()

	pipeline, err := porename.New(porename.Config{
		Dir:        cfg.WorkDir,
		Pattern:    cfg.Pattern,
		Rasterizer: ocr.Pdftoppm{Command: cfg.Pdftoppm},
		Engine:     engine,
		Reporter:   newConsoleReporter(cmd.OutOrStdout()),
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	logger.Info("run started", "dir", cfg.WorkDir, "engine", cfg.Engine)
	summary, err := pipeline.Run(ctx)
	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
	return err
}

func newEngine(ctx context.Context, cfg config) (ocr.Engine, func(), error) {
	if cfg.Engine == engineDocumentAI {
		client, err := ocr.NewDocumentAI(ctx, cfg.DocumentAI)
		if err != nil {
			return nil, nil, err
		}
		return client, func() { client.Close() }, nil
	}
	return ocr.Tesseract{Command: cfg.Tesseract, Language: ocr.Language}, func() {}, nil
}
