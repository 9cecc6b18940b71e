package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dragomordor/SimpleTMs/internal/app/datagen"
)

// RunOptions carries command-line overrides for a generation run. Empty
// values leave the loaded configuration untouched.
type RunOptions struct {
	ConfigPath string
	InputPath  string
	OutputDir  string
	DryRun     bool
}

// Run loads the generator configuration, applies overrides, validates it
// and runs the pipeline once.
func Run(ctx context.Context, logger *slog.Logger, opts RunOptions) (map[string]datagen.PhaseResult, error) {
	cfg, err := datagen.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.InputPath != "" {
		cfg.InputPath = opts.InputPath
	}
	if opts.OutputDir != "" {
		cfg.OutputDir = opts.OutputDir
	}
	if opts.DryRun {
		cfg.DryRun = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("datagen config: %w", err)
	}

	logger.Info("starting generator",
		slog.String("version", BuildVersion()),
		slog.String("namespace", cfg.Namespace),
		slog.String("input", cfg.InputPath),
		slog.String("output", cfg.OutputDir),
		slog.Bool("dry_run", cfg.DryRun),
	)

	pipeline := datagen.NewPipeline(logger, *cfg)
	if err := pipeline.Run(ctx); err != nil {
		return pipeline.Results(), err
	}
	return pipeline.Results(), nil
}
