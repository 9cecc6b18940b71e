// Command datagen generates the SimpleTMs move-learn-item resources from a
// move table: the move set registry, lang file, item models and item tags.
// It is intended to be run before packaging the mod, not at game runtime.
//
// Flags:
//
//	--config   path to generator YAML config file
//	--dry-run  parse and project without writing files
//	--input    move table CSV (overrides input_path)
//	--output   output directory (overrides output_dir)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/Dragomordor/SimpleTMs/internal/app"
	"github.com/Dragomordor/SimpleTMs/internal/config"
	"github.com/Dragomordor/SimpleTMs/pkg/ctxutil"
)

func main() {
	configFlag := flag.String("config", "", "path to generator YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and project without writing files")
	inputFlag := flag.String("input", "", "move table CSV (overrides input_path)")
	outputFlag := flag.String("output", "", "output directory (overrides output_dir)")
	flag.Parse()

	// Log and run settings come from the same file as the generator settings.
	appCfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), appCfg.Run.Timeout)
	defer cancel()
	ctx = ctxutil.WithRunID(ctx, uuid.New())

	_, err = app.Run(ctx, logger, app.RunOptions{
		ConfigPath: *configFlag,
		InputPath:  *inputFlag,
		OutputDir:  *outputFlag,
		DryRun:     *dryRunFlag,
	})
	if err != nil {
		logger.Error("generation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("generation completed successfully")
}
