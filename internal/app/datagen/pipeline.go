// Package datagen generates the mod's move-learn-item resources from a move
// table: load, filter, project, emit.
package datagen

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Dragomordor/SimpleTMs/internal/app/datagen/emitter"
	"github.com/Dragomordor/SimpleTMs/internal/app/datagen/exclusion"
	"github.com/Dragomordor/SimpleTMs/internal/app/datagen/movecsv"
	"github.com/Dragomordor/SimpleTMs/internal/app/datagen/resource"
	"github.com/Dragomordor/SimpleTMs/internal/domain"
	"github.com/Dragomordor/SimpleTMs/pkg/ctxutil"
)

// Phase names in execution order.
const (
	PhaseLoad    = "load"
	PhaseFilter  = "filter"
	PhaseProject = "project"
	PhaseEmit    = "emit"
)

var allPhases = []string{PhaseLoad, PhaseFilter, PhaseProject, PhaseEmit}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Read     int
	Kept     int
	Excluded int
	Skipped  int
	Written  int
	Duration time.Duration
	Err      error
}

// Pipeline runs the generation phases over one move table.
type Pipeline struct {
	log     *slog.Logger
	cfg     Config
	results map[string]PhaseResult

	records []domain.MoveRecord
	bundle  *resource.Bundle
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Bundle returns the projected documents, nil before the project phase ran.
func (p *Pipeline) Bundle() *resource.Bundle {
	return p.bundle
}

// Run executes every phase in order and stops at the first failure. A run ID
// is taken from ctx or generated, and attached to every log line.
func (p *Pipeline) Run(ctx context.Context) error {
	runID, ok := ctxutil.RunIDFromCtx(ctx)
	if !ok {
		runID = uuid.New()
		ctx = ctxutil.WithRunID(ctx, runID)
	}
	log := p.log.With(slog.String("run_id", runID.String()))

	for _, phase := range allPhases {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("phase %s: %w", phase, err)
		}

		start := time.Now()
		log.Info("starting phase", slog.String("phase", phase))
		phaseCtx := ctxutil.WithPhase(ctx, phase)

		var result PhaseResult
		switch phase {
		case PhaseLoad:
			result = p.runLoad(log)
		case PhaseFilter:
			result = p.runFilter(log)
		case PhaseProject:
			result = p.runProject(log)
		case PhaseEmit:
			result = p.runEmit(phaseCtx, log)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
			return fmt.Errorf("phase %s: %w", phase, result.Err)
		}

		log.Info("phase completed",
			slog.String("phase", phase),
			slog.Int("read", result.Read),
			slog.Int("kept", result.Kept),
			slog.Int("excluded", result.Excluded),
			slog.Int("skipped", result.Skipped),
			slog.Int("written", result.Written),
			slog.Duration("duration", result.Duration),
		)
	}

	log.Info("pipeline completed",
		slog.Int("moves", len(p.records)),
		slog.Bool("dry_run", p.cfg.DryRun),
	)
	return nil
}

// runLoad parses the move table.
func (p *Pipeline) runLoad(log *slog.Logger) PhaseResult {
	parsed, err := movecsv.Parse(p.cfg.InputPath, p.cfg.columns())
	if err != nil {
		return PhaseResult{Err: err}
	}
	for _, col := range parsed.Stats.MissingOptional {
		log.Warn("optional column not in header, ignoring", slog.String("column", col))
	}
	p.records = parsed.Records

	return PhaseResult{
		Read:    len(parsed.Records),
		Kept:    len(parsed.Records),
		Skipped: parsed.Stats.SkippedRows,
	}
}

// runFilter removes excluded moves and reports stale exclusion entries.
func (p *Pipeline) runFilter(log *slog.Logger) PhaseResult {
	set, err := p.exclusionSet()
	if err != nil {
		return PhaseResult{Err: err}
	}

	kept, excluded := set.Filter(p.records)
	for _, ex := range excluded {
		log.Debug("move excluded",
			slog.String("move", ex.Record.DisplayName),
			slog.String("reason", ex.Reason),
		)
	}

	for _, miss := range set.Unmatched(p.records) {
		if miss.Suggestion == "" {
			log.Debug("exclusion matched no move",
				slog.String("list", miss.List),
				slog.String("entry", miss.Entry),
			)
			continue
		}
		log.Warn("exclusion matched no move",
			slog.String("list", miss.List),
			slog.String("entry", miss.Entry),
			slog.String("did_you_mean", miss.Suggestion),
			slog.Float64("score", miss.Score),
		)
	}

	read := len(p.records)
	p.records = kept
	return PhaseResult{Read: read, Kept: len(kept), Excluded: len(excluded)}
}

func (p *Pipeline) exclusionSet() (*exclusion.Set, error) {
	set := exclusion.New()
	if p.cfg.BuiltinExclusion {
		set.Merge(exclusion.Builtin())
	}
	if p.cfg.ExclusionsPath != "" {
		f, err := exclusion.LoadFile(p.cfg.ExclusionsPath)
		if err != nil {
			return nil, err
		}
		set.Merge(f.Set())
	}
	set.AddPrefixes(p.cfg.ExcludePrefixes...)
	return set, nil
}

// runProject builds every output document in memory.
func (p *Pipeline) runProject(log *slog.Logger) PhaseResult {
	bundle, err := resource.Build(p.records, p.cfg.buildOptions())
	if err != nil {
		return PhaseResult{Err: err}
	}
	for _, c := range bundle.Collisions {
		log.Warn("duplicate identifier, last row wins",
			slog.String("identifier", c.Identifier),
			slog.String("first", c.First.DisplayName),
			slog.Int("first_line", c.First.Line),
			slog.String("second", c.Second.DisplayName),
			slog.Int("second_line", c.Second.Line),
		)
	}
	p.bundle = bundle

	return PhaseResult{
		Read:    len(p.records),
		Kept:    len(bundle.Records),
		Skipped: len(bundle.Collisions),
	}
}

// runEmit writes the documents, or only counts them on a dry run.
func (p *Pipeline) runEmit(ctx context.Context, log *slog.Logger) PhaseResult {
	docs := p.bundle.Documents()
	if p.cfg.DryRun {
		log.Info("dry run, nothing written", slog.Int("documents", len(docs)))
		return PhaseResult{Read: len(docs), Skipped: len(docs)}
	}

	e := emitter.New(p.log, p.cfg.OutputDir, p.cfg.Workers)
	n, err := e.Write(ctx, docs)
	if err != nil {
		return PhaseResult{Read: len(docs), Written: n, Err: err}
	}
	return PhaseResult{Read: len(docs), Written: n}
}
