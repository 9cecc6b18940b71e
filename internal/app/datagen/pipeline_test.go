package datagen

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dragomordor/SimpleTMs/internal/domain"
	"github.com/Dragomordor/SimpleTMs/pkg/ctxutil"
)

func testdataPath(name string) string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "testdata", name)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) Config {
	t.Helper()
	cfg := validConfig()
	cfg.InputPath = testdataPath("moves.csv")
	cfg.OutputDir = t.TempDir()
	cfg.Workers = 4
	return cfg
}

// outputFiles returns every file under root as slash paths relative to root.
func outputFiles(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestPipeline_Run(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	p := NewPipeline(discardLogger(), cfg)
	require.NoError(t, p.Run(context.Background()))

	results := p.Results()
	require.Len(t, results, 4)

	load := results[PhaseLoad]
	assert.Equal(t, 7, load.Read)
	assert.Equal(t, 1, load.Skipped)

	filter := results[PhaseFilter]
	assert.Equal(t, 7, filter.Read)
	assert.Equal(t, 4, filter.Kept)
	assert.Equal(t, 3, filter.Excluded) // signature, max move, hidden power prefix

	assert.Equal(t, 4, results[PhaseProject].Kept)

	// move set + custom + lang + 10 models + 14 tags
	assert.Equal(t, 27, results[PhaseEmit].Written)

	files := outputFiles(t, cfg.OutputDir)
	assert.Len(t, files, 27)

	wantMoveSet := `[
    {
        "moveName": "absorb",
        "moveType": "Grass"
    },
    {
        "moveName": "accelerock",
        "moveType": "Rock"
    },
    {
        "moveName": "flamethrower",
        "moveType": "Fire"
    },
    {
        "moveName": "uturn",
        "moveType": "Bug"
    }
]`
	if diff := cmp.Diff(wantMoveSet, files["simpletms/movelearnitems/default.json"]); diff != "" {
		t.Errorf("move set mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "[]", files["simpletms/movelearnitems/custom.json"])
}

func TestPipeline_Run_AccelerockResources(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	require.NoError(t, NewPipeline(discardLogger(), cfg).Run(context.Background()))
	files := outputFiles(t, cfg.OutputDir)

	assert.Contains(t, files["assets/simpletms/lang/en_us.json"], `"item.simpletms.tm_accelerock": "TM: Accelerock"`)
	assert.Contains(t, files["assets/simpletms/lang/en_us.json"], `"item.simpletms.tr_accelerock": "TR: Accelerock"`)
	assert.Contains(t, files["assets/simpletms/models/item/tm_accelerock.json"], `"layer0": "simpletms:item/tm/rock"`)
	assert.Contains(t, files["assets/simpletms/models/item/tr_accelerock.json"], `"layer0": "simpletms:item/tr/rock"`)

	for _, tag := range []string{"tm_items", "type_rock_tm", "category_physical_tm"} {
		assert.Contains(t, files["data/simpletms/tags/item/"+tag+".json"], `"simpletms:tm_accelerock"`, tag)
	}
	for _, tag := range []string{"tr_items", "type_rock_tr", "category_physical_tr"} {
		assert.Contains(t, files["data/simpletms/tags/item/"+tag+".json"], `"simpletms:tr_accelerock"`, tag)
	}
}

func TestPipeline_Run_ExcludedMovesLeaveNoTrace(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	require.NoError(t, NewPipeline(discardLogger(), cfg).Run(context.Background()))

	for path, content := range outputFiles(t, cfg.OutputDir) {
		for _, id := range []string{"spectralthief", "maxflare", "hiddenpower"} {
			assert.NotContains(t, path, id)
			assert.NotContains(t, content, id, path)
		}
	}
}

func TestPipeline_Run_ExclusionsFile(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.ExclusionsPath = testdataPath("exclusions.yaml")
	p := NewPipeline(discardLogger(), cfg)
	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 4, p.Results()[PhaseFilter].Excluded)

	var ids []string
	for _, r := range p.Bundle().Records {
		ids = append(ids, r.Identifier)
	}
	assert.Equal(t, []string{"absorb", "accelerock", "uturn"}, ids)
}

func TestPipeline_Run_WithoutBuiltinExclusions(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.BuiltinExclusion = false
	cfg.ExcludePrefixes = nil
	p := NewPipeline(discardLogger(), cfg)
	require.NoError(t, p.Run(context.Background()))

	assert.Equal(t, 0, p.Results()[PhaseFilter].Excluded)
	assert.Len(t, p.Bundle().Records, 7)
}

func TestPipeline_Run_DryRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.DryRun = true
	p := NewPipeline(discardLogger(), cfg)
	require.NoError(t, p.Run(context.Background()))

	emit := p.Results()[PhaseEmit]
	assert.Zero(t, emit.Written)
	assert.Equal(t, 27, emit.Skipped)
	assert.Empty(t, outputFiles(t, cfg.OutputDir))
	require.NotNil(t, p.Bundle())
}

func TestPipeline_Run_Idempotent(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	require.NoError(t, NewPipeline(discardLogger(), cfg).Run(context.Background()))
	first := outputFiles(t, cfg.OutputDir)

	require.NoError(t, NewPipeline(discardLogger(), cfg).Run(context.Background()))
	if diff := cmp.Diff(first, outputFiles(t, cfg.OutputDir)); diff != "" {
		t.Errorf("second run changed output (-first +second):\n%s", diff)
	}
}

func TestPipeline_Run_NumberedLabels(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.LabelStyle = "numbered"
	cfg.StaticLang = false
	require.NoError(t, NewPipeline(discardLogger(), cfg).Run(context.Background()))

	lang := outputFiles(t, cfg.OutputDir)["assets/simpletms/lang/en_us.json"]
	assert.True(t, strings.HasPrefix(lang, "{\n    \"item.simpletms.tm_absorb\": \"TM-1: Absorb\""), lang)
	assert.Contains(t, lang, `"item.simpletms.tr_uturn": "TR-4: U-turn"`)
	assert.NotContains(t, lang, "Blank TM")
}

func TestPipeline_Run_Duplicates(t *testing.T) {
	t.Parallel()

	t.Run("fail", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		cfg.InputPath = testdataPath("duplicates.csv")
		p := NewPipeline(discardLogger(), cfg)

		err := p.Run(context.Background())
		require.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
		assert.Contains(t, err.Error(), "phase project")
		assert.NotContains(t, p.Results(), PhaseEmit)
		assert.Empty(t, outputFiles(t, cfg.OutputDir))
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig(t)
		cfg.InputPath = testdataPath("duplicates.csv")
		cfg.DuplicatePolicy = "overwrite"
		p := NewPipeline(discardLogger(), cfg)
		require.NoError(t, p.Run(context.Background()))

		assert.Equal(t, 1, p.Results()[PhaseProject].Skipped)
		files := outputFiles(t, cfg.OutputDir)
		assert.Contains(t, files["assets/simpletms/lang/en_us.json"], `"TM: U Turn"`)
		assert.Contains(t, files["assets/simpletms/models/item/tm_uturn.json"], "simpletms:item/tm/normal")
	})
}

func TestPipeline_Run_MissingInput(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.InputPath = testdataPath("nope.csv")
	p := NewPipeline(discardLogger(), cfg)

	err := p.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phase load")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPipeline_Run_MissingColumn(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.Columns.Type = "Element"
	err := NewPipeline(discardLogger(), cfg).Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingColumn)
}

func TestPipeline_Run_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := testConfig(t)
	p := NewPipeline(discardLogger(), cfg)
	err := p.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, p.Results())
}

func TestPipeline_Run_KeepsRunID(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	log := slog.New(slog.NewTextHandler(&buf, nil))

	id := uuid.New()
	cfg := testConfig(t)
	cfg.DryRun = true
	require.NoError(t, NewPipeline(log, cfg).Run(ctxutil.WithRunID(context.Background(), id)))

	assert.Contains(t, buf.String(), "run_id="+id.String())
	assert.Contains(t, buf.String(), "phase=emit")
}

func TestPipeline_Run_EmitterLogsPhase(t *testing.T) {
	t.Parallel()

	var buf strings.Builder
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	id := uuid.New()
	cfg := testConfig(t)
	require.NoError(t, NewPipeline(log, cfg).Run(ctxutil.WithRunID(context.Background(), id)))

	var written string
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "documents written") {
			written = line
		}
	}
	require.NotEmpty(t, written)
	assert.Contains(t, written, "phase=emit")
	assert.Contains(t, written, "run_id="+id.String())
}
