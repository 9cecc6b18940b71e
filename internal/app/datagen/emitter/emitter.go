// Package emitter writes generated documents to disk as indented JSON.
package emitter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Dragomordor/SimpleTMs/internal/app/datagen/resource"
	"github.com/Dragomordor/SimpleTMs/pkg/ctxutil"
)

const (
	defaultWorkers = 8
	indent         = "    "
	filePerm       = 0o644
	dirPerm        = 0o755
)

// Emitter writes documents under a root directory.
type Emitter struct {
	root    string
	log     *slog.Logger
	workers int
}

// New creates an Emitter rooted at root. Workers <= 0 falls back to 8.
func New(log *slog.Logger, root string, workers int) *Emitter {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Emitter{root: root, log: log, workers: workers}
}

// Write creates every parent directory, then writes docs concurrently,
// overwriting existing files. It returns the number of files written; the
// first failure cancels the remaining writes.
func (e *Emitter) Write(ctx context.Context, docs []resource.Document) (int, error) {
	if err := e.makeDirs(docs); err != nil {
		return 0, err
	}

	written := make([]bool, len(docs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := e.writeOne(doc); err != nil {
				return err
			}
			written[i] = true
			return nil
		})
	}

	err := g.Wait()

	n := 0
	for _, ok := range written {
		if ok {
			n++
		}
	}
	if err != nil {
		return n, fmt.Errorf("emit: %w", err)
	}

	attrs := []any{slog.String("root", e.root), slog.Int("files", n)}
	if id, ok := ctxutil.RunIDFromCtx(ctx); ok {
		attrs = append(attrs, slog.String("run_id", id.String()))
	}
	if phase := ctxutil.PhaseFromCtx(ctx); phase != "" {
		attrs = append(attrs, slog.String("phase", phase))
	}
	e.log.DebugContext(ctx, "documents written", attrs...)
	return n, nil
}

// Path returns the filesystem path of a document's relative slash path.
func (e *Emitter) Path(rel string) string {
	return filepath.Join(e.root, filepath.FromSlash(rel))
}

func (e *Emitter) makeDirs(docs []resource.Document) error {
	seen := make(map[string]struct{})
	for _, d := range docs {
		seen[path.Dir(d.Path)] = struct{}{}
	}
	dirs := make([]string, 0, len(seen))
	for d := range seen {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	for _, d := range dirs {
		if err := os.MkdirAll(e.Path(d), dirPerm); err != nil {
			return fmt.Errorf("emit: create dir %s: %w", d, err)
		}
	}
	return nil
}

func (e *Emitter) writeOne(doc resource.Document) error {
	data, err := Encode(doc.Body)
	if err != nil {
		return fmt.Errorf("encode %s: %w", doc.Path, err)
	}
	if err := os.WriteFile(e.Path(doc.Path), data, filePerm); err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}
	return nil
}

// Encode renders v as 4-space indented JSON without HTML escaping.
func Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
