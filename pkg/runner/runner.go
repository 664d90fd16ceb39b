package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/gosmell/internal/logging"
	"github.com/yaklabco/gosmell/pkg/fsutil"
	"github.com/yaklabco/gosmell/pkg/smell"
)

// ErrNoStdin indicates StdinPath was requested without an Options.Stdin reader.
var ErrNoStdin = errors.New("stdin requested but no reader configured")

// Run discovers documents under opts.Paths and decodes them concurrently.
// Examinations keep a deterministic order regardless of completion order.
//
// The runner:
//   - Discovers documents matching the options criteria
//   - Decodes them with at most opts.Jobs goroutines
//   - Fails the whole run on the first document that cannot be decoded
//   - Respects context cancellation
func Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	result := &Result{}

	if slices.Contains(opts.effectivePaths(), StdinPath) {
		if opts.Stdin == nil {
			return nil, ErrNoStdin
		}
		examiners, err := Decode(opts.Stdin, InlineDescription)
		if err != nil {
			return nil, err
		}
		result.Stats.DocumentsDiscovered++
		result.accumulate(Examination{Path: StdinPath, Examiners: examiners})
	}

	result.Stats.DocumentsDiscovered += len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	// Pre-allocate to keep discovery order.
	examinations := make([]Examination, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			display := displayPath(workDir, path)
			examiners, err := loadDocument(gctx, path, display)
			if err != nil {
				return err
			}

			logging.FromContext(gctx).Debug("decoded document",
				logging.FieldPath, display,
				logging.FieldExaminers, len(examiners),
			)

			examinations[i] = Examination{Path: display, Examiners: examiners}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("run cancelled: %w", ctx.Err())
		}
		return nil, err
	}

	for _, exam := range examinations {
		result.accumulate(exam)
	}

	return result, nil
}

func loadDocument(ctx context.Context, path, display string) ([]smell.Examiner, error) {
	data, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", display, err)
	}
	return DecodeBytes(data, display)
}

// displayPath makes path relative to workDir when it lies beneath it.
func displayPath(workDir, path string) string {
	rel, err := filepath.Rel(workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
