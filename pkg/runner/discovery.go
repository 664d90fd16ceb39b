package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover finds result documents matching opts under the given working
// directory. It returns a deterministically sorted list of absolute file
// paths. StdinPath entries are not files and are skipped here.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}

	d := &discoverer{
		workDir:    workDir,
		extensions: lowerAll(opts.effectiveExtensions()),
		include:    opts.IncludeGlobs,
		exclude:    opts.ExcludeGlobs,
		follow:     opts.FollowSymlinks,
		seen:       make(map[string]struct{}),
	}

	for _, inputPath := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}
		if inputPath == StdinPath {
			continue
		}
		if err := d.visitArg(ctx, inputPath); err != nil {
			return nil, err
		}
	}

	slices.Sort(d.found)
	return d.found, nil
}

// discoverer accumulates result documents across all path arguments.
type discoverer struct {
	workDir    string
	extensions []string
	include    []string
	exclude    []string
	follow     bool

	seen  map[string]struct{}
	found []string
}

// visitArg resolves one path argument. A file argument is kept when it
// passes the filters; a directory argument is walked.
func (d *discoverer) visitArg(ctx context.Context, arg string) error {
	absPath := arg
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(d.workDir, absPath)
	}
	absPath = filepath.Clean(absPath)

	info, err := os.Stat(absPath)
	if err != nil {
		return fmt.Errorf("stat %s: %w", arg, err)
	}

	if !info.IsDir() {
		if d.accepts(absPath) {
			d.add(absPath)
		}
		return nil
	}

	if err := d.walk(ctx, absPath); err != nil {
		return fmt.Errorf("walk directory %s: %w", absPath, err)
	}
	return nil
}

func (d *discoverer) add(path string) {
	if _, ok := d.seen[path]; ok {
		return
	}
	d.seen[path] = struct{}{}
	d.found = append(d.found, path)
}

// walk collects the documents below root. Hidden entries and excluded
// directories are pruned; directory symlinks are entered only when
// following is enabled.
func (d *discoverer) walk(ctx context.Context, root string) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		hidden := path != root && strings.HasPrefix(entry.Name(), ".")

		if entry.IsDir() {
			if hidden || d.excluded(d.rel(path)) {
				return filepath.SkipDir
			}
			return nil
		}
		if hidden {
			return nil
		}

		if entry.Type()&fs.ModeSymlink != 0 {
			target, isDir, ok := resolveLink(path)
			if !ok {
				return nil
			}
			if isDir {
				if !d.follow {
					return nil
				}
				// WalkDir does not descend into links, so walk the target.
				return d.walk(ctx, target)
			}
		}

		if d.accepts(path) {
			d.add(path)
		}
		return nil
	})
}

// resolveLink reports the target of a symlink and whether it is a
// directory. Broken or unreadable links report ok == false.
func resolveLink(path string) (string, bool, bool) {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", false, false
	}
	info, err := os.Stat(target)
	if err != nil {
		return "", false, false
	}
	return target, info.IsDir(), true
}

// accepts reports whether path is a result document that survives the
// extension, exclude and include filters.
func (d *discoverer) accepts(path string) bool {
	if !slices.Contains(d.extensions, strings.ToLower(filepath.Ext(path))) {
		return false
	}

	rel := d.rel(path)
	if d.excluded(rel) {
		return false
	}
	if len(d.include) == 0 {
		return true
	}
	return slices.ContainsFunc(d.include, func(pattern string) bool {
		return matchGlob(rel, pattern)
	})
}

func (d *discoverer) excluded(rel string) bool {
	return slices.ContainsFunc(d.exclude, func(pattern string) bool {
		return matchGlob(rel, pattern)
	})
}

// rel returns path relative to the working directory, or path itself
// when no relative form exists.
func (d *discoverer) rel(path string) string {
	rel, err := filepath.Rel(d.workDir, path)
	if err != nil {
		return path
	}
	return rel
}

// resolveWorkDir resolves the working directory, defaulting to os.Getwd().
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	absPath, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}
	return absPath, nil
}

func lowerAll(values []string) []string {
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	return lowered
}

// matchGlob matches a path against a doublestar pattern, trying the
// basename as well so "*.json" excludes at any depth.
func matchGlob(path, pattern string) bool {
	path = filepath.ToSlash(path)
	pattern = filepath.ToSlash(pattern)

	if matched, err := doublestar.Match(pattern, path); err == nil && matched {
		return true
	}

	matched, err := doublestar.Match(pattern, filepath.Base(path))
	return err == nil && matched
}
