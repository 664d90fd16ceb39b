// Package runner loads analysis result documents and turns them into
// examiners, decoding many documents concurrently.
package runner

import "io"

// StdinPath is the path argument that reads a document from Options.Stdin.
const StdinPath = "-"

// Options controls document discovery and loading.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory. StdinPath reads
	// a document from Stdin.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered result documents. Defaults to DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to WorkingDir.
	// Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are doublestar patterns used to skip files or directories.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent decoders.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Stdin is read when Paths contains StdinPath.
	Stdin io.Reader
}

// DefaultExtensions returns the default set of result document extensions.
func DefaultExtensions() []string {
	return []string{".yml", ".yaml", ".json"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
