// Package configloader provides configuration loading and resolution.
// It layers defaults, discovered config files, environment variables and
// command line overrides with koanf, then validates the result.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/yaklabco/gosmell/pkg/config"
)

// keyDelim separates nested config keys.
const keyDelim = "."

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// If set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Environ supplies the environment; nil means os.Environ.
	Environ func() []string

	// Overrides holds command line values keyed by config path
	// (e.g. "output.format"). They take highest precedence.
	Overrides map[string]any
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged and validated configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Command line overrides (opts.Overrides)
//  2. Environment variables (GOSMELL_*)
//  3. Explicit config file (opts.ExplicitPath), else project config
//     (.gosmell.yml upward search)
//  4. User config ($XDG_CONFIG_HOME/gosmell/config.yml)
//  5. System config (/etc/gosmell/config.yml)
//  6. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	k := koanf.New(keyDelim)

	if err := k.Load(structs.Provider(config.NewConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	files := configFiles(paths, opts)
	for _, path := range files {
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, path)
	}

	for _, key := range k.Keys() {
		if _, known := configKeys[key]; !known {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("unknown configuration key %q; ignored", key))
		}
	}

	if !opts.IgnoreEnv {
		warn := func(msg string) { result.Warnings = append(result.Warnings, msg) }
		if err := k.Load(env.Provider(keyDelim, env.Opt{
			Prefix:        EnvPrefix,
			TransformFunc: envTransform(warn),
			EnvironFunc:   opts.Environ,
		}), nil); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, keyDelim), nil); err != nil {
			return nil, fmt.Errorf("load command line overrides: %w", err)
		}
	}

	cfg := &config.Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	validation := config.Validate(cfg)
	if err := validation.Err(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Error())
	}

	result.Config = cfg
	return result, nil
}

// configFiles returns the config files to load, lowest precedence first.
func configFiles(paths *ConfigPaths, opts LoadOptions) []string {
	var files []string

	if !opts.IgnoreSystemConfig && paths.System != "" {
		files = append(files, paths.System)
	}
	if !opts.IgnoreUserConfig && paths.User != "" {
		files = append(files, paths.User)
	}

	switch {
	case paths.Explicit != "":
		files = append(files, paths.Explicit)
	case paths.Project != "":
		files = append(files, paths.Project)
	}

	return files
}
