// Package langdetect names the programming language of an analyzed unit
// from its path, using go-enry's filename and extension tables.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language names returned for inputs enry cannot resolve by itself.
const (
	langText   = "text"
	langBash   = "bash"
	langInline = "inline"
)

// inlineDescription is the description analysis stages use for source that
// did not come from a file.
const inlineDescription = "string"

// FromPath returns the lower-cased language for path, "inline" for the
// inline source description, or "text" when the language is unknown.
func FromPath(path string) string {
	path = strings.TrimSpace(path)
	switch path {
	case "":
		return langText
	case inlineDescription:
		return langInline
	}

	base := filepath.Base(path)

	// Exact filenames first (Rakefile, Gemfile, Dockerfile).
	if lang, safe := enry.GetLanguageByFilename(base); safe && lang != "" {
		return normalize(lang)
	}

	if lang, safe := enry.GetLanguageByExtension(base); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// normalize converts go-enry language names to lower-case tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
