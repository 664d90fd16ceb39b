package runner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gosmell/pkg/smell"
)

// InlineDescription describes examiners whose source is not a file.
const InlineDescription = "string"

// Errors returned when a document is well-formed but unusable.
var (
	// ErrMixedList indicates a top-level list holding both examiners and warnings.
	ErrMixedList = errors.New("list mixes examiners and warnings")

	// ErrMissingSmellType indicates a warning without a smell_type.
	ErrMissingSmellType = errors.New("missing smell_type")
)

// Document is the serialized result of an analysis run.
//
// The json reporter's output also decodes as a Document through its
// warnings key; version and summary are accepted and ignored.
type Document struct {
	Examiners []ExaminerDoc `json:"examiners" yaml:"examiners"`
	Warnings  []WarningDoc  `json:"warnings"  yaml:"warnings"`
	Version   string        `json:"version"   yaml:"version"`
	Summary   any           `json:"summary"   yaml:"summary"`
}

// ExaminerDoc is one analyzed unit in a Document.
type ExaminerDoc struct {
	Description string       `json:"description" yaml:"description"`
	Smells      []WarningDoc `json:"smells"      yaml:"smells"`
}

// WarningDoc is one warning in a Document.
type WarningDoc struct {
	Context   string `json:"context"    yaml:"context"`
	Message   string `json:"message"    yaml:"message"`
	SmellType string `json:"smell_type" yaml:"smell_type"`
	Source    string `json:"source"     yaml:"source"`
	Lines     []int  `json:"lines"      yaml:"lines"`
}

// listItem decodes an entry of a bare top-level list, which may be either
// an examiner or a warning record.
type listItem struct {
	ExaminerDoc `yaml:",inline"`
	WarningDoc  `yaml:",inline"`
}

func (i listItem) isWarning() bool {
	return i.SmellType != "" || i.Context != "" || i.Message != ""
}

// Decode reads a yaml or json result document from r. name describes the
// document and stands in for missing examiner descriptions.
func Decode(r io.Reader, name string) ([]smell.Examiner, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return DecodeBytes(data, name)
}

// DecodeBytes decodes a yaml or json result document. JSON is detected by
// validity; everything else is parsed as yaml. Empty input holds no examiners.
func DecodeBytes(data []byte, name string) ([]smell.Examiner, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var items []listItem
		if err := unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		return examinersFromList(items, name)
	}

	var doc Document
	if err := unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return examinersFromDocument(doc, name)
}

// unmarshal picks encoding/json for valid JSON and yaml.v3 otherwise.
func unmarshal(data []byte, out any) error {
	if json.Valid(data) {
		return json.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}

func examinersFromList(items []listItem, name string) ([]smell.Examiner, error) {
	var (
		examiners []ExaminerDoc
		warnings  []WarningDoc
	)
	for _, item := range items {
		if item.isWarning() {
			warnings = append(warnings, item.WarningDoc)
		} else {
			examiners = append(examiners, item.ExaminerDoc)
		}
	}

	if len(examiners) > 0 && len(warnings) > 0 {
		return nil, fmt.Errorf("decode %s: %w", name, ErrMixedList)
	}

	return examinersFromDocument(Document{Examiners: examiners, Warnings: warnings}, name)
}

func examinersFromDocument(doc Document, name string) ([]smell.Examiner, error) {
	result := make([]smell.Examiner, 0, len(doc.Examiners))

	for i, ed := range doc.Examiners {
		description := ed.Description
		if description == "" {
			description = name
		}

		warnings, err := toWarnings(ed.Smells)
		if err != nil {
			return nil, fmt.Errorf("decode %s: examiner %d (%s): %w", name, i, description, err)
		}
		result = append(result, smell.NewExamination(description, warnings...))
	}

	grouped, err := groupBySource(doc.Warnings, name)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	return append(result, grouped...), nil
}

// groupBySource builds one examiner per distinct source, in first-seen order.
func groupBySource(docs []WarningDoc, name string) ([]smell.Examiner, error) {
	if len(docs) == 0 {
		return nil, nil
	}

	warnings, err := toWarnings(docs)
	if err != nil {
		return nil, err
	}

	var order []string
	bySource := make(map[string][]smell.Warning)
	for _, w := range warnings {
		source := name
		if w.HasLocation() && w.Location.Source != "" {
			source = w.Location.Source
		}
		if _, ok := bySource[source]; !ok {
			order = append(order, source)
		}
		bySource[source] = append(bySource[source], w)
	}

	examiners := make([]smell.Examiner, 0, len(order))
	for _, source := range order {
		examiners = append(examiners, smell.NewExamination(source, bySource[source]...))
	}
	return examiners, nil
}

func toWarnings(docs []WarningDoc) ([]smell.Warning, error) {
	warnings := make([]smell.Warning, 0, len(docs))
	for i, wd := range docs {
		if wd.SmellType == "" {
			return nil, fmt.Errorf("smell %d: %w", i, ErrMissingSmellType)
		}

		w := smell.Warning{
			Context:   wd.Context,
			Message:   wd.Message,
			SmellType: wd.SmellType,
		}
		if wd.Source != "" || len(wd.Lines) > 0 {
			w.Location = &smell.Location{Source: wd.Source, Lines: wd.Lines}
		}
		warnings = append(warnings, w)
	}
	return warnings, nil
}
