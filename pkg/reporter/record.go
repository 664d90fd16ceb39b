package reporter

import "github.com/yaklabco/gosmell/pkg/smell"

// WarningRecord is the serialized form of one warning in the yaml and json
// encodings.
type WarningRecord struct {
	Context   string `json:"context"          yaml:"context"`
	Message   string `json:"message"          yaml:"message"`
	SmellType string `json:"smell_type"       yaml:"smell_type"`
	Source    string `json:"source,omitempty" yaml:"source,omitempty"`
	Lines     []int  `json:"lines,omitempty"  yaml:"lines,omitempty,flow"`
}

// newWarningRecords converts warnings into records. The result is never nil,
// so an empty report encodes as an empty sequence.
func newWarningRecords(warnings []smell.Warning) []WarningRecord {
	records := make([]WarningRecord, 0, len(warnings))
	for _, w := range warnings {
		record := WarningRecord{
			Context:   w.Context,
			Message:   w.Message,
			SmellType: w.SmellType,
		}
		if w.HasLocation() {
			record.Source = w.Location.Source
			record.Lines = w.Location.Lines
		}
		records = append(records, record)
	}
	return records
}
