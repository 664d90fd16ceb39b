package analysis

import (
	"cmp"
	"slices"
)

// SummaryVersion is the current summary format version.
const SummaryVersion = "1.0.0"

// Summary contains pre-computed views of a Report.
// Computed once by Summarize, used by the structured renderers.
type Summary struct {
	// BySmellType groups warnings by smell type.
	BySmellType []SmellTypeAnalysis `json:"by_smell_type"`

	// ByExaminer lists each examiner with its warning count.
	ByExaminer []ExaminerAnalysis `json:"by_examiner"`

	// Totals contains aggregate statistics.
	Totals Totals `json:"totals"`

	// Version is the summary format version.
	Version string `json:"version"`
}

// Totals contains aggregate statistics for a report.
type Totals struct {
	Examiners       int `json:"examiners"`
	SmellyExaminers int `json:"smelly_examiners"`
	Warnings        int `json:"warnings"`
}

// SmellTypeAnalysis contains aggregated data for a single smell type.
type SmellTypeAnalysis struct {
	SmellType string   `json:"smell_type"`
	Count     int      `json:"count"`
	Examiners []string `json:"examiners,omitempty"`
}

// ExaminerAnalysis contains aggregated data for a single examiner.
type ExaminerAnalysis struct {
	Description string   `json:"description"`
	Count       int      `json:"count"`
	SmellTypes  []string `json:"smell_types,omitempty"`
}

// Summarize computes the aggregate views of report in a single pass.
// Smell types are ordered by descending count, then name. Examiners are
// ordered by descending count and keep report order among equal counts.
func Summarize(report *Report) *Summary {
	summary := &Summary{
		Version:     SummaryVersion,
		BySmellType: []SmellTypeAnalysis{},
		ByExaminer:  []ExaminerAnalysis{},
	}
	if report == nil {
		return summary
	}

	byType := make(map[string]*SmellTypeAnalysis)
	typeExaminers := make(map[string]map[string]bool)

	for _, ex := range report.examiners {
		summary.Totals.Examiners++
		if ex.Smelly() {
			summary.Totals.SmellyExaminers++
		}

		ea := ExaminerAnalysis{Description: ex.Description(), Count: ex.SmellsCount()}
		seen := make(map[string]bool)

		for _, warning := range ex.Smells() {
			summary.Totals.Warnings++

			sta, ok := byType[warning.SmellType]
			if !ok {
				sta = &SmellTypeAnalysis{SmellType: warning.SmellType}
				byType[warning.SmellType] = sta
				typeExaminers[warning.SmellType] = make(map[string]bool)
			}
			sta.Count++
			typeExaminers[warning.SmellType][ex.Description()] = true

			if !seen[warning.SmellType] {
				seen[warning.SmellType] = true
				ea.SmellTypes = append(ea.SmellTypes, warning.SmellType)
			}
		}

		slices.Sort(ea.SmellTypes)
		summary.ByExaminer = append(summary.ByExaminer, ea)
	}

	for smellType, sta := range byType {
		for desc := range typeExaminers[smellType] {
			sta.Examiners = append(sta.Examiners, desc)
		}
		slices.Sort(sta.Examiners)
		summary.BySmellType = append(summary.BySmellType, *sta)
	}

	slices.SortFunc(summary.BySmellType, func(left, right SmellTypeAnalysis) int {
		return cmp.Or(
			cmp.Compare(right.Count, left.Count),
			cmp.Compare(left.SmellType, right.SmellType),
		)
	})
	slices.SortStableFunc(summary.ByExaminer, func(left, right ExaminerAnalysis) int {
		return cmp.Compare(right.Count, left.Count)
	})

	return summary
}
