// Package analysis accumulates examiner results into a Report and derives
// the aggregate views that renderers share.
package analysis

import (
	"cmp"
	"slices"

	"github.com/yaklabco/gosmell/pkg/smell"
)

// Report accumulates examiners in the order they are added.
//
// The running total always equals the sum of SmellsCount over every added
// examiner; it is updated on each AddExaminer call and never recomputed.
// A Report is not safe for concurrent mutation: callers that analyze in
// parallel must serialize their AddExaminer calls.
type Report struct {
	examiners       []smell.Examiner
	totalSmellCount int
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{}
}

// AddExaminer appends ex and adds its smell count to the running total.
// A nil examiner is ignored. It returns the report to allow chaining.
func (r *Report) AddExaminer(ex smell.Examiner) *Report {
	if ex == nil {
		return r
	}
	r.totalSmellCount += ex.SmellsCount()
	r.examiners = append(r.examiners, ex)
	return r
}

// HasSmells reports whether any added examiner holds at least one warning.
func (r *Report) HasSmells() bool {
	return r.totalSmellCount > 0
}

// TotalSmellCount returns the running total of warnings.
func (r *Report) TotalSmellCount() int {
	return r.totalSmellCount
}

// Len returns the number of added examiners.
func (r *Report) Len() int {
	return len(r.examiners)
}

// Examiners returns the examiners in their current order.
func (r *Report) Examiners() []smell.Examiner {
	return slices.Clone(r.examiners)
}

// Smells flattens every examiner's warnings, keeping examiner order and each
// examiner's internal order. The result is never nil.
func (r *Report) Smells() []smell.Warning {
	smells := make([]smell.Warning, 0, r.totalSmellCount)
	for _, ex := range r.examiners {
		smells = append(smells, ex.Smells()...)
	}
	return smells
}

// SortByIssueCount reorders the examiners by descending smell count.
// The sort is stable: examiners with equal counts keep their addition order.
func (r *Report) SortByIssueCount() {
	slices.SortStableFunc(r.examiners, func(left, right smell.Examiner) int {
		return cmp.Compare(right.SmellsCount(), left.SmellsCount())
	})
}
