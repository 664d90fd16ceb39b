package runner

import "github.com/yaklabco/gosmell/pkg/smell"

// Examination is the outcome of loading one result document.
type Examination struct {
	// Path is the document path relative to the working directory,
	// or StdinPath.
	Path string

	// Examiners are the decoded examiners in document order.
	Examiners []smell.Examiner
}

// Stats captures aggregate information about a run.
type Stats struct {
	// DocumentsDiscovered is the number of documents found, stdin included.
	DocumentsDiscovered int

	// Examiners is the total number of decoded examiners.
	Examiners int

	// SmellyExaminers is the number of examiners with at least one warning.
	SmellyExaminers int

	// Warnings is the total number of decoded warnings.
	Warnings int
}

// Result is the overall runner result.
type Result struct {
	// Examinations are ordered with stdin first, then by path.
	Examinations []Examination

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// Examiners flattens every examination's examiners in result order.
func (r *Result) Examiners() []smell.Examiner {
	if r == nil {
		return nil
	}
	examiners := make([]smell.Examiner, 0, r.Stats.Examiners)
	for _, exam := range r.Examinations {
		examiners = append(examiners, exam.Examiners...)
	}
	return examiners
}

// HasSmells reports whether any decoded examiner holds a warning.
func (r *Result) HasSmells() bool {
	if r == nil {
		return false
	}
	return r.Stats.Warnings > 0
}

// accumulate appends an examination and updates the statistics.
func (r *Result) accumulate(exam Examination) {
	r.Examinations = append(r.Examinations, exam)
	for _, ex := range exam.Examiners {
		r.Stats.Examiners++
		r.Stats.Warnings += ex.SmellsCount()
		if ex.Smelly() {
			r.Stats.SmellyExaminers++
		}
	}
}
