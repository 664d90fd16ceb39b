package reporter_test

import (
	"fmt"

	"github.com/yaklabco/gosmell/pkg/analysis"
	"github.com/yaklabco/gosmell/pkg/smell"
)

func paramNameWarning(source string, line int) smell.Warning {
	return smell.Warning{
		Context:   "Foo#bar",
		Message:   "has the parameter name 'x'",
		SmellType: "UncommunicativeParameterName",
		Location:  &smell.Location{Source: source, Lines: []int{line}},
	}
}

func featureEnvyWarning(source string, lines ...int) smell.Warning {
	return smell.Warning{
		Context:   "Foo#baz",
		Message:   "refers to other more than self",
		SmellType: "FeatureEnvy",
		Location:  &smell.Location{Source: source, Lines: lines},
	}
}

// smellyExamination returns an examination holding count generic warnings.
func smellyExamination(description string, count int) *smell.Examination {
	warnings := make([]smell.Warning, count)
	for i := range warnings {
		warnings[i] = smell.Warning{
			Context:   fmt.Sprintf("Foo#m%d", i),
			Message:   "has no descriptive comment",
			SmellType: "IrresponsibleModule",
			Location:  &smell.Location{Source: description, Lines: []int{i + 1}},
		}
	}
	return smell.NewExamination(description, warnings...)
}

func newReport(examiners ...smell.Examiner) *analysis.Report {
	report := analysis.NewReport()
	for _, ex := range examiners {
		report.AddExaminer(ex)
	}
	return report
}
