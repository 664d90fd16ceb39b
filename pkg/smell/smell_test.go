package smell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gosmell/pkg/smell"
)

func TestLocation_FirstLine(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, smell.Location{}.FirstLine())
	assert.Equal(t, 4, smell.Location{Lines: []int{4, 9}}.FirstLine())
}

func TestLocation_JoinLines(t *testing.T) {
	t.Parallel()

	loc := smell.Location{Source: "a.rb", Lines: []int{2, 5, 11}}
	assert.Equal(t, "2,5,11", loc.JoinLines(","))
	assert.Empty(t, smell.Location{}.JoinLines(","))
}

func TestWarning_HasLocation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		warning smell.Warning
		want    bool
	}{
		{name: "nil location", warning: smell.Warning{}, want: false},
		{name: "zero location", warning: smell.Warning{Location: &smell.Location{}}, want: false},
		{name: "source only", warning: smell.Warning{Location: &smell.Location{Source: "a.rb"}}, want: true},
		{name: "lines only", warning: smell.Warning{Location: &smell.Location{Lines: []int{1}}}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.warning.HasLocation())
		})
	}
}

func TestExamination(t *testing.T) {
	t.Parallel()

	clean := smell.NewExamination("clean.rb")
	assert.Equal(t, "clean.rb", clean.Description())
	assert.Equal(t, 0, clean.SmellsCount())
	assert.False(t, clean.Smelly())
	assert.Empty(t, clean.Smells())

	smelly := smell.NewExamination("dirty.rb",
		smell.Warning{Context: "Dirty#a", SmellType: "FeatureEnvy"},
		smell.Warning{Context: "Dirty#b", SmellType: "TooManyStatements"},
	)
	assert.Equal(t, 2, smelly.SmellsCount())
	assert.True(t, smelly.Smelly())
	assert.Equal(t, "Dirty#a", smelly.Smells()[0].Context)
}

func TestExamination_SmellsIsACopy(t *testing.T) {
	t.Parallel()

	input := []smell.Warning{{Context: "A#a"}}
	exam := smell.NewExamination("a.rb", input...)
	input[0].Context = "changed"

	got := exam.Smells()
	got[0].Context = "also changed"

	assert.Equal(t, "A#a", exam.Smells()[0].Context)
}
