package runner_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gosmell/pkg/runner"
	"github.com/yaklabco/gosmell/pkg/smell"
)

const examinersYAML = `
examiners:
  - description: lib/foo.rb
    smells:
      - context: Foo#bar
        message: refers to other more than self
        smell_type: FeatureEnvy
        source: lib/foo.rb
        lines: [3, 5]
      - context: Foo
        message: has no descriptive comment
        smell_type: IrresponsibleModule
  - description: lib/clean.rb
`

func TestDecodeBytes_ExaminersDocument(t *testing.T) {
	examiners, err := runner.DecodeBytes([]byte(examinersYAML), "results.yml")
	require.NoError(t, err)
	require.Len(t, examiners, 2)

	foo := examiners[0]
	assert.Equal(t, "lib/foo.rb", foo.Description())
	assert.Equal(t, 2, foo.SmellsCount())
	assert.Equal(t, smell.Warning{
		Context:   "Foo#bar",
		Message:   "refers to other more than self",
		SmellType: "FeatureEnvy",
		Location:  &smell.Location{Source: "lib/foo.rb", Lines: []int{3, 5}},
	}, foo.Smells()[0])
	assert.Nil(t, foo.Smells()[1].Location)

	assert.Equal(t, "lib/clean.rb", examiners[1].Description())
	assert.False(t, examiners[1].Smelly())
}

func TestDecodeBytes_JSONDocument(t *testing.T) {
	doc := `{"examiners":[{"description":"a.rb","smells":[{"context":"A","message":"m","smell_type":"Attribute","lines":[2]}]}]}`

	examiners, err := runner.DecodeBytes([]byte(doc), "results.json")
	require.NoError(t, err)
	require.Len(t, examiners, 1)
	assert.Equal(t, []int{2}, examiners[0].Smells()[0].Location.Lines)
}

func TestDecodeBytes_BareExaminerList(t *testing.T) {
	doc := "- description: a.rb\n- smells:\n    - {context: B, message: m, smell_type: Attribute}\n"

	examiners, err := runner.DecodeBytes([]byte(doc), "results.yml")
	require.NoError(t, err)
	require.Len(t, examiners, 2)
	assert.Equal(t, "a.rb", examiners[0].Description())
	assert.Equal(t, "results.yml", examiners[1].Description(), "missing description falls back to document name")
}

func TestDecodeBytes_WarningRecordsGroupedBySource(t *testing.T) {
	doc := `
- context: A#x
  message: m1
  smell_type: FeatureEnvy
  source: b.rb
  lines: [1]
- context: B#y
  message: m2
  smell_type: Attribute
  source: a.rb
- context: A#z
  message: m3
  smell_type: Attribute
  source: b.rb
- context: Inline
  message: m4
  smell_type: Attribute
`

	examiners, err := runner.DecodeBytes([]byte(doc), "string")
	require.NoError(t, err)
	require.Len(t, examiners, 3)

	assert.Equal(t, "b.rb", examiners[0].Description())
	assert.Equal(t, 2, examiners[0].SmellsCount())
	assert.Equal(t, "a.rb", examiners[1].Description())
	assert.Equal(t, "string", examiners[2].Description())
}

func TestDecodeBytes_JSONReportOutput(t *testing.T) {
	doc := `{
  "version": "1.0.0",
  "warnings": [{"context": "A", "message": "m", "smell_type": "Attribute", "source": "a.rb", "lines": [4]}],
  "summary": {"examiners": 1, "smelly_examiners": 1, "total_warnings": 1, "by_smell_type": {"Attribute": 1}}
}`

	examiners, err := runner.DecodeBytes([]byte(doc), "report.json")
	require.NoError(t, err)
	require.Len(t, examiners, 1)
	assert.Equal(t, "a.rb", examiners[0].Description())
}

func TestDecodeBytes_Empty(t *testing.T) {
	for _, doc := range []string{"", "  \n", "[]", "examiners: []"} {
		examiners, err := runner.DecodeBytes([]byte(doc), "x.yml")
		require.NoError(t, err, "doc %q", doc)
		assert.Empty(t, examiners, "doc %q", doc)
	}
}

func TestDecodeBytes_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{name: "missing smell type", doc: "examiners:\n  - description: a.rb\n    smells:\n      - {context: A, message: m}\n", wantErr: runner.ErrMissingSmellType},
		{name: "mixed list", doc: "- description: a.rb\n- {context: A, message: m, smell_type: X}\n", wantErr: runner.ErrMixedList},
		{name: "malformed yaml", doc: "examiners: [\n"},
		{name: "wrong shape", doc: "examiners: 42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runner.DecodeBytes([]byte(tt.doc), "bad.yml")
			require.Error(t, err)
			assert.Contains(t, err.Error(), "bad.yml")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestDecode_Reader(t *testing.T) {
	examiners, err := runner.Decode(strings.NewReader(examinersYAML), "stdin")
	require.NoError(t, err)
	assert.Len(t, examiners, 2)
}
