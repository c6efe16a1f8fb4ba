package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harrison/teaspoon-report/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlSnapshot = `
suite: default
elapsed: 1.23
run_count: 3
failures:
  - description: adds numbers
    message: expected 2 got 3
    trace: |-
      Context.<anonymous>@http://127.0.0.1:3000/assets/math_spec.js:12
      callFn@http://127.0.0.1:3000/assets/mocha.js:4451
    link: "math_spec.js#L1"
pendings:
  - description: divides numbers
errors:
  - message: "ReferenceError: foo is not defined"
    trace:
      - file: /app/spec/javascripts/helper.js
        line: 4
        function: setup
coverage: "Statements: 90% (9 / 10)"
threshold_failures:
  - "Expected coverage statements to be 95% or higher, was 90%"
`

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"result.yaml", FormatYAML},
		{"result.yml", FormatYAML},
		{"RESULT.YML", FormatYAML},
		{"result.json", FormatJSON},
		{"result.txt", FormatUnknown},
		{"result", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFormat(tt.filename))
		})
	}
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "yaml", FormatYAML.String())
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "unknown", FormatUnknown.String())
}

func TestNewParser_Unknown(t *testing.T) {
	_, err := NewParser(FormatUnknown)
	assert.Error(t, err)
}

func TestYAMLParser_FullSnapshot(t *testing.T) {
	result, err := NewYAMLParser().Parse(strings.NewReader(yamlSnapshot))
	require.NoError(t, err)

	assert.Equal(t, "default", result.Suite)
	assert.Equal(t, 1230*time.Millisecond, result.Elapsed)
	assert.Equal(t, 3, result.RunCount)

	require.Len(t, result.Failures, 1)
	f := result.Failures[0]
	assert.Equal(t, "adds numbers", f.Description)
	assert.Equal(t, "expected 2 got 3", f.Message)
	assert.Equal(t, "math_spec.js#L1", f.Link)
	assert.Len(t, f.TraceLines(), 2)

	require.Len(t, result.Pendings, 1)
	assert.Equal(t, "divides numbers", result.Pendings[0].Description)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, models.TraceFrame{File: "/app/spec/javascripts/helper.js", Line: 4, Function: "setup"},
		result.Errors[0].Trace[0])

	assert.Equal(t, "Statements: 90% (9 / 10)", result.Coverage)
	assert.Len(t, result.ThresholdFailures, 1)
	assert.NoError(t, result.Validate())
}

func TestYAMLParser_Elapsed(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    time.Duration
		wantErr bool
	}{
		{"seconds", "2.5", 2500 * time.Millisecond, false},
		{"integer seconds", "3", 3 * time.Second, false},
		{"duration string", "1m30s", 90 * time.Second, false},
		{"null", "~", 0, false},
		{"garbage", "soon", 0, true},
		{"list", "[1]", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewYAMLParser().Parse(strings.NewReader("elapsed: " + tt.value + "\n"))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Elapsed)
		})
	}
}

func TestYAMLParser_Errors(t *testing.T) {
	t.Run("empty document", func(t *testing.T) {
		_, err := NewYAMLParser().Parse(strings.NewReader(""))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := NewYAMLParser().Parse(strings.NewReader("suite: default\nfailurez: []\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failurez")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := NewYAMLParser().Parse(strings.NewReader("run_count: many\n"))
		assert.Error(t, err)
	})
}

func TestJSONParser(t *testing.T) {
	doc := `{
	"suite": "integration",
	"elapsed": "750ms",
	"run_count": 2,
	"failures": [{"description": "renders", "message": "boom", "trace": "", "link": "view_spec.js"}],
	"pendings": []
}`
	result, err := NewJSONParser().Parse(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, "integration", result.Suite)
	assert.Equal(t, 750*time.Millisecond, result.Elapsed)
	assert.Equal(t, 2, result.RunCount)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "view_spec.js", result.Failures[0].Link)
	assert.Empty(t, result.Failures[0].TraceLines())
}

func TestJSONParser_NumericElapsedAndErrors(t *testing.T) {
	result, err := NewJSONParser().Parse(strings.NewReader(`{"elapsed": 0.42, "run_count": 1}`))
	require.NoError(t, err)
	assert.Equal(t, 420*time.Millisecond, result.Elapsed)

	result, err = NewJSONParser().Parse(strings.NewReader(`{"elapsed": null}`))
	require.NoError(t, err)
	assert.Zero(t, result.Elapsed)

	_, err = NewJSONParser().Parse(strings.NewReader(`{"elapsed": "later"}`))
	assert.Error(t, err)

	_, err = NewJSONParser().Parse(strings.NewReader(`{"unexpected": true}`))
	assert.Error(t, err)

	_, err = NewJSONParser().Parse(strings.NewReader(``))
	assert.Error(t, err)
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "result.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlSnapshot), 0644))

	result, err := ParseFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "default", result.Suite)

	jsonPath := filepath.Join(dir, "result.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"suite":"ci","run_count":0}`), 0644))

	result, err = ParseFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "ci", result.Suite)
}

func TestParseFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ParseFile(filepath.Join(dir, "result.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown file format")

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("failures: {"), 0644))
	_, err = ParseFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse yaml snapshot")
}
