package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureRecord_TraceLines(t *testing.T) {
	tests := []struct {
		name  string
		trace string
		want  []string
	}{
		{"empty trace", "", nil},
		{"single frame", "at foo.js:1", []string{"at foo.js:1"}},
		{"two frames", "at foo.js:1\nat bar.js:2", []string{"at foo.js:1", "at bar.js:2"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"several trailing newlines", "a\n\n\n", []string{"a"}},
		{"only newlines", "\n\n", nil},
		{"inner blank line kept", "a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FailureRecord{Description: "d", Trace: tt.trace}
			assert.Equal(t, tt.want, f.TraceLines())
		})
	}
}

func TestRunResult_Flags(t *testing.T) {
	r := &RunResult{}
	assert.False(t, r.HasFailures())
	assert.False(t, r.HasPendings())
	assert.True(t, r.Passed())

	r.Pendings = []PendingRecord{{Description: "later"}}
	assert.True(t, r.HasPendings())
	assert.True(t, r.Passed())

	r.Failures = []FailureRecord{{Description: "broken"}}
	assert.True(t, r.HasFailures())
	assert.False(t, r.Passed())

	r = &RunResult{ThresholdFailures: []string{"coverage below 80%"}}
	assert.False(t, r.Passed())

	r = &RunResult{Errors: []ErrorReport{{Message: "boom"}}}
	assert.False(t, r.Passed())
}

func TestRunResult_Validate(t *testing.T) {
	t.Run("valid result", func(t *testing.T) {
		r := &RunResult{
			Suite:    "default",
			Elapsed:  time.Second,
			RunCount: 2,
			Failures: []FailureRecord{{Description: "adds numbers"}},
			Pendings: []PendingRecord{{Description: "subtracts numbers"}},
		}
		assert.NoError(t, r.Validate())
	})

	t.Run("nil result", func(t *testing.T) {
		var r *RunResult
		err := r.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedResult))
	})

	t.Run("failure without description", func(t *testing.T) {
		r := &RunResult{Failures: []FailureRecord{{Description: "ok"}, {Description: "  "}}}
		err := r.Validate()
		require.Error(t, err)

		var malformed *MalformedResultError
		require.True(t, errors.As(err, &malformed))
		assert.Equal(t, KindFailure, malformed.Kind)
		assert.Equal(t, 1, malformed.Index)
		assert.Equal(t, "malformed failure #2: description is required", err.Error())
	})

	t.Run("pending without description", func(t *testing.T) {
		r := &RunResult{Pendings: []PendingRecord{{}}}
		err := r.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "malformed pending #1")
	})

	t.Run("negative example count", func(t *testing.T) {
		r := &RunResult{RunCount: -1}
		err := r.Validate()
		require.Error(t, err)
		assert.Equal(t, "malformed result: example count -1 is negative", err.Error())
	})

	t.Run("bad error report frame", func(t *testing.T) {
		r := &RunResult{Errors: []ErrorReport{{
			Message: "boom",
			Trace:   []TraceFrame{{File: "a.js", Line: -3}},
		}}}
		err := r.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedResult))
		assert.Contains(t, err.Error(), "error report #1")
		assert.Contains(t, err.Error(), "line number -3 is negative")
	})
}

func TestRunResult_ValidateAll(t *testing.T) {
	r := &RunResult{
		RunCount: -2,
		Failures: []FailureRecord{{}, {Description: "fine"}, {}},
		Pendings: []PendingRecord{{}},
	}

	errs := r.ValidateAll()
	require.Len(t, errs, 4)
	for _, err := range errs {
		assert.True(t, errors.Is(err, ErrMalformedResult))
	}
}

func TestErrorReport(t *testing.T) {
	t.Run("error string without trace", func(t *testing.T) {
		e := ErrorReport{Message: "ReferenceError: foo is not defined"}
		assert.Equal(t, "ReferenceError: foo is not defined", e.Error())
	})

	t.Run("error string with trace", func(t *testing.T) {
		e := ErrorReport{
			Message: "TypeError",
			Trace:   []TraceFrame{{File: "app.js", Line: 12, Function: "init"}},
		}
		assert.Equal(t, "TypeError (app.js:12)", e.Error())
	})

	t.Run("missing message", func(t *testing.T) {
		err := ErrorReport{}.Validate()
		require.Error(t, err)
		assert.Equal(t, "malformed error: message is required", err.Error())
	})

	t.Run("frame without file", func(t *testing.T) {
		err := ErrorReport{Message: "x", Trace: []TraceFrame{{Line: 1}}}.Validate()
		require.Error(t, err)
		assert.Equal(t, "malformed trace frame #1: file is required", err.Error())
	})

	t.Run("zero line is allowed", func(t *testing.T) {
		err := ErrorReport{Message: "x", Trace: []TraceFrame{{File: "a.js", Line: 0}}}.Validate()
		assert.NoError(t, err)
	})
}

func TestRecordKind_String(t *testing.T) {
	assert.Equal(t, "result", KindResult.String())
	assert.Equal(t, "failure", KindFailure.String())
	assert.Equal(t, "pending", KindPending.String())
	assert.Equal(t, "error", KindError.String())
	assert.Equal(t, "trace frame", KindFrame.String())
	assert.Equal(t, "unknown", RecordKind(99).String())
}
