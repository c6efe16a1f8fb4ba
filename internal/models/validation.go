package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedResult is matched by every MalformedResultError via errors.Is.
var ErrMalformedResult = errors.New("malformed result")

// RecordKind identifies which part of a result violated an invariant.
type RecordKind int

const (
	// KindResult is the run result itself.
	KindResult RecordKind = iota
	// KindFailure is a FailureRecord.
	KindFailure
	// KindPending is a PendingRecord.
	KindPending
	// KindError is an ErrorReport.
	KindError
	// KindFrame is a TraceFrame inside an ErrorReport.
	KindFrame
)

// String returns the string representation of RecordKind.
func (k RecordKind) String() string {
	switch k {
	case KindResult:
		return "result"
	case KindFailure:
		return "failure"
	case KindPending:
		return "pending"
	case KindError:
		return "error"
	case KindFrame:
		return "trace frame"
	default:
		return "unknown"
	}
}

// MalformedResultError reports a record that violates an invariant.
// Index is the 0-based position of the record in its collection, or -1
// when the violation is not tied to a single record.
type MalformedResultError struct {
	Kind   RecordKind
	Index  int
	Reason string
}

// Error implements the error interface for MalformedResultError.
func (e *MalformedResultError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("malformed %s: %s", e.Kind, e.Reason)
	}
	return fmt.Sprintf("malformed %s #%d: %s", e.Kind, e.Index+1, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedResult) succeed.
func (e *MalformedResultError) Is(target error) bool {
	return target == ErrMalformedResult
}

// Validate checks every invariant of the run result and returns the first
// violation found.
func (r *RunResult) Validate() error {
	if errs := r.ValidateAll(); len(errs) > 0 {
		return errs[0]
	}
	return nil
}

// ValidateAll collects every invariant violation instead of stopping at the
// first one. Used by the validate command to report everything at once.
func (r *RunResult) ValidateAll() []error {
	if r == nil {
		return []error{&MalformedResultError{Kind: KindResult, Index: -1, Reason: "result is nil"}}
	}
	var errs []error
	if r.RunCount < 0 {
		errs = append(errs, &MalformedResultError{
			Kind:   KindResult,
			Index:  -1,
			Reason: fmt.Sprintf("example count %d is negative", r.RunCount),
		})
	}
	if r.Elapsed < 0 {
		errs = append(errs, &MalformedResultError{Kind: KindResult, Index: -1, Reason: "elapsed time is negative"})
	}
	for i, f := range r.Failures {
		if strings.TrimSpace(f.Description) == "" {
			errs = append(errs, &MalformedResultError{Kind: KindFailure, Index: i, Reason: "description is required"})
		}
	}
	for i, p := range r.Pendings {
		if strings.TrimSpace(p.Description) == "" {
			errs = append(errs, &MalformedResultError{Kind: KindPending, Index: i, Reason: "description is required"})
		}
	}
	for i, e := range r.Errors {
		if err := e.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("error report #%d: %w", i+1, err))
		}
	}
	return errs
}
