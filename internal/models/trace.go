package models

import (
	"fmt"
	"strings"
)

// TraceFrame is one entry of a structured stack trace.
type TraceFrame struct {
	File     string `yaml:"file" json:"file"`                             // Path as reported by the runner
	Line     int    `yaml:"line" json:"line"`                             // Line number, never negative
	Function string `yaml:"function,omitempty" json:"function,omitempty"` // Enclosing function, empty when unknown
}

// ErrorReport is a fatal or setup error raised outside a single example.
// It carries a message and an optional structured trace.
type ErrorReport struct {
	Message string       `yaml:"message" json:"message"`
	Trace   []TraceFrame `yaml:"trace,omitempty" json:"trace,omitempty"`
}

// Error implements the error interface.
func (e ErrorReport) Error() string {
	if len(e.Trace) == 0 {
		return e.Message
	}
	first := e.Trace[0]
	return fmt.Sprintf("%s (%s:%d)", e.Message, first.File, first.Line)
}

// Validate checks the frame invariants of the report.
func (e ErrorReport) Validate() error {
	if strings.TrimSpace(e.Message) == "" {
		return &MalformedResultError{Kind: KindError, Index: -1, Reason: "message is required"}
	}
	for i, frame := range e.Trace {
		if frame.Line < 0 {
			return &MalformedResultError{
				Kind:   KindFrame,
				Index:  i,
				Reason: fmt.Sprintf("line number %d is negative", frame.Line),
			}
		}
		if frame.File == "" {
			return &MalformedResultError{Kind: KindFrame, Index: i, Reason: "file is required"}
		}
	}
	return nil
}
