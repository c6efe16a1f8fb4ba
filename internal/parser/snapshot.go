package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/harrison/teaspoon-report/internal/models"
	"gopkg.in/yaml.v3"
)

// snapshot is the on-disk shape of a run result.
type snapshot struct {
	Suite             string                 `yaml:"suite" json:"suite"`
	Elapsed           elapsed                `yaml:"elapsed" json:"elapsed"`
	RunCount          int                    `yaml:"run_count" json:"run_count"`
	Failures          []models.FailureRecord `yaml:"failures" json:"failures"`
	Pendings          []models.PendingRecord `yaml:"pendings" json:"pendings"`
	Errors            []models.ErrorReport   `yaml:"errors" json:"errors"`
	Coverage          string                 `yaml:"coverage" json:"coverage"`
	ThresholdFailures []string               `yaml:"threshold_failures" json:"threshold_failures"`
}

func (s *snapshot) toResult() *models.RunResult {
	return &models.RunResult{
		Suite:             s.Suite,
		Elapsed:           time.Duration(s.Elapsed),
		RunCount:          s.RunCount,
		Failures:          s.Failures,
		Pendings:          s.Pendings,
		Errors:            s.Errors,
		Coverage:          s.Coverage,
		ThresholdFailures: s.ThresholdFailures,
	}
}

// elapsed accepts either a number of seconds (1.23) or a duration string ("1.23s").
type elapsed time.Duration

func parseElapsed(text string) (elapsed, error) {
	if text == "" {
		return 0, nil
	}
	if secs, err := strconv.ParseFloat(text, 64); err == nil {
		if math.IsNaN(secs) || math.IsInf(secs, 0) {
			return 0, fmt.Errorf("invalid elapsed value %q", text)
		}
		return elapsed(time.Duration(math.Round(secs * float64(time.Second)))), nil
	}
	d, err := time.ParseDuration(text)
	if err != nil {
		return 0, fmt.Errorf("invalid elapsed value %q: want seconds or a duration", text)
	}
	return elapsed(d), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *elapsed) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: elapsed must be a scalar", value.Line)
	}
	if value.Tag == "!!null" {
		*e = 0
		return nil
	}
	parsed, err := parseElapsed(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*e = parsed
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *elapsed) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*e = 0
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
	}
	parsed, err := parseElapsed(text)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// YAMLParser decodes YAML snapshots.
type YAMLParser struct{}

// NewYAMLParser creates a YAMLParser.
func NewYAMLParser() *YAMLParser {
	return &YAMLParser{}
}

// Parse implements Parser. Unknown keys are rejected so typos surface
// instead of silently dropping data.
func (p *YAMLParser) Parse(r io.Reader) (*models.RunResult, error) {
	var doc snapshot
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("snapshot is empty")
		}
		return nil, err
	}
	return doc.toResult(), nil
}

// JSONParser decodes JSON snapshots.
type JSONParser struct{}

// NewJSONParser creates a JSONParser.
func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// Parse implements Parser.
func (p *JSONParser) Parse(r io.Reader) (*models.RunResult, error) {
	var doc snapshot
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("snapshot is empty")
		}
		return nil, err
	}
	return doc.toResult(), nil
}
