package types

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Severity is the reporting level of a lint rule.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "ERROR"
	case SeverityWarning:
		return "WARNING"
	case SeverityInfo:
		return "INFO"
	case SeverityOff:
		return "OFF"
	default:
		return "UNKNOWN"
	}
}

// UnmarshalYAML accepts the lowercase severity names used in the
// configuration file.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	switch strings.ToLower(raw) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", raw)
	}
	return nil
}

func (s Severity) MarshalYAML() (interface{}, error) {
	return strings.ToLower(s.String()), nil
}

// Position is a location in a source file. Offset is the byte offset from
// the start of the file; Line and Column are 1-based.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TextEdit replaces the bytes in [Start, End) with NewText. An empty
// NewText makes the edit a pure deletion.
type TextEdit struct {
	Start   int
	End     int
	NewText string
}

// Issue represents a lint issue found in the code base.
type Issue struct {
	Rule       string
	Category   string
	Filename   string
	Message    string
	Suggestion string
	Note       string
	Start      Position
	End        Position
	Severity   Severity
	Confidence float64
	Edits      []TextEdit
}

// ConfigRule holds the per-rule settings from the configuration file.
type ConfigRule struct {
	Severity Severity               `yaml:"severity"`
	Options  map[string]interface{} `yaml:"options,omitempty"`
}
