package internal

import (
	"fmt"

	"github.com/rubytools/ralint/internal/lints"
	"github.com/rubytools/ralint/internal/syntax"
	tt "github.com/rubytools/ralint/internal/types"
)

// LintRule defines the interface for all lint rules.
type LintRule interface {
	// Check runs the rule on a scanned file and returns its issues.
	Check(filename string, file *syntax.File) ([]tt.Issue, error)

	// Name returns the name of the lint rule.
	Name() string

	Severity() tt.Severity
	SetSeverity(tt.Severity)
}

// ConfigurableRule is implemented by rules that accept options from the
// configuration file.
type ConfigurableRule interface {
	LintRule
	Configure(options map[string]interface{}) error
}

const optAllowNamedUnderscore = "allow-named-underscore"

// TrailingDiscardRule flags trailing discard targets in multiple
// assignment. Its policy is a plain value handed to every check, so a
// rule instance carries no hidden state beyond its configuration.
type TrailingDiscardRule struct {
	severity tt.Severity
	policy   lints.DiscardPolicy
}

func NewTrailingDiscardRule() LintRule {
	return &TrailingDiscardRule{severity: tt.SeverityWarning}
}

func (r *TrailingDiscardRule) Check(filename string, file *syntax.File) ([]tt.Issue, error) {
	return lints.DetectTrailingDiscards(filename, file, r.policy, r.severity)
}

func (r *TrailingDiscardRule) Name() string {
	return lints.TrailingDiscardRuleName
}

func (r *TrailingDiscardRule) Severity() tt.Severity     { return r.severity }
func (r *TrailingDiscardRule) SetSeverity(s tt.Severity) { r.severity = s }

func (r *TrailingDiscardRule) Configure(options map[string]interface{}) error {
	raw, ok := options[optAllowNamedUnderscore]
	if !ok {
		return nil
	}
	allow, ok := raw.(bool)
	if !ok {
		return fmt.Errorf("option %q must be a boolean, got %T", optAllowNamedUnderscore, raw)
	}
	r.policy.AllowNamedUnderscore = allow
	return nil
}

// RedundantParensRule flags parentheses around a whole target list.
type RedundantParensRule struct {
	severity tt.Severity
}

func NewRedundantParensRule() LintRule {
	return &RedundantParensRule{severity: tt.SeverityInfo}
}

func (r *RedundantParensRule) Check(filename string, file *syntax.File) ([]tt.Issue, error) {
	return lints.DetectRedundantParens(filename, file, r.severity)
}

func (r *RedundantParensRule) Name() string {
	return lints.RedundantParensRuleName
}

func (r *RedundantParensRule) Severity() tt.Severity     { return r.severity }
func (r *RedundantParensRule) SetSeverity(s tt.Severity) { r.severity = s }
