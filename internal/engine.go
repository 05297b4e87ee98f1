package internal

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/rubytools/ralint/internal/nolint"
	"github.com/rubytools/ralint/internal/syntax"
	tt "github.com/rubytools/ralint/internal/types"
)

// Engine manages the linting process.
type Engine struct {
	ignoredRules map[string]bool
	ignoredPaths []string
	rules        map[string]LintRule
	logger       *zap.Logger

	watcher    *fsnotify.Watcher
	isWatching bool
}

// NewEngine creates a lint engine with the default rules, adjusted by
// the per-rule configuration.
func NewEngine(rules map[string]tt.ConfigRule) (*Engine, error) {
	engine := &Engine{logger: zap.NewNop()}
	if err := engine.applyRules(rules); err != nil {
		return nil, err
	}
	return engine, nil
}

// SetLogger replaces the engine's no-op logger.
func (e *Engine) SetLogger(logger *zap.Logger) {
	if logger != nil {
		e.logger = logger
	}
}

type ruleConstructor func() LintRule

type ruleMap map[string]ruleConstructor

var allRuleConstructors = ruleMap{
	"trailing-discard":            NewTrailingDiscardRule,
	"redundant-assignment-parens": NewRedundantParensRule,
}

func (e *Engine) applyRules(rules map[string]tt.ConfigRule) error {
	e.rules = make(map[string]LintRule, len(allRuleConstructors))
	for key, construct := range allRuleConstructors {
		e.rules[key] = construct()
	}

	for key, cfg := range rules {
		rule, ok := e.rules[key]
		if !ok {
			// unknown rule names are not an error; the config may be
			// shared with newer versions of the linter
			continue
		}
		if cfg.Severity == tt.SeverityOff {
			e.IgnoreRule(key)
			continue
		}
		rule.SetSeverity(cfg.Severity)
		if len(cfg.Options) > 0 {
			configurable, ok := rule.(ConfigurableRule)
			if !ok {
				return fmt.Errorf("rule %q does not take options", key)
			}
			if err := configurable.Configure(cfg.Options); err != nil {
				return fmt.Errorf("rule %q: %w", key, err)
			}
		}
	}
	return nil
}

// IgnoreRule disables a rule by name.
func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// IgnorePath excludes a path prefix from linting.
func (e *Engine) IgnorePath(path string) {
	e.ignoredPaths = append(e.ignoredPaths, path)
}

func (e *Engine) isIgnoredPath(path string) bool {
	for _, prefix := range e.ignoredPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Run applies all lint rules to the given file and returns its issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.isIgnoredPath(filename) {
		return nil, nil
	}
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return e.runSource(filename, src)
}

// RunSource applies all lint rules to the given source.
func (e *Engine) RunSource(source []byte) ([]tt.Issue, error) {
	return e.runSource("", source)
}

func (e *Engine) runSource(filename string, src []byte) ([]tt.Issue, error) {
	file := syntax.Parse(filename, src)
	suppressions := nolint.FromFile(file)

	var wg sync.WaitGroup
	var mu sync.Mutex

	var allIssues []tt.Issue
	for _, rule := range e.rules {
		if e.ignoredRules[rule.Name()] {
			continue
		}
		wg.Add(1)
		go func(r LintRule) {
			defer wg.Done()
			issues, err := r.Check(filename, file)
			if err != nil {
				e.logger.Warn("rule failed",
					zap.String("rule", r.Name()),
					zap.String("file", filename),
					zap.Error(err))
				return
			}

			kept := issues[:0]
			for _, issue := range issues {
				if !suppressions.IsNolint(issue.Start.Line, issue.Rule) {
					kept = append(kept, issue)
				}
			}

			mu.Lock()
			allIssues = append(allIssues, kept...)
			mu.Unlock()
		}(rule)
	}
	wg.Wait()

	// rules run concurrently, so order the merged result for callers
	sort.Slice(allIssues, func(i, j int) bool {
		if allIssues[i].Start.Offset != allIssues[j].Start.Offset {
			return allIssues[i].Start.Offset < allIssues[j].Start.Offset
		}
		return allIssues[i].Rule < allIssues[j].Rule
	})
	return allIssues, nil
}
