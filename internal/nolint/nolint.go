package nolint

import (
	"strings"

	"github.com/rubytools/ralint/internal/syntax"
)

const nolintPrefix = "# nolint"

// Manager tracks which lines have lint suppression comments and for
// which rules.
type Manager struct {
	// scopes maps a line number to the set of suppressed rules.
	// An empty set suppresses every rule on that line.
	scopes map[int]map[string]struct{}
}

// FromFile collects the `# nolint` comments of a scanned file.
//
// A suppression comment on a statement line applies to that line; a
// comment on a line of its own applies to the following line. Rules may
// be restricted with `# nolint:rule1,rule2`. Malformed comments are
// ignored.
func FromFile(f *syntax.File) *Manager {
	m := &Manager{scopes: make(map[int]map[string]struct{}, len(f.Comments))}
	for _, c := range f.Comments {
		rules, ok := parseComment(c.Text)
		if !ok {
			continue
		}
		line := c.Line
		if c.Own {
			line++
		}
		if existing, found := m.scopes[line]; found {
			// an unrestricted scope wins over a restricted one
			if len(rules) == 0 || len(existing) == 0 {
				m.scopes[line] = map[string]struct{}{}
				continue
			}
			for r := range rules {
				existing[r] = struct{}{}
			}
			continue
		}
		m.scopes[line] = rules
	}
	return m
}

// IsNolint reports whether the given rule is suppressed on the given line.
func (m *Manager) IsNolint(line int, rule string) bool {
	rules, ok := m.scopes[line]
	if !ok {
		return false
	}
	if len(rules) == 0 {
		return true
	}
	_, ok = rules[rule]
	return ok
}

func parseComment(text string) (map[string]struct{}, bool) {
	if !strings.HasPrefix(text, nolintPrefix) {
		return nil, false
	}
	rest := text[len(nolintPrefix):]
	if rest == "" {
		return map[string]struct{}{}, true
	}
	if rest[0] != ':' {
		return nil, false
	}
	rest = strings.TrimSpace(rest[1:])
	if rest == "" {
		// a colon with no rules is malformed
		return nil, false
	}
	rules := make(map[string]struct{})
	for _, name := range strings.Split(rest, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			rules[name] = struct{}{}
		}
	}
	return rules, true
}
