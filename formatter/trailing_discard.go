package formatter

// TrailingDiscardFormatter renders trailing-discard issues. It differs
// from the general template in rendering the rule's note as a warning:
// when every target is a discard, the suggested correction removes the
// whole left-hand side, which changes the statement into a bare
// expression.
type TrailingDiscardFormatter struct{}

func (f *TrailingDiscardFormatter) IssueTemplate() string {
	return `{{header .Rule .Severity .MaxLineNumWidth .Filename .StartLine .StartColumn}}
{{snippet .SnippetLines .StartLine .EndLine .MaxLineNumWidth .CommonIndent .Padding -}}
{{underlineAndMessage .Message .Padding .StartLine .EndLine .StartColumn .EndColumn .SnippetLines .CommonIndent}}
{{- if .Suggestion }}
{{suggestion .Suggestion .Padding .MaxLineNumWidth .StartLine}}
{{- end }}
{{- if .Note }}
{{warning .Note}}
{{- end }}
`
}
