package lints

import (
	"github.com/rubytools/ralint/internal/syntax"
	tt "github.com/rubytools/ralint/internal/types"
)

func position(file *syntax.File, offset int) tt.Position {
	p := file.Position(offset)
	return tt.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}
