package dsl

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	dslLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "HashComment", Pattern: `#[^\n]*`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:px)?`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(dslLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment", "HashComment"),
	)
)

// Document is the root AST node of a layout file.
type Document struct {
	Pos        lexer.Position `parser:"" json:"-"`
	Name       string         `parser:"Newline* 'layout' @Ident"`
	Statements []*Statement   `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}' Newline*"`
}

// Statement is one top-level declaration inside a layout block.
type Statement struct {
	Canvas *CanvasStatement `parser:"  @@"`
	Margin *MarginStatement `parser:"| @@"`
	Grid   *GridStatement   `parser:"| @@"`
	View   *ViewStatement   `parser:"| @@"`
}

// Kind returns the human-readable statement type.
func (s *Statement) Kind() string {
	switch {
	case s == nil:
		return "unknown"
	case s.Canvas != nil:
		return "canvas"
	case s.Margin != nil:
		return "margin"
	case s.Grid != nil:
		return "grid"
	case s.View != nil:
		return "view"
	default:
		return "unknown"
	}
}

// CanvasStatement sets the logical canvas size: `canvas 640 480`.
type CanvasStatement struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Width  Number         `parser:"'canvas' @Number"`
	Height Number         `parser:"@Number"`
}

// MarginStatement sets the grid gutter: `margin 10` or `margin 10px`.
type MarginStatement struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Value Number         `parser:"'margin' @Number"`
}

// GridStatement declares a regular grid: `grid 2 3 name "plot-${row}-${col}"`.
type GridStatement struct {
	Pos  lexer.Position `parser:"" json:"-"`
	Rows Number         `parser:"'grid' @Number"`
	Cols Number         `parser:"@Number"`
	Name *StringLiteral `parser:"( 'name' @String )?"`
}

// ViewStatement declares a view with hand-written rect expressions.
type ViewStatement struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Name  string         `parser:"'view' @Ident"`
	Props []*Property    `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Property is a `key: "value"` pair inside a view block.
type Property struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Key   string         `parser:"@Ident"`
	Value StringLiteral  `parser:"':' @String"`
}

// Lookup returns the value of key, the last assignment wins.
func (v *ViewStatement) Lookup(key string) (string, bool) {
	var (
		val   string
		found bool
	)
	for _, p := range v.Props {
		if p.Key == key {
			val, found = string(p.Value), true
		}
	}
	return val, found
}

// Number captures a non-negative number with an optional px suffix.
type Number float64

// Capture implements participle.Capture.
func (n *Number) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("number capture requires value")
	}
	f, err := strconv.ParseFloat(strings.TrimSuffix(values[0], "px"), 64)
	if err != nil {
		return err
	}
	*n = Number(f)
	return nil
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a layout file from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	return documentParser.Parse("", r)
}

// ParseString parses a layout file from a string.
func ParseString(input string) (*Document, error) {
	return documentParser.ParseString("", input)
}
