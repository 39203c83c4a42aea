package layout

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
)

// Expressions are whitespace separated tokens: "+", "-", or a term such as
// "50%" or "4px". There is no precedence and no grouping; terms are folded
// left to right.

var (
	// 空白按 unicode.IsSpace 划分（含 \v、NBSP、全角空格），另加 \x1c-\x1f 分隔符。
	exprLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+`},
		{Name: "Word", Pattern: `[^\s\v\x{1c}-\x{1f}\x{85}\p{Z}]+`},
	})
	wordTokenType = exprLexer.Symbols()["Word"]

	decimalPattern = regexp.MustCompile(`^(?:\d+(?:\.\d*)?|\.\d+)$`)
)

// Expr is a parsed rect expression: a chain of signed terms.
type Expr struct {
	Terms []Term `json:"terms"`
	// Source is the text the expression was parsed from, empty for
	// expressions built in code.
	Source string `json:"source,omitempty"`
}

// NewExpr builds an expression from terms.
func NewExpr(terms ...Term) Expr { return Expr{Terms: terms} }

// ParseExpr parses s into an expression.
func ParseExpr(s string) (Expr, error) {
	lex, err := exprLexer.LexString("", s)
	if err != nil {
		return Expr{}, fmt.Errorf("表达式 %q 分词失败: %w", s, err)
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return Expr{}, fmt.Errorf("表达式 %q 分词失败: %w", s, err)
	}

	expr := Expr{Source: s}
	pending := SignPlus
	for _, tok := range tokens {
		if tok.Type != wordTokenType {
			continue
		}
		switch tok.Value {
		case "+":
			pending = SignPlus
			continue
		case "-":
			pending = SignMinus
			continue
		}
		term, err := parseTerm(tok.Value)
		if err != nil {
			return Expr{}, &ExprError{Kind: err, Token: tok.Value, Column: tok.Pos.Column, Expr: s}
		}
		term.Sign = pending
		expr.Terms = append(expr.Terms, term)
	}
	return expr, nil
}

// MustParseExpr is like ParseExpr but panics on error.
func MustParseExpr(s string) Expr {
	e, err := ParseExpr(s)
	if err != nil {
		panic(err)
	}
	return e
}

// parseTerm classifies a non-operator token and returns the sentinel kind on
// failure. A token carrying a unit suffix is a term whatever it starts with,
// so "abc%" is a bad number rather than an unknown token.
func parseTerm(tok string) (Term, error) {
	var (
		unit Unit
		num  string
	)
	switch {
	case strings.HasSuffix(tok, "px"):
		unit, num = UnitPX, strings.TrimSuffix(tok, "px")
	case strings.HasSuffix(tok, "%"):
		unit, num = UnitPercent, strings.TrimSuffix(tok, "%")
	case unicode.IsDigit(rune(tok[0])):
		return Term{}, ErrMalformedUnit
	default:
		return Term{}, ErrUnrecognizedToken
	}
	if !decimalPattern.MatchString(num) {
		return Term{}, ErrMalformedNumber
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(v, 0) {
		return Term{}, ErrMalformedNumber
	}
	return Term{Value: v, Unit: unit}, nil
}

// Eval folds the terms of e against the reference length ref.
func (e Expr) Eval(ref float64) (float64, error) {
	var value float64
	for _, t := range e.Terms {
		switch t.Sign {
		case SignPlus:
			value += t.Magnitude(ref)
		case SignMinus:
			value -= t.Magnitude(ref)
		default:
			return 0, &ExprError{Kind: ErrInternalInvariant, Token: t.String(), Expr: e.text()}
		}
	}
	return value, nil
}

// Evaluate parses s and evaluates it against ref.
func Evaluate(s string, ref float64) (float64, error) {
	e, err := ParseExpr(s)
	if err != nil {
		return 0, err
	}
	return e.Eval(ref)
}

// Plus returns e with t appended as an added term.
func (e Expr) Plus(t Term) Expr {
	t.Sign = SignPlus
	return e.with(t)
}

// Minus returns e with t appended as a subtracted term.
func (e Expr) Minus(t Term) Expr {
	t.Sign = SignMinus
	return e.with(t)
}

func (e Expr) with(t Term) Expr {
	terms := make([]Term, 0, len(e.Terms)+1)
	terms = append(terms, e.Terms...)
	return Expr{Terms: append(terms, t)}
}

// String returns the canonical text of e, eg "50% + 4px".
func (e Expr) String() string {
	var b strings.Builder
	for i, t := range e.Terms {
		switch {
		case i > 0:
			b.WriteString(" " + t.Sign.String() + " ")
		case t.Sign != SignPlus:
			b.WriteString(t.Sign.String() + " ")
		}
		b.WriteString(t.String())
	}
	return b.String()
}

func (e Expr) clone() Expr {
	return Expr{Terms: slices.Clone(e.Terms), Source: e.Source}
}

func (e Expr) text() string {
	if e.Source != "" {
		return e.Source
	}
	return e.String()
}
