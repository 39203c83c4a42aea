package layout

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
)

// TestEvaluateExamples 覆盖基本的加减与百分比换算。
func TestEvaluateExamples(t *testing.T) {
	cases := []struct {
		expr string
		ref  float64
		want float64
	}{
		{"50% + 4px", 200, 104},
		{"100% - 10px", 200, 190},
		{"0% + 5px", 1000, 5},
		{"10% - 5px + 2px", 100, 7},
		{"25%", 640, 160},
		{"  12.5px  ", 0, 12.5},
		{"1px 2px", 0, 3},
		{"- 5px", 0, -5},
		{"0.5px - .25px", 0, 0.25},
		{"", 300, 0},
		{"10%\v+\v5px", 100, 15},
		{"10%\u00a0+\u00a05px", 100, 15},
		{"10%\u2003+ 5px", 100, 15},
		{"\u30001px\u3000-\x1f2px\u0085", 0, -1},
	}
	for _, c := range cases {
		got, err := Evaluate(c.expr, c.ref)
		if err != nil {
			t.Fatalf("Evaluate(%q, %g) error: %v", c.expr, c.ref, err)
		}
		if diff := math.Abs(got - c.want); diff > 1e-9 {
			t.Fatalf("Evaluate(%q, %g) = %g, want %g", c.expr, c.ref, got, c.want)
		}
	}
}

// TestEvaluateLeftToRight 验证没有优先级：运算符只作用于紧随其后的项。
func TestEvaluateLeftToRight(t *testing.T) {
	got, err := Evaluate("10% - 5px + 2px", 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 若误把 "-" 作用于 (5px + 2px)，结果会是 3。
	if got != 7 {
		t.Fatalf("want 7, got %g", got)
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		expr   string
		kind   error
		token  string
		column int
	}{
		{"10", ErrMalformedUnit, "10", 1},
		{"50% + 4", ErrMalformedUnit, "4", 7},
		{"abc%", ErrMalformedNumber, "abc%", 1},
		{"1.2.3px", ErrMalformedNumber, "1.2.3px", 1},
		{"-5px", ErrMalformedNumber, "-5px", 1},
		{"1e3px", ErrMalformedNumber, "1e3px", 1},
		{"px", ErrMalformedNumber, "px", 1},
		{"10% ? 5px", ErrUnrecognizedToken, "?", 5},
		{"10% * 2px", ErrUnrecognizedToken, "*", 5},
		{"(10%)", ErrUnrecognizedToken, "(10%)", 1},
	}
	for _, c := range cases {
		_, err := Evaluate(c.expr, 100)
		if !errors.Is(err, c.kind) {
			t.Fatalf("Evaluate(%q): want %v, got %v", c.expr, c.kind, err)
		}
		var exprErr *ExprError
		if !errors.As(err, &exprErr) {
			t.Fatalf("Evaluate(%q): error is not *ExprError: %T", c.expr, err)
		}
		if exprErr.Token != c.token || exprErr.Column != c.column || exprErr.Expr != c.expr {
			t.Fatalf("Evaluate(%q): unexpected error detail %+v", c.expr, exprErr)
		}
		msg := err.Error()
		if !strings.Contains(msg, c.token) || !strings.Contains(msg, c.expr) {
			t.Fatalf("message must name token and expression: %s", msg)
		}
	}
}

// TestEvalWithoutOperator 手工构造缺少运算符的项，应报告内部不变式错误。
func TestEvalWithoutOperator(t *testing.T) {
	e := Expr{Terms: []Term{{Value: 5, Unit: UnitPX}}}
	if _, err := e.Eval(100); !errors.Is(err, ErrInternalInvariant) {
		t.Fatalf("want ErrInternalInvariant, got %v", err)
	}
}

func TestExprStringRoundTrip(t *testing.T) {
	for _, src := range []string{
		"50% + 4px",
		"33.5% - 10px + 0.25px",
		"- 5px",
		"0%",
	} {
		e := MustParseExpr(src)
		if got := e.String(); got != src {
			t.Fatalf("String() = %q, want %q", got, src)
		}
	}

	built := NewExpr(Percent(100.0 / 3)).Minus(Pixels(10))
	back, err := ParseExpr(built.String())
	if err != nil {
		t.Fatalf("reparse %q: %v", built.String(), err)
	}
	if !slices.Equal(back.Terms, built.Terms) {
		t.Fatalf("round trip changed terms: %+v vs %+v", back.Terms, built.Terms)
	}
}

func TestExprBuildersDoNotAlias(t *testing.T) {
	base := NewExpr(Percent(50))
	a := base.Plus(Pixels(1))
	b := base.Minus(Pixels(2))
	if len(base.Terms) != 1 {
		t.Fatalf("base mutated: %+v", base.Terms)
	}
	if a.String() != "50% + 1px" || b.String() != "50% - 2px" {
		t.Fatalf("unexpected builders: %q, %q", a.String(), b.String())
	}
}

func TestParseRectNamesAxis(t *testing.T) {
	_, err := ParseRect("0%", "0%", "50% + 4", "100%")
	if !errors.Is(err, ErrMalformedUnit) {
		t.Fatalf("want ErrMalformedUnit, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "rect.w:") {
		t.Fatalf("error should name the axis: %v", err)
	}
}
