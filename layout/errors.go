package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for rect expressions and grid construction.
var (
	// ErrMalformedUnit is returned for a numeric term without "px" or "%".
	ErrMalformedUnit = errors.New("malformed unit")

	// ErrMalformedNumber is returned when the numeric part of a term is not a
	// non-negative decimal.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrUnrecognizedToken is returned for a token that is neither an
	// operator nor a term.
	ErrUnrecognizedToken = errors.New("unrecognized token")

	// ErrInternalInvariant is returned when a term is applied without an
	// operator. Parsed expressions never produce it.
	ErrInternalInvariant = errors.New("internal invariant violation")

	// ErrInvalidGrid is returned for a grid shape or margin out of range.
	ErrInvalidGrid = errors.New("invalid grid")
)

// ExprError reports a failure to parse or evaluate one rect expression.
// It unwraps to one of the sentinel errors above.
type ExprError struct {
	Kind   error
	Token  string
	Column int // 1-based, 0 when unknown
	Expr   string
}

func (e *ExprError) Error() string {
	switch e.Kind {
	case ErrMalformedUnit:
		return fmt.Sprintf("表达式 %q 无法解析: 第 %d 列 %q 缺少单位 (px 或 %%)", e.Expr, e.Column, e.Token)
	case ErrMalformedNumber:
		return fmt.Sprintf("表达式 %q 无法解析: 第 %d 列 %q 不是合法的非负小数", e.Expr, e.Column, e.Token)
	case ErrUnrecognizedToken:
		return fmt.Sprintf("表达式 %q 无法解析: 第 %d 列无法识别的记号 %q", e.Expr, e.Column, e.Token)
	case ErrInternalInvariant:
		return fmt.Sprintf("表达式 %q 内部错误: %q 之前没有运算符", e.Expr, e.Token)
	default:
		return fmt.Sprintf("表达式 %q: %q: %v", e.Expr, e.Token, e.Kind)
	}
}

// Unwrap returns the sentinel kind.
func (e *ExprError) Unwrap() error { return e.Kind }
