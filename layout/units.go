package layout

import (
	"strconv"
)

// This file defines the units and signed terms a rect expression is built from.

// Unit represents the unit suffix of a single expression term.
type Unit int

const (
	UnitPX      Unit = iota // absolute logical pixels, "px"
	UnitPercent             // percent of the reference length, "%"
)

// Conversion constants between logical pixels and mm, at the 96 DPI
// reference density used for logical pixels.
const (
	PxToMm = 25.4 / 96
	MmToPx = 1.0 / PxToMm
)

// UnitToString returns the suffix for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPX:
		return "px"
	case UnitPercent:
		return "%"
	default:
		return ""
	}
}

func (u Unit) String() string { return UnitToString(u) }

// Sign is the additive operator applied to a term.
type Sign int

const (
	SignNone  Sign = iota // no operator set
	SignPlus              // "+"
	SignMinus             // "-"
)

func (s Sign) String() string {
	switch s {
	case SignPlus:
		return "+"
	case SignMinus:
		return "-"
	default:
		return "?"
	}
}

// Term is one signed px or percent value of an expression chain.
type Term struct {
	Sign  Sign    `json:"sign"`
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Pixels returns a positive absolute term.
func Pixels(v float64) Term { return Term{Sign: SignPlus, Value: v, Unit: UnitPX} }

// Percent returns a positive term relative to the reference length.
func Percent(v float64) Term { return Term{Sign: SignPlus, Value: v, Unit: UnitPercent} }

// Neg flips the operator of t. A term without operator stays without one.
func (t Term) Neg() Term {
	switch t.Sign {
	case SignPlus:
		t.Sign = SignMinus
	case SignMinus:
		t.Sign = SignPlus
	}
	return t
}

// Magnitude converts the unsigned value of t to logical pixels.
func (t Term) Magnitude(ref float64) float64 {
	if t.Unit == UnitPercent {
		return (t.Value / 100) * ref
	}
	return t.Value
}

// String formats the unsigned term, eg "4px" or "50%".
func (t Term) String() string {
	return formatNumber(t.Value) + UnitToString(t.Unit)
}

// formatNumber uses the shortest decimal that parses back to the same float,
// never an exponent, so formatted expressions stay inside the grammar.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
