package layout

import (
	"math"
	"testing"
)

// TestPxMmRoundTrip 验证 px↔mm 换算的往返精度（允许极小的浮点误差）。
func TestPxMmRoundTrip(t *testing.T) {
	samples := []float64{0, 0.001, 1, 10, 96, 640, 1920}
	for _, px := range samples {
		mm := px * PxToMm
		back := mm * MmToPx
		if diff := math.Abs(back - px); diff > 1e-9 {
			t.Fatalf("px→mm→px 往返误差过大: in=%gpx mm=%g back=%g diff=%g", px, mm, back, diff)
		}
	}
	// 96px = 1in = 25.4mm
	if got := 96 * PxToMm; math.Abs(got-25.4) > 1e-9 {
		t.Fatalf("96px 转 mm 期望 25.4，实际 %g", got)
	}
}

// TestTermMagnitude 覆盖 px 与百分比两种单位在不同参考长度下的换算。
func TestTermMagnitude(t *testing.T) {
	if got := Pixels(4).Magnitude(1000); got != 4 {
		t.Fatalf("4px 应与参考长度无关，实际 %g", got)
	}
	if got := Percent(50).Magnitude(200); got != 100 {
		t.Fatalf("50%% of 200 期望 100，实际 %g", got)
	}
	if got := Percent(10).Magnitude(0); got != 0 {
		t.Fatalf("参考长度为 0 时百分比应为 0，实际 %g", got)
	}
}

func TestTermNegAndString(t *testing.T) {
	neg := Pixels(3).Neg()
	if neg.Sign != SignMinus || neg.Neg().Sign != SignPlus {
		t.Fatalf("Neg 应在 + 与 - 之间切换: %+v", neg)
	}
	if (Term{Value: 1}).Neg().Sign != SignNone {
		t.Fatalf("未设置运算符的项 Neg 后仍应为 SignNone")
	}
	if got := Percent(12.5).String(); got != "12.5%" {
		t.Fatalf("want 12.5%%, got %s", got)
	}
	if got := Pixels(0.1).String(); got != "0.1px" {
		t.Fatalf("want 0.1px, got %s", got)
	}
	if UnitToString(Unit(9)) != "" || SignNone.String() != "?" {
		t.Fatalf("unknown unit/sign formatting changed")
	}
}
