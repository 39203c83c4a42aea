package binding

import "testing"

func TestInterpolate(t *testing.T) {
	data := map[string]any{
		"row":   1,
		"col":   3,
		"index": 7,
		"meta":  map[string]any{"tags": []any{"a", "b"}},
	}
	cases := []struct {
		text, want string
	}{
		{"view-${row}-${col}", "view-1-3"},
		{"plot-${ index }", "plot-7"},
		{"${meta.tags[1]}", "b"},
		{"keep-${missing}", "keep-${missing}"},
		{"keep-${}", "keep-${}"},
		{"no placeholders", "no placeholders"},
	}
	for _, c := range cases {
		if got := Interpolate(c.text, data); got != c.want {
			t.Fatalf("Interpolate(%q) = %q, want %q", c.text, got, c.want)
		}
	}
	if got := Interpolate("x-${row}", nil); got != "x-${row}" {
		t.Fatalf("nil data should leave text untouched, got %q", got)
	}
}

func TestLookup(t *testing.T) {
	data := map[string]any{
		"grid": []any{[]any{"a", "b"}, []any{"c"}},
	}
	if v, ok := Lookup(data, "grid[0][1]"); !ok || v != "b" {
		t.Fatalf("grid[0][1]: got %v, %v", v, ok)
	}
	for _, path := range []string{"grid[2]", "grid[-1]", "grid[x]", "grid.name", "nope"} {
		if _, ok := Lookup(data, path); ok {
			t.Fatalf("Lookup(%q) should fail", path)
		}
	}
}
