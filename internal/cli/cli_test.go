package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ByLCY/viewgrid/config"
	"github.com/ByLCY/viewgrid/layout"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEvalCommand(t *testing.T) {
	out, err := run(t, newEvalCmd(), "50%", "+", "4px", "--ref", "200")
	if err != nil {
		t.Fatalf("eval failed: %v", err)
	}
	if !strings.Contains(out, "104") {
		t.Fatalf("want 104, got %q", out)
	}

	if _, err := run(t, newEvalCmd(), "50% + 4", "-r", "200"); err == nil {
		t.Fatalf("missing unit should fail")
	}
}

func TestGridCommandJSON(t *testing.T) {
	out, err := run(t, newGridCmd(), "--rows", "2", "--json")
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}
	var snap layout.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	want := layout.PixelRect{X: 5, Y: 245, Width: 630, Height: 230}
	if len(snap.Views) != 2 || snap.Views[1].Rect != want {
		t.Fatalf("unexpected snapshot: %+v", snap.Views)
	}
}

func TestGridCommandLayoutFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.vg")
	src := "layout demo {\n  canvas 400 200\n  view main { x: \"0%\"; y: \"0%\"; w: \"100%\"; h: \"100% - 20px\" }\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	out, err := run(t, newGridCmd(), "--layout", path, "--width", "800")
	if err != nil {
		t.Fatalf("grid failed: %v", err)
	}
	if !strings.Contains(out, "main") || !strings.Contains(out, "800x200") {
		t.Fatalf("unexpected table output:\n%s", out)
	}
}

func TestTUIModelResize(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Cols = 2
	cfg.Grid.Margin = tuiMargin
	plan, err := cfg.Plan()
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	m, err := newTUIModel(plan, log.New(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("newTUIModel: %v", err)
	}

	m.Update(tea.WindowSizeMsg{Width: 40, Height: 11})
	w, h := m.canvas.LogicalSize()
	if w != 40 || h != 10 {
		t.Fatalf("canvas should exclude the header line, got %gx%g", w, h)
	}
	right, _ := m.manager.View("view-0-1")
	r, _ := right.Rect()
	if r.X != 21 || r.Width != 18 {
		t.Fatalf("right view after resize: %+v", r)
	}
	if m.manager.Passes() != 2 {
		t.Fatalf("want 2 passes, got %d", m.manager.Passes())
	}

	view := m.View()
	if !strings.Contains(view, "view-0-0") || !strings.Contains(view, "view-0-1") {
		t.Fatalf("view labels missing:\n%s", view)
	}
	if lines := strings.Count(view, "\n"); lines != 10 {
		t.Fatalf("want header plus 10 canvas rows, got %d newlines", lines)
	}

	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Fatalf("q should quit")
	}
}

func TestDrawViewsEmptyCanvas(t *testing.T) {
	if got := drawViews(&layout.Snapshot{}); got != "" {
		t.Fatalf("empty canvas should draw nothing, got %q", got)
	}
}
