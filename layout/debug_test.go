package layout

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteDebugJSON(t *testing.T) {
	m, err := NewGrid(NewManualCanvas(640, 480), 2, 1, DefaultOptions())
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	path := filepath.Join(t.TempDir(), "debug", "layout.json")
	if err := WriteDebugJSON(m.Snapshot(), path); err != nil {
		t.Fatalf("WriteDebugJSON error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if snap.Width != 640 || len(snap.Views) != 2 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
	if snap.Views[1].Expr[1] != "50% + 5px" || snap.Views[1].Rect.Y != 245 {
		t.Fatalf("unexpected bottom view: %+v", snap.Views[1])
	}

	if err := WriteDebugJSON(nil, path); err == nil {
		t.Fatalf("nil snapshot should fail")
	}
}
