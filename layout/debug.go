package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteDebugJSON 将当前快照（画布尺寸、每个视图的表达式与矩形）写成缩进 JSON，
// 目录不存在时自动创建。
func WriteDebugJSON(snap *Snapshot, path string) error {
	if snap == nil {
		return fmt.Errorf("layout: 快照为空")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
