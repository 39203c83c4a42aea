package layout

import (
	"fmt"
	"math"

	"github.com/ByLCY/viewgrid/binding"
)

const (
	// DefaultNameTemplate names grid views by their cell.
	DefaultNameTemplate = "view-${row}-${col}"

	// MaxGridCells bounds rows*cols of a single grid.
	MaxGridCells = 1 << 16
)

// GridSpecs 为 rows×cols 网格生成行优先的视图描述。
//
// 单元格 (row, col) 的表达式为：
//
//	x = 100*col/cols% + margin/2 px    w = 100/cols% - margin px
//	y = 100*row/rows% + margin/2 px    h = 100/rows% - margin px
//
// 相邻单元格之间的间距恰为 margin，而画布边缘只有 margin/2。
// 边缘只留半个间距是沿用的既有行为，这里保持不变。
func GridSpecs(rows, cols int, margin float64, nameTemplate string) ([]ViewSpec, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: 行列数必须为正整数, got %dx%d", ErrInvalidGrid, rows, cols)
	}
	if rows > MaxGridCells/cols {
		return nil, fmt.Errorf("%w: 单元格数量超过 %d, got %dx%d", ErrInvalidGrid, MaxGridCells, rows, cols)
	}
	if margin < 0 || math.IsNaN(margin) || math.IsInf(margin, 0) {
		return nil, fmt.Errorf("%w: 间距必须为非负有限数, got %g", ErrInvalidGrid, margin)
	}
	if nameTemplate == "" {
		nameTemplate = DefaultNameTemplate
	}

	half := Pixels(margin / 2)
	full := Pixels(margin)
	specs := make([]ViewSpec, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			rect := RectExpression{
				X: NewExpr(Percent(100*float64(col)/float64(cols))).Plus(half),
				Y: NewExpr(Percent(100*float64(row)/float64(rows))).Plus(half),
				W: NewExpr(Percent(100/float64(cols))).Minus(full),
				H: NewExpr(Percent(100/float64(rows))).Minus(full),
			}
			name := binding.Interpolate(nameTemplate, map[string]any{
				"row":   row,
				"col":   col,
				"index": len(specs),
			})
			specs = append(specs, ViewSpec{Name: name, Row: row, Col: col, Rect: rect})
		}
	}
	return specs, nil
}

// NewGrid creates a manager with one view per cell of a rows×cols grid,
// separated by opts.Margin. Use DefaultOptions for the default margin.
func NewGrid(c Canvas, rows, cols int, opts Options) (*Manager, error) {
	specs, err := GridSpecs(rows, cols, opts.Margin, opts.NameTemplate)
	if err != nil {
		return nil, err
	}
	return NewManager(c, specs, opts)
}
