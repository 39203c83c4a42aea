package layout

import (
	"fmt"
	"math"

	"github.com/ByLCY/viewgrid/dsl"
)

const (
	defaultCanvasWidth  = 640.0
	defaultCanvasHeight = 480.0
)

// Build 根据 DSL AST 生成布局方案：画布尺寸、间距以及全部视图描述。
// 网格视图排在前面，自定义视图按声明顺序追加在后。
func Build(doc *dsl.Document) (*Plan, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	plan := &Plan{
		Name:   doc.Name,
		Width:  defaultCanvasWidth,
		Height: defaultCanvasHeight,
		Margin: DefaultMargin,
	}

	var (
		grid  *dsl.GridStatement
		views []*dsl.ViewStatement
	)
	for _, st := range doc.Statements {
		switch {
		case st.Canvas != nil:
			plan.Width = float64(st.Canvas.Width)
			plan.Height = float64(st.Canvas.Height)
		case st.Margin != nil:
			plan.Margin = float64(st.Margin.Value)
		case st.Grid != nil:
			if grid != nil {
				return nil, fmt.Errorf("%s: 一个 layout 只能声明一个 grid", st.Grid.Pos)
			}
			grid = st.Grid
		case st.View != nil:
			views = append(views, st.View)
		}
	}

	if grid != nil {
		specs, err := buildGrid(grid, plan.Margin)
		if err != nil {
			return nil, err
		}
		plan.Specs = append(plan.Specs, specs...)
	}
	for _, v := range views {
		spec, err := buildView(v)
		if err != nil {
			return nil, err
		}
		plan.Specs = append(plan.Specs, spec)
	}
	if len(plan.Specs) == 0 {
		return nil, fmt.Errorf("layout %s 中没有任何视图", doc.Name)
	}
	return plan, nil
}

func buildGrid(st *dsl.GridStatement, margin float64) ([]ViewSpec, error) {
	rows, err := wholeNumber(st.Rows)
	if err != nil {
		return nil, fmt.Errorf("%s: grid 行数%w", st.Pos, err)
	}
	cols, err := wholeNumber(st.Cols)
	if err != nil {
		return nil, fmt.Errorf("%s: grid 列数%w", st.Pos, err)
	}
	tpl := ""
	if st.Name != nil {
		tpl = string(*st.Name)
	}
	specs, err := GridSpecs(rows, cols, margin, tpl)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", st.Pos, err)
	}
	return specs, nil
}

func buildView(st *dsl.ViewStatement) (ViewSpec, error) {
	var src [4]string
	for i, key := range []string{"x", "y", "w", "h"} {
		v, ok := st.Lookup(key)
		if !ok {
			return ViewSpec{}, fmt.Errorf("%s: 视图 %s 缺少 %s", st.Pos, st.Name, key)
		}
		src[i] = v
	}
	for _, p := range st.Props {
		switch p.Key {
		case "x", "y", "w", "h":
		default:
			return ViewSpec{}, fmt.Errorf("%s: 视图 %s 不支持属性 %s", p.Pos, st.Name, p.Key)
		}
	}
	rect, err := ParseRect(src[0], src[1], src[2], src[3])
	if err != nil {
		return ViewSpec{}, fmt.Errorf("%s: 视图 %s: %w", st.Pos, st.Name, err)
	}
	return ViewSpec{Name: st.Name, Row: -1, Col: -1, Rect: rect}, nil
}

func wholeNumber(n dsl.Number) (int, error) {
	f := float64(n)
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("必须为整数, got %g", f)
	}
	if f > math.MaxInt32 {
		return 0, fmt.Errorf("超出范围, got %g", f)
	}
	return int(f), nil
}
