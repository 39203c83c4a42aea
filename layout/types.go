package layout

import (
	"fmt"
	"math"
)

// 该文件定义视图矩形的声明式描述与计算结果，供布局、预览渲染与调试 JSON 共用。

// RectExpression 保存一个视图的四个分量表达式。x/w 以画布宽度为参考，y/h 以画布高度为参考。
// 赋给视图后不可修改。
type RectExpression struct {
	X Expr `json:"x"`
	Y Expr `json:"y"`
	W Expr `json:"w"`
	H Expr `json:"h"`
}

// ParseRect 从四个字符串解析 RectExpression，错误会标注出错的分量。
func ParseRect(x, y, w, h string) (RectExpression, error) {
	var rect RectExpression
	for _, item := range []struct {
		axis string
		src  string
		dst  *Expr
	}{{"x", x, &rect.X}, {"y", y, &rect.Y}, {"w", w, &rect.W}, {"h", h, &rect.H}} {
		e, err := ParseExpr(item.src)
		if err != nil {
			return RectExpression{}, fmt.Errorf("rect.%s: %w", item.axis, err)
		}
		*item.dst = e
	}
	return rect, nil
}

func (r RectExpression) clone() RectExpression {
	return RectExpression{X: r.X.clone(), Y: r.Y.clone(), W: r.W.clone(), H: r.H.clone()}
}

// Strings 返回 (x, y, w, h) 的规范文本。
func (r RectExpression) Strings() [4]string {
	return [4]string{r.X.String(), r.Y.String(), r.W.String(), r.H.String()}
}

// PixelRect 是某次布局得到的像素矩形（逻辑像素）。每次布局整体替换，不做原地修改。
type PixelRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clamp 保证宽高至少为 1 像素，使视口始终可渲染。
func (r PixelRect) Clamp() PixelRect {
	r.Width = math.Max(1, r.Width)
	r.Height = math.Max(1, r.Height)
	return r
}

// ComputeRect 以画布逻辑尺寸计算 rect 对应的像素矩形（已 Clamp）。
func ComputeRect(rect RectExpression, width, height float64) (PixelRect, error) {
	var (
		out PixelRect
		err error
	)
	if out.X, err = rect.X.Eval(width); err != nil {
		return PixelRect{}, fmt.Errorf("rect.x: %w", err)
	}
	if out.Y, err = rect.Y.Eval(height); err != nil {
		return PixelRect{}, fmt.Errorf("rect.y: %w", err)
	}
	if out.Width, err = rect.W.Eval(width); err != nil {
		return PixelRect{}, fmt.Errorf("rect.w: %w", err)
	}
	if out.Height, err = rect.H.Eval(height); err != nil {
		return PixelRect{}, fmt.Errorf("rect.h: %w", err)
	}
	return out.Clamp(), nil
}

// ViewSpec 描述一个待创建的视图。非网格视图的 Row/Col 为 -1。
type ViewSpec struct {
	Name string         `json:"name"`
	Row  int            `json:"row"`
	Col  int            `json:"col"`
	Rect RectExpression `json:"rect"`
}

// Plan 是从 DSL 或配置得到的完整画布布局方案。
type Plan struct {
	Name   string     `json:"name"`
	Width  float64    `json:"width"`
	Height float64    `json:"height"`
	Margin float64    `json:"margin"`
	Specs  []ViewSpec `json:"specs"`
}

// Snapshot 记录某一时刻画布尺寸与全部视图的矩形，便于调试输出与预览渲染。
type Snapshot struct {
	Title  string         `json:"title,omitempty"`
	Width  float64        `json:"width"`
	Height float64        `json:"height"`
	Views  []ViewSnapshot `json:"views"`
}

// ViewSnapshot 是单个视图的快照。
type ViewSnapshot struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Row   int       `json:"row"`
	Col   int       `json:"col"`
	Expr  [4]string `json:"expr"`
	Rect  PixelRect `json:"rect"`
	State string    `json:"state"`
}
