package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/viewgrid/layout"
	"github.com/ByLCY/viewgrid/renderer"
)

const frameStrokeWidth = 0.2 // mm

// Format selects the output file type.
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// ParseFormat accepts "pdf" or "svg" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatPDF, FormatSVG:
		return f, nil
	default:
		return "", fmt.Errorf("不支持的输出格式 %q (pdf 或 svg)", s)
	}
}

// Renderer draws the view rectangles of a layout snapshot via
// github.com/tdewolff/canvas. Only the rectangles are drawn, never view content.
type Renderer struct {
	format     Format
	background color.Color
	frame      color.Color
	stroke     color.Color
	fill       color.Color
}

var _ renderer.Renderer = (*Renderer)(nil)

// Option configures a Renderer.
type Option func(*Renderer)

// WithStroke sets the outline color of views.
func WithStroke(c color.Color) Option { return func(r *Renderer) { r.stroke = c } }

// WithFill sets the fill color of views.
func WithFill(c color.Color) Option { return func(r *Renderer) { r.fill = c } }

// WithBackground sets the canvas background color.
func WithBackground(c color.Color) Option { return func(r *Renderer) { r.background = c } }

// NewRenderer creates a renderer for the given output format.
func NewRenderer(format Format, opts ...Option) *Renderer {
	r := &Renderer{
		format:     format,
		background: canvas.White,
		frame:      canvas.RGBA(0.6, 0.6, 0.6, 1.0),
		stroke:     canvas.RGBA(15.0/255.0, 98.0/255.0, 254.0/255.0, 1.0),
		fill:       canvas.RGBA(15.0/255.0, 98.0/255.0, 254.0/255.0, 0.12),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render renders snap into the configured format. Coordinates are logical
// pixels and are written at 96 DPI.
func (r *Renderer) Render(snap *layout.Snapshot) ([]byte, error) {
	if snap == nil {
		return nil, fmt.Errorf("布局快照为空")
	}
	if snap.Width <= 0 || snap.Height <= 0 {
		return nil, fmt.Errorf("画布尺寸无效: %gx%g", snap.Width, snap.Height)
	}

	width, height := toMm(snap.Width), toMm(snap.Height)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	r.drawFrame(ctx, width, height)
	r.drawViews(ctx, snap.Views)

	var buf bytes.Buffer
	switch r.format {
	case FormatPDF:
		writer := pdf.New(&buf, width, height, nil)
		writer.SetInfo(snap.Title, "", "", "", "viewgrid")
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	case FormatSVG:
		writer := svg.New(&buf, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	default:
		return nil, fmt.Errorf("不支持的输出格式 %q", r.format)
	}
	return buf.Bytes(), nil
}

// drawFrame 绘制画布背景与边框
func (r *Renderer) drawFrame(ctx *canvas.Context, width, height float64) {
	ctx.SetFillColor(r.background)
	ctx.SetStrokeColor(r.frame)
	ctx.SetStrokeWidth(frameStrokeWidth)
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))
}

// drawViews 绘制每个视图的矩形（逻辑像素换算为毫米）
func (r *Renderer) drawViews(ctx *canvas.Context, views []layout.ViewSnapshot) {
	ctx.SetFillColor(r.fill)
	ctx.SetStrokeColor(r.stroke)
	ctx.SetStrokeWidth(frameStrokeWidth)
	for _, v := range views {
		rc := v.Rect
		ctx.DrawPath(toMm(rc.X), toMm(rc.Y), canvas.Rectangle(toMm(rc.Width), toMm(rc.Height)))
	}
}

// toMm 将逻辑像素转换为毫米。
func toMm(px float64) float64 { return px * layout.PxToMm }
