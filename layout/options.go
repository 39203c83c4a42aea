package layout

import "github.com/charmbracelet/log"

// DefaultMargin is the gutter between grid cells, in logical pixels.
const DefaultMargin = 10.0

// Options 配置视图管理器所需的依赖。
type Options struct {
	// Margin 为网格间距（逻辑像素），仅 NewGrid 使用。
	Margin float64
	// NameTemplate 为网格视图命名模板，支持 ${row} ${col} ${index}。
	NameTemplate string
	// NewViewport 为每个视图创建输出视口，可为空。
	NewViewport func(spec ViewSpec) Viewport
	Logger      *log.Logger
}

// DefaultOptions 返回默认间距 10px 的配置。
func DefaultOptions() Options {
	return Options{Margin: DefaultMargin}
}

// Canvas 提供当前逻辑尺寸，并在尺寸变化时通知订阅者（无负载）。
// 通知按顺序逐个投递，不会重入。
type Canvas interface {
	LogicalSize() (width, height float64)
	OnResize(handler func())
}

// Viewport 接收布局得到的像素矩形，用于后续渲染。布局只写不读。
type Viewport interface {
	SetRect(rect PixelRect)
}
