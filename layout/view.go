package layout

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// ViewState is the layout state of a view.
type ViewState int

const (
	Unlaid ViewState = iota // expressions assigned, no rect yet
	Laid                    // rect present and current
)

func (s ViewState) String() string {
	if s == Laid {
		return "laid"
	}
	return "unlaid"
}

// View is one rectangular region of a canvas. It owns its rect expressions
// and the rect computed from them by the last layout pass.
type View struct {
	ID   string
	Name string
	Row  int
	Col  int

	rect     RectExpression
	viewport Viewport
	current  PixelRect
	state    ViewState
}

func newView(spec ViewSpec, vp Viewport) *View {
	return &View{
		ID:       uuid.NewString(),
		Name:     spec.Name,
		Row:      spec.Row,
		Col:      spec.Col,
		rect:     spec.Rect.clone(),
		viewport: vp,
	}
}

// Expressions returns the rect expressions of the view.
func (v *View) Expressions() RectExpression { return v.rect }

// Rect returns the current rect; ok is false before the first pass.
func (v *View) Rect() (PixelRect, bool) { return v.current, v.state == Laid }

// State reports whether the view has been laid out.
func (v *View) State() ViewState { return v.state }

// Viewport returns the output viewport, nil when the view has none.
func (v *View) Viewport() Viewport { return v.viewport }

func (v *View) apply(rect PixelRect) {
	v.current = rect
	v.state = Laid
	if v.viewport != nil {
		v.viewport.SetRect(rect)
	}
}

// Manager 持有一块画布上的全部视图，订阅画布尺寸变化并重新计算每个视图的矩形。
// 仅在单线程回调模型下使用。
type Manager struct {
	canvas Canvas
	views  []*View
	byName map[string]*View
	logger *log.Logger
	passes int
}

// NewManager 创建视图、同步完成首次布局，然后订阅画布的 resize 通知。
func NewManager(c Canvas, specs []ViewSpec, opts Options) (*Manager, error) {
	if c == nil {
		return nil, fmt.Errorf("layout: 缺少画布 Canvas")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	m := &Manager{
		canvas: c,
		views:  make([]*View, 0, len(specs)),
		byName: make(map[string]*View, len(specs)),
		logger: logger,
	}
	for i, spec := range specs {
		if spec.Name == "" {
			spec.Name = fmt.Sprintf("view-%d", i)
		}
		if _, dup := m.byName[spec.Name]; dup {
			return nil, fmt.Errorf("layout: 视图名称重复: %s", spec.Name)
		}
		var vp Viewport
		if opts.NewViewport != nil {
			vp = opts.NewViewport(spec)
		}
		v := newView(spec, vp)
		m.views = append(m.views, v)
		m.byName[v.Name] = v
	}

	if err := m.Relayout(); err != nil {
		return nil, err
	}
	c.OnResize(m.handleResize)
	return m, nil
}

func (m *Manager) handleResize() {
	if err := m.Relayout(); err != nil {
		m.logger.Error("重新布局失败，保留上一次的矩形", "err", err)
	}
}

// Relayout 读取一次画布尺寸并重算全部视图。任一视图失败时不替换任何矩形。
func (m *Manager) Relayout() error {
	width, height := m.canvas.LogicalSize()
	rects := make([]PixelRect, len(m.views))
	for i, v := range m.views {
		r, err := ComputeRect(v.rect, width, height)
		if err != nil {
			return fmt.Errorf("视图 %s: %w", v.Name, err)
		}
		rects[i] = r
	}
	for i, v := range m.views {
		v.apply(rects[i])
	}
	m.passes++
	m.logger.Debug("layout pass", "pass", m.passes, "width", width, "height", height, "views", len(m.views))
	return nil
}

// Views returns the views in creation order (row-major for grids).
func (m *Manager) Views() []*View {
	out := make([]*View, len(m.views))
	copy(out, m.views)
	return out
}

// View looks a view up by name.
func (m *Manager) View(name string) (*View, bool) {
	v, ok := m.byName[name]
	return v, ok
}

// Passes returns how many layout passes have completed.
func (m *Manager) Passes() int { return m.passes }

// Snapshot captures the canvas size and every view's current rect.
func (m *Manager) Snapshot() *Snapshot {
	width, height := m.canvas.LogicalSize()
	snap := &Snapshot{Width: width, Height: height, Views: make([]ViewSnapshot, 0, len(m.views))}
	for _, v := range m.views {
		snap.Views = append(snap.Views, ViewSnapshot{
			ID:    v.ID,
			Name:  v.Name,
			Row:   v.Row,
			Col:   v.Col,
			Expr:  v.rect.Strings(),
			Rect:  v.current,
			State: v.state.String(),
		})
	}
	return snap
}

// Mount creates a manager for every view of p on c.
func Mount(c Canvas, p *Plan, opts Options) (*Manager, error) {
	if p == nil {
		return nil, fmt.Errorf("layout: 布局方案为空")
	}
	return NewManager(c, p.Specs, opts)
}
