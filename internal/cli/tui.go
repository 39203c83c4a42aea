package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ByLCY/viewgrid/layout"
)

// headerLines is the number of terminal rows above the canvas.
const headerLines = 1

// tuiMargin is the default gutter for the terminal preview, in cells.
const tuiMargin = 2.0

func newTUICmd() *cobra.Command {
	var flags planFlags

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Live terminal preview; the terminal is the canvas, one cell per logical pixel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			m, err := newTUIModel(plan, loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
	flags.register(cmd, tuiMargin)
	return cmd
}

// tuiModel is a bubbletea model whose terminal acts as the layout canvas.
// tea.WindowSizeMsg is the resize notification.
type tuiModel struct {
	title   string
	canvas  *layout.ManualCanvas
	manager *layout.Manager
}

func newTUIModel(plan *layout.Plan, logger *log.Logger) (*tuiModel, error) {
	// Placeholder size until the first WindowSizeMsg arrives.
	canvas := layout.NewManualCanvas(80, 24-headerLines)
	mgr, err := layout.Mount(canvas, plan, layout.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	return &tuiModel{title: plan.Name, canvas: canvas, manager: mgr}, nil
}

func (m *tuiModel) Init() tea.Cmd { return nil }

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.canvas.Resize(float64(msg.Width), float64(msg.Height-headerLines))
	}
	return m, nil
}

func (m *tuiModel) View() string {
	snap := m.manager.Snapshot()
	var b strings.Builder
	b.WriteString(styleTitle.Render(m.title))
	b.WriteString(styleDim.Render(fmt.Sprintf("  %gx%g · %d views · q quit", snap.Width, snap.Height, len(snap.Views))))
	b.WriteString("\n")
	b.WriteString(styleBox.Render(drawViews(snap)))
	return b.String()
}

// drawViews draws every view outline into a cell buffer the size of the
// canvas, labelling each box with the view name.
func drawViews(snap *layout.Snapshot) string {
	width, height := int(snap.Width), int(snap.Height)
	if width <= 0 || height <= 0 {
		return ""
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = []rune(strings.Repeat(" ", width))
	}
	set := func(x, y int, r rune) {
		if x >= 0 && x < width && y >= 0 && y < height {
			cells[y][x] = r
		}
	}

	for _, v := range snap.Views {
		x0, y0 := int(math.Round(v.Rect.X)), int(math.Round(v.Rect.Y))
		x1 := max(x0, int(math.Round(v.Rect.X+v.Rect.Width))-1)
		y1 := max(y0, int(math.Round(v.Rect.Y+v.Rect.Height))-1)
		if x0 == x1 || y0 == y1 {
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					set(x, y, '·')
				}
			}
			continue
		}
		for x := x0 + 1; x < x1; x++ {
			set(x, y0, '─')
			set(x, y1, '─')
		}
		for y := y0 + 1; y < y1; y++ {
			set(x0, y, '│')
			set(x1, y, '│')
		}
		set(x0, y0, '┌')
		set(x1, y0, '┐')
		set(x0, y1, '└')
		set(x1, y1, '┘')
		for i, r := range []rune(v.Name) {
			if x := x0 + 2 + i; x < x1-1 {
				set(x, y0, r)
			}
		}
	}

	lines := make([]string, height)
	for y, row := range cells {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}
