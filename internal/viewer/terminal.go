package viewer

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kinograph/internal/chart"
	"github.com/san-kum/kinograph/internal/logger"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

var ansiColors = map[string]asciigraph.AnsiColor{
	"red":   asciigraph.Red,
	"green": asciigraph.Green,
	"blue":  asciigraph.Blue,
}

// Terminal shows the figure as three ASCII plots in the alternate screen.
type Terminal struct {
	opts []tea.ProgramOption
}

func NewTerminal(opts ...tea.ProgramOption) *Terminal {
	return &Terminal{opts: opts}
}

func (t *Terminal) Show(ctx context.Context, fig *chart.Figure) error {
	opts := append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, t.opts...)
	p := tea.NewProgram(newTerminalModel(fig), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal viewer: %w", err)
	}
	logger.L().Debug("viewer.terminal.closed")
	return nil
}

type terminalModel struct {
	fig           *chart.Figure
	width, height int
}

func newTerminalModel(fig *chart.Figure) terminalModel {
	return terminalModel{fig: fig, width: 120, height: 40}
}

func (m terminalModel) Init() tea.Cmd { return nil }

func (m terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m terminalModel) View() string {
	layout, err := chart.Layout(chart.Mosaic())
	if err != nil {
		return err.Error()
	}

	// title, hint and two rows of borders take the remaining lines
	plotRows := max((m.height-10)/2, 3)

	boxes := make(map[int]string, len(m.fig.Panels))
	for _, panel := range m.fig.Panels {
		rect := layout[panel.Index]
		outer := int(rect.Width() * float64(m.width))
		boxes[panel.Index] = m.renderPanel(panel, max(outer-4, 10), plotRows)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, boxes[0], boxes[1])
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("kinograph"),
		top,
		boxes[2],
		hintStyle.Render("[Q] QUIT"),
	)
}

// renderPanel plots one series; width is the inner width of the box.
func (m terminalModel) renderPanel(panel chart.Panel, width, height int) string {
	series := m.fig.SeriesFor(panel)

	// asciigraph reserves room on the left for the y labels
	graph := "no data"
	if len(series) > 0 {
		graph = asciigraph.Plot(series,
			asciigraph.Height(height),
			asciigraph.Width(max(width-16, 2)),
			asciigraph.Precision(2),
			asciigraph.SeriesColors(ansiColors[panel.ColorName]),
			asciigraph.Caption(panel.YLabel),
		)
	}

	axis := chart.XLabel
	if n := len(m.fig.Axis); n > 0 {
		axis = fmt.Sprintf("%s  %.3f … %.3f", chart.XLabel, m.fig.Axis[0], m.fig.Axis[n-1])
	}

	c := panel.Color
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).
		Padding(0, 1).
		Width(width)

	return style.Render(strings.Join([]string{graph, axisStyle.Render(axis)}, "\n"))
}
