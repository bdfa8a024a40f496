// Package ui is the interactive viewer: the three views on tabs, a
// scrollable viewport, and in-place reloading of the session file.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pveldandi/recap/internal/dataset"
	"github.com/pveldandi/recap/internal/render"
)

// LoadFunc re-runs the load pipeline. The app calls it once at startup and
// again on each reload request.
type LoadFunc func() (*dataset.Dataset, error)

type tab int

const (
	tabTimeline tab = iota
	tabCharts
	tabDetail
)

var tabLabels = []string{"Timeline", "Charts", "Detail"}

type Model struct {
	load     LoadFunc
	renderer *render.Renderer
	theme    Theme

	ds     *dataset.Dataset
	active tab
	vp     viewport.Model
	ready  bool
	status string
	width  int
	height int
}

// Run starts the TUI. The initial load must already have succeeded; later
// reload failures keep the current dataset and surface the error in the
// status line.
func Run(load LoadFunc, rc *render.Config) error {
	ds, err := load()
	if err != nil {
		return err
	}

	m := Model{
		load:     load,
		renderer: render.NewRenderer(rc),
		theme:    DefaultTheme,
		ds:       ds,
		status:   fmt.Sprintf("loaded %s", ds.Source),
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 2
		footerHeight := 1
		if !m.ready {
			m.vp = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = msg.Height - headerHeight - footerHeight
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "1":
			m.active = tabTimeline
			m.refreshContent()
		case "2":
			m.active = tabCharts
			m.refreshContent()
		case "3":
			m.active = tabDetail
			m.refreshContent()
		case "tab", "right", "l":
			m.active = (m.active + 1) % tab(len(tabLabels))
			m.refreshContent()
		case "shift+tab", "left", "h":
			m.active = (m.active + tab(len(tabLabels)) - 1) % tab(len(tabLabels))
			m.refreshContent()
		case "r":
			// A failed reload leaves the current dataset in place; derived
			// state is only ever replaced wholesale after a clean load.
			ds, err := m.load()
			if err != nil {
				m.status = m.theme.Error.Render(fmt.Sprintf("reload failed: %v", err))
				return m, nil
			}
			m.ds = ds
			m.status = fmt.Sprintf("reloaded %s (%d records)", ds.Source, len(ds.Records))
			m.refreshContent()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// refreshContent re-renders the active view into the viewport, replacing
// the previous content wholesale.
func (m *Model) refreshContent() {
	if !m.ready || m.ds == nil {
		return
	}
	var content string
	switch m.active {
	case tabTimeline:
		content = m.renderer.RenderTimeline(m.ds)
	case tabCharts:
		content = m.renderer.RenderCharts(m.ds)
	case tabDetail:
		content, _ = m.renderer.RenderDetail(m.ds)
	}
	m.vp.SetContent(content)
	m.vp.GotoTop()
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	tabs := make([]string, 0, len(tabLabels))
	for i, label := range tabLabels {
		if tab(i) == m.active {
			tabs = append(tabs, m.theme.ActiveTab.Render(fmt.Sprintf("%d:%s", i+1, label)))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(fmt.Sprintf("%d:%s", i+1, label)))
		}
	}
	header := m.theme.Title.Render("recap") + "  " + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	footer := m.theme.Status.Render(m.status) + "  " +
		m.theme.Hint.Render("1/2/3 views • tab cycle • r reload • q quit")

	return header + "\n\n" + m.vp.View() + "\n" + footer
}
