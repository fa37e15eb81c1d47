// Package tui is the interactive plugin browser: a search field over the
// plugin catalog, a scrollable list, a host toggle and a launch action.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/lvim-tech/lv2launch/pkg/catalog"
	"github.com/lvim-tech/lv2launch/pkg/launch"
)

const (
	// Title is shown in the header.
	Title = "Jalv Plugin Loader"
	// ErrorTitle heads the launch error dialog.
	ErrorTitle = "Plugin Loader Error"
	// DefaultInfo is the info line before anything is selected.
	DefaultInfo = "Info"
)

// chrome is the number of lines used by everything but the list.
const chrome = 9

// Model is the bubbletea model of the plugin browser.
type Model struct {
	ctx    context.Context
	ctrl   *launch.Controller
	logger zerolog.Logger

	keys   KeyMap
	help   help.Model
	search textinput.Model

	subtitle string
	info     string
	dialog   string

	cursor int
	offset int
	width  int
	height int
}

// New builds the browser around ctrl. ctx bounds launches.
func New(ctx context.Context, ctrl *launch.Controller, logger zerolog.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "find ..."
	ti.Prompt = "/ "
	ti.CharLimit = 256
	ti.Width = 50
	ti.Focus()

	m := &Model{
		ctx:      ctx,
		ctrl:     ctrl,
		logger:   logger,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		search:   ti,
		subtitle: fmt.Sprintf("%d plugins found", ctrl.View().Total()),
		info:     DefaultInfo,
		width:    80,
		height:   24,
	}
	ctrl.Observe(launch.ObserverFunc(m.selectionChanged))
	m.syncLaunchKey()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.dialog != "" {
			if key.Matches(msg, m.keys.Dismiss) {
				m.dialog = ""
			}
			return m, nil
		}
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.listHeight())
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.listHeight())
		return m, nil

	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-m.ctrl.View().Len())
		return m, nil

	case key.Matches(msg, m.keys.End):
		m.moveCursor(m.ctrl.View().Len())
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		if e, ok := m.ctrl.View().At(m.cursor); ok {
			m.dispatch(launch.EntryActivated{Entry: e})
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.dispatch(launch.VariantToggled{})
		return m, nil

	case key.Matches(msg, m.keys.Launch):
		m.dispatch(launch.LaunchRequested{})
		return m, nil

	case key.Matches(msg, m.keys.Rebuild):
		m.search.Reset()
		m.dispatch(launch.QueryChanged{Query: ""})
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != before {
		m.dispatch(launch.QueryChanged{Query: q})
	}
	return m, cmd
}

// dispatch forwards ev to the controller and reflects the outcome.
func (m *Model) dispatch(ev launch.Event) {
	if _, ok := ev.(launch.LaunchRequested); ok {
		if sel, ok := m.ctrl.Selection(); ok {
			m.info = "... loading " + sel.Name
		}
	}

	err := m.ctrl.Handle(m.ctx, ev)

	if _, ok := ev.(launch.QueryChanged); ok {
		m.cursor = 0
		m.offset = 0
	}
	m.syncLaunchKey()

	if err == nil {
		return
	}
	var launchErr *launch.LaunchError
	if errors.As(err, &launchErr) {
		m.dialog = launchErr.Error()
		return
	}
	m.logger.Warn().Err(err).Msg("event rejected")
}

func (m *Model) selectionChanged(e catalog.Entry) {
	m.info = fmt.Sprintf("%s - %s", e.Name, e.Identifier)
	m.subtitle = e.Name
}

func (m *Model) syncLaunchKey() {
	m.keys.Launch.SetEnabled(m.ctrl.CanLaunch())
}

func (m *Model) listHeight() int {
	return max(1, m.height-chrome)
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := m.ctrl.View().Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	h := m.listHeight()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+h {
		m.offset = m.cursor - h + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

// Cursor returns the index of the highlighted entry in the visible list.
func (m *Model) Cursor() int {
	return m.cursor
}

// Info returns the info line.
func (m *Model) Info() string {
	return m.info
}

// Subtitle returns the header subtitle.
func (m *Model) Subtitle() string {
	return m.subtitle
}

// Dialog returns the message of the open error dialog, if any.
func (m *Model) Dialog() (string, bool) {
	return m.dialog, m.dialog != ""
}

func (m *Model) View() string {
	if m.dialog != "" {
		return m.renderDialog()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderList())
	b.WriteString("\n")
	b.WriteString(InfoStyle.Width(max(0, m.width-2)).Render(m.info))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return AppStyle.Render(b.String())
}

func (m *Model) renderHeader() string {
	status := m.ctrl.Status()
	open := LaunchDisabledStyle.Render("▶ open")
	if status.HasSelection {
		open = LaunchEnabledStyle.Render("▶ open")
	}
	title := lipgloss.JoinHorizontal(lipgloss.Center,
		TitleStyle.Render(Title),
		"  ",
		HostStyle.Render(status.HostLabel),
		"  ",
		open,
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(m.subtitle))
}

func (m *Model) renderList() string {
	v := m.ctrl.View()
	h := m.listHeight()
	width := max(10, m.width-6)

	var lines []string
	if v.Len() == 0 {
		lines = append(lines, EmptyStyle.Render("no plugins match"))
	}

	sel, hasSel := m.ctrl.Selection()
	for i := m.offset; i < v.Len() && i < m.offset+h; i++ {
		e, _ := v.At(i)
		name := truncate(e.Name, width-2)
		switch {
		case i == m.cursor:
			lines = append(lines, SelectedItemStyle.Width(width).Render(name))
		case hasSel && e == sel:
			lines = append(lines, ActiveItemStyle.Render(name))
		default:
			lines = append(lines, ItemStyle.Render(name))
		}
	}

	label := fmt.Sprintf("Plugins %d/%d", v.Len(), v.Total())
	body := lipgloss.JoinVertical(lipgloss.Left, append([]string{SubtitleStyle.Render(label)}, lines...)...)
	return PanelStyle.Width(max(10, m.width-4)).Render(body)
}

func (m *Model) renderDialog() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		DialogTitleStyle.Render(ErrorTitle),
		"",
		m.dialog,
		DialogButtonStyle.Render("OK"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, DialogStyle.Render(body))
}

func truncate(s string, n int) string {
	if n <= 1 || lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) > n-1 {
		r = r[:n-1]
	}
	return string(r) + "…"
}
