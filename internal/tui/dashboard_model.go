package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/casedesk/internal/casemodel"
	"github.com/rshade/casedesk/internal/engine"
	"github.com/rshade/casedesk/internal/guidance"
	"github.com/rshade/casedesk/internal/logging"
	"github.com/rshade/casedesk/internal/viewstate"
)

// DashboardState represents the lifecycle state of the dashboard.
type DashboardState int

const (
	// DashboardStateReady is the normal interactive state.
	DashboardStateReady DashboardState = iota
	// DashboardStateQuitting indicates the program is exiting.
	DashboardStateQuitting
)

// CaseReloadedMsg replaces the displayed case record.
type CaseReloadedMsg struct {
	Record casemodel.CaseRecord
}

// CaseReloadErrorMsg reports a failed reload. The last good record stays on
// screen.
type CaseReloadErrorMsg struct {
	Err error
}

// Default dimensions used until the first WindowSizeMsg arrives.
const (
	dashboardDefaultWidth  = 100
	dashboardDefaultHeight = 30
)

// DashboardOptions configures a DashboardModel.
type DashboardOptions struct {
	// Engine carries currency and locale settings.
	Engine engine.Options
	// Width is the initial render width.
	Width int
	// Detailed starts the dashboard in detailed view.
	Detailed bool
	// Markdown renders the legal context through glamour.
	Markdown bool
}

// DashboardModel is the Bubble Tea model for the case dashboard.
type DashboardModel struct {
	ctx context.Context

	record   casemodel.CaseRecord
	resolver *guidance.Resolver
	guidance *guidance.Guidance
	view     viewstate.State
	opts     DashboardOptions

	state     DashboardState
	reloadErr error

	keys     dashboardKeyMap
	help     help.Model
	viewport viewport.Model
	ready    bool
	markdown markdownRenderer

	width  int
	height int
}

// NewDashboardModel creates a dashboard for record. A nil resolver uses the
// built-in guidance catalog.
func NewDashboardModel(
	ctx context.Context,
	record casemodel.CaseRecord,
	resolver *guidance.Resolver,
	opts DashboardOptions,
) *DashboardModel {
	if resolver == nil {
		resolver = guidance.NewResolver(nil, 0)
	}
	if opts.Width <= 0 {
		opts.Width = dashboardDefaultWidth
	}
	if opts.Engine == (engine.Options{}) {
		opts.Engine = engine.DefaultOptions()
	}

	view := viewstate.New()
	if opts.Detailed {
		view = viewstate.NewDetailed()
	}

	m := &DashboardModel{
		ctx:      ctx,
		record:   record,
		resolver: resolver,
		view:     view,
		opts:     opts,
		state:    DashboardStateReady,
		keys:     defaultDashboardKeys(),
		help:     help.New(),
		width:    opts.Width,
		height:   dashboardDefaultHeight,
	}
	m.resolveGuidance()
	return m
}

// Init initializes the model.
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height)
			m.ready = true
		}
		m.refresh()
		return m, nil

	case CaseReloadedMsg:
		return m.handleReloaded(msg)

	case CaseReloadErrorMsg:
		m.reloadErr = msg.Err
		logging.FromContext(m.ctx).Warn().
			Str("component", "tui").
			Err(msg.Err).
			Msg("case reload failed, keeping last good record")
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *DashboardModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.state = DashboardStateQuitting
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.view.ToggleDetailed()
		logging.FromContext(m.ctx).Debug().
			Str("component", "tui").
			Str("view", m.view.Mode().String()).
			Msg("view toggled")
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refresh()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *DashboardModel) handleReloaded(msg CaseReloadedMsg) (tea.Model, tea.Cmd) {
	m.record = msg.Record
	m.reloadErr = nil
	m.resolveGuidance()
	logging.FromContext(m.ctx).Info().
		Str("component", "tui").
		Str("case_id", msg.Record.ID).
		Msg("case reloaded")
	m.refresh()
	return m, nil
}

// resolveGuidance looks up guidance for the current record. A resolution
// failure is surfaced in the error banner.
func (m *DashboardModel) resolveGuidance() {
	g, err := engine.ResolveGuidance(m.ctx, m.resolver, m.record)
	if err != nil {
		m.reloadErr = fmt.Errorf("resolving guidance: %w", err)
	}
	m.guidance = g
}

// Assessment returns the assessment for the current record and view.
func (m *DashboardModel) Assessment() engine.Assessment {
	return engine.NewAssessment(m.record, m.guidance, m.view, m.opts.Engine)
}

// IsDetailed reports whether the detailed view is active.
func (m *DashboardModel) IsDetailed() bool {
	return m.view.IsDetailed()
}

// Record returns the displayed case record.
func (m *DashboardModel) Record() casemodel.CaseRecord {
	return m.record
}

// Err returns the last reload error, if any.
func (m *DashboardModel) Err() error {
	return m.reloadErr
}

// State returns the lifecycle state.
func (m *DashboardModel) State() DashboardState {
	return m.state
}

// refresh recomputes the viewport content after any state change.
func (m *DashboardModel) refresh() {
	if !m.ready {
		return
	}
	a := m.Assessment()
	top := m.renderTop(a)
	footer := m.help.View(m.keys)

	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-lipgloss.Height(top)-lipgloss.Height(footer))
	m.viewport.SetContent(renderDashboardBody(a, clampWidth(m.width), m.legalRenderer()))
}

func (m *DashboardModel) legalRenderer() legalRenderFunc {
	if m.opts.Markdown {
		return m.markdown.render
	}
	return plainText
}

// View renders the current view.
func (m *DashboardModel) View() string {
	if m.state == DashboardStateQuitting {
		return ""
	}

	a := m.Assessment()
	top := m.renderTop(a)
	footer := m.help.View(m.keys)

	var body string
	if m.ready {
		body = m.viewport.View()
	} else {
		body = renderDashboardBody(a, clampWidth(m.width), m.legalRenderer())
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, body, footer)
}

// renderTop renders the header and, when set, the error banner.
func (m *DashboardModel) renderTop(a engine.Assessment) string {
	header := RenderDashboardHeader(a, m.width)
	if m.reloadErr == nil {
		return header
	}
	banner := CriticalStyle.
		Width(clampWidth(m.width)).
		Render(IconWarning + " " + m.reloadErr.Error())
	return lipgloss.JoinVertical(lipgloss.Left, header, banner)
}
