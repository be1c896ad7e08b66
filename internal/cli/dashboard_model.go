package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/praxis/internal/contract"
	"github.com/alexanderramin/praxis/internal/domain"
)

// dashboardHistoryLimit caps how many past weeks the History tab shows.
const dashboardHistoryLimit = 8

type dashboardTab int

const (
	tabPlan dashboardTab = iota
	tabStatus
	tabHistory
)

var tabTitles = []string{"Plan", "Status", "History"}

// dashboardKeyMap holds the dashboard's key bindings.
type dashboardKeyMap struct {
	Quit    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Up      key.Binding
	Down    key.Binding
	Refresh key.Binding
}

func defaultDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		NextTab: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
		PrevTab: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev tab")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "day up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "day down")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

// dashboardLoadedMsg carries everything the three tabs render.
type dashboardLoadedMsg struct {
	status  *contract.StatusResponse
	health  *contract.HealthResponse
	plan    *domain.WeeklyPlan
	history []domain.HistoryEntry
	err     error
}

// dashboardModel is a read-only view over the local store. It never
// mutates state; plans and checks go through the HTTP API or wizard.
type dashboardModel struct {
	app  *App
	keys dashboardKeyMap

	tab     dashboardTab
	loading bool
	err     error

	status  *contract.StatusResponse
	health  *contract.HealthResponse
	plan    *domain.WeeklyPlan
	history []domain.HistoryEntry

	dayCursor int
	width     int
}

func newDashboardModel(app *App) *dashboardModel {
	return &dashboardModel{app: app, keys: defaultDashboardKeyMap(), loading: true, width: 80}
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.loadData()
}

func (m *dashboardModel) loadData() tea.Cmd {
	app := m.app
	return func() tea.Msg {
		ctx := context.Background()

		status, err := app.Status.Status(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}
		health, err := app.Status.Health(ctx)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		// An empty store is a state to render, not an error.
		plan, err := app.Plans.Latest(ctx)
		var nfe *contract.NotFoundError
		if err != nil && !errors.As(err, &nfe) {
			return dashboardLoadedMsg{err: err}
		}

		history, err := app.Reality.History(ctx, dashboardHistoryLimit)
		if err != nil {
			return dashboardLoadedMsg{err: err}
		}

		return dashboardLoadedMsg{status: status, health: health, plan: plan, history: history}
	}
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case dashboardLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = msg.status
		m.health = msg.health
		m.plan = msg.plan
		m.history = msg.history
		m.clampDayCursor()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % dashboardTab(len(tabTitles))
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + dashboardTab(len(tabTitles)) - 1) % dashboardTab(len(tabTitles))
		case key.Matches(msg, m.keys.Up):
			if m.tab == tabPlan && m.dayCursor > 0 {
				m.dayCursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.tab == tabPlan {
				m.dayCursor++
				m.clampDayCursor()
			}
		case key.Matches(msg, m.keys.Refresh):
			m.loading = true
			return m, m.loadData()
		default:
			switch msg.String() {
			case "1":
				m.tab = tabPlan
			case "2":
				m.tab = tabStatus
			case "3":
				m.tab = tabHistory
			}
		}
	}
	return m, nil
}

func (m *dashboardModel) clampDayCursor() {
	if m.plan == nil || len(m.plan.DailyActions) == 0 {
		m.dayCursor = 0
		return
	}
	if m.dayCursor >= len(m.plan.DailyActions) {
		m.dayCursor = len(m.plan.DailyActions) - 1
	}
	if m.dayCursor < 0 {
		m.dayCursor = 0
	}
}

// ── rendering ────────────────────────────────────────────────────────

func (m *dashboardModel) View() string {
	var b strings.Builder
	b.WriteString("\n  " + m.renderTabs() + "\n\n")

	switch {
	case m.loading:
		b.WriteString("  " + dim("Loading..."))
	case m.err != nil:
		b.WriteString("  " + styleRed.Render("Error: "+m.err.Error()))
	default:
		switch m.tab {
		case tabPlan:
			b.WriteString(m.renderPlanTab())
		case tabStatus:
			b.WriteString(m.renderStatusTab())
		case tabHistory:
			b.WriteString(m.renderHistoryTab())
		}
	}

	b.WriteString("\n\n  " + dim("tab/←→ switch · ↑↓ day · r refresh · q quit") + "\n")
	return b.String()
}

func (m *dashboardModel) renderTabs() string {
	parts := make([]string, len(tabTitles))
	for i, title := range tabTitles {
		if dashboardTab(i) == m.tab {
			parts[i] = styleHeader.Render(title)
		} else {
			parts[i] = dim(title)
		}
	}
	return strings.Join(parts, dim("  │  "))
}

func (m *dashboardModel) renderPlanTab() string {
	if m.plan == nil {
		return "  " + dim("No plans yet. Run `praxis serve` and generate one.")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %s %s  %s\n\n",
		styleBold.Render(m.plan.WeekID),
		dim(fmt.Sprintf("v%d", m.plan.Version)),
		dim("starts "+m.plan.StartDate)))

	b.WriteString("  " + styleHeader.Render("PRIORITIES") + "\n")
	for _, p := range m.plan.Priorities {
		b.WriteString("   " + styleGreen.Render("•") + " " + p + "\n")
	}
	b.WriteString("\n")

	for i, action := range m.plan.DailyActions {
		cursor := "  "
		dayStyle := styleFg
		if i == m.dayCursor {
			cursor = styleGreen.Render("▸ ")
			dayStyle = styleBold
		}
		mark := dim("·")
		if action.Completed {
			mark = styleGreen.Render("✓")
		}
		b.WriteString(fmt.Sprintf("  %s%s %s  %s %s\n",
			cursor,
			mark,
			dayStyle.Render(padRight(string(action.Day), 4)),
			padRight(action.Action, 46),
			dim(fmt.Sprintf("%dm", action.TimeEstimateMinutes))))
	}

	if len(m.plan.DailyActions) > 0 {
		selected := m.plan.DailyActions[m.dayCursor]
		if selected.DetailedPlan != "" {
			b.WriteString("\n  " + dim(selected.DetailedPlan) + "\n")
		}
		if selected.ActualNotes != "" {
			b.WriteString("  " + styleBlue.Render("notes: "+selected.ActualNotes) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *dashboardModel) renderStatusTab() string {
	if m.status == nil {
		return "  " + dim("No status available.")
	}

	var b strings.Builder
	b.WriteString("  " + styleHeader.Render("WEEK "+m.status.CurrentWeekID) + "\n\n")

	profileLine := styleRed.Render("missing") + dim("  (run `praxis init`)")
	if m.status.ProfileExists {
		profileLine = styleGreen.Render("ready")
	}
	b.WriteString("  Profile        " + profileLine + "\n")

	planLine := dim("none for the current week")
	if m.status.ActivePlan != nil {
		planLine = fmt.Sprintf("%s %s", styleGreen.Render(m.status.ActivePlan.WeekID),
			dim(fmt.Sprintf("v%d", m.status.ActivePlan.Version)))
	}
	b.WriteString("  Active plan    " + planLine + "\n")
	b.WriteString(fmt.Sprintf("  Plans total    %d\n", m.status.Statistics.TotalPlans))
	b.WriteString(fmt.Sprintf("  Weeks tracked  %d\n", m.status.Statistics.TotalHistoryEntries))

	if m.health != nil {
		providerLine := styleYellow.Render(m.health.LLMProvider + " (not configured)")
		if m.health.LLMConfigured {
			providerLine = styleGreen.Render(m.health.LLMProvider)
		}
		b.WriteString("\n  Provider       " + providerLine + "\n")
		b.WriteString("  Data dir       " + dim(m.health.DataDirectory) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *dashboardModel) renderHistoryTab() string {
	if len(m.history) == 0 {
		return "  " + dim("Nothing tracked yet.")
	}

	var b strings.Builder
	b.WriteString("  " + styleHeader.Render("RECENT WEEKS") + "\n\n")
	for _, entry := range m.history {
		rate := "        "
		if entry.FinalCompletionRate != nil {
			rate = renderProgress(*entry.FinalCompletionRate, 6) + " " +
				completionStyle(*entry.FinalCompletionRate).Render(fmt.Sprintf("%3.0f%%", *entry.FinalCompletionRate*100))
		}
		b.WriteString(fmt.Sprintf("  %s %s %s\n",
			styleBold.Render(entry.WeekID),
			dim(fmt.Sprintf("v%d", entry.Plan.Version)),
			rate))
		if entry.DeviationReport != nil {
			b.WriteString("    " + dim(truncate(entry.DeviationReport.DeviationSummary, m.width-8)) + "\n")
		}
		if n := len(entry.Adjustments); n > 0 {
			b.WriteString("    " + styleYellow.Render(fmt.Sprintf("%d adjustment(s)", n)) +
				dim(" last: "+truncate(entry.Adjustments[n-1].Reason, m.width-30)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, max int) string {
	if max < 10 {
		max = 10
	}
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
