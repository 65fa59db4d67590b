package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

// App is the run browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	stairs *list.StairList
	bar    *status.Bar

	// request names the run to show; an empty RunID means the latest run.
	request messages.RunRequested

	run       *domain.SavedRun
	pane      messages.PaneType
	showAudit bool
	showHelp  bool
	err       error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser for the run with the given ID, or for the latest
// run of project when runID is empty.
func NewApp(ports *Ports, runID, project string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}
	if project == "" {
		project = domain.DefaultProject
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:   ports,
		ctx:     context.Background(),
		styles:  s,
		keymap:  km,
		stairs:  list.NewStairList(s),
		bar:     status.NewBar(s, km),
		request: messages.RunRequested{RunID: runID, Project: project},
		pane:    messages.PaneStairs,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("egress - runs"),
		a.loadRun(),
	)
}

// loadRun fetches the requested run off the event loop.
func (a *App) loadRun() tea.Cmd {
	req := a.request
	history := a.ports.History
	ctx := a.ctx
	return func() tea.Msg {
		var (
			run *domain.SavedRun
			err error
		)
		if req.RunID != "" {
			run, err = history.Get(ctx, req.RunID)
		} else {
			run, err = history.Latest(ctx, req.Project)
		}
		return messages.RunLoaded{Run: run, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.RunLoaded:
		a.applyRun(msg)
		return a, nil

	case messages.PaneChanged:
		a.setPane(msg.Pane)
		return a, nil

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.bar.SetState(status.StateError)
		a.bar.SetMessage(msg.Err.Error())
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := msg.String()

	if keymap.Matches(k, a.keymap.Quit) {
		return a, tea.Quit
	}

	if keymap.Matches(k, a.keymap.Help) {
		a.showHelp = !a.showHelp
		if a.showHelp {
			a.bar.SetState(status.StateHelp)
		} else {
			a.restoreState()
		}
		return a, nil
	}
	if a.showHelp {
		return a, nil
	}

	switch {
	case keymap.Matches(k, a.keymap.NextPane):
		a.setPane(a.pane.Next())
	case keymap.Matches(k, a.keymap.PrevPane):
		a.setPane(a.pane.Prev())
	case keymap.Matches(k, a.keymap.Reload):
		a.bar.SetState(status.StateLoading)
		return a, a.loadRun()
	case keymap.Matches(k, a.keymap.Audit):
		if a.pane == messages.PaneStairs {
			a.showAudit = !a.showAudit
		}
	case a.pane == messages.PaneStairs:
		a.stairs, _ = a.stairs.Update(msg)
	}

	return a, nil
}

func (a *App) applyRun(msg messages.RunLoaded) {
	if msg.Err != nil {
		a.err = msg.Err
		a.run = nil
		a.stairs.SetStairs(nil)
		a.bar.SetState(status.StateError)
		a.bar.SetMessage(msg.Err.Error())
		return
	}

	a.err = nil
	a.run = msg.Run
	a.stairs.SetStairs(msg.Run.Result.Stairs)
	a.restoreState()
}

// restoreState resets the status bar from the loaded run.
func (a *App) restoreState() {
	switch {
	case a.err != nil:
		a.bar.SetState(status.StateError)
	case a.run == nil:
		a.bar.SetState(status.StateLoading)
	default:
		over := 0
		for _, ps := range a.run.Result.Stairs {
			if ps.Stair.IsOverCapacity() {
				over++
			}
		}
		a.bar.SetRun(a.run.Summary.ID, len(a.run.Result.Stairs), over)
		a.bar.SetState(status.StateReady)
	}
	a.bar.SetStairPane(a.pane == messages.PaneStairs)
}

func (a *App) setPane(p messages.PaneType) {
	a.pane = p
	a.bar.SetStairPane(p == messages.PaneStairs)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch {
	case a.showHelp:
		body = a.viewHelp()
	case a.err != nil:
		body = a.styles.Error.Render(a.err.Error())
	case a.run == nil:
		body = a.styles.Muted.Render("Loading run...")
	default:
		body = a.viewPane()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.viewHeader(),
		a.viewTabs(),
		"",
		body,
		"",
		a.bar.View(),
	)
}

func (a *App) viewHeader() string {
	title := a.styles.Title.Render("egress")
	if a.run == nil {
		return title
	}
	sum := a.run.Summary
	meta := fmt.Sprintf("run %s  project %s  %s  %d levels",
		sum.ID, sum.Project, sum.CreatedAt.Format("2006-01-02 15:04"), sum.LevelCount)
	if a.run.Result.NoOp {
		meta += "  (no-op)"
	}
	return title + "  " + a.styles.Muted.Render(meta)
}

func (a *App) viewTabs() string {
	tabs := make([]string, 0, len(messages.Panes()))
	for _, p := range messages.Panes() {
		if p == a.pane {
			tabs = append(tabs, a.styles.ActiveTab.Render(p.String()))
		} else {
			tabs = append(tabs, a.styles.Tab.Render(p.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (a *App) viewPane() string {
	switch a.pane {
	case messages.PaneStairs:
		return a.viewStairs()
	case messages.PaneOccupancy:
		return a.viewOccupancy()
	case messages.PaneOutcomes:
		return a.viewOutcomes()
	case messages.PaneWarnings:
		return a.viewWarnings()
	}
	return ""
}

func (a *App) viewStairs() string {
	if a.run.Result.NoOp {
		return a.styles.Muted.Render("Fewer than two levels; no stairs were planned.")
	}

	ps := a.stairs.SelectedStair()
	if ps == nil {
		return a.stairs.View()
	}

	detailWidth := a.width / 2
	if detailWidth < 30 {
		return a.stairs.View() + "\n\n" + a.viewStairDetail(ps)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(a.width-detailWidth).Render(a.stairs.View()),
		a.styles.Panel.Width(detailWidth-2).Render(a.viewStairDetail(ps)),
	)
}

func (a *App) viewStairDetail(ps *domain.PlacedStair) string {
	c := ps.Config
	lines := []string{
		a.styles.Subtitle.Render(ps.Stair.Name),
		a.styles.Muted.Render(ps.Stair.ID),
		"",
		fmt.Sprintf("Tread width   %.3f m", c.TreadWidth),
		fmt.Sprintf("Risers        %d x %.4f m", c.RiserCount, c.RiserHeight),
		fmt.Sprintf("Treads        %d + %d x %.3f m", c.FirstFlightTreads, c.SecondFlightTreads, c.TreadDepth),
		fmt.Sprintf("Landing       %.3f m", c.RealLandingDepth),
		fmt.Sprintf("Footprint     %.3f x %.3f m", c.Width, c.Length),
		fmt.Sprintf("Origin        %s  rot %.1f", ps.Stair.Transform.Origin, ps.Stair.Transform.Rotation),
		a.styles.Load(ps.Stair.Load, ps.Stair.Capacity).
			Render(fmt.Sprintf("Load          %d of %d", ps.Stair.Load, ps.Stair.Capacity)),
	}
	if c.MinTreadWidthOverridden {
		lines = append(lines, a.styles.Warning.Render(
			fmt.Sprintf("Min width     %.3f m (override)", c.AbsoluteMinTreadWidth)))
	}

	if a.showAudit {
		lines = append(lines, "", a.styles.Subtitle.Render("Audit"))
		for _, e := range c.Log.Entries() {
			lines = append(lines, a.styles.Muted.Render("  "+e))
		}
		for _, e := range ps.Stair.Audit {
			lines = append(lines, a.styles.Normal.Render("  "+e))
		}
	}

	return strings.Join(lines, "\n")
}

func (a *App) viewOccupancy() string {
	recs := a.run.Result.Occupancy
	if len(recs) == 0 {
		return a.styles.Muted.Render("No levels")
	}
	lines := make([]string, 0, len(recs))
	for _, r := range recs {
		line := fmt.Sprintf("%-20s  %8.3f m  %5d  %s", r.LevelName, r.Elevation, r.Occupants, r.Source)
		if r.Source == domain.OccupancySourceOverride {
			lines = append(lines, a.styles.Warning.Render(line))
		} else {
			lines = append(lines, a.styles.Normal.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewOutcomes() string {
	outcomes := a.run.Result.Outcomes
	if len(outcomes) == 0 {
		return a.styles.Muted.Render("No overrides")
	}
	lines := make([]string, 0, len(outcomes))
	for _, o := range outcomes {
		line := fmt.Sprintf("%-9s %-9s %s", o.Status, o.Kind, o.OverrideID)
		if o.StairID != "" {
			line += "  -> " + o.StairID
		}
		if o.Ambiguous() {
			line += fmt.Sprintf("  (%d candidates)", o.Candidates)
		}
		switch o.Status {
		case domain.OutcomeApplied:
			lines = append(lines, a.styles.Success.Render(line))
		case domain.OutcomeSkipped:
			lines = append(lines, a.styles.Warning.Render(line))
		default:
			lines = append(lines, a.styles.Error.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewWarnings() string {
	warnings := a.run.Result.Warnings
	if len(warnings) == 0 {
		return a.styles.Muted.Render("No warnings")
	}
	lines := make([]string, 0, len(warnings))
	for _, w := range warnings {
		lines = append(lines, a.styles.Warning.Render("! "+w.String()))
	}
	return strings.Join(lines, "\n")
}

func (a *App) viewHelp() string {
	var b strings.Builder
	b.WriteString(a.styles.Subtitle.Render("Keys"))
	b.WriteString("\n\n")
	for _, group := range a.keymap.FullHelp() {
		for _, k := range group {
			h := k.Help()
			b.WriteString(fmt.Sprintf("  %-10s %s\n", h.Key, h.Desc))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run starts the browser as a full-screen program.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// LoadedRun returns the loaded run, if any.
func (a *App) LoadedRun() *domain.SavedRun {
	return a.run
}

// Pane returns the active pane.
func (a *App) Pane() messages.PaneType {
	return a.pane
}

// Err returns the last error.
func (a *App) Err() error {
	return a.err
}

// Ready reports whether the terminal size is known.
func (a *App) Ready() bool {
	return a.ready
}

// AuditVisible reports whether the stair audit trail is shown.
func (a *App) AuditVisible() bool {
	return a.showAudit
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.bar.SetWidth(width)
	// header, tabs, blank, blank, status bar
	a.stairs.SetDimensions(width/2, height-5)
}
