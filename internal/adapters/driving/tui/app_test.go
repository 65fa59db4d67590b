package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

func sampleRun() *domain.SavedRun {
	cfg := domain.StairConfig{
		TreadWidth:  1.1176,
		RiserCount:  20,
		RiserHeight: 0.18,
		Capacity:    146,
		Log:         domain.NewAuditLog("Riser count is 20"),
	}
	return &domain.SavedRun{
		Summary: domain.RunSummary{
			ID:         "run-0001",
			Project:    "tower",
			CreatedAt:  time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC),
			LevelCount: 3,
			StairCount: 2,
		},
		Result: domain.RunResult{
			ID:      "run-0001",
			Project: "tower",
			Occupancy: []domain.OccupancyRecord{
				{LevelName: "Level 1", Occupants: 65, Source: domain.OccupancySourceDefault},
				{LevelName: "Level 2", Occupants: 200, Source: domain.OccupancySourceOverride},
			},
			Warnings: []domain.Warning{{Message: "Level 3 has no floor area", Count: 2}},
			Stairs: []domain.PlacedStair{
				{
					Stair: domain.Stair{
						ID: "s1", Name: "Stair 1", Origin: domain.StairOriginCore,
						Load: 100, Capacity: 146, Audit: []string{"Renamed to Stair 1"},
					},
					Config: cfg,
				},
				{
					Stair:  domain.Stair{ID: "s2", Name: "Stair 2", Origin: domain.StairOriginAddition, Load: 200, Capacity: 146},
					Config: cfg,
				},
			},
			Outcomes: []domain.OverrideOutcome{
				{OverrideID: "ovd-1", Kind: domain.OverrideKindMove, Status: domain.OutcomeApplied, Candidates: 1, StairID: "s1"},
				{OverrideID: "ovd-2", Kind: domain.OverrideKindRemoval, Status: domain.OutcomeSkipped},
				{OverrideID: "ovd-3", Kind: domain.OverrideKindProperty, Status: domain.OutcomeRejected, Candidates: 2},
			},
		},
	}
}

func newTestApp(t *testing.T, history *MockRunHistory, runID string) *App {
	t.Helper()
	app, err := NewApp(NewPorts(history), runID, "tower")
	require.NoError(t, err)
	app.SetDimensions(120, 40)
	return app
}

// loaded runs the app's load command and feeds the result back in.
func loaded(t *testing.T, app *App) {
	t.Helper()
	msg := app.loadRun()()
	app.Update(msg)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewApp_Success(t *testing.T) {
	app, err := NewApp(NewPorts(&MockRunHistory{}), "", "")

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.PaneStairs, app.Pane())
	assert.Equal(t, domain.DefaultProject, app.request.Project)
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{}, "", "")

	assert.ErrorIs(t, err, ErrMissingRunHistory)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	app, _ := NewApp(NewPorts(&MockRunHistory{}), "", "")

	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	assert.Same(t, app, app.WithContext(ctx))
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_Init(t *testing.T) {
	app, _ := NewApp(NewPorts(&MockRunHistory{}), "", "")

	assert.NotNil(t, app.Init())
}

func TestApp_LoadsLatestWhenNoID(t *testing.T) {
	history := &MockRunHistory{
		LatestFunc: func(_ context.Context, project string) (*domain.SavedRun, error) {
			return sampleRun(), nil
		},
	}
	app := newTestApp(t, history, "")

	loaded(t, app)

	assert.Equal(t, []string{"tower"}, history.latestCalls)
	assert.Empty(t, history.getCalls)
	require.NotNil(t, app.LoadedRun())
	assert.NoError(t, app.Err())
}

func TestApp_LoadsByID(t *testing.T) {
	history := &MockRunHistory{
		GetFunc: func(_ context.Context, id string) (*domain.SavedRun, error) {
			return sampleRun(), nil
		},
	}
	app := newTestApp(t, history, "run-0001")

	loaded(t, app)

	assert.Equal(t, []string{"run-0001"}, history.getCalls)
	assert.Empty(t, history.latestCalls)
	assert.Contains(t, app.View(), "run run-0001")
}

func TestApp_LoadError(t *testing.T) {
	app := newTestApp(t, &MockRunHistory{}, "")

	loaded(t, app)

	assert.ErrorIs(t, app.Err(), domain.ErrNoRuns)
	assert.Nil(t, app.LoadedRun())
	assert.Contains(t, app.View(), "no saved runs")
}

func TestApp_ViewBeforeReady(t *testing.T) {
	app, _ := NewApp(NewPorts(&MockRunHistory{}), "", "")

	assert.Equal(t, "Initialising...", app.View())
}

func TestApp_StairPane(t *testing.T) {
	app := newTestApp(t, &MockRunHistory{LatestFunc: func(context.Context, string) (*domain.SavedRun, error) {
		return sampleRun(), nil
	}}, "")
	loaded(t, app)

	view := app.View()
	assert.Contains(t, view, "Stairs (2)")
	assert.Contains(t, view, "200/146 !")
	assert.Contains(t, view, "Tread width   1.118 m")
	assert.Contains(t, view, "1 over capacity")
	assert.NotContains(t, view, "Renamed to Stair 1")

	app.Update(key("a"))
	assert.True(t, app.AuditVisible())
	view = app.View()
	assert.Contains(t, view, "Renamed to Stair 1")
	assert.Contains(t, view, "Riser count is 20")

	app.Update(key("down"))
	assert.Contains(t, app.View(), "s2")
}

func TestApp_PaneCycling(t *testing.T) {
	app := newTestApp(t, &MockRunHistory{LatestFunc: func(context.Context, string) (*domain.SavedRun, error) {
		return sampleRun(), nil
	}}, "")
	loaded(t, app)

	app.Update(key("tab"))
	assert.Equal(t, messages.PaneOccupancy, app.Pane())
	assert.Contains(t, app.View(), "Level 2")
	assert.Contains(t, app.View(), "override")

	app.Update(key("tab"))
	assert.Equal(t, messages.PaneOutcomes, app.Pane())
	view := app.View()
	assert.Contains(t, view, "ovd-1  -> s1")
	assert.Contains(t, view, "skipped")
	assert.Contains(t, view, "(2 candidates)")

	app.Update(key("tab"))
	assert.Equal(t, messages.PaneWarnings, app.Pane())
	assert.Contains(t, app.View(), "Level 3 has no floor area (x2)")

	app.Update(key("tab"))
	assert.Equal(t, messages.PaneStairs, app.Pane())

	app.Update(key("shift+tab"))
	assert.Equal(t, messages.PaneWarnings, app.Pane())
}

func TestApp_AuditOnlyOnStairPane(t *testing.T) {
	app := newTestApp(t, &MockRunHistory{}, "")
	app.Update(messages.PaneChanged{Pane: messages.PaneOutcomes})

	app.Update(key("a"))

	assert.False(t, app.AuditVisible())
}

func TestApp_EmptyPanes(t *testing.T) {
	run := sampleRun()
	run.Result.Outcomes = nil
	run.Result.Warnings = nil
	app := newTestApp(t, &MockRunHistory{LatestFunc: func(context.Context, string) (*domain.SavedRun, error) {
		return run, nil
	}}, "")
	loaded(t, app)

	app.Update(messages.PaneChanged{Pane: messages.PaneOutcomes})
	assert.Contains(t, app.View(), "No overrides")

	app.Update(messages.PaneChanged{Pane: messages.PaneWarnings})
	assert.Contains(t, app.View(), "No warnings")
}

func TestApp_NoOpRun(t *testing.T) {
	run := sampleRun()
	run.Result.NoOp = true
	run.Result.Stairs = nil
	app := newTestApp(t, &MockRunHistory{LatestFunc: func(context.Context, string) (*domain.SavedRun, error) {
		return run, nil
	}}, "")
	loaded(t, app)

	view := app.View()
	assert.Contains(t, view, "(no-op)")
	assert.Contains(t, view, "no stairs were planned")
}

func TestApp_HelpToggle(t *testing.T) {
	app := newTestApp(t, &MockRunHistory{LatestFunc: func(context.Context, string) (*domain.SavedRun, error) {
		return sampleRun(), nil
	}}, "")
	loaded(t, app)

	app.Update(key("?"))
	assert.Contains(t, app.View(), "Keys")

	// Pane keys are ignored while help is open.
	app.Update(key("tab"))
	assert.Equal(t, messages.PaneStairs, app.Pane())

	app.Update(key("?"))
	assert.Contains(t, app.View(), "Stairs (2)")
}

func TestApp_Reload(t *testing.T) {
	history := &MockRunHistory{LatestFunc: func(context.Context, string) (*domain.SavedRun, error) {
		return sampleRun(), nil
	}}
	app := newTestApp(t, history, "")
	loaded(t, app)

	_, cmd := app.Update(key("r"))
	require.NotNil(t, cmd)
	app.Update(cmd())

	assert.Len(t, history.latestCalls, 2)
	assert.NotNil(t, app.LoadedRun())
}

func TestApp_Quit(t *testing.T) {
	app := newTestApp(t, &MockRunHistory{}, "")

	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := app.Update(key(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, tea.Quit(), cmd(), k)
	}
}

func TestApp_ErrorOccurred(t *testing.T) {
	app := newTestApp(t, &MockRunHistory{}, "")

	app.Update(messages.ErrorOccurred{Err: errors.New("disk gone")})

	assert.EqualError(t, app.Err(), "disk gone")
	assert.Contains(t, app.View(), "Error: disk gone")
}

func TestApp_WindowSize(t *testing.T) {
	app, _ := NewApp(NewPorts(&MockRunHistory{}), "", "")

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Equal(t, 100, app.bar.Width())
}
