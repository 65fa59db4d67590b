package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
)

func plannedResult() *domain.RunResult {
	global := domain.StairConfig{
		TotalStairs: 2,
		MaxLoad:     300,
		RiserCount:  22,
		TreadWidth:  1.118,
		Capacity:    220,
		Log:         domain.NewAuditLog("apportioned 300 occupants across 2 stairs"),
	}
	return &domain.RunResult{
		ID:     "run-42",
		Global: &global,
		Stairs: []domain.PlacedStair{{
			Stair: domain.Stair{
				ID:       "s1",
				Name:     "Stair 1",
				Origin:   domain.StairOriginCore,
				Capacity: 220,
				Load:     150,
				Transform: domain.Transform{
					Origin:   domain.Vector3{X: 4, Y: 2},
					Rotation: 90,
				},
				Audit: []string{"seeded from core A"},
			},
			Config: domain.StairConfig{TreadWidth: 1.118, Width: 2.4, Length: 5.1},
		}},
		Warnings: []domain.Warning{{Message: "level has no boundary", Count: 2}},
		Outcomes: []domain.OverrideOutcome{{
			OverrideID: "ovd-1",
			Kind:       domain.OverrideKindMove,
			Status:     domain.OutcomeApplied,
			Candidates: 1,
			StairID:    "s1",
		}},
	}
}

func TestServer_handlePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("plans a model file", func(t *testing.T) {
		planner := &mockPlanner{result: plannedResult()}
		loader := &mockLoader{}
		server, err := NewServer(&Ports{Planner: planner, Sizer: &mockSizer{}, Loader: loader})
		require.NoError(t, err)

		input := PlanInput{ModelPath: "/models/tower.yaml", Project: "tower", Sprinklered: true}
		_, output, err := server.handlePlan(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, "/models/tower.yaml", loader.loadedPath)
		assert.Equal(t, "tower", planner.gotOpts.Project)
		assert.True(t, planner.gotOpts.Sprinklered)

		assert.Equal(t, "run-42", output.RunID)
		assert.False(t, output.NoOp)
		require.NotNil(t, output.Global)
		assert.Equal(t, 22, output.Global.RiserCount)
		assert.Equal(t, []string{"apportioned 300 occupants across 2 stairs"}, output.Global.Audit)

		require.Len(t, output.Stairs, 1)
		stair := output.Stairs[0]
		assert.Equal(t, "s1", stair.ID)
		assert.Equal(t, "core", stair.Origin)
		assert.Equal(t, domain.Vector3{X: 4, Y: 2}, stair.Position)
		assert.Equal(t, 90.0, stair.Rotation)
		assert.Equal(t, 150, stair.Load)
		assert.False(t, stair.OverCapacity)
		assert.Equal(t, 2.4, stair.Width)

		assert.Equal(t, []string{"level has no boundary (x2)"}, output.Warnings)
		require.Len(t, output.Outcomes, 1)
		assert.Equal(t, "applied", output.Outcomes[0].Status)
		assert.Equal(t, "move", output.Outcomes[0].Kind)
	})

	t.Run("parses an inline model", func(t *testing.T) {
		loader := &mockLoader{}
		server, err := NewServer(&Ports{Planner: &mockPlanner{}, Sizer: &mockSizer{}, Loader: loader})
		require.NoError(t, err)

		_, output, err := server.handlePlan(ctx, nil, PlanInput{Model: "name: tower"})

		require.NoError(t, err)
		assert.Equal(t, []byte("name: tower"), loader.parsed)
		assert.Empty(t, loader.loadedPath)
		assert.True(t, output.NoOp)
		assert.Nil(t, output.Global)
		assert.Empty(t, output.Stairs)
	})

	t.Run("requires a model", func(t *testing.T) {
		planner := &mockPlanner{}
		server, err := NewServer(&Ports{Planner: planner, Sizer: &mockSizer{}, Loader: &mockLoader{}})
		require.NoError(t, err)

		_, _, err = server.handlePlan(ctx, nil, PlanInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "model_path or model")
		assert.Zero(t, planner.calls)
	})

	t.Run("returns error on load failure", func(t *testing.T) {
		loader := &mockLoader{err: domain.ErrInvalidModel}
		server, err := NewServer(&Ports{Planner: &mockPlanner{}, Sizer: &mockSizer{}, Loader: loader})
		require.NoError(t, err)

		_, _, err = server.handlePlan(ctx, nil, PlanInput{ModelPath: "bad.yaml"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidModel)
		assert.Contains(t, err.Error(), "loading model")
	})

	t.Run("returns error on planning failure", func(t *testing.T) {
		planner := &mockPlanner{err: errors.New("store unavailable")}
		server, err := NewServer(&Ports{Planner: planner, Sizer: &mockSizer{}, Loader: &mockLoader{}})
		require.NoError(t, err)

		_, _, err = server.handlePlan(ctx, nil, PlanInput{ModelPath: "tower.yaml"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store unavailable")
	})
}

func TestServer_handleSize(t *testing.T) {
	ctx := context.Background()

	t.Run("returns config with audit", func(t *testing.T) {
		sizer := &mockSizer{config: domain.StairConfig{
			RiserCount:       22,
			TreadWidth:       1.118,
			RealLandingDepth: 1.118,
			Log:              domain.NewAuditLog("riser count 22", "tread width 1.118 m"),
		}}
		server, err := NewServer(&Ports{Planner: &mockPlanner{}, Sizer: sizer, Loader: &mockLoader{}})
		require.NoError(t, err)

		input := SizeInput{Occupants: 300, Stairs: 2, Rise: 4, Sprinklered: true, MinTreadWidth: 1.2}
		_, output, err := server.handleSize(ctx, nil, input)

		require.NoError(t, err)
		assert.Equal(t, 300, sizer.got.Occupants)
		assert.Equal(t, 2, sizer.got.Stairs)
		assert.Equal(t, 4.0, sizer.got.Rise)
		assert.True(t, sizer.got.Sprinklered)
		assert.Equal(t, 1.2, sizer.got.MinTreadWidth)

		assert.Equal(t, 22, output.RiserCount)
		assert.Equal(t, 1.118, output.LandingDepth)
		assert.Equal(t, []string{"riser count 22", "tread width 1.118 m"}, output.Audit)
	})

	t.Run("default stair count is 1", func(t *testing.T) {
		sizer := &mockSizer{}
		server, err := NewServer(&Ports{Planner: &mockPlanner{}, Sizer: sizer, Loader: &mockLoader{}})
		require.NoError(t, err)

		_, _, err = server.handleSize(ctx, nil, SizeInput{Occupants: 50, Rise: 3})

		require.NoError(t, err)
		assert.Equal(t, 1, sizer.got.Stairs)
	})

	t.Run("returns error on invalid input", func(t *testing.T) {
		sizer := &mockSizer{err: domain.ErrInvalidInput}
		server, err := NewServer(&Ports{Planner: &mockPlanner{}, Sizer: sizer, Loader: &mockLoader{}})
		require.NoError(t, err)

		_, _, err = server.handleSize(ctx, nil, SizeInput{Occupants: -1, Rise: 3})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}
