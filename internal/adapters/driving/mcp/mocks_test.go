package mcp

import (
	"context"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

// mockPlanner is a mock implementation of driving.Planner.
type mockPlanner struct {
	result  *domain.RunResult
	err     error
	gotOpts domain.PlanOptions
	calls   int
}

func (m *mockPlanner) Plan(
	_ context.Context,
	_ domain.BuildingModel,
	opts domain.PlanOptions,
) (*domain.RunResult, error) {
	m.calls++
	m.gotOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	if m.result == nil {
		return &domain.RunResult{ID: "run-1", NoOp: true}, nil
	}
	return m.result, nil
}

// mockSizer is a mock implementation of driving.Sizer.
type mockSizer struct {
	config domain.StairConfig
	err    error
	got    driving.SizeRequest
}

func (m *mockSizer) Size(req driving.SizeRequest) (domain.StairConfig, error) {
	m.got = req
	return m.config, m.err
}

// mockLoader is a mock implementation of driven.ModelLoader.
type mockLoader struct {
	model      *domain.BuildingModel
	err        error
	loadedPath string
	parsed     []byte
}

func (m *mockLoader) LoadModel(_ context.Context, path string) (*domain.BuildingModel, error) {
	m.loadedPath = path
	if m.err != nil {
		return nil, m.err
	}
	return m.modelOrEmpty(), nil
}

func (m *mockLoader) Parse(data []byte) (*domain.BuildingModel, error) {
	m.parsed = data
	if m.err != nil {
		return nil, m.err
	}
	return m.modelOrEmpty(), nil
}

func (m *mockLoader) LoadOverrides(_ context.Context, _ string) (*domain.OverrideBatch, error) {
	return &domain.OverrideBatch{}, m.err
}

func (m *mockLoader) Digest(_ string) (string, error) {
	return "digest", m.err
}

func (m *mockLoader) modelOrEmpty() *domain.BuildingModel {
	if m.model == nil {
		return &domain.BuildingModel{}
	}
	return m.model
}

// mockRunHistory is a mock implementation of driving.RunHistory.
type mockRunHistory struct {
	runs        []domain.RunSummary
	run         *domain.SavedRun
	err         error
	listProject string
	listLimit   int
}

func (m *mockRunHistory) Save(_ context.Context, _ *domain.RunResult, _ string, _ int) error {
	return m.err
}

func (m *mockRunHistory) Get(_ context.Context, _ string) (*domain.SavedRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.run == nil {
		return nil, domain.ErrNotFound
	}
	return m.run, nil
}

func (m *mockRunHistory) Latest(_ context.Context, _ string) (*domain.SavedRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.run == nil {
		return nil, domain.ErrNoRuns
	}
	return m.run, nil
}

func (m *mockRunHistory) List(_ context.Context, project string, limit int) ([]domain.RunSummary, error) {
	m.listProject = project
	m.listLimit = limit
	return m.runs, m.err
}

// validPorts returns ports with every required mock set.
func validPorts() *Ports {
	return &Ports{
		Planner: &mockPlanner{},
		Sizer:   &mockSizer{},
		Loader:  &mockLoader{},
	}
}
