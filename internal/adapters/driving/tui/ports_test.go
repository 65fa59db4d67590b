package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

// MockRunHistory implements driving.RunHistory for testing.
type MockRunHistory struct {
	GetFunc    func(ctx context.Context, id string) (*domain.SavedRun, error)
	LatestFunc func(ctx context.Context, project string) (*domain.SavedRun, error)

	getCalls    []string
	latestCalls []string
}

func (m *MockRunHistory) Save(context.Context, *domain.RunResult, string, int) error {
	return nil
}

func (m *MockRunHistory) Get(ctx context.Context, id string) (*domain.SavedRun, error) {
	m.getCalls = append(m.getCalls, id)
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *MockRunHistory) Latest(ctx context.Context, project string) (*domain.SavedRun, error) {
	m.latestCalls = append(m.latestCalls, project)
	if m.LatestFunc != nil {
		return m.LatestFunc(ctx, project)
	}
	return nil, domain.ErrNoRuns
}

func (m *MockRunHistory) List(context.Context, string, int) ([]domain.RunSummary, error) {
	return nil, nil
}

var _ driving.RunHistory = (*MockRunHistory)(nil)

func TestNewPorts(t *testing.T) {
	history := &MockRunHistory{}

	ports := NewPorts(history)

	require.NotNil(t, ports)
	assert.Same(t, history, ports.History)
	assert.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingHistory(t *testing.T) {
	ports := &Ports{}

	assert.ErrorIs(t, ports.Validate(), ErrMissingRunHistory)
}

func TestPorts_Validate_Nil(t *testing.T) {
	var ports *Ports

	assert.ErrorIs(t, ports.Validate(), ErrInvalidPorts)
}
