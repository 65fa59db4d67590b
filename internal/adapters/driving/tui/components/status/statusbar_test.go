package status

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/egress-cli/internal/adapters/driving/tui/styles"
)

func TestNewBar(t *testing.T) {
	bar := NewBar(styles.DefaultStyles(), keymap.DefaultKeyMap())

	require.NotNil(t, bar)
	assert.Equal(t, StateLoading, bar.State())
	assert.Equal(t, "", bar.Message())
	assert.Equal(t, 80, bar.Width())
}

func TestNewBar_NilDependencies(t *testing.T) {
	bar := NewBar(nil, nil)

	require.NotNil(t, bar)
	assert.NotNil(t, bar.styles)
	assert.NotNil(t, bar.keymap)
	assert.Nil(t, bar.Init())
}

func TestBar_UpdateIsPassive(t *testing.T) {
	bar := NewBar(nil, nil)

	got, cmd := bar.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Same(t, bar, got)
	assert.Nil(t, cmd)
}

func TestBar_ViewStates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *Bar)
		want  string
	}{
		{
			name:  "loading",
			setup: func(b *Bar) {},
			want:  "Loading run...",
		},
		{
			name: "error with message",
			setup: func(b *Bar) {
				b.SetState(StateError)
				b.SetMessage("no runs recorded")
			},
			want: "Error: no runs recorded",
		},
		{
			name:  "error without message",
			setup: func(b *Bar) { b.SetState(StateError) },
			want:  "Error",
		},
		{
			name:  "help",
			setup: func(b *Bar) { b.SetState(StateHelp) },
			want:  "Help",
		},
		{
			name: "ready",
			setup: func(b *Bar) {
				b.SetState(StateReady)
				b.SetRun("0123456789abcdef", 2, 0)
			},
			want: "01234567  2 stairs",
		},
		{
			name: "ready over capacity",
			setup: func(b *Bar) {
				b.SetState(StateReady)
				b.SetRun("run", 3, 1)
			},
			want: "1 over capacity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := NewBar(nil, nil)
			bar.SetWidth(120)
			tt.setup(bar)

			assert.Contains(t, bar.View(), tt.want)
		})
	}
}

func TestBar_HintsFollowPane(t *testing.T) {
	bar := NewBar(nil, nil)
	bar.SetWidth(140)
	bar.SetState(StateReady)

	assert.NotContains(t, bar.View(), "a: audit")

	bar.SetStairPane(true)
	assert.Contains(t, bar.View(), "a: audit")
}
