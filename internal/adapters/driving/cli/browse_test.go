package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowseCmd_Use(t *testing.T) {
	assert.Equal(t, "browse [run-id]", browseCmd.Use)
}

func TestBrowseCmd_Long(t *testing.T) {
	assert.Contains(t, browseCmd.Long, "latest")
	assert.Contains(t, browseCmd.Long, "audit trail")
}

func TestBrowseCmd_NotConfigured(t *testing.T) {
	_, _, err := execute(t, "browse")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "run history not configured")
}

func TestBrowseCmd_RejectsExtraArgs(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	_, _, err := execute(t, "browse", "run-1", "run-2")

	assert.Error(t, err)
}

func TestMCPServeCmd_NotConfigured(t *testing.T) {
	_, _, err := execute(t, "mcp", "serve")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "planner is required")
}
