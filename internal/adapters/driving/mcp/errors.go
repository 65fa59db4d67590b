// Package mcp provides an MCP (Model Context Protocol) server adapter for egress.
// It lets AI assistants plan stairs for a model and read saved runs.
package mcp

import "errors"

// ErrMissingPlanner is returned when the planner is not provided.
var ErrMissingPlanner = errors.New("mcp: planner is required")

// ErrMissingSizer is returned when the sizer is not provided.
var ErrMissingSizer = errors.New("mcp: sizer is required")

// ErrMissingLoader is returned when the model loader is not provided.
var ErrMissingLoader = errors.New("mcp: model loader is required")
