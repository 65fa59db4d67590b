package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driving"
)

// PlanInput is the input schema for the plan_egress tool.
type PlanInput struct {
	ModelPath   string `json:"model_path,omitempty" jsonschema:"path to a YAML or JSON building model file"`
	Model       string `json:"model,omitempty" jsonschema:"inline YAML or JSON building model, used when model_path is empty"`
	Project     string `json:"project,omitempty" jsonschema:"project whose stored overrides apply (default: default)"`
	Sprinklered bool   `json:"sprinklered,omitempty" jsonschema:"size for a sprinklered building"`
}

// PlanOutput is the output schema for the plan_egress tool.
type PlanOutput struct {
	RunID    string          `json:"run_id"`
	NoOp     bool            `json:"no_op"`
	Global   *ConfigOutput   `json:"global,omitempty"`
	Stairs   []StairOutput   `json:"stairs"`
	Warnings []string        `json:"warnings,omitempty"`
	Outcomes []OutcomeOutput `json:"outcomes,omitempty"`
}

// StairOutput summarises one planned stair.
type StairOutput struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Origin       string         `json:"origin"`
	Position     domain.Vector3 `json:"position"`
	Rotation     float64        `json:"rotation"`
	TreadWidth   float64        `json:"tread_width"`
	Capacity     int            `json:"capacity"`
	Load         int            `json:"load"`
	OverCapacity bool           `json:"over_capacity"`
	Width        float64        `json:"width"`
	Length       float64        `json:"length"`
	Audit        []string       `json:"audit,omitempty"`
}

// OutcomeOutput reports what happened to one override.
type OutcomeOutput struct {
	OverrideID string `json:"override_id"`
	Kind       string `json:"kind"`
	Status     string `json:"status"`
	Candidates int    `json:"candidates"`
	StairID    string `json:"stair_id,omitempty"`
}

// SizeInput is the input schema for the size_stair tool.
type SizeInput struct {
	Occupants     int     `json:"occupants" jsonschema:"occupant load of the busiest level"`
	Stairs        int     `json:"stairs,omitempty" jsonschema:"number of stairs sharing the load (default 1)"`
	Rise          float64 `json:"rise" jsonschema:"floor-to-floor height in meters"`
	Sprinklered   bool    `json:"sprinklered,omitempty" jsonschema:"size for a sprinklered building"`
	MinTreadWidth float64 `json:"min_tread_width,omitempty" jsonschema:"minimum tread width in meters replacing the accessible minimum"`
}

// ConfigOutput is the dimension set of a stair config.
type ConfigOutput struct {
	TotalStairs        int      `json:"total_stairs"`
	MaxLoad            int      `json:"max_load"`
	MinLoadPerStair    int      `json:"min_load_per_stair"`
	MaxElevationChange float64  `json:"max_elevation_change"`
	RiserCount         int      `json:"riser_count"`
	RiserHeight        float64  `json:"riser_height"`
	TreadCount         int      `json:"tread_count"`
	FirstFlightTreads  int      `json:"first_flight_treads"`
	SecondFlightTreads int      `json:"second_flight_treads"`
	TreadDepth         float64  `json:"tread_depth"`
	WidthFactor        float64  `json:"width_factor"`
	TreadWidth         float64  `json:"tread_width"`
	Capacity           int      `json:"capacity"`
	LandingDepth       float64  `json:"landing_depth"`
	Width              float64  `json:"width"`
	Length             float64  `json:"length"`
	ExtrusionHeight    float64  `json:"extrusion_height"`
	Audit              []string `json:"audit"`
}

func configOutput(c domain.StairConfig) ConfigOutput {
	return ConfigOutput{
		TotalStairs:        c.TotalStairs,
		MaxLoad:            c.MaxLoad,
		MinLoadPerStair:    c.MinLoadPerStair,
		MaxElevationChange: c.MaxElevationChange,
		RiserCount:         c.RiserCount,
		RiserHeight:        c.RiserHeight,
		TreadCount:         c.TreadCount,
		FirstFlightTreads:  c.FirstFlightTreads,
		SecondFlightTreads: c.SecondFlightTreads,
		TreadDepth:         c.TreadDepth,
		WidthFactor:        c.WidthFactor,
		TreadWidth:         c.TreadWidth,
		Capacity:           c.Capacity,
		LandingDepth:       c.RealLandingDepth,
		Width:              c.Width,
		Length:             c.Length,
		ExtrusionHeight:    c.ExtrusionHeight,
		Audit:              c.Log.Entries(),
	}
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "plan_egress",
		Description: "Size egress stairs for a building model and apply stored overrides",
	}, s.handlePlan)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "size_stair",
		Description: "Compute stair dimensions for one occupant load and floor-to-floor rise",
	}, s.handleSize)
}

// handlePlan handles the plan_egress tool invocation.
func (s *Server) handlePlan(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PlanInput,
) (*mcp.CallToolResult, PlanOutput, error) {
	var (
		model *domain.BuildingModel
		err   error
	)
	switch {
	case input.ModelPath != "":
		model, err = s.ports.Loader.LoadModel(ctx, input.ModelPath)
	case input.Model != "":
		model, err = s.ports.Loader.Parse([]byte(input.Model))
	default:
		return nil, PlanOutput{}, errors.New("one of model_path or model is required")
	}
	if err != nil {
		return nil, PlanOutput{}, fmt.Errorf("loading model: %w", err)
	}

	result, err := s.ports.Planner.Plan(ctx, *model, domain.PlanOptions{
		Project:     input.Project,
		Sprinklered: input.Sprinklered,
	})
	if err != nil {
		return nil, PlanOutput{}, err
	}

	return nil, planOutput(result), nil
}

func planOutput(result *domain.RunResult) PlanOutput {
	output := PlanOutput{
		RunID:  result.ID,
		NoOp:   result.NoOp,
		Stairs: make([]StairOutput, len(result.Stairs)),
	}
	if result.Global != nil {
		global := configOutput(*result.Global)
		output.Global = &global
	}

	for i := range result.Stairs {
		st := result.Stairs[i].Stair
		cfg := result.Stairs[i].Config
		output.Stairs[i] = StairOutput{
			ID:           st.ID,
			Name:         st.Name,
			Origin:       string(st.Origin),
			Position:     st.Transform.Origin,
			Rotation:     st.Transform.Rotation,
			TreadWidth:   cfg.TreadWidth,
			Capacity:     st.Capacity,
			Load:         st.Load,
			OverCapacity: st.IsOverCapacity(),
			Width:        cfg.Width,
			Length:       cfg.Length,
			Audit:        st.Audit,
		}
	}

	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, w.String())
	}
	for _, o := range result.Outcomes {
		output.Outcomes = append(output.Outcomes, OutcomeOutput{
			OverrideID: o.OverrideID,
			Kind:       string(o.Kind),
			Status:     string(o.Status),
			Candidates: o.Candidates,
			StairID:    o.StairID,
		})
	}
	return output
}

// handleSize handles the size_stair tool invocation.
func (s *Server) handleSize(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input SizeInput,
) (*mcp.CallToolResult, ConfigOutput, error) {
	stairs := input.Stairs
	if stairs <= 0 {
		stairs = 1
	}

	cfg, err := s.ports.Sizer.Size(driving.SizeRequest{
		Occupants:     input.Occupants,
		Stairs:        stairs,
		Rise:          input.Rise,
		Sprinklered:   input.Sprinklered,
		MinTreadWidth: input.MinTreadWidth,
	})
	if err != nil {
		return nil, ConfigOutput{}, err
	}

	return nil, configOutput(cfg), nil
}
