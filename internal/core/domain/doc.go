// Package domain defines the core entities for egress stair planning.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Level: A building floor plate with elevation and boundary
//   - OccupancyRecord: The resolved occupant load for one level
//   - StairConfig: A fully derived stair dimension set with its audit log
//   - Stair: A placed egress stair and its identity anchor
//   - Override batches: Additions, moves, property edits and removals
//   - Panel: One landing or tread placement for visualisation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
