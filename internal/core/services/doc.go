// Package services implements the driving port interfaces.
//
// The planning pipeline lives here: occupancy resolution, the stair sizing
// calculator, override reconciliation and flight layout. These are pure
// functions over domain values. PlannerService, RunHistoryService,
// OverrideService and SettingsService wire them to the driven ports.
package services
