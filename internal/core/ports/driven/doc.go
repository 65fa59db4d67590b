// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ConfigStore: Application configuration (code basis, matching policy)
//   - ModelLoader: Reads building models and override batches from files
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - RunStore: Run history. Without it, runs cannot be saved and
//     overrides cannot capture identities by stair ID.
//   - OverrideStore: Persistent override batches per project. Without it,
//     only overrides embedded in the model file apply.
//   - MetricsRecorder: Planning metrics. Without it, nothing is recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
