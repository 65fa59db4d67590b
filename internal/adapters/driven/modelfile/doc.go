// Package modelfile loads building models and override batches from YAML
// or JSON files and validates them before planning.
package modelfile
