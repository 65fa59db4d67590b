package modelfile

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/egress-cli/internal/core/domain"
	"github.com/custodia-labs/egress-cli/internal/core/ports/driven"
)

// Ensure Loader implements the interface.
var _ driven.ModelLoader = (*Loader)(nil)

var validate = validator.New()

// Loader reads planning input from the local filesystem.
type Loader struct{}

// NewLoader creates a model file loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadModel reads and validates a building model. JSON is accepted as a
// subset of YAML.
func (l *Loader) LoadModel(_ context.Context, path string) (*domain.BuildingModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model %s: %w", path, err)
	}

	model, err := ParseModel(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

// LoadOverrides reads and validates a standalone override batch.
func (l *Loader) LoadOverrides(_ context.Context, path string) (*domain.OverrideBatch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides %s: %w", path, err)
	}

	var batch domain.OverrideBatch
	if err := decode(data, &batch); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := check(&batch); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &batch, nil
}

// Parse decodes and validates a building model supplied inline.
func (l *Loader) Parse(data []byte) (*domain.BuildingModel, error) {
	return ParseModel(data)
}

// Digest returns the hex SHA-256 of the file contents.
func (l *Loader) Digest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ParseModel decodes and validates a building model document.
func ParseModel(data []byte) (*domain.BuildingModel, error) {
	var model domain.BuildingModel
	if err := decode(data, &model); err != nil {
		return nil, err
	}
	if err := check(&model); err != nil {
		return nil, err
	}
	return &model, nil
}

// decode reads one YAML document, rejecting unknown fields.
func decode(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: empty document", domain.ErrInvalidModel)
		}
		return fmt.Errorf("%w: %v", domain.ErrInvalidModel, err)
	}
	return nil
}

// check runs struct validation and flattens field errors into one message.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidModel, err)
	}

	problems := make([]string, len(validationErrors))
	for i, fe := range validationErrors {
		problems[i] = describe(fe)
	}
	return fmt.Errorf("%w: %s", domain.ErrInvalidModel, strings.Join(problems, "; "))
}

// describe renders one field error.
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s needs at least %s entries", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}
