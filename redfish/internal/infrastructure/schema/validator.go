// Package schema validates request payloads against the embedded OpenAPI document.
package schema

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrUnknownSchema is returned for a reference that names no component schema.
var ErrUnknownSchema = errors.New("unknown schema")

// Validator resolves schema references to the document's component schemas.
type Validator struct {
	schemas openapi3.Schemas
}

// New loads and validates an OpenAPI document.
func New(ctx context.Context, document []byte) (*Validator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("schema - load document: %w", err)
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("schema - invalid document: %w", err)
	}

	if doc.Components == nil {
		return &Validator{schemas: openapi3.Schemas{}}, nil
	}

	return &Validator{schemas: doc.Components.Schemas}, nil
}

// ValidateSchema checks payload against ref. A ref is either a component
// name or a JSON-schema style path such as RackHD.ResetAction.json#/definitions/ResetAction,
// of which only the last segment is significant.
func (v *Validator) ValidateSchema(payload interface{}, ref string) error {
	name := ref
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		name = ref[i+1:]
	}

	s, ok := v.schemas[name]
	if !ok || s.Value == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSchema, ref)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("schema - encode payload: %w", err)
	}

	var value interface{}
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("schema - decode payload: %w", err)
	}

	if err := s.Value.VisitJSON(value); err != nil {
		var se *openapi3.SchemaError
		if errors.As(err, &se) {
			if ptr := se.JSONPointer(); len(ptr) > 0 {
				return fmt.Errorf("%s: %s", strings.Join(ptr, "."), se.Reason)
			}

			return errors.New(se.Reason)
		}

		return err
	}

	return nil
}
