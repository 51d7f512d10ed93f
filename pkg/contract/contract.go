// Package contract embeds the OpenAPI description of the persistence wire
// format and validates payloads against it, keeping the Go types and the API
// contract from drifting apart.
package contract

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed contacts-api.yaml
var documentData []byte

// ContactSchema is the component name of the contact request body.
const ContactSchema = "ContactInput"

// Load parses and validates the embedded contract document.
func Load(ctx context.Context) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(documentData)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("contract: invalid document: %w", err)
	}
	return doc, nil
}

// ValidateContact checks a marshalled contact payload against the
// ContactInput schema of the embedded contract.
func ValidateContact(ctx context.Context, payload []byte) error {
	return validateAgainst(ctx, ContactSchema, payload)
}

// ValidateSchema checks a payload against any named component schema.
func ValidateSchema(ctx context.Context, name string, payload []byte) error {
	return validateAgainst(ctx, name, payload)
}

func validateAgainst(ctx context.Context, name string, payload []byte) error {
	doc, err := Load(ctx)
	if err != nil {
		return err
	}
	if doc.Components == nil {
		return errors.New("contract: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[name]
	if !ok || ref == nil || ref.Value == nil {
		return fmt.Errorf("contract: schema %q is not defined", name)
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return fmt.Errorf("contract: payload is not valid JSON: %w", err)
	}
	if err := ref.Value.VisitJSON(value); err != nil {
		return fmt.Errorf("contract: payload violates %s: %w", name, err)
	}
	return nil
}
