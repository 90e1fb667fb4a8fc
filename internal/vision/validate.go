package vision

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var labelSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return compileSchema("label.json", LabelSchema())
})

func compileSchema(name string, schemaMap map[string]any) (*jsonschema.Schema, error) {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(b)); err != nil {
		return nil, fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}

// ValidateLabelJSON checks one encoded label object against LabelSchema.
func ValidateLabelJSON(data []byte) error {
	schema, err := labelSchema()
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: unmarshal data: %v", ErrInvalidPayload, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: json does not match schema: %v", ErrInvalidPayload, err)
	}
	return nil
}

// validateLabel validates an already decoded label. The map is re-encoded so
// YAML-decoded numbers reach the validator as JSON numbers.
func validateLabel(m map[string]any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("%w: encode label: %v", ErrInvalidPayload, err)
	}
	return ValidateLabelJSON(b)
}
