package toolrouter

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// SchemaForType reflects a JSON Schema object from a Go type, inlining
// definitions so the result is self-contained.
func SchemaForType[T any]() (map[string]interface{}, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		Anonymous:      true,
	}

	var v T
	schema := reflector.Reflect(&v)

	data, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal reflected schema: %w", err)
	}

	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode reflected schema: %w", err)
	}

	return out, nil
}

// NewToolForType builds a descriptor whose input schema is reflected from A.
func NewToolForType[A any](name, description string) (Tool, error) {
	schema, err := SchemaForType[A]()
	if err != nil {
		return Tool{}, err
	}
	return NewTool(name, description, schema), nil
}
