package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schemas are static per process (roadmap, roadmap-edit, mock-test),
// so compiled forms are cached by name and never invalidated.
var compiledSchemas sync.Map // map[string]*jsonschema.Schema

func invalid(raw json.RawMessage, format string, args ...any) error {
	return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf(format, args...)}
}

// validateResponse checks raw JSON against the request's Schema. A nil
// schema means freeform text and always passes.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return invalid(raw, "invalid JSON: %w", err)
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return invalid(raw, "compile schema %q: %w", schema.Name, err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return invalid(raw, "schema validation failed: %w", err)
	}
	return nil
}

func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := compiledSchemas.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler expects a parsed JSON value; round-trip the
	// definition map through JSON to normalize typed values.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	url := fmt.Sprintf("schema://%s.json", schema.Name)
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiledSchemas.Store(schema.Name, compiled)
	return compiled, nil
}
