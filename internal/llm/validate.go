package llm

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// compiled reply schemas, keyed by name and definition hash
var compiledSchemas sync.Map

// validateResponse checks a provider's raw reply against the reply schema
// sent with the request. A nil schema accepts anything. Failures are
// reported as *ErrInvalidResponse carrying the raw reply.
func validateResponse(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var reply any
	if err := json.Unmarshal(raw, &reply); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	compiled, err := compileSchema(schema)
	if err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("compile schema %q: %w", schema.Name, err)}
	}

	if err := compiled.Validate(reply); err != nil {
		return &ErrInvalidResponse{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}
	return nil
}

// compileSchema compiles schema once per distinct definition. Two schemas
// sharing a name but not a definition get separate entries.
func compileSchema(schema *Schema) (*jsonschema.Schema, error) {
	def, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}

	h := fnv.New64a()
	h.Write(def)
	key := fmt.Sprintf("%s@%x", schema.Name, h.Sum64())
	if cached, ok := compiledSchemas.Load(key); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// jsonschema wants a decoded document, not bytes.
	var doc any
	if err := json.Unmarshal(def, &doc); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", key)
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	compiledSchemas.Store(key, compiled)
	return compiled, nil
}
