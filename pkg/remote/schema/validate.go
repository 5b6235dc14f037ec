// Package schema validates state payloads against JSON Schema documents
// before they reach the reconciliation pipeline. Structural problems
// (unknown keys, wrong types, out-of-range numbers) are caught here;
// enum membership is left to the state parsers, which accept aliases
// the schema cannot express.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validator compiles JSON Schema documents on first use and caches the
// result keyed by the document's raw bytes.
type Validator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewValidator returns a Validator with an empty cache.
func NewValidator() *Validator {
	return &Validator{compiled: make(map[string]*jsonschema.Schema)}
}

// Validate checks payload against the given schema document. A missing,
// empty or null document validates everything.
func (v *Validator) Validate(doc json.RawMessage, payload map[string]any) error {
	if isEmptyDoc(doc) {
		return nil
	}

	s, err := v.schemaFor(doc)
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}

	return s.Validate(payload)
}

func isEmptyDoc(doc json.RawMessage) bool {
	switch string(doc) {
	case "", "{}", "null":
		return true
	}
	return false
}

func (v *Validator) schemaFor(doc json.RawMessage) (*jsonschema.Schema, error) {
	key := string(doc)

	v.mu.RLock()
	s, ok := v.compiled[key]
	v.mu.RUnlock()
	if ok {
		return s, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	// Re-check; another goroutine may have compiled it meanwhile.
	if s, ok := v.compiled[key]; ok {
		return s, nil
	}

	var raw any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", raw); err != nil {
		return nil, fmt.Errorf("failed to add resource: %w", err)
	}
	s, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile: %w", err)
	}

	v.compiled[key] = s
	return s, nil
}
