package schema

import (
	"encoding/json"
	"testing"
)

func TestValidateState_ValidPayload(t *testing.T) {
	err := ValidateState(map[string]any{
		"power":   true,
		"mode":    "cool",
		"degrees": float64(22.5),
		"celsius": true,
		"fan":     "high",
		"swingv":  "auto",
		"sleep":   float64(30),
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidateState_PartialPayload(t *testing.T) {
	err := ValidateState(map[string]any{
		"degrees": float64(24),
	})
	if err != nil {
		t.Errorf("expected valid payload, got: %v", err)
	}
}

func TestValidateState_UnknownProperty(t *testing.T) {
	err := ValidateState(map[string]any{
		"degress": float64(24),
	})
	if err == nil {
		t.Error("expected validation error for misspelled property")
	}
}

func TestValidateState_WrongType(t *testing.T) {
	err := ValidateState(map[string]any{
		"power": "on",
	})
	if err == nil {
		t.Error("expected validation error for string power")
	}
}

func TestValidateState_ClockOutOfRange(t *testing.T) {
	err := ValidateState(map[string]any{
		"clock": float64(1440),
	})
	if err == nil {
		t.Error("expected validation error for clock past 23:59")
	}
}

func TestValidateState_SleepBelowOff(t *testing.T) {
	err := ValidateState(map[string]any{
		"sleep": float64(-2),
	})
	if err == nil {
		t.Error("expected validation error for sleep below -1")
	}
}

func TestValidateState_AliasStringsPass(t *testing.T) {
	// The schema does not pin enums; aliases are the parsers' concern.
	err := ValidateState(map[string]any{
		"mode": "fan_only",
		"fan":  "hi",
	})
	if err != nil {
		t.Errorf("aliases should pass the schema gate, got: %v", err)
	}
}

func TestValidateState_ModelNameOrNumber(t *testing.T) {
	if err := ValidateState(map[string]any{"model": "WREM3"}); err != nil {
		t.Errorf("model by name should validate, got: %v", err)
	}
	if err := ValidateState(map[string]any{"model": float64(2)}); err != nil {
		t.Errorf("model by number should validate, got: %v", err)
	}
}

func TestValidate_EmptySchema(t *testing.T) {
	v := NewValidator()

	// No schema means no validation
	err := v.Validate(json.RawMessage(`{}`), map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("empty schema should skip validation, got: %v", err)
	}
}

func TestValidate_NilSchema(t *testing.T) {
	v := NewValidator()

	err := v.Validate(nil, map[string]any{
		"anything": "goes",
	})
	if err != nil {
		t.Errorf("nil schema should skip validation, got: %v", err)
	}
}

func TestValidate_MalformedSchema(t *testing.T) {
	v := NewValidator()

	err := v.Validate(json.RawMessage(`{"type":`), map[string]any{})
	if err == nil {
		t.Error("expected compile error for malformed schema document")
	}
}

func TestValidate_CachesCompiledSchema(t *testing.T) {
	v := NewValidator()
	doc := json.RawMessage(`{"type": "object"}`)

	if err := v.Validate(doc, map[string]any{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if err := v.Validate(doc, map[string]any{"b": 2}); err != nil {
		t.Fatal(err)
	}

	v.mu.RLock()
	n := len(v.compiled)
	v.mu.RUnlock()
	if n != 1 {
		t.Errorf("expected 1 cached schema, got %d", n)
	}
}
