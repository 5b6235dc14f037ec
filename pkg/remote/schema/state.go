package schema

import "encoding/json"

// StateSchema is the JSON Schema for settable state payloads. It pins key
// names, value types and numeric ranges. String fields carry no enum here
// on purpose: the parsers accept aliases ("fan_only", "hi", "centre") that
// a schema enum would reject, and they produce better error messages.
const StateSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"protocol": {"type": "string"},
		"model": {"type": ["integer", "string"]},
		"power": {"type": "boolean"},
		"mode": {"type": "string"},
		"degrees": {"type": "number", "minimum": 0, "maximum": 110},
		"celsius": {"type": "boolean"},
		"fan": {"type": "string"},
		"swingv": {"type": "string"},
		"swingh": {"type": "string"},
		"quiet": {"type": "boolean"},
		"turbo": {"type": "boolean"},
		"econo": {"type": "boolean"},
		"light": {"type": "boolean"},
		"filter": {"type": "boolean"},
		"clean": {"type": "boolean"},
		"beep": {"type": "boolean"},
		"sleep": {"type": "integer", "minimum": -1},
		"clock": {"type": "integer", "minimum": -1, "maximum": 1439},
		"command": {"type": "string"},
		"ifeel": {"type": "boolean"},
		"sensor_temp": {"type": "number", "minimum": -100}
	},
	"additionalProperties": false
}`

var stateValidator = NewValidator()

// ValidateState checks a state payload against StateSchema using a shared
// validator, so the schema is compiled once per process.
func ValidateState(payload map[string]any) error {
	return stateValidator.Validate(json.RawMessage(StateSchema), payload)
}
