package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-crop-reply",
		Description: "A test crop reply",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"type":          map[string]any{"type": "string", "enum": []any{"CONVERSATION", "DIAGNOSIS"}},
				"text_response": map[string]any{"type": "string"},
				"diagnosis_data": map[string]any{
					"type": []any{"object", "null"},
					"properties": map[string]any{
						"disease_name": map[string]any{"type": "string"},
						"confidence":   map[string]any{"type": "string", "enum": []any{"HIGH", "LOW"}},
					},
					"required": []any{"disease_name"},
				},
			},
			"required": []any{"type", "text_response"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"type":"DIAGNOSIS","text_response":"Early blight.","diagnosis_data":{"disease_name":"Tomato___Early_blight","confidence":"HIGH"}}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"type":"CONVERSATION","text_response":"Hello"}`)
	err := validateResponse(testSchema(), raw)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_NullableObject(t *testing.T) {
	raw := json.RawMessage(`{"type":"CONVERSATION","text_response":"Hello","diagnosis_data":null}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected null diagnosis_data to validate, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"type":"CONVERSATION"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"type":"CONVERSATION","text_response":42}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"type":"WEATHER","text_response":"Sunny"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid enum value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	err := validateResponse(nil, raw)
	if err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-experts",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"experts_data": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"name": map[string]any{"type": "string"},
							"type": map[string]any{"type": "string", "enum": []any{"GOVT", "PRIVATE", "NGO"}},
						},
						"required": []any{"name", "type"},
					},
				},
			},
			"required": []any{"experts_data"},
		},
	}

	valid := json.RawMessage(`{"experts_data":[{"name":"KVK Pune","type":"GOVT"}]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"experts_data":[{"name":"KVK Pune","type":"SHOP"}]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong expert type")
	}
}

func TestValidateResponse_SameNameDifferentDefinition(t *testing.T) {
	loose := &Schema{Name: "crop-reply", Definition: map[string]any{"type": "object"}}
	strict := &Schema{Name: "crop-reply", Definition: map[string]any{
		"type":     "object",
		"required": []any{"text_response"},
	}}

	raw := json.RawMessage(`{"type":"CONVERSATION"}`)
	if err := validateResponse(loose, raw); err != nil {
		t.Fatalf("loose schema: %v", err)
	}
	if err := validateResponse(strict, raw); err == nil {
		t.Fatal("strict schema should not reuse the loose compilation")
	}
}
