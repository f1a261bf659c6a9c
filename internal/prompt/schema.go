package prompt

import "github.com/kisanlabs/plantdoctor/internal/llm"

// BotResponseSchema constrains every crop doctor reply to one of the four
// scenarios. Only type and text_response are required; the payloads are
// nullable and checked against the type after decoding.
var BotResponseSchema = &llm.Schema{
	Name:        "kisan-bot-response",
	Description: "A Kisan Plant Doctor reply: conversation, diagnosis, a request for location, or a list of local experts",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"CONVERSATION", "DIAGNOSIS", "ASK_LOCATION_FOR_EXPERTS", "EXPERT_LIST"},
				"description": "The type of response based on user input.",
			},
			"text_response": map[string]any{
				"type":        "string",
				"description": "The conversational text to display to the farmer.",
			},
			"diagnosis_data": map[string]any{
				"type": []any{"object", "null"},
				"properties": map[string]any{
					"disease_name": map[string]any{
						"type":        "string",
						"description": "A reference label when the disease matches one, otherwise a short name",
					},
					"confidence": map[string]any{
						"type": "string",
						"enum": []any{"HIGH", "LOW"},
					},
					"crop_detected": map[string]any{"type": "string"},
					"explanation":   map[string]any{"type": "string"},
					"treatment_steps": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"prevention_tips": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"is_safe_organic": map[string]any{"type": "boolean"},
				},
				"required": []any{"disease_name", "confidence", "crop_detected"},
			},
			"experts_data": map[string]any{
				"type": []any{"array", "null"},
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":    map[string]any{"type": "string"},
						"role":    map[string]any{"type": "string"},
						"contact": map[string]any{"type": "string"},
						"address": map[string]any{"type": "string"},
						"type": map[string]any{
							"type": "string",
							"enum": []any{"GOVT", "PRIVATE", "NGO"},
						},
					},
					"required": []any{"name", "role", "contact", "address", "type"},
				},
			},
			"language_detected": map[string]any{
				"type":        "string",
				"description": "The language the farmer wrote or spoke in, if recognizable",
			},
		},
		"required": []any{"type", "text_response"},
	},
}
