package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// generationSchemaDef is the contract every generative reply must satisfy.
// Out-of-range correctAnswer indices count as contract violations rather
// than being passed through to rendering layers.
var generationSchemaDef = map[string]any{
	"type": "object",
	"required": []any{
		"lesson_content", "summary", "questions", "visual_prompt", "audio_prompt",
	},
	"properties": map[string]any{
		"lesson_content": map[string]any{"type": "string"},
		"summary":        map[string]any{"type": "string"},
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"questionText", "options", "correctAnswer"},
				"properties": map[string]any{
					"questionText": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 4,
						"maxItems": 4,
					},
					"correctAnswer": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": 3,
					},
				},
			},
		},
		"visual_prompt": map[string]any{"type": "string"},
		"audio_prompt":  map[string]any{"type": "string"},
	},
}

var (
	generationSchemaOnce sync.Once
	generationSchema     *jsonschema.Schema
	generationSchemaErr  error
)

func compiledGenerationSchema() (*jsonschema.Schema, error) {
	generationSchemaOnce.Do(func() {
		// The compiler expects a parsed JSON value, so round-trip the
		// definition through encoding/json first.
		defBytes, err := json.Marshal(generationSchemaDef)
		if err != nil {
			generationSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			generationSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://lesson-content.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			generationSchemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		generationSchema, generationSchemaErr = c.Compile(schemaURL)
	})
	return generationSchema, generationSchemaErr
}

// validateGeneration checks raw collaborator output against the lesson
// content contract. A nil return means the payload is safe to decode into
// models.GenerationResponse.
func validateGeneration(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledGenerationSchema()
	if err != nil {
		return fmt.Errorf("compile generation schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
