package rulefile

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://symptomcheck-rules.json"

func conclusionSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label":      map[string]any{"type": "string", "minLength": 1},
			"confidence": map[string]any{"enum": []any{"High", "Medium", "Low"}},
			"advice":     map[string]any{"type": "string", "minLength": 1},
		},
		"required":             []any{"label", "confidence", "advice"},
		"additionalProperties": false,
	}
}

// documentSchema describes a rule file. Condition identifiers are only
// checked for shape here; expert.ParseSymptom resolves them so rule files
// accept the same spellings as the command line. Cross-field checks such
// as duplicate rule names are left to expert.NewRuleStore.
func documentSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"version": map[string]any{"type": "string"},
			"rules": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name": map[string]any{"type": "string", "minLength": 1},
						"conditions": map[string]any{
							"type":        "array",
							"minItems":    1,
							"uniqueItems": true,
							"items":       map[string]any{"type": "string", "minLength": 1},
						},
						"conclusion": conclusionSchema(),
					},
					"required":             []any{"name", "conditions", "conclusion"},
					"additionalProperties": false,
				},
			},
			"default": conclusionSchema(),
		},
		"required":             []any{"version", "rules", "default"},
		"additionalProperties": false,
	}
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// getSchema compiles the document schema on first use.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, documentSchema()); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// validateDocument checks a decoded (untyped) document against the schema.
func validateDocument(doc any) error {
	sch, err := getSchema()
	if err != nil {
		return fmt.Errorf("compile rule schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
