package validation

import (
	"context"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaResolver builds a Resolver that checks the raw value map against a
// JSON Schema document. The schema is compiled once, up front:
//
//	resolver, err := validation.SchemaResolver(`{
//	    "type": "object",
//	    "required": ["name"],
//	    "properties": {"name": {"type": "string", "minLength": 2}}
//	}`)
//
// Each schema violation yields one FieldError keyed by the offending field,
// with the schema keyword as the error type.
func SchemaResolver(schemaJSON string) (Resolver[map[string]any], error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("validation: compile schema: %w", err)
	}

	return func(_ context.Context, values map[string]any, _ Options) (Result[map[string]any], error) {
		res, err := schema.Validate(gojsonschema.NewGoLoader(values))
		if err != nil {
			return Result[map[string]any]{}, err
		}
		if res.Valid() {
			return Result[map[string]any]{Values: values}, nil
		}

		tree := ErrorTree{}
		for _, re := range res.Errors() {
			tree[schemaField(re)] = &FieldError{
				Type:    re.Type(),
				Message: re.Description(),
			}
		}
		return Result[map[string]any]{Errors: tree}, nil
	}, nil
}

// schemaField resolves the field key for a schema violation. Required-field
// errors report against the parent, so the missing property name comes from
// the error details instead.
func schemaField(re gojsonschema.ResultError) string {
	if re.Type() == "required" {
		if prop, ok := re.Details()["property"].(string); ok {
			if parent := re.Field(); parent != "(root)" {
				return parent + "." + prop
			}
			return prop
		}
	}
	return re.Field()
}
