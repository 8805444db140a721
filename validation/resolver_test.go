package validation_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/go-hookform/validation"
)

type signup struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"omitempty,gte=18"`
}

// ── StructResolver ───────────────────────────────────────────────────────────

func TestStructResolver_Valid(t *testing.T) {
	resolver := validation.StructResolver[signup]()

	res, err := resolver(context.Background(), map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
		"age":   "30", // form values arrive as strings
	}, validation.Options{})

	require.NoError(t, err)
	assert.True(t, res.Errors.Empty())
	assert.Equal(t, signup{Name: "Alice", Email: "alice@example.com", Age: 30}, res.Values)
}

func TestStructResolver_FieldErrors(t *testing.T) {
	resolver := validation.StructResolver[signup]()

	res, err := resolver(context.Background(), map[string]any{
		"name":  "A",
		"email": "not-an-email",
	}, validation.Options{})

	require.NoError(t, err)

	name, ok := res.Errors.Field("name")
	require.True(t, ok)
	assert.Equal(t, "min", name.Type)

	email, ok := res.Errors.Field("email")
	require.True(t, ok)
	assert.Equal(t, "email", email.Type)
	assert.NotEmpty(t, email.Message)
}

func TestStructResolver_MissingRequired(t *testing.T) {
	resolver := validation.StructResolver[signup]()

	res, err := resolver(context.Background(), map[string]any{}, validation.Options{})

	require.NoError(t, err)
	_, hasName := res.Errors.Field("name")
	_, hasEmail := res.Errors.Field("email")
	assert.True(t, hasName)
	assert.True(t, hasEmail)
}

func TestStructResolver_DecodeFailureIsFieldError(t *testing.T) {
	resolver := validation.StructResolver[signup]()

	res, err := resolver(context.Background(), map[string]any{
		"age": "not-a-number",
	}, validation.Options{})

	require.NoError(t, err, "shape mismatches are user errors, not failures")
	fe, ok := res.Errors.Field("_")
	require.True(t, ok)
	assert.Equal(t, "decode", fe.Type)
}

func TestStructResolver_WithValidate(t *testing.T) {
	v, err := validation.Validate(context.Background(), map[string]any{
		"name":  "Alice",
		"email": "alice@example.com",
	}, validation.StructResolver[signup]())

	require.NoError(t, err)
	assert.Nil(t, v.Errors)
	assert.Equal(t, "Alice", v.Data.Name)
}

// ── SchemaResolver ───────────────────────────────────────────────────────────

const signupSchema = `{
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string", "minLength": 2},
		"age":  {"type": "number", "minimum": 18}
	}
}`

func TestSchemaResolver_Valid(t *testing.T) {
	resolver, err := validation.SchemaResolver(signupSchema)
	require.NoError(t, err)

	values := map[string]any{"name": "Alice", "age": float64(30)}
	res, err := resolver(context.Background(), values, validation.Options{})

	require.NoError(t, err)
	assert.True(t, res.Errors.Empty())
	assert.Equal(t, values, res.Values)
}

func TestSchemaResolver_MissingRequired(t *testing.T) {
	resolver, err := validation.SchemaResolver(signupSchema)
	require.NoError(t, err)

	res, err := resolver(context.Background(), map[string]any{}, validation.Options{})

	require.NoError(t, err)
	fe, ok := res.Errors.Field("name")
	require.True(t, ok, "required violations key on the missing property")
	assert.Equal(t, "required", fe.Type)
	assert.NotEmpty(t, fe.Message)
}

func TestSchemaResolver_ConstraintViolation(t *testing.T) {
	resolver, err := validation.SchemaResolver(signupSchema)
	require.NoError(t, err)

	res, err := resolver(context.Background(), map[string]any{
		"name": "Alice",
		"age":  float64(10),
	}, validation.Options{})

	require.NoError(t, err)
	fe, ok := res.Errors.Field("age")
	require.True(t, ok)
	assert.NotEmpty(t, fe.Message)
}

func TestSchemaResolver_BadSchema(t *testing.T) {
	_, err := validation.SchemaResolver(`{"type": 42}`)
	assert.Error(t, err)
}
