package validation

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// structValidator is shared by all StructResolver instances; the validator
// caches struct metadata and is safe for concurrent use.
var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the json field name, matching the form keys.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// StructResolver builds a Resolver that decodes the value map into T and
// validates it with go-playground struct tags:
//
//	type Contact struct {
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//	resolver := validation.StructResolver[Contact]()
//
// Each failing field yields one FieldError keyed by its json path, with the
// validator tag as the error type.
func StructResolver[T any]() Resolver[T] {
	return func(ctx context.Context, values map[string]any, _ Options) (Result[T], error) {
		var out T
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &out,
			TagName:          "json",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return Result[T]{}, err
		}
		if err := dec.Decode(values); err != nil {
			// Shape mismatches are user input errors, not transport failures.
			return Result[T]{Errors: ErrorTree{
				"_": &FieldError{Type: "decode", Message: err.Error()},
			}}, nil
		}

		if err := structValidator.StructCtx(ctx, out); err != nil {
			var ve validator.ValidationErrors
			if !errors.As(err, &ve) {
				return Result[T]{}, err
			}
			tree := ErrorTree{}
			for _, fe := range ve {
				tree[fieldPath(fe)] = &FieldError{Type: fe.Tag(), Message: fe.Error()}
			}
			return Result[T]{Errors: tree}, nil
		}
		return Result[T]{Values: out}, nil
	}
}

// fieldPath strips the root struct name from the validator namespace, so
// "Contact.email" reports as "email" and nested fields keep their dots.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
