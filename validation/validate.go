package validation

import "context"

// Options is passed to every resolver invocation. NativeValidation is always
// false on the server; Fields is non-nil but empty unless the caller has
// per-field state to share.
type Options struct {
	NativeValidation bool
	Fields           map[string]any
}

// Result is what a resolver reports back: typed values on success, field
// errors on failure.
type Result[T any] struct {
	Values T
	Errors ErrorTree
}

// Resolver validates extracted form values. Transport failures are returned
// as error; validation failures belong in Result.Errors.
type Resolver[T any] func(ctx context.Context, values map[string]any, opts Options) (Result[T], error)

// Validated is the normalized outcome of Validate: exactly one of Data and
// Errors is meaningful.
type Validated[T any] struct {
	Data   T
	Errors ErrorTree
}

// Validate invokes the resolver and normalizes its result: any reported
// field error suppresses the data, otherwise the resolved values are
// returned with no errors. Resolver errors propagate uncaught.
func Validate[T any](ctx context.Context, values map[string]any, resolve Resolver[T]) (*Validated[T], error) {
	res, err := resolve(ctx, values, Options{Fields: map[string]any{}})
	if err != nil {
		return nil, err
	}
	if !res.Errors.Empty() {
		return &Validated[T]{Errors: res.Errors}, nil
	}
	return &Validated[T]{Data: res.Values}, nil
}
