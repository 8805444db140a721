// Package validation runs pluggable resolvers over extracted form values and
// merges validation error trees.
//
// # Error trees
//
// An ErrorTree maps field paths to either a *FieldError leaf or a nested
// ErrorTree. The two are the only ErrorNode implementations, so consumers
// can switch exhaustively:
//
//	switch n := tree["user"].(type) {
//	case *validation.FieldError: // leaf
//	case validation.ErrorTree:   // nested fields
//	}
//
// The tree serializes to the familiar shape:
//
//	{"email": {"type": "email", "message": "invalid address"}}
//
// # Resolvers
//
// A Resolver validates the extracted values and returns either typed data or
// field errors. Validate normalizes the result: non-empty errors mean no
// data, and vice versa.
//
//	resolver := validation.StructResolver[Contact]()
//	v, err := validation.Validate(ctx, values, resolver)
//	if v.Errors != nil { ... }
//
// StructResolver validates struct tags with go-playground/validator;
// SchemaResolver checks the raw value map against a JSON Schema document.
// Any resolver transport error propagates unwrapped — only field errors are
// surfaced as data.
//
// # Merging
//
// Merge folds a backend error tree (for example a decoded JSON body from a
// failed server action) into a frontend tree. The default form returns a new
// tree; MergeInto is the explicit in-place variant:
//
//	merged := validation.Merge(clientErrs, backendBody, rerender)
//
// The reserved backend key "root" is rewritten into the dotted pseudo-fields
// "root.serverError" (type "400") and "root.random" (type "random"); other
// sub-fields of "root" are dropped.
package validation
