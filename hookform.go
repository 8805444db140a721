package hookform

import (
	"encoding/json"
	"net/http"

	"github.com/km-arc/go-hookform/request"
	"github.com/km-arc/go-hookform/validation"
)

// ValidatedForm is the outcome of validating a request's form data.
// ReceivedValues always carries the raw extracted values so callers can
// re-populate the form after a failure.
type ValidatedForm[T any] struct {
	Data           T
	Errors         validation.ErrorTree
	ReceivedValues map[string]any
}

// GetValidatedFormData extracts the request's form data (query string for
// GET, body otherwise) and runs it through the resolver. Extraction and
// resolver failures propagate as error; field errors are data.
func GetValidatedFormData[T any](r *http.Request, resolve validation.Resolver[T]) (*ValidatedForm[T], error) {
	values, err := request.FormValues(r)
	if err != nil {
		return nil, err
	}
	v, err := validation.Validate(r.Context(), values, resolve)
	if err != nil {
		return nil, err
	}
	return &ValidatedForm[T]{
		Data:           v.Data,
		Errors:         v.Errors,
		ReceivedValues: values,
	}, nil
}

// HandleForm adapts a form-validating handler into an http.HandlerFunc.
// Extraction or resolver failures answer 400; otherwise fn receives the
// ValidatedForm and decides how to respond to field errors.
func HandleForm[T any](resolve validation.Resolver[T], fn func(w http.ResponseWriter, r *http.Request, f *ValidatedForm[T])) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f, err := GetValidatedFormData(r, resolve)
		if err != nil {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		fn(w, r, f)
	}
}

// ── JSON responses ────────────────────────────────────────────────────────────

// WriteErrors sends 422 JSON: {"errors": tree}
func WriteErrors(w http.ResponseWriter, errs validation.ErrorTree) {
	writeJSON(w, http.StatusUnprocessableEntity, envelope{"errors": errs})
}

// WriteError sends a JSON error response: {"message": message}
func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, envelope{"message": message})
}

// WriteJSON sends an arbitrary JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

type envelope map[string]any

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
