package form

import (
	"encoding/json"
	"fmt"
	"net/url"
)

// DefaultPayloadKey is the well-known field name for pre-serialized payloads.
const DefaultPayloadKey = "formData"

// CreateFormData serializes data to JSON and places it under key (default
// DefaultPayloadKey), producing a body ready to submit as either urlencoded
// or multipart form data.
func CreateFormData(data any, key ...string) (url.Values, error) {
	k := DefaultPayloadKey
	if len(key) > 0 && key[0] != "" {
		k = key[0]
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("form: encode payload: %w", err)
	}
	return url.Values{k: {string(b)}}, nil
}
