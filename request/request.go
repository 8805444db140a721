package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/km-arc/go-hookform/form"
)

// ErrNotText is returned when the value under the serialized-payload key is
// a file part rather than text.
var ErrNotText = errors.New("serialized payload is not a text value")

// IsGet reports whether the request method is GET, case-insensitively.
func IsGet(r *http.Request) bool {
	return strings.EqualFold(r.Method, http.MethodGet)
}

// SearchParams flattens the URL's query string into a nested map.
func SearchParams(r *http.Request) (map[string]any, error) {
	entries, err := form.ParseQuery(r.URL.RawQuery)
	if err != nil {
		return nil, err
	}
	return form.Generate(entries)
}

// FormValues extracts structured data from the request: query parameters for
// GET, the form body otherwise. A body field named form.DefaultPayloadKey is
// treated as a pre-serialized JSON payload and decoded directly.
func FormValues(r *http.Request) (map[string]any, error) {
	if IsGet(r) {
		return SearchParams(r)
	}

	entries, err := form.ReadEntries(r)
	if err != nil {
		return nil, err
	}
	if e, ok := entries.Get(form.DefaultPayloadKey); ok {
		return decodePayload(e)
	}
	return form.Generate(entries)
}

// Parse decodes the request's form data into T. When the payload key
// (default form.DefaultPayloadKey) is present its JSON text is decoded
// directly; otherwise the full entry set is flattened and mapped onto T.
func Parse[T any](r *http.Request, key ...string) (T, error) {
	var out T

	k := form.DefaultPayloadKey
	if len(key) > 0 && key[0] != "" {
		k = key[0]
	}

	var (
		entries form.Entries
		err     error
	)
	if IsGet(r) {
		entries, err = form.ParseQuery(r.URL.RawQuery)
	} else {
		entries, err = form.ReadEntries(r)
	}
	if err != nil {
		return out, err
	}

	if e, ok := entries.Get(k); ok {
		if e.IsFile {
			return out, fmt.Errorf("request: field %q: %w", k, ErrNotText)
		}
		if err := json.Unmarshal([]byte(e.Value), &out); err != nil {
			return out, fmt.Errorf("request: decode %q payload: %w", k, err)
		}
		return out, nil
	}

	values, err := form.Generate(entries)
	if err != nil {
		return out, err
	}
	if err := decodeValues(values, &out); err != nil {
		return out, fmt.Errorf("request: decode form values: %w", err)
	}
	return out, nil
}

func decodePayload(e form.Entry) (map[string]any, error) {
	if e.IsFile {
		return nil, fmt.Errorf("request: field %q: %w", e.Key, ErrNotText)
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(e.Value), &out); err != nil {
		return nil, fmt.Errorf("request: decode %q payload: %w", e.Key, err)
	}
	return out, nil
}

// decodeValues maps a flattened value tree onto v. Form values arrive as
// strings, so decoding is weakly typed ("18" fills an int field).
func decodeValues(values map[string]any, v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(values)
}
