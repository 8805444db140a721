package form

import (
	"io"
	"net/http"
	"net/url"
	"strings"
)

const maxMemory = 32 << 20 // 32 MB

// Entry is a single decoded form field in encounter order.
// File parts from multipart bodies carry the filename as Value with
// IsFile set; their content is not buffered here.
type Entry struct {
	Key    string
	Value  string
	IsFile bool
}

// Entries is an ordered flat entry set, duplicate keys allowed.
type Entries []Entry

// Get returns the first entry for key.
func (es Entries) Get(key string) (Entry, bool) {
	for _, e := range es {
		if e.Key == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Has reports whether key appears in the entry set.
func (es Entries) Has(key string) bool {
	_, ok := es.Get(key)
	return ok
}

// ParseQuery decodes a raw query string (or urlencoded body) into Entries,
// preserving encounter order. Unlike url.ParseQuery it never collapses the
// result into a map, so "list.0=x&list.1=y" keeps x before y.
func ParseQuery(raw string) (Entries, error) {
	var out Entries
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, err
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Key: key, Value: val})
	}
	return out, nil
}

// ReadEntries reads the request's form body into ordered Entries.
// multipart/form-data bodies are walked part by part; everything else is
// treated as application/x-www-form-urlencoded.
func ReadEntries(r *http.Request) (Entries, error) {
	ct := r.Header.Get("Content-Type")

	if strings.Contains(ct, "multipart/form-data") {
		return readMultipart(r)
	}

	if r.Body == nil {
		return nil, nil
	}
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxMemory))
	if err != nil {
		return nil, err
	}
	return ParseQuery(string(body))
}

func readMultipart(r *http.Request) (Entries, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}

	var out Entries
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, err
		}

		name := part.FormName()
		if name == "" {
			continue
		}
		if fn := part.FileName(); fn != "" {
			out = append(out, Entry{Key: name, Value: fn, IsFile: true})
			continue
		}
		val, err := io.ReadAll(io.LimitReader(part, maxMemory))
		if err != nil {
			return nil, err
		}
		out = append(out, Entry{Key: name, Value: string(val)})
	}
}
