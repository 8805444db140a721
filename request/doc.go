// Package request extracts structured form values from HTTP requests.
//
// The extraction policy follows the request method: GET reads the URL's
// query string, every other method reads the form body. Either way the flat
// entry set is flattened into a nested map via the form package — unless the
// body carries a single pre-serialized JSON payload under the well-known
// "formData" field, in which case that payload is decoded directly.
//
//	// GET /search?filter.name=Alice&tags[]=a
//	values, err := request.FormValues(r)
//	// → {"filter": {"name": "Alice"}, "tags": ["a"]}
//
//	// POST with formData={"name":"Alice"} decodes the payload as-is
//	values, err := request.FormValues(r)
//	// → {"name": "Alice"}
//
// Parse decodes straight into a typed value:
//
//	type Contact struct {
//	    Name  string `json:"name"`
//	    Email string `json:"email"`
//	}
//	c, err := request.Parse[Contact](r)
//
// Errors propagate to the caller; there is no local recovery. A file part
// submitted under the payload key is rejected with ErrNotText.
package request
