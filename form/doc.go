// Package form converts flat form-encoded key/value pairs into nested values.
//
// # Entries
//
// Entries is an ordered list of (key, value) pairs, exactly as they appeared
// in a query string or a submitted form body. Order matters: repeated and
// numeric keys accumulate in encounter order, so Entries are always produced
// by the ordered readers in this package, never by ranging over a Go map.
//
//	entries, err := form.ParseQuery("user.name=Alice&tags[]=a&tags[]=b")
//	entries, err := form.ReadEntries(r) // urlencoded or multipart body
//
// # Key conventions
//
// Keys are dot-delimited paths. A segment addresses an array when the next
// segment is purely numeric, or when the final segment carries a bracket
// suffix:
//
//	"user.name=Alice"          → {"user": {"name": "Alice"}}
//	"tags[0]=a&tags[1]=b"      → {"tags": ["a", "b"]}
//	"tags[]=a&tags[]=b"        → {"tags": ["a", "b"]}
//	"list.0=x&list.1=y"        → {"list": ["x", "y"]}
//
// Literal dots in field names are not escapable; that is an accepted
// limitation of the convention.
//
// # Generate
//
//	values, err := form.Generate(entries)
//
// Each branch of the output is either an object or an array. The container
// kind is decided the first time a path is visited and never changes; an
// entry that would flip an already-decided kind fails with ErrPathConflict
// rather than producing a silently mangled structure.
//
// # Serialized payloads
//
// CreateFormData supports the convention where an entire payload is
// pre-serialized to JSON and submitted under a single well-known field
// (DefaultPayloadKey, "formData"):
//
//	vals, err := form.CreateFormData(map[string]any{"name": "Alice"})
//	// vals.Encode() → formData=%7B%22name%22%3A%22Alice%22%7D
package form
