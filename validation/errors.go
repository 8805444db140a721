package validation

import "encoding/json"

// ErrorNode is a node in an error tree: either a *FieldError leaf or a
// nested ErrorTree. No other implementations exist.
type ErrorNode interface {
	errorNode()
}

// FieldError describes a single field-level validation failure.
// Extra carries any additional descriptor fields beyond type and message.
type FieldError struct {
	Type    string
	Message string
	Extra   map[string]any
}

func (*FieldError) errorNode() {}

// ErrorTree maps field paths to error nodes.
type ErrorTree map[string]ErrorNode

func (ErrorTree) errorNode() {}

// Empty reports whether the tree holds no errors.
func (t ErrorTree) Empty() bool { return len(t) == 0 }

// Field returns the leaf error stored directly under path.
func (t ErrorTree) Field(path string) (*FieldError, bool) {
	fe, ok := t[path].(*FieldError)
	return fe, ok
}

// MarshalJSON flattens Extra into the same object as type and message:
// {"type": "custom", "message": "...", <extra...>}.
func (fe *FieldError) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(fe.Extra)+2)
	for k, v := range fe.Extra {
		m[k] = v
	}
	m["type"] = fe.Type
	if fe.Message != "" {
		m["message"] = fe.Message
	}
	return json.Marshal(m)
}

// Clone deep-copies the tree.
func (t ErrorTree) Clone() ErrorTree {
	if t == nil {
		return nil
	}
	out := make(ErrorTree, len(t))
	for k, n := range t {
		switch v := n.(type) {
		case *FieldError:
			out[k] = v.clone()
		case ErrorTree:
			out[k] = v.Clone()
		}
	}
	return out
}

func (fe *FieldError) clone() *FieldError {
	out := &FieldError{Type: fe.Type, Message: fe.Message}
	if fe.Extra != nil {
		out.Extra = make(map[string]any, len(fe.Extra))
		for k, v := range fe.Extra {
			out.Extra[k] = v
		}
	}
	return out
}
