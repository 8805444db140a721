package validation

// Merge folds a backend error tree (typically a decoded JSON body from a
// failed server action) into frontend and returns the combined tree. The
// input trees are left untouched; MergeInto is the in-place variant. A nil
// backend returns frontend unchanged without invoking onMerge.
func Merge(frontend ErrorTree, backend map[string]any, onMerge ...func()) ErrorTree {
	if backend == nil {
		return frontend
	}
	out := frontend.Clone()
	if out == nil {
		out = ErrorTree{}
	}
	return MergeInto(out, backend, onMerge...)
}

// MergeInto merges backend into frontend in place and returns frontend.
// When backend is non-nil, onMerge (if given) is invoked exactly once after
// all entries have been processed.
func MergeInto(frontend ErrorTree, backend map[string]any, onMerge ...func()) ErrorTree {
	if backend == nil {
		return frontend
	}
	mergeLevel(frontend, backend)
	if len(onMerge) > 0 && onMerge[0] != nil {
		onMerge[0]()
	}
	return frontend
}

func mergeLevel(dst ErrorTree, src map[string]any) {
	for key, rv := range src {
		switch v := rv.(type) {
		case string:
			dst[key] = &FieldError{Type: "custom", Message: v}

		case map[string]any:
			if _, leaf := v["message"]; leaf {
				dst[key] = leafError(v)
				continue
			}
			if key == "root" {
				// Reserved key: becomes dotted pseudo-fields at this level.
				for k, fe := range rootFields(v) {
					dst[k] = fe
				}
				continue
			}
			sub, ok := dst[key].(ErrorTree)
			if !ok {
				sub = ErrorTree{}
				dst[key] = sub
			}
			mergeLevel(sub, v)
		}
		// Other value shapes (numbers, arrays) carry no error semantics.
	}
}

// leafError builds {"type": "custom", ...rv}: an explicit backend type wins
// over the "custom" default.
func leafError(v map[string]any) *FieldError {
	fe := &FieldError{Type: "custom"}
	for k, x := range v {
		switch k {
		case "message":
			fe.Message, _ = x.(string)
		case "type":
			if s, ok := x.(string); ok {
				fe.Type = s
			}
		default:
			if fe.Extra == nil {
				fe.Extra = map[string]any{}
			}
			fe.Extra[k] = x
		}
	}
	return fe
}

// rootFields rewrites the reserved "root" value: serverError maps to
// "root.serverError" with type "400", random maps to "root.random" with type
// "random". Other sub-fields are dropped.
func rootFields(v map[string]any) map[string]*FieldError {
	out := make(map[string]*FieldError, 2)
	if se, ok := v["serverError"]; ok {
		out["root.serverError"] = typedError(se, "400")
	}
	if rd, ok := v["random"]; ok {
		out["root.random"] = typedError(rd, "random")
	}
	return out
}

func typedError(v any, typ string) *FieldError {
	fe := &FieldError{Type: typ}
	switch val := v.(type) {
	case string:
		fe.Message = val
	case map[string]any:
		for k, x := range val {
			switch k {
			case "message":
				fe.Message, _ = x.(string)
			case "type":
				// The pseudo-field type is fixed.
			default:
				if fe.Extra == nil {
					fe.Extra = map[string]any{}
				}
				fe.Extra[k] = x
			}
		}
	}
	return fe
}
