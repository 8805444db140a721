// Package hookform bridges HTTP form submissions into schema-validated data.
//
// # Overview
//
// hookform ports the remix-hook-form server utilities to Go: it flattens
// query strings and form bodies into nested values, runs a pluggable
// resolver over them, and merges client- and server-side validation error
// trees into a single field-path-keyed tree.
//
// # Validating a request
//
//	type Contact struct {
//	    Name  string `json:"name" validate:"required,min=2"`
//	    Email string `json:"email" validate:"required,email"`
//	}
//
//	func store(w http.ResponseWriter, r *http.Request) {
//	    f, err := hookform.GetValidatedFormData(r, validation.StructResolver[Contact]())
//	    if err != nil {
//	        hookform.WriteError(w, http.StatusBadRequest, err.Error())
//	        return
//	    }
//	    if f.Errors != nil {
//	        hookform.WriteErrors(w, f.Errors) // 422 {"errors": {...}}
//	        return
//	    }
//	    // f.Data is the validated Contact; f.ReceivedValues holds the raw
//	    // extracted values for re-populating the form on failure.
//	}
//
// HandleForm wraps the same flow into an http.HandlerFunc:
//
//	r.Post("/contact", hookform.HandleForm(resolver, store))
//
// # Sub-packages
//
//   - form: entry-set flattening and payload serialization
//   - request: method-aware extraction (query string vs form body)
//   - validation: resolvers, error trees, and error merging
package hookform
