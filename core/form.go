package core

import (
	"fmt"
	"net/http"
	"net/url"
)

// textField is the one form field the submit endpoint reads.
const textField = "text"

// emptyReply is sent verbatim when the field is present but blank.
const emptyReply = "empty"

// maxFormMemory caps how much of a multipart body is held in memory.
const maxFormMemory = 10 << 20

// ReadFormField returns the value of a submitted form field. A present but
// empty value is valid; an absent key is ErrFieldMissing.
func ReadFormField(form url.Values, key string) (string, error) {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return "", ErrFieldMissing
	}
	return values[0], nil
}

func (r *Router) handleSubmit(w http.ResponseWriter, req *http.Request) {
	if err := req.ParseForm(); err != nil {
		http.Error(w, "Bad form data: "+err.Error(), http.StatusBadRequest)
		return
	}
	// ErrNotMultipart just means the body was urlencoded and ParseForm has
	// already consumed it.
	if err := req.ParseMultipartForm(maxFormMemory); err != nil && err != http.ErrNotMultipart {
		http.Error(w, "Bad form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	// Only the POST body counts; query-string values never satisfy the field.
	text, err := ReadFormField(req.PostForm, textField)
	if err != nil {
		if IsFieldMissingError(err) {
			http.Error(w, "Missing form field: "+textField, http.StatusBadRequest)
			return
		}
		http.Error(w, "Bad form data: "+err.Error(), http.StatusBadRequest)
		return
	}

	if r.config.DebugHeaders {
		w.Header().Set("X-Parrot-Route", "submit")
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	if text == "" {
		fmt.Fprint(w, emptyReply)
		return
	}
	fmt.Fprint(w, text)
}
