package router

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/shandysiswandi/enquiry/internal/pkg/goerror"
)

// maxBodyBytes bounds JSON request bodies; a contact form is a few KB at most.
const maxBodyBytes = 64 * 1024

// Request wraps http.Request with helpers for inbound handlers.
type Request struct {
	// Request is the underlying http.Request.
	*http.Request

	w http.ResponseWriter
}

// DecodeBody decodes the JSON body into dst.
//
// Unknown fields, trailing data and bodies over 64KB are rejected as an
// invalid format.
func (r *Request) DecodeBody(dst any) error {
	if r == nil || r.Request == nil || r.Body == nil {
		return goerror.NewInvalidFormat()
	}

	body := r.Body
	if r.w != nil {
		body = http.MaxBytesReader(r.w, r.Body, maxBodyBytes)
	}

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return goerror.NewInvalidFormat()
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return goerror.NewInvalidFormat()
	}

	return nil
}
