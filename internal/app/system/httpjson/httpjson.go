// Package httpjson has the request-body helper shared by the JSON handlers.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
)

// maxBodyBytes caps request bodies; none of the API payloads come close.
const maxBodyBytes = 1 << 20

// Decode reads the request body into v, translating malformed JSON into a
// 400 apierr. An empty body is also a 400: every POST/PUT in this API
// requires a payload.
func Decode(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	err := json.NewDecoder(body).Decode(v)
	if errors.Is(err, io.EOF) {
		return apierr.BadRequest("Request body is required")
	}
	if err != nil {
		return apierr.BadRequest("Invalid JSON body")
	}
	return nil
}
