package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/certmint/certmint/pkg/idx"
	"github.com/certmint/certmint/pkg/slogx"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteInternalError writes a sanitized 500 body carrying an opaque
// reference id and logs the real error against the same id. Raw error
// content never reaches the client.
func WriteInternalError(w http.ResponseWriter, r *http.Request, err error) {
	ref := idx.New().String()
	slogx.FromContext(r.Context()).Error("internal error", "ref", ref, "err", err)

	WriteJSON(w, http.StatusInternalServerError, map[string]string{
		"msg": "internal server error",
		"ref": ref,
	})
}
