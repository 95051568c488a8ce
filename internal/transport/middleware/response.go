package middleware

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeError uses the same body shape as the REST handlers.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(errorBody{Error: message, Code: code})
}
