// Package handler implements the REST API endpoints.
package handler

import (
	"net/http"

	"github.com/bytedance/sonic"
)

// writeJSON writes a JSON response with an explicit status code.
func writeJSON(w http.ResponseWriter, status int, value any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return sonic.ConfigDefault.NewEncoder(w).Encode(value)
}
