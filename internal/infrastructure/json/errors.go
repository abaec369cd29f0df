package json

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the failure half of the response envelope: every error
// reply carries ok=false and a human-readable error string.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	resp := ErrorResponse{
		OK:    false,
		Error: msg,
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func WriteValidationError(w http.ResponseWriter, msg string) {
	WriteError(w, http.StatusBadRequest, msg)
}

func WriteNotFound(w http.ResponseWriter) {
	WriteError(w, http.StatusNotFound, "not found")
}

func WriteInternalError(w http.ResponseWriter, err error) {
	log.Printf("Internal error: %v", err)
	WriteError(w, http.StatusInternalServerError, "internal server error")
}
