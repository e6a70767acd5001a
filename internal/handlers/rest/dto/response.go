package dto

import (
	"encoding/json"
	"net/http"
)

const ReleaseConflictMessage = "container already released, edit the existing release instead"

func WriteJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, Error{Error: message})
}
