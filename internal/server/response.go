package server

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the fixed response shape for every API outcome. Consumers
// rely on all four keys always being present; data is null on rejection.
type Envelope struct {
	Data       any    `json:"data"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

// successResponse writes a 200 envelope with the given payload.
func (s *Server) successResponse(w http.ResponseWriter, data any, message string) {
	s.jsonResponse(w, http.StatusOK, Envelope{
		Data:       data,
		Status:     "success",
		Message:    message,
		StatusCode: http.StatusOK,
	})
}

// errorResponse writes an error envelope. data is usually nil; the
// readability check includes a negative report alongside the rejection.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string, data any) {
	s.jsonResponse(w, status, Envelope{
		Data:       data,
		Status:     "error",
		Message:    message,
		StatusCode: status,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}
