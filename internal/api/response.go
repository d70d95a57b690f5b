package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/remedia-ai/remedia/internal/domain"
)

// ErrorResponse represents an error API response
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes a JSON response with the given status code
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// Error writes an error JSON response
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// DomainErrorToHTTP maps domain errors to HTTP status codes
func DomainErrorToHTTP(err error) int {
	if err == nil {
		return http.StatusOK
	}

	domainErr, ok := err.(*domain.DomainError)
	if !ok {
		return http.StatusInternalServerError
	}

	switch domainErr.Code {
	case domain.ErrCodeValidation:
		return http.StatusBadRequest
	case domain.ErrCodeNotFound:
		return http.StatusNotFound
	case domain.ErrCodeModelUnavailable:
		return http.StatusBadGateway
	case domain.ErrCodeIndexUnreachable:
		return http.StatusServiceUnavailable
	case domain.ErrCodeSummaryUnavailable:
		return http.StatusBadGateway
	case domain.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// HandleError writes an appropriate error response based on the error type.
// Unexpected errors are logged with full context and surfaced as a generic
// failure so internals do not leak to clients.
func HandleError(w http.ResponseWriter, err error) {
	if _, ok := err.(*domain.DomainError); !ok {
		log.Printf("api: unexpected error: %v", err)
		Error(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := DomainErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		log.Printf("api: %v", err)
	}
	Error(w, status, err.Error())
}
