package dto

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
