package dto

import "time"

// APIResponse is the envelope of every successful response.
// Message carries the status text of mutating operations.
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Course created successfully!"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope
func NewAPIResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Service string `json:"service" example:"course-catalog"`
	Version string `json:"version" example:"1.0.0"`
}
