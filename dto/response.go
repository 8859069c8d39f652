package dto

// ErrorResponseDTO is the shared error response shape.
type ErrorResponseDTO struct {
	Error   string            `json:"error" example:"invalid_token"`
	Details map[string]string `json:"details,omitempty"`
}

// SuccessResponseDTO acknowledges a mutation with no other payload.
type SuccessResponseDTO struct {
	Success bool `json:"success" example:"true"`
}
