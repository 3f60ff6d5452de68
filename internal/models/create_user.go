package models

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name
	// required: true
	// example: Ana
	Name string `json:"name"`

	// Email
	// required: true
	// example: ana@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// UserErrorResponse represents an error response for user endpoints
// swagger:model UserErrorResponse
type UserErrorResponse struct {
	// Error message
	// example: Faltando dados
	Error string `json:"error"`
}
