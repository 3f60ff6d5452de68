package models

// UpdateUserRequest represents the JSON body for a partial user update.
// A nil field means "leave unchanged"; an empty string is a real value
// and overwrites the stored one.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// Display name
	// example: Ana Maria
	Name *string `json:"name"`

	// Email
	// example: ana.maria@example.com
	Email *string `json:"email"`
}

// DeleteUserResponse represents the confirmation body for a deletion
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Confirmation message
	// example: Usuário deletado
	Message string `json:"message"`
}
