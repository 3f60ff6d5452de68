package models

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `db:"id"`            // Primary key, assigned by the database
	Name         string `db:"name"`          // Display name
	Email        string `db:"email"`         // Unique email
	PasswordHash string `db:"password_hash"` // bcrypt hash, never serialized
}

// User is the public projection of a user record.
// It is the only user shape that ever appears in a response payload.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the response projection of a database record.
func (u *UserDB) Public() *User {
	return &User{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
