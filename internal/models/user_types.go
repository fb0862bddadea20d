package models

// User is the model for the 'users' table.
// PasswordHash never leaves the process: it is hidden from JSON.
type User struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	Firstname    string `json:"firstname" db:"firstname"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"`
	IsActive     bool   `json:"isActive" db:"is_active"`
	CreatedAt    int64  `json:"createdAt" db:"created_at"`
}
