package domain

// RoleAdmin is the only role allowed through the admin gate.
const RoleAdmin = "admin"

// User is a stored account. Only admin users can log in through this API;
// there is no registration flow. The bcrypt hash lives under the "password"
// key in the persisted document.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password"`
	Role         string `json:"role"`
	Name         string `json:"name"`
}
