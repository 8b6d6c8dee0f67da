package domain

import "time"

// Role is the coarse permission tier of a user account.
type Role string

const (
	RoleStudent    Role = "student"
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAdmin, RoleInstructor:
		return true
	}
	return false
}

// User is the identity record. Email is stored lowercase and trimmed.
// PasswordHash is nil for accounts provisioned by an external identity
// (wallet address) that never set a password.
type User struct {
	ID            string
	Email         string
	WalletAddress *string
	Name          string
	PasswordHash  *string // argon2id PHC encoded
	Role          Role
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// HasPassword reports whether the account can authenticate with a password.
func (u User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// Profile is the public-facing projection of a User. The storage entity is
// never serialized directly; this type has no password field to leak.
type Profile struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	WalletAddress string `json:"walletAddress,omitempty"`
	Name          string `json:"name"`
	Role          Role   `json:"role"`
	EmailVerified bool   `json:"isEmailVerified"`
	CreatedAt     string `json:"createdAt"`
}

// Profile builds the public projection for u.
func (u User) Profile() Profile {
	p := Profile{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt.UTC().Format(time.RFC3339),
	}
	if u.WalletAddress != nil {
		p.WalletAddress = *u.WalletAddress
	}
	return p
}
