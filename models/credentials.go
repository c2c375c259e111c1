package models

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

type Credentials struct {
	UserId string
	Email  string
	Role   Role
	// Guest marks a degraded, non-durable session fabricated when the
	// identity provider could not be reached (dev fallback only).
	Guest bool
}

func NewCredentials(user User) Credentials {
	role := RoleUser
	if user.IsAdmin {
		role = RoleAdmin
	}
	return Credentials{
		UserId: user.Id,
		Email:  user.Email,
		Role:   role,
	}
}
