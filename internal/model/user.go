package model

import "time"

type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleTeamMember Role = "TeamMember"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTeamMember
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is what a validated access token resolves to.
type Identity struct {
	UserID int64 `json:"user_id"`
	Role   Role  `json:"role"`
}

type LoginResult struct {
	UserID int64  `json:"-"`
	Name   string `json:"name"`
	Role   Role   `json:"-"`
	Token  string `json:"token"`
}

type Profile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
