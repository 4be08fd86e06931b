package models

import "github.com/jessndots/express-jobly/internal/types"

// User is a row of the users table without its password hash.
type User struct {
	Username  string `json:"username" db:"username"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
	IsAdmin   bool   `json:"isAdmin" db:"is_admin"`
}

// Context returns the identity carried in tokens issued for u.
func (u *User) Context() types.UserContext {
	return types.UserContext{Username: u.Username, IsAdmin: u.IsAdmin}
}

// Credentials is a user together with the stored bcrypt hash.
type Credentials struct {
	User
	Password string `json:"-" db:"password"`
}

// UserDetail is a user together with the ids of the jobs applied for.
type UserDetail struct {
	User
	Jobs []int `json:"jobs"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// CreateUserRequest is the body of POST /users. Only admins may create admins.
type CreateUserRequest struct {
	RegisterRequest
	IsAdmin bool `json:"isAdmin"`
}

// LoginRequest is the body of POST /auth/token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
