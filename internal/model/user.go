package model

// UserStatusActive is the status every new user starts with.
const UserStatusActive = "Active"

// User represents a staff record.
type User struct {
	ID         int    `json:"id" yaml:"id"`
	Username   string `json:"username" yaml:"username"`
	Name       string `json:"name" yaml:"name"`
	Role       string `json:"role" yaml:"role"`
	Department string `json:"department" yaml:"department"`
	Region     string `json:"region" yaml:"region"`
	Status     string `json:"status" yaml:"status"`
}

// UserInput is the request body for creating a user.
type UserInput struct {
	Username   OptionalString `json:"username"`
	Name       OptionalString `json:"name"`
	Role       OptionalString `json:"role"`
	Department OptionalString `json:"department"`
	Region     OptionalString `json:"region"`
}

// Principal is the identity returned by a successful login.
type Principal struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Credentials is the login request body. Non-string values are compared
// by their JSON text, so they simply fail to match.
type Credentials struct {
	Username OptionalString `json:"username"`
	Password OptionalString `json:"password"`
}
