package models

import "github.com/google/uuid"

const (
	UserRole  = "user"
	AdminRole = "admin"
)

type User struct {
	ID       uuid.UUID
	Name     string
	Password string
	Email    string
	Roles    []string
}
