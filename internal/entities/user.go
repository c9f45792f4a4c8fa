package entities

import (
	"slices"
	"time"
)

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleDealer   UserRole = "dealer"
	RoleAdmin    UserRole = "admin"
)

var UserRoles = []UserRole{RoleCustomer, RoleDealer, RoleAdmin}

func (r UserRole) Valid() bool { return slices.Contains(UserRoles, r) }

type User struct {
	ID           string
	Email        string
	Name         string
	Phone        string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
}

type UserFilter struct {
	Search string
	Role   string
	Limit  uint64
	Offset uint64
}
