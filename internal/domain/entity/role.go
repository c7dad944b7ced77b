// Package entity contains the core business objects of the project.
package entity

import "slices"

// RoleType represents the category of role an account can have in the system.
type RoleType string

const (
	// RoleCustomer indicates an account booking services.
	RoleCustomer RoleType = "CUSTOMER"
	// RoleVendor indicates an account offering services.
	RoleVendor RoleType = "VENDOR"
	// RoleAdmin indicates an administrative account.
	RoleAdmin RoleType = "ADMIN"
)

// String returns the string representation of the RoleType.
func (r RoleType) String() string {
	return string(r)
}

// IsValid checks if the RoleType is a valid value.
func (r RoleType) IsValid() bool {
	return slices.Contains([]RoleType{RoleCustomer, RoleVendor, RoleAdmin}, r)
}

// Role is the persisted role record referenced by accounts.
type Role struct {
	ID          int64
	Type        RoleType
	Description string
}
