// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a principal can have in the system.
type Role string

const (
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "admin"
	// RoleCustomer indicates a storefront customer.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}
