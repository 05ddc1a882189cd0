package domain

import "slices"

// Role is a privilege granted to a user.
type Role string

const (
	// RoleAdmin grants full administration rights.
	RoleAdmin Role = "admin"
	// RoleGroupAdmin grants administration rights over pipeline groups, which
	// includes managing package definitions.
	RoleGroupAdmin Role = "group_admin"
)

// User is the authenticated actor performing an operation.
type User struct {
	// Name is the login name of the user.
	Name string
	// Roles lists the privileges granted to the user.
	Roles []Role
}

// HasRole reports whether the user was granted the role.
func (u User) HasRole(role Role) bool {
	return slices.Contains(u.Roles, role)
}

// CanAdministerPackages reports whether the user is an admin or a group admin.
func (u User) CanAdministerPackages() bool {
	return u.HasRole(RoleAdmin) || u.HasRole(RoleGroupAdmin)
}
