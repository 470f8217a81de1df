package models

type UserRole string
type PropertyType string

const (
	UserRoleBuyer   UserRole = "BUYER"
	UserRoleRealtor UserRole = "REALTOR"
	UserRoleAdmin   UserRole = "ADMIN"

	PropertyTypeResidential PropertyType = "RESIDENTIAL"
	PropertyTypeCondo       PropertyType = "CONDO"
)

// AllUserRoles - все роли. Используется для маршрутов, где нужен любой залогиненный пользователь.
var AllUserRoles = []UserRole{UserRoleBuyer, UserRoleRealtor, UserRoleAdmin}

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleBuyer, UserRoleRealtor, UserRoleAdmin:
		return true
	}
	return false
}

// IsPrivileged - роли, для регистрации которых нужен product key
func (r UserRole) IsPrivileged() bool {
	return r == UserRoleRealtor || r == UserRoleAdmin
}

func (p PropertyType) IsValid() bool {
	switch p {
	case PropertyTypeResidential, PropertyTypeCondo:
		return true
	}
	return false
}
