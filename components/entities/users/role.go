package users

// Role is the access level of an account.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

var roles = []Role{RoleAdmin, RoleCustomer}

// Roles returns every role in display order.
func Roles() []Role {
	return append([]Role{}, roles...)
}

// ParseRole matches value against the known roles exactly.
func ParseRole(value string) (Role, bool) {
	for _, r := range roles {
		if string(r) == value {
			return r, true
		}
	}
	return "", false
}
