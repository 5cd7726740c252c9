package domain

import "fmt"

type Role string

const (
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleContentAdmin Role = "CONTENT_ADMIN"
	RoleMatchAdmin   Role = "MATCH_ADMIN"
	RoleMerchAdmin   Role = "MERCH_ADMIN"
	RoleFinance      Role = "FINANCE"
	RoleModerator    Role = "MODERATOR"
	RoleUser         Role = "USER"
)

// RoleSet is a bitmask of roles. A role's grant set is the set of roles
// whose permissions it carries.
type RoleSet uint8

const (
	bitUser RoleSet = 1 << iota
	bitModerator
	bitFinance
	bitMerchAdmin
	bitMatchAdmin
	bitContentAdmin
	bitSuperAdmin
)

const AllRoles = bitUser | bitModerator | bitFinance | bitMerchAdmin | bitMatchAdmin | bitContentAdmin | bitSuperAdmin

var roleBits = map[Role]RoleSet{
	RoleSuperAdmin:   bitSuperAdmin,
	RoleContentAdmin: bitContentAdmin,
	RoleMatchAdmin:   bitMatchAdmin,
	RoleMerchAdmin:   bitMerchAdmin,
	RoleFinance:      bitFinance,
	RoleModerator:    bitModerator,
	RoleUser:         bitUser,
}

var roleGrants = map[Role]RoleSet{
	RoleSuperAdmin:   AllRoles,
	RoleContentAdmin: bitContentAdmin | bitUser,
	RoleMatchAdmin:   bitMatchAdmin | bitUser,
	RoleMerchAdmin:   bitMerchAdmin | bitUser,
	RoleFinance:      bitFinance | bitUser,
	RoleModerator:    bitModerator | bitUser,
	RoleUser:         bitUser,
}

// Role groups used by the admin back-office.
var (
	ContentRoles   = []Role{RoleSuperAdmin, RoleContentAdmin}
	MatchRoles     = []Role{RoleSuperAdmin, RoleMatchAdmin}
	StoreRoles     = []Role{RoleSuperAdmin, RoleMerchAdmin}
	OrderRoles     = []Role{RoleSuperAdmin, RoleMerchAdmin, RoleFinance}
	CommunityRoles = []Role{RoleSuperAdmin, RoleModerator, RoleContentAdmin}
	PollRoles      = []Role{RoleSuperAdmin, RoleModerator}
	AuditRoles     = []Role{RoleSuperAdmin}
	DashboardRoles = []Role{RoleSuperAdmin, RoleContentAdmin, RoleMatchAdmin, RoleMerchAdmin, RoleFinance, RoleModerator}
)

func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleContentAdmin, RoleMatchAdmin, RoleMerchAdmin, RoleFinance, RoleModerator, RoleUser}
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleBits[r]; !ok {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := roleBits[r]
	return ok
}

// Grants returns the expanded set of roles r carries. Unknown roles grant nothing.
func (r Role) Grants() RoleSet {
	return roleGrants[r]
}

func SetOf(roles ...Role) RoleSet {
	var s RoleSet
	for _, r := range roles {
		s |= roleBits[r]
	}
	return s
}

func (s RoleSet) Has(r Role) bool {
	bit, ok := roleBits[r]
	return ok && s&bit != 0
}

// CanAccess reports whether current carries any of the required roles.
// An empty current role never has access.
func CanAccess(required []Role, current Role) bool {
	if current == "" {
		return false
	}
	return current.Grants()&SetOf(required...) != 0
}

// RequireRole returns ErrUnauthorized when there is no current role and
// ErrForbidden when it lacks every required role. Both carry the same message.
func RequireRole(required []Role, current Role) error {
	if current == "" {
		return ErrUnauthorized
	}
	if !CanAccess(required, current) {
		return ErrForbidden
	}
	return nil
}
