package domain

import "strings"

// Role is the viewer's role as asserted by the upstream auth layer.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleShipper  Role = "shipper"
	RoleAdmin    Role = "admin"
)

// OrderScope selects which order collection a role may see.
type OrderScope int

const (
	// ScopeNone yields an empty collection and all-zero counts.
	ScopeNone OrderScope = iota
	// ScopeAll fetches the full order collection.
	ScopeAll
	// ScopeShipper fetches orders assigned to the viewer's shipper id.
	ScopeShipper
)

// RoleProfile describes what a role gets: its navigation entries and how
// its order collection is fetched.
type RoleProfile struct {
	Nav   []string
	Scope OrderScope
}

var roleProfiles = map[Role]RoleProfile{
	RoleCustomer: {
		Nav:   []string{"home", "booking", "my-orders"},
		Scope: ScopeNone,
	},
	RoleStaff: {
		Nav:   []string{"home", "order-list"},
		Scope: ScopeAll,
	},
	RoleShipper: {
		Nav:   []string{"home", "shipper-orders/pending", "shipper-orders/picked_up", "shipper-orders/paid"},
		Scope: ScopeShipper,
	},
	RoleAdmin: {
		Nav:   []string{"home", "order-list", "account-manager", "categories", "posts"},
		Scope: ScopeAll,
	},
}

// ParseRole normalizes a role string. Unrecognized values map to
// RoleCustomer, which carries no order scope.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStaff:
		return RoleStaff
	case RoleShipper:
		return RoleShipper
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleCustomer
	}
}

// Profile returns the role's lookup-table entry. Unknown roles get an
// empty profile with ScopeNone.
func (r Role) Profile() RoleProfile {
	return roleProfiles[r]
}
