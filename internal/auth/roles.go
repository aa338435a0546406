package auth

import (
	"fmt"
	"sort"
	"strings"
)

// RoleName is a symbolic authorization level. Gates compare names, never
// the numeric identifiers the roles table happens to use.
type RoleName string

const (
	RoleAdmin        RoleName = "Admin"
	RoleManager      RoleName = "Manager"
	RoleMechanic     RoleName = "Mechanic"
	RoleReceptionist RoleName = "Receptionist"
)

// Role is a row of the company_roles table.
type Role struct {
	ID          int64    `json:"company_role_id"`
	Name        RoleName `json:"role_name"`
	Description string   `json:"role_description,omitempty"`
}

// RoleRegistry resolves role identifiers to names once at startup. It is
// immutable after construction, so concurrent reads need no locking.
type RoleRegistry struct {
	byID   map[int64]Role
	byName map[RoleName]Role
}

func NewRoleRegistry(roles []Role) *RoleRegistry {
	r := &RoleRegistry{
		byID:   make(map[int64]Role, len(roles)),
		byName: make(map[RoleName]Role, len(roles)),
	}
	for _, role := range roles {
		r.byID[role.ID] = role
		r.byName[role.Name] = role
	}
	return r
}

// ByID resolves a numeric role identifier.
func (r *RoleRegistry) ByID(id int64) (Role, bool) {
	role, ok := r.byID[id]
	return role, ok
}

// ByName resolves a symbolic role name.
func (r *RoleRegistry) ByName(name RoleName) (Role, bool) {
	role, ok := r.byName[name]
	return role, ok
}

func (r *RoleRegistry) Names() []RoleName {
	names := make([]RoleName, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}

func (r *RoleRegistry) String() string {
	parts := make([]string, 0, len(r.byName))
	for _, name := range r.Names() {
		parts = append(parts, string(name))
	}
	return fmt.Sprintf("roles[%s]", strings.Join(parts, ","))
}
