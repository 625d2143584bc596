package game

// Role is one step of a move's effect pipeline. Each role in a move's role
// list is processed independently and in declared order.
type Role string

const (
	RoleDamage             Role = "damage"
	RoleSupport            Role = "support"
	RoleSelfHeal           Role = "selfheal"
	RoleHealPartyMember    Role = "healpartymember"
	RoleSelfSupport        Role = "selfsupport"
	RoleSupportPartyMember Role = "supportpartymember"
)

// ParseRole maps a catalog role string onto its variant. Unknown strings are
// reported so the caller can skip them instead of silently dropping effects.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleDamage, RoleSupport, RoleSelfHeal, RoleHealPartyMember, RoleSelfSupport, RoleSupportPartyMember:
		return Role(s), true
	}
	return "", false
}

// TargetType describes how a move picks its targets. A move lists target
// types in preference order; only the first recognized one is honored.
type TargetType string

const (
	TargetSelf   TargetType = "self"
	TargetAll    TargetType = "all"
	TargetSingle TargetType = "single"
	TargetDouble TargetType = "double"
)

// ParseTargetType maps a catalog target-type string onto its variant.
func ParseTargetType(s string) (TargetType, bool) {
	switch TargetType(s) {
	case TargetSelf, TargetAll, TargetSingle, TargetDouble:
		return TargetType(s), true
	}
	return "", false
}

// PickCount returns how many explicit picks the type requires, or zero when
// targeting is implicit.
func (t TargetType) PickCount() int {
	switch t {
	case TargetSingle:
		return 1
	case TargetDouble:
		return 2
	}
	return 0
}

// FirstTargetType resolves the move's effective targeting behavior: the
// first recognized entry of the target-type list wins for the whole move.
func (m *Move) FirstTargetType() (TargetType, bool) {
	for _, s := range m.TargetTypes {
		if t, ok := ParseTargetType(s); ok {
			return t, true
		}
	}
	return "", false
}

// HasCategory reports whether the move declares the given category.
// "target" is currently the only category the engine acts on.
func (m *Move) HasCategory(cat string) bool {
	for _, c := range m.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// CategoryTarget is the only move category the resolver implements.
const CategoryTarget = "target"
