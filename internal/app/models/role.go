package models

import "strings"

// Role is a named permission level assigned to users
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Seeded role names
const (
	RoleAdmin          = "Admin"
	RoleSupportAdmin   = "Support Admin"
	RoleProgramManager = "Program Manager"
	RoleSubscriber     = "Subscriber"
)

// DefaultRoles lists the roles created by the seeder, highest privilege first
var DefaultRoles = []string{RoleAdmin, RoleSupportAdmin, RoleProgramManager, RoleSubscriber}

// PrivilegeLevel orders roles so access checks are a single comparison
type PrivilegeLevel int

const (
	LevelNone PrivilegeLevel = iota
	LevelSubscriber
	LevelProgramManager
	LevelSupportAdmin
	LevelAdmin
)

var levelNames = map[PrivilegeLevel]string{
	LevelNone:           "none",
	LevelSubscriber:     RoleSubscriber,
	LevelProgramManager: RoleProgramManager,
	LevelSupportAdmin:   RoleSupportAdmin,
	LevelAdmin:          RoleAdmin,
}

var roleLevels = map[string]PrivilegeLevel{
	"admin":          LevelAdmin,
	"supportadmin":   LevelSupportAdmin,
	"programmanager": LevelProgramManager,
	"subscriber":     LevelSubscriber,
}

// LevelForRole maps a role name to its level. Matching ignores case, spaces,
// underscores and dashes; unknown names map to LevelNone.
func LevelForRole(name string) PrivilegeLevel {
	normalized := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(name)))
	return roleLevels[normalized]
}

// Allows reports whether a principal at level l may access an endpoint that
// requires at least the given level.
func (l PrivilegeLevel) Allows(required PrivilegeLevel) bool {
	return l > LevelNone && l >= required
}

func (l PrivilegeLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}
