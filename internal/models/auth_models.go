package models

import "github.com/golang-jwt/jwt/v5"

// Role is the closed set of MSWT staff roles, ordered by privilege rank.
type Role string

const (
	RoleWorker     Role = "Worker"
	RoleSupervisor Role = "Supervisor"
	RoleManager    Role = "Manager"
	RoleLeader     Role = "Leader"
)

// Backend role identifiers as stored in the users table server-side.
const (
	RoleIDLeader     = "RL01"
	RoleIDManager    = "RL02"
	RoleIDSupervisor = "RL03"
	RoleIDWorker     = "RL04"
)

// roleLevels ranks roles for permission comparisons. Anything not listed
// resolves to 0.
var roleLevels = map[Role]int{
	RoleWorker:     1,
	RoleSupervisor: 2,
	RoleManager:    3,
	RoleLeader:     4,
}

// rolesByID maps backend roleId values to roles.
var rolesByID = map[string]Role{
	RoleIDLeader:     RoleLeader,
	RoleIDManager:    RoleManager,
	RoleIDSupervisor: RoleSupervisor,
	RoleIDWorker:     RoleWorker,
}

// positions maps each role to its Vietnamese display title.
var positions = map[Role]string{
	RoleWorker:     "Nhân viên vệ sinh",
	RoleSupervisor: "Giám sát viên vệ sinh",
	RoleManager:    "Quản lý cấp cao",
	RoleLeader:     "Tổ trưởng vệ sinh",
}

// Level returns the privilege rank of r, 0 when r is not a known role.
func (r Role) Level() int {
	return roleLevels[r]
}

// Position returns the Vietnamese display title for r. Unknown roles fall back
// to the worker title, matching how the backend treats unknown role ids.
func (r Role) Position() string {
	if p, ok := positions[r]; ok {
		return p
	}
	return positions[RoleWorker]
}

// RoleFromID resolves a backend roleId to a Role. Unknown ids default to the
// lowest-privilege role rather than failing.
func RoleFromID(roleID string) Role {
	if r, ok := rolesByID[roleID]; ok {
		return r
	}
	return RoleWorker
}

// RoleFromName parses a role name as found in JWT claims or profile payloads.
// The empty string and unrecognized names default to Worker.
func RoleFromName(name string) Role {
	switch Role(name) {
	case RoleWorker, RoleSupervisor, RoleManager, RoleLeader:
		return Role(name)
	default:
		return RoleWorker
	}
}

// User represents a user profile as returned by the MSWT backend.
type User struct {
	UserID   string  `json:"userId"`
	UserName string  `json:"userName"`
	FullName string  `json:"fullName"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	Image    *string `json:"image,omitempty"`
	RoleID   string  `json:"roleId,omitempty"`
	Role     Role    `json:"role,omitempty"`
	Position string  `json:"position,omitempty"`
	Status   string  `json:"status,omitempty"`
}

// EffectiveRole resolves the user's role, preferring the explicit role field
// and falling back to the roleId lookup when it is absent.
func (u *User) EffectiveRole() Role {
	if u.Role != "" {
		return RoleFromName(string(u.Role))
	}
	return RoleFromID(u.RoleID)
}

// TokenClaims is the JWT claim set issued by the MSWT backend. Field names
// follow the backend's casing exactly.
type TokenClaims struct {
	UserID   string `json:"User_Id"`
	Username string `json:"Username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// RoleCapabilities is the derived, never-persisted view of what a role may do.
type RoleCapabilities struct {
	RoleID       string `json:"roleId"`
	Role         Role   `json:"role"`
	Position     string `json:"position"`
	IsLeader     bool   `json:"isLeader"`
	IsManager    bool   `json:"isManager"`
	IsSupervisor bool   `json:"isSupervisor"`
	IsWorker     bool   `json:"isWorker"`
}
