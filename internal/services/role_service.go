package services

import (
	"github.com/LyKhaiNghiep/MSWT-Mobile-sub000/internal/models"
)

// Role/permission resolution. Pure functions over the current session; no
// server round-trips, the role travels inside the JWT and the cached profile.

// Capabilities derives the role-scoped view flags for a session. An
// unauthenticated session resolves to an all-false capability set with an
// empty role.
func Capabilities(sess Session) models.RoleCapabilities {
	if !sess.Authenticated() {
		return models.RoleCapabilities{}
	}
	role := sess.Role
	roleID := ""
	if sess.User != nil {
		roleID = sess.User.RoleID
	}
	return models.RoleCapabilities{
		RoleID:       roleID,
		Role:         role,
		Position:     role.Position(),
		IsLeader:     role == models.RoleLeader,
		IsManager:    role == models.RoleManager,
		IsSupervisor: role == models.RoleSupervisor,
		IsWorker:     role == models.RoleWorker,
	}
}

// HasRole reports strict role equality.
func HasRole(sess Session, candidate models.Role) bool {
	return sess.Authenticated() && sess.Role == candidate
}

// HasPermission reports whether the session's role ranks at or above the
// required role in the fixed hierarchy Worker < Supervisor < Manager < Leader.
//
// Unrecognized roles rank 0 on BOTH sides of the comparison, so an
// unrecognized required role is always granted (current >= 0 holds for every
// session). That matches the production client's behavior and is kept for
// compatibility.
func HasPermission(sess Session, required models.Role) bool {
	if !sess.Authenticated() {
		return false
	}
	return sess.Role.Level() >= required.Level()
}
