package security

import "cashflow-api/internal/model"

// Authorize reports whether actor may act on a resource owned by ownerID.
// Admins may act on anything, team members only on their own resources,
// and any other role is denied.
func Authorize(actor model.Identity, ownerID int64) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleTeamMember:
		return actor.UserID > 0 && actor.UserID == ownerID
	default:
		return false
	}
}
