package domain

// Policy is a pure access decision over an already-authenticated identity.
// Policies never perform I/O; everything they need is in the Identity.
type Policy func(Identity) bool

// AdminOnly allows only identities carrying the admin role.
func AdminOnly() Policy {
	return func(id Identity) bool {
		return id.IsAdmin()
	}
}

// SelfOrAdmin allows the identity whose user id matches targetID, or any
// admin regardless of id.
func SelfOrAdmin(targetID uint) Policy {
	return func(id Identity) bool {
		return id.UserID == targetID || id.IsAdmin()
	}
}

// Authorize evaluates a policy against an identity. It returns nil when
// access is allowed and ErrForbidden otherwise. Every protected endpoint
// goes through this single function instead of re-implementing role checks.
func Authorize(id Identity, policy Policy) error {
	if policy == nil || !policy(id) {
		return ErrForbidden
	}
	return nil
}
