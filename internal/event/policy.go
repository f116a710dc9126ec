package event

import "task-calendar/internal/model"

// AccessMode selects how event visibility and mutation are checked.
type AccessMode int

const (
	// AccessUnrestricted sees and modifies every event.
	AccessUnrestricted AccessMode = iota
	// AccessOwned sees and modifies only the caller's own events.
	AccessOwned
)

func (m AccessMode) String() string {
	if m == AccessOwned {
		return "owned"
	}
	return "unrestricted"
}

// AccessPolicy is the explicit authorization rule applied to every store operation.
type AccessPolicy struct {
	Mode   AccessMode
	UserID string
}

// PolicyFor derives the policy from the caller scope: authenticated callers
// are owner-filtered, anonymous callers are unrestricted.
func PolicyFor(sc model.Scope) AccessPolicy {
	if sc.Authenticated() {
		return AccessPolicy{Mode: AccessOwned, UserID: sc.UserID}
	}
	return AccessPolicy{Mode: AccessUnrestricted}
}

// OwnerFilter returns the creator every visible event must have, or "" for no filter.
func (p AccessPolicy) OwnerFilter() string {
	if p.Mode == AccessOwned {
		return p.UserID
	}
	return ""
}

// CanView reports whether e is visible under the policy.
func (p AccessPolicy) CanView(e model.Event) bool {
	return p.Mode == AccessUnrestricted || e.OwnedBy(p.UserID)
}

// CanModify reports whether e may be updated or deleted under the policy.
// Events without a creator are read-only for authenticated callers.
func (p AccessPolicy) CanModify(e model.Event) bool {
	return p.Mode == AccessUnrestricted || e.OwnedBy(p.UserID)
}
