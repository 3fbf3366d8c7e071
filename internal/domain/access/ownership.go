package access

// Owned is anything with a recorded owning member.
type Owned interface {
	OwnerID() int64
}

func CanMutate(p Principal, r Owned) bool {
	m, ok := p.(Member)
	if !ok {
		return false
	}
	return m.ID == r.OwnerID()
}

// AuthorizeMutation rejects administrators before ownership is considered.
func AuthorizeMutation(p Principal, r Owned, fallback Target) Verdict {
	switch p.(type) {
	case Administrator:
		return RedirectTo(ReasonWrongRealm, Target{Route: RouteAdminHome}, MessageNone)
	case Guest, nil:
		return RedirectTo(ReasonUnauthenticated, Target{Route: RouteLogin}, MessageNone)
	}
	if !CanMutate(p, r) {
		return RedirectTo(ReasonNotOwner, fallback, MessageInvalidAccess)
	}
	return Allowed()
}
