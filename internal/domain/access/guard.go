package access

import (
	"context"

	"nagoyameshi/internal/pkg/errs"
)

var ErrEntitlementLookup = errs.New("entitlement lookup failed")

type EntitlementResolver interface {
	Resolve(ctx context.Context, memberID int64) (Entitlement, error)
}

// Evaluate is the decision table for a principal, an access class and the member's entitlement.
// ent is ignored for anything but a Member on an entitlement-gated class.
func Evaluate(p Principal, class AccessClass, ent Entitlement) Verdict {
	switch class {
	case AdminOnly:
		if _, ok := p.(Administrator); ok {
			return Allowed()
		}
		return RedirectTo(ReasonUnauthenticated, Target{Route: RouteAdminLogin}, MessageNone)
	case AdminGuestOnly:
		if _, ok := p.(Administrator); ok {
			return RedirectTo(ReasonAlreadyAuthenticated, Target{Route: RouteAdminHome}, MessageNone)
		}
		return Allowed()
	}

	// every remaining class belongs to the member site
	switch p.(type) {
	case Administrator:
		return RedirectTo(ReasonWrongRealm, Target{Route: RouteAdminHome}, MessageNone)
	case Member:
		return evaluateMember(class, ent)
	default:
		return evaluateGuest(class)
	}
}

func evaluateGuest(class AccessClass) Verdict {
	switch class {
	case MemberPublic, GuestOnly:
		return Allowed()
	default:
		return RedirectTo(ReasonUnauthenticated, Target{Route: RouteLogin}, MessageNone)
	}
}

func evaluateMember(class AccessClass, ent Entitlement) Verdict {
	switch class {
	case MemberPublic, MemberAuthenticated:
		return Allowed()
	case GuestOnly:
		return RedirectTo(ReasonAlreadyAuthenticated, Target{Route: RouteHome}, MessageNone)
	case MemberPremium, SubscriptionManagement:
		if ent == Premium {
			return Allowed()
		}
		return RedirectTo(ReasonInsufficientEntitlement, Target{Route: RouteSubscriptionNew}, MessageNone)
	case SubscriptionOnboarding:
		if ent == Premium {
			return RedirectTo(ReasonAlreadySubscribed, Target{Route: RouteSubscriptionEdit}, MessageNone)
		}
		return Allowed()
	default:
		return RedirectTo(ReasonUnauthenticated, Target{Route: RouteLogin}, MessageNone)
	}
}

type Guard struct {
	resolver EntitlementResolver
}

func NewGuard(resolver EntitlementResolver) *Guard {
	return &Guard{resolver: resolver}
}

// Authorize resolves the member's entitlement on every call that needs it.
func (g *Guard) Authorize(ctx context.Context, p Principal, class AccessClass) (Verdict, error) {
	ent := Free
	if m, ok := p.(Member); ok && class.RequiresEntitlement() {
		resolved, err := g.resolver.Resolve(ctx, m.ID)
		if err != nil {
			return Verdict{}, errs.Mark(err, ErrEntitlementLookup)
		}
		ent = resolved
	}
	return Evaluate(p, class, ent), nil
}
