package access

type Outcome int

const (
	Allow Outcome = iota
	Redirect
)

type Reason string

const (
	ReasonNone                    Reason = ""
	ReasonUnauthenticated         Reason = "unauthenticated"
	ReasonWrongRealm              Reason = "wrong_realm"
	ReasonInsufficientEntitlement Reason = "insufficient_entitlement"
	ReasonAlreadySubscribed       Reason = "already_subscribed"
	ReasonAlreadyAuthenticated    Reason = "already_authenticated"
	ReasonNotOwner                Reason = "not_owner"
)

type Route string

const (
	RouteLogin             Route = "login"
	RouteHome              Route = "home"
	RouteAdminLogin        Route = "admin.login"
	RouteAdminHome         Route = "admin.home"
	RouteSubscriptionNew   Route = "subscription.create"
	RouteSubscriptionEdit  Route = "subscription.edit"
	RouteReservations      Route = "reservations.index"
	RouteRestaurantReviews Route = "restaurants.reviews.index"
	RouteUser              Route = "user.index"
)

// Target is a named route plus the path parameter some routes need.
type Target struct {
	Route Route
	ID    int64
}

type MessageCode string

const (
	MessageNone          MessageCode = ""
	MessageInvalidAccess MessageCode = "invalid_access"
)

type Verdict struct {
	Outcome Outcome
	Reason  Reason
	Target  Target
	Message MessageCode
}

func Allowed() Verdict {
	return Verdict{Outcome: Allow}
}

func RedirectTo(reason Reason, target Target, msg MessageCode) Verdict {
	return Verdict{Outcome: Redirect, Reason: reason, Target: target, Message: msg}
}

func (v Verdict) Allowed() bool {
	return v.Outcome == Allow
}

// DeniedError carries a redirect verdict out of the use case layer.
type DeniedError struct {
	Verdict Verdict
}

func (e *DeniedError) Error() string {
	return "access denied: " + string(e.Verdict.Reason)
}

func Deny(v Verdict) error {
	return &DeniedError{Verdict: v}
}
