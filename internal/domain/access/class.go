package access

type AccessClass int

const (
	AdminOnly AccessClass = iota
	AdminGuestOnly
	MemberPublic
	GuestOnly
	MemberAuthenticated
	MemberPremium
	SubscriptionOnboarding
	SubscriptionManagement
)

var classNames = map[AccessClass]string{
	AdminOnly:              "admin_only",
	AdminGuestOnly:         "admin_guest_only",
	MemberPublic:           "member_public",
	GuestOnly:              "guest_only",
	MemberAuthenticated:    "member_authenticated",
	MemberPremium:          "member_premium",
	SubscriptionOnboarding: "subscription_onboarding",
	SubscriptionManagement: "subscription_management",
}

func (c AccessClass) String() string {
	if n, ok := classNames[c]; ok {
		return n
	}
	return "unknown"
}

// RequiresEntitlement reports whether a member's entitlement changes the verdict for c.
func (c AccessClass) RequiresEntitlement() bool {
	switch c {
	case MemberPremium, SubscriptionOnboarding, SubscriptionManagement:
		return true
	default:
		return false
	}
}
