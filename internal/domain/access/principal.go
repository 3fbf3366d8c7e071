package access

// Principal is the identity driving a request. The set of implementations is closed.
type Principal interface {
	principal()
}

type Guest struct{}

type Member struct {
	ID    int64
	Email string
}

type Administrator struct {
	ID    int64
	Email string
}

func (Guest) principal()         {}
func (Member) principal()        {}
func (Administrator) principal() {}

// Kind is used for logging only.
func Kind(p Principal) string {
	switch p.(type) {
	case Member:
		return "member"
	case Administrator:
		return "admin"
	default:
		return "guest"
	}
}

// MemberID returns the member id when p is a Member.
func MemberID(p Principal) (int64, bool) {
	m, ok := p.(Member)
	return m.ID, ok
}

type Entitlement int

const (
	Free Entitlement = iota
	Premium
)

func (e Entitlement) String() string {
	if e == Premium {
		return "premium"
	}
	return "free"
}
