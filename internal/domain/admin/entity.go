package admin

import (
	"time"

	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/pkg/errs"
)

// Admin lives in its own credential store; its id space is unrelated to members.
type Admin struct {
	id           int64
	email        user.Email
	passwordHash string
	createdAt    time.Time
}

func NewAdmin(email string, passwordHash string, now time.Time) (*Admin, error) {
	e, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Invalid("email", err)
	}
	return &Admin{email: e, passwordHash: passwordHash, createdAt: now}, nil
}

func ReconstructAdmin(id int64, email, passwordHash string, createdAt time.Time) *Admin {
	return &Admin{id: id, email: user.ReconstructEmail(email), passwordHash: passwordHash, createdAt: createdAt}
}

func (a *Admin) ID() int64            { return a.id }
func (a *Admin) Email() user.Email    { return a.email }
func (a *Admin) PasswordHash() string { return a.passwordHash }
func (a *Admin) CreatedAt() time.Time { return a.createdAt }
