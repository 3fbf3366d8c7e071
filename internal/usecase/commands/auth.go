package commands

import (
	"context"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/domain/admin"
	"nagoyameshi/internal/domain/auth"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/pkg/jwt"
	"nagoyameshi/internal/pkg/password"
	"nagoyameshi/internal/usecase/shared"
)

type RegisterInput struct {
	Profile              user.Profile
	Password             string
	PasswordConfirmation string
}

type IssuedToken struct {
	AccessToken string
	ExpiresIn   int64
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (access.Member, error)
	AuthenticateMember(ctx context.Context, email, password string) (access.Member, error)
	AuthenticateAdmin(ctx context.Context, email, password string) (access.Administrator, error)
	IssueToken(p access.Principal) (*IssuedToken, error)
	CreateAdmin(ctx context.Context, email, password string) (int64, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	hasher     password.Hasher
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, hasher password.Hasher, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		hasher:     hasher,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (access.Member, error) {
	pw, err := user.NewConfirmedPassword(in.Password, in.PasswordConfirmation)
	if err != nil {
		return access.Member{}, errs.Invalid("password", err)
	}
	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return access.Member{}, errs.Wrap(err, "failed to hash password")
	}
	u, err := user.NewUser(in.Profile, hash, a.clock.Now())
	if err != nil {
		return access.Member{}, err
	}

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureEmailFree(ctx, tx, u.Email().Value(), 0); err != nil {
			return err
		}
		created, err := tx.Users().Create(ctx, u)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Invalid("email", errs.ErrEmailTaken)
			}
			return err
		}
		id = created
		return nil
	})
	if err != nil {
		return access.Member{}, err
	}
	return access.Member{ID: id, Email: u.Email().Value()}, nil
}

func (a *authCommandsImpl) AuthenticateMember(ctx context.Context, email, plain string) (access.Member, error) {
	creds, err := auth.NewCredentials(email, plain)
	if err != nil {
		return access.Member{}, ErrInvalidCredentials
	}

	var m access.Member
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, creds.Email().Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// same answer as a wrong password
				return ErrInvalidCredentials
			}
			return err
		}
		if err := a.hasher.Compare(u.PasswordHash(), creds.Password()); err != nil {
			return ErrInvalidCredentials
		}
		m = access.Member{ID: u.ID(), Email: u.Email().Value()}
		return nil
	})
	if err != nil {
		return access.Member{}, err
	}
	return m, nil
}

func (a *authCommandsImpl) AuthenticateAdmin(ctx context.Context, email, plain string) (access.Administrator, error) {
	creds, err := auth.NewCredentials(email, plain)
	if err != nil {
		return access.Administrator{}, ErrInvalidCredentials
	}

	var adm access.Administrator
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Admins().FindByEmail(ctx, creds.Email().Value())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}
		if err := a.hasher.Compare(found.PasswordHash(), creds.Password()); err != nil {
			return ErrInvalidCredentials
		}
		adm = access.Administrator{ID: found.ID(), Email: found.Email().Value()}
		return nil
	})
	if err != nil {
		return access.Administrator{}, err
	}
	return adm, nil
}

func (a *authCommandsImpl) IssueToken(p access.Principal) (*IssuedToken, error) {
	var (
		token string
		err   error
	)
	switch v := p.(type) {
	case access.Member:
		token, err = a.jwtService.GenerateToken(v.ID, v.Email, jwt.RealmMember)
	case access.Administrator:
		token, err = a.jwtService.GenerateToken(v.ID, v.Email, jwt.RealmAdmin)
	default:
		return nil, ErrAuthenticationFailed
	}
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &IssuedToken{
		AccessToken: token,
		ExpiresIn:   int64(a.jwtService.TokenDuration().Seconds()),
	}, nil
}

func (a *authCommandsImpl) CreateAdmin(ctx context.Context, email, plain string) (int64, error) {
	pw, err := user.NewPassword(plain)
	if err != nil {
		return 0, errs.Invalid("password", err)
	}
	hash, err := a.hasher.Hash(pw.Value())
	if err != nil {
		return 0, errs.Wrap(err, "failed to hash password")
	}
	adm, err := admin.NewAdmin(email, hash, a.clock.Now())
	if err != nil {
		return 0, err
	}

	var id int64
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Admins().Create(ctx, adm)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Invalid("email", errs.ErrEmailTaken)
			}
			return err
		}
		id = created
		return nil
	})
	return id, err
}

// ensureEmailFree fails when email belongs to a member other than selfID.
func ensureEmailFree(ctx context.Context, tx shared.Tx, email string, selfID int64) error {
	existing, err := tx.Users().FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil
		}
		return err
	}
	if existing.ID() != selfID {
		return errs.Invalid("email", errs.ErrEmailTaken)
	}
	return nil
}
