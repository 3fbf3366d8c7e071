package queries

import (
	"context"

	"nagoyameshi/internal/domain/access"
	"nagoyameshi/internal/infra"
	"nagoyameshi/internal/pkg/jwt"
)

type IdentityReadStore interface {
	Member(ctx context.Context, id int64) (*IdentityView, error)
	Admin(ctx context.Context, id int64) (*IdentityView, error)
}

// IdentityQueries rebuilds principals from ids held in the session or a token.
// A stale id (deleted account) yields a guest.
type IdentityQueries interface {
	Member(ctx context.Context, id int64) (access.Principal, error)
	Admin(ctx context.Context, id int64) (access.Principal, error)
	// FromToken verifies a bearer token and loads the principal of its realm.
	FromToken(ctx context.Context, token string) (access.Principal, error)
}

type TokenValidator interface {
	ValidateToken(tokenString string) (*jwt.Claims, error)
}

type identityQueriesImpl struct {
	store  IdentityReadStore
	tokens TokenValidator
}

func NewIdentityQueries(store IdentityReadStore, tokens TokenValidator) IdentityQueries {
	return &identityQueriesImpl{store: store, tokens: tokens}
}

func (q *identityQueriesImpl) Member(ctx context.Context, id int64) (access.Principal, error) {
	v, err := q.store.Member(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return access.Guest{}, nil
		}
		return nil, err
	}
	return access.Member{ID: v.ID, Email: v.Email}, nil
}

func (q *identityQueriesImpl) Admin(ctx context.Context, id int64) (access.Principal, error) {
	v, err := q.store.Admin(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return access.Guest{}, nil
		}
		return nil, err
	}
	return access.Administrator{ID: v.ID, Email: v.Email}, nil
}

func (q *identityQueriesImpl) FromToken(ctx context.Context, token string) (access.Principal, error) {
	claims, err := q.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}
	id, err := claims.SubjectID()
	if err != nil {
		return nil, err
	}
	if claims.Realm == jwt.RealmAdmin {
		return q.Admin(ctx, id)
	}
	return q.Member(ctx, id)
}
