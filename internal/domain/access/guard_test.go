//go:build unit

package access_test

import (
	"context"
	"errors"
	"testing"

	"nagoyameshi/internal/domain/access"
	accessmock "nagoyameshi/tests/mock/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	guest   = access.Guest{}
	member  = access.Member{ID: 7, Email: "member@example.com"}
	admin   = access.Administrator{ID: 7, Email: "admin@example.com"}
	allowed = access.Allowed()
)

func redirect(reason access.Reason, route access.Route) access.Verdict {
	return access.RedirectTo(reason, access.Target{Route: route}, access.MessageNone)
}

func TestEvaluate(t *testing.T) {
	toLogin := redirect(access.ReasonUnauthenticated, access.RouteLogin)
	toAdminLogin := redirect(access.ReasonUnauthenticated, access.RouteAdminLogin)
	toAdminHome := redirect(access.ReasonWrongRealm, access.RouteAdminHome)
	toSubscribe := redirect(access.ReasonInsufficientEntitlement, access.RouteSubscriptionNew)

	testCases := []struct {
		class   access.AccessClass
		guest   access.Verdict
		free    access.Verdict
		premium access.Verdict
		admin   access.Verdict
	}{
		{
			class: access.AdminOnly,
			guest: toAdminLogin, free: toAdminLogin, premium: toAdminLogin,
			admin: allowed,
		},
		{
			class: access.AdminGuestOnly,
			guest: allowed, free: allowed, premium: allowed,
			admin: redirect(access.ReasonAlreadyAuthenticated, access.RouteAdminHome),
		},
		{
			class: access.MemberPublic,
			guest: allowed, free: allowed, premium: allowed,
			admin: toAdminHome,
		},
		{
			class:   access.GuestOnly,
			guest:   allowed,
			free:    redirect(access.ReasonAlreadyAuthenticated, access.RouteHome),
			premium: redirect(access.ReasonAlreadyAuthenticated, access.RouteHome),
			admin:   toAdminHome,
		},
		{
			class: access.MemberAuthenticated,
			guest: toLogin, free: allowed, premium: allowed,
			admin: toAdminHome,
		},
		{
			class: access.MemberPremium,
			guest: toLogin, free: toSubscribe, premium: allowed,
			admin: toAdminHome,
		},
		{
			class:   access.SubscriptionOnboarding,
			guest:   toLogin,
			free:    allowed,
			premium: redirect(access.ReasonAlreadySubscribed, access.RouteSubscriptionEdit),
			admin:   toAdminHome,
		},
		{
			class: access.SubscriptionManagement,
			guest: toLogin, free: toSubscribe, premium: allowed,
			admin: toAdminHome,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.class.String(), func(t *testing.T) {
			for _, ent := range []access.Entitlement{access.Free, access.Premium} {
				assert.Equal(t, tc.guest, access.Evaluate(guest, tc.class, ent), "guest/%s", ent)
				assert.Equal(t, tc.admin, access.Evaluate(admin, tc.class, ent), "admin/%s", ent)
			}
			assert.Equal(t, tc.free, access.Evaluate(member, tc.class, access.Free), "free member")
			assert.Equal(t, tc.premium, access.Evaluate(member, tc.class, access.Premium), "premium member")
		})
	}

	t.Run("nil principal is treated as a guest", func(t *testing.T) {
		assert.Equal(t, toLogin, access.Evaluate(nil, access.MemberPremium, access.Premium))
		assert.Equal(t, allowed, access.Evaluate(nil, access.MemberPublic, access.Free))
	})
}

func TestGuard_Authorize(t *testing.T) {
	ctx := context.Background()

	t.Run("entitlement is resolved on every call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := accessmock.NewMockEntitlementResolver(ctrl)
		guard := access.NewGuard(resolver)

		gomock.InOrder(
			resolver.EXPECT().Resolve(ctx, member.ID).Return(access.Free, nil),
			resolver.EXPECT().Resolve(ctx, member.ID).Return(access.Premium, nil),
			resolver.EXPECT().Resolve(ctx, member.ID).Return(access.Free, nil),
		)

		first, err := guard.Authorize(ctx, member, access.MemberPremium)
		require.NoError(t, err)
		assert.Equal(t, access.RouteSubscriptionNew, first.Target.Route)

		second, err := guard.Authorize(ctx, member, access.MemberPremium)
		require.NoError(t, err)
		assert.True(t, second.Allowed())

		third, err := guard.Authorize(ctx, member, access.MemberPremium)
		require.NoError(t, err)
		assert.False(t, third.Allowed())
	})

	t.Run("resolver is not consulted for ungated classes or non-members", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := accessmock.NewMockEntitlementResolver(ctrl)
		guard := access.NewGuard(resolver)

		resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

		for _, p := range []access.Principal{guest, admin} {
			v, err := guard.Authorize(ctx, p, access.MemberPremium)
			require.NoError(t, err)
			assert.False(t, v.Allowed())
		}
		v, err := guard.Authorize(ctx, member, access.MemberAuthenticated)
		require.NoError(t, err)
		assert.True(t, v.Allowed())
	})

	t.Run("resolver failure is surfaced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		resolver := accessmock.NewMockEntitlementResolver(ctrl)
		guard := access.NewGuard(resolver)

		resolver.EXPECT().Resolve(ctx, member.ID).Return(access.Free, errors.New("connection refused"))

		_, err := guard.Authorize(ctx, member, access.SubscriptionOnboarding)
		require.Error(t, err)
		assert.ErrorIs(t, err, access.ErrEntitlementLookup)
	})
}
