//go:build unit

package access_test

import (
	"testing"

	"nagoyameshi/internal/domain/access"

	"github.com/stretchr/testify/assert"
)

type ownedRow struct{ owner int64 }

func (o ownedRow) OwnerID() int64 { return o.owner }

func TestCanMutate(t *testing.T) {
	testCases := []struct {
		name      string
		principal access.Principal
		owner     int64
		want      bool
	}{
		{name: "owner", principal: access.Member{ID: 1}, owner: 1, want: true},
		{name: "other member", principal: access.Member{ID: 2}, owner: 1, want: false},
		{name: "administrator with same numeric id", principal: access.Administrator{ID: 1}, owner: 1, want: false},
		{name: "guest", principal: access.Guest{}, owner: 1, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, access.CanMutate(tc.principal, ownedRow{owner: tc.owner}))
		})
	}
}

func TestAuthorizeMutation(t *testing.T) {
	fallback := access.Target{Route: access.RouteRestaurantReviews, ID: 9}

	t.Run("owner is allowed", func(t *testing.T) {
		v := access.AuthorizeMutation(access.Member{ID: 3}, ownedRow{owner: 3}, fallback)
		assert.True(t, v.Allowed())
	})

	t.Run("non-owner is sent to the fallback with invalid access", func(t *testing.T) {
		v := access.AuthorizeMutation(access.Member{ID: 4}, ownedRow{owner: 3}, fallback)
		assert.Equal(t, access.Redirect, v.Outcome)
		assert.Equal(t, access.ReasonNotOwner, v.Reason)
		assert.Equal(t, fallback, v.Target)
		assert.Equal(t, access.MessageInvalidAccess, v.Message)
	})

	t.Run("administrator is rejected before ownership", func(t *testing.T) {
		v := access.AuthorizeMutation(access.Administrator{ID: 3}, ownedRow{owner: 3}, fallback)
		assert.Equal(t, access.ReasonWrongRealm, v.Reason)
		assert.Equal(t, access.RouteAdminHome, v.Target.Route)
	})

	t.Run("guest goes to login", func(t *testing.T) {
		v := access.AuthorizeMutation(access.Guest{}, ownedRow{owner: 3}, fallback)
		assert.Equal(t, access.ReasonUnauthenticated, v.Reason)
		assert.Equal(t, access.RouteLogin, v.Target.Route)
	})

	t.Run("denied error carries the verdict", func(t *testing.T) {
		v := access.AuthorizeMutation(access.Member{ID: 4}, ownedRow{owner: 3}, fallback)
		err := access.Deny(v)
		var denied *access.DeniedError
		assert.ErrorAs(t, err, &denied)
		assert.Equal(t, v, denied.Verdict)
	})
}
