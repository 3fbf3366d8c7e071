//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"nagoyameshi/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	token, err := svc.GenerateToken(42, "admin@example.com", jwt.RealmAdmin)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RealmAdmin, claims.Realm)
	assert.Equal(t, "admin@example.com", claims.Email)

	id, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestService_Rejects(t *testing.T) {
	svc := jwt.NewService("secret", time.Hour)

	t.Run("other key", func(t *testing.T) {
		token, err := jwt.NewService("other", time.Hour).GenerateToken(1, "m@example.com", jwt.RealmMember)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := jwt.NewService("secret", -time.Minute).GenerateToken(1, "m@example.com", jwt.RealmMember)
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})

	t.Run("unknown realm", func(t *testing.T) {
		token, err := svc.GenerateToken(1, "m@example.com", jwt.Realm("operator"))
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}
