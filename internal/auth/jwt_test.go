package auth

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/config"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokens(secret string) *Tokens {
	return NewTokens(config.JWT{Secret: secret, Issuer: "herbal-pharmacy", TTL: time.Hour})
}

func TestTokens_IssueVerify(t *testing.T) {
	tokens := newTestTokens("0123456789abcdef")

	raw, err := tokens.Issue(42, entities.RoleAdmin)
	require.NoError(t, err)

	caller, err := tokens.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, entities.Caller{UserID: 42, Role: entities.RoleAdmin}, caller)
}

func TestTokens_Verify_Rejects(t *testing.T) {
	tokens := newTestTokens("0123456789abcdef")

	expired := newTestTokens("0123456789abcdef")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.Issue(1, entities.RoleCustomer)
	require.NoError(t, err)

	foreignToken, err := newTestTokens("fedcba9876543210").Issue(1, entities.RoleCustomer)
	require.NoError(t, err)

	badRole, err := tokens.Issue(1, "root")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: expiredToken},
		{name: "wrong secret", token: foreignToken},
		{name: "unknown role", token: badRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tokens.Verify(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
