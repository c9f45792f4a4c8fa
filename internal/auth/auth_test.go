package auth

import (
	"context"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123"

func TestIssuer_IssueAndParse(t *testing.T) {
	issuer := NewIssuer(secret, time.Hour)

	token, expiresAt, err := issuer.Issue(entities.User{ID: "u-1", Role: entities.RoleDealer})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	p, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, Principal{UserID: "u-1", Role: entities.RoleDealer}, p)
	assert.False(t, p.IsAdmin())
}

func TestIssuer_Parse_Rejects(t *testing.T) {
	issuer := NewIssuer(secret, time.Hour)
	valid, _, err := issuer.Issue(entities.User{ID: "u-1", Role: entities.RoleAdmin})
	require.NoError(t, err)

	expired := NewIssuer(secret, time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, _, err := expired.Issue(entities.User{ID: "u-1", Role: entities.RoleAdmin})
	require.NoError(t, err)

	badRole, _, err := issuer.Issue(entities.User{ID: "u-1", Role: "root"})
	require.NoError(t, err)

	testCases := []struct {
		name   string
		issuer *Issuer
		token  string
	}{
		{name: "garbage", issuer: issuer, token: "not-a-token"},
		{name: "other secret", issuer: NewIssuer("another-secret-value", time.Hour), token: valid},
		{name: "expired", issuer: issuer, token: expiredToken},
		{name: "unknown role", issuer: issuer, token: badRole},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.issuer.Parse(tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithPrincipal(context.Background(), Principal{UserID: "a", Role: entities.RoleAdmin})
	p, ok := FromContext(ctx)
	require.True(t, ok)
	assert.True(t, p.IsAdmin())
}
