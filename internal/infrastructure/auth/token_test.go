package auth

import (
	"testing"
	"time"

	"github.com/brigatacurvasud/bcs-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour)

	token, expiresAt, err := m.Issue(&domain.User{ID: "u-1", Role: domain.RoleMerchAdmin})
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	principal, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", principal.UserID)
	assert.Equal(t, domain.RoleMerchAdmin, principal.Role)
}

func TestTokenManager_RejectsForeignSecret(t *testing.T) {
	token, _, err := NewTokenManager("one", time.Hour).Issue(&domain.User{ID: "u-1", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = NewTokenManager("two", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager("secret", time.Minute)
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue(&domain.User{ID: "u-1", Role: domain.RoleUser})
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIPHasher(t *testing.T) {
	h := NewIPHasher("salt")

	assert.Equal(t, h.Hash("10.0.0.1"), h.Hash("10.0.0.1"))
	assert.NotEqual(t, h.Hash("10.0.0.1"), h.Hash("10.0.0.2"))
	assert.NotEqual(t, h.Hash("10.0.0.1"), NewIPHasher("other").Hash("10.0.0.1"))
	assert.Empty(t, h.Hash(""))
	assert.Len(t, h.Hash("10.0.0.1"), 64)
}

func TestBcryptHasher(t *testing.T) {
	h := &BcryptHasher{Cost: 4}
	hash, err := h.Hash("s3cret")
	require.NoError(t, err)

	assert.NoError(t, h.Compare(hash, "s3cret"))
	assert.Error(t, h.Compare(hash, "wrong"))
}
