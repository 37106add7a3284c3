package helpers

import (
	"testing"
	"time"

	"github.com/joshua-takyi/streetbite/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

func TestIssueAndValidateToken(t *testing.T) {
	now := time.Now()
	user := models.User{ID: "u1", Role: models.RoleStore, Name: "kim"}

	tok, err := IssueToken(secret, user, time.Hour, now)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID())
	assert.True(t, claims.IsStoreOwner())
	assert.False(t, claims.IsGuest())
	assert.Equal(t, "kim", claims.DisplayName())
	assert.True(t, claims.IsOwner("u1"))
	assert.False(t, claims.IsOwner("u2"))
}

func TestValidateToken_Rejects(t *testing.T) {
	now := time.Now()
	user := models.User{ID: "u1", Role: models.RoleCustomer}

	expired, err := IssueToken(secret, user, time.Minute, now.Add(-time.Hour))
	require.NoError(t, err)
	_, err = ValidateToken(secret, expired)
	assert.Error(t, err)

	tok, err := IssueToken(secret, user, time.Hour, now)
	require.NoError(t, err)
	_, err = ValidateToken([]byte("other"), tok)
	assert.Error(t, err)

	_, err = ValidateToken(secret, "not-a-token")
	assert.Error(t, err)

	_, err = IssueToken(nil, user, time.Hour, now)
	assert.Error(t, err)
}

func TestGuestClaims(t *testing.T) {
	g := GuestClaims()
	assert.True(t, g.IsGuest())
	assert.Equal(t, models.RoleGuest, g.GetSafeRole())
	assert.False(t, g.IsOwner(""))
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "abc", StringTrim(` "abc" `))
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a, b,,c ,"))
	assert.Empty(t, SplitList(""))
	assert.Equal(t, []string{"x", "y"}, RemoveDuplicates([]string{"x", "y", "x"}))
	assert.Equal(t, "tok", BearerToken("Bearer tok"))
	assert.Equal(t, "tok", BearerToken("bearer  tok"))
	assert.Empty(t, BearerToken("Basic abc"))
}
