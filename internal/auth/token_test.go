package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/crm-service/internal/domain"
)

func testEmployee() *domain.Employee {
	name := "Ada"
	return &domain.Employee{ID: 42, Name: &name, Email: "ada@example.com"}
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour)

	token, exp, err := tm.GenerateToken(testEmployee())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.EmployeeID)
	assert.Equal(t, "ada@example.com", claims.Email)
	require.NotNil(t, claims.Name)
	assert.Equal(t, "Ada", *claims.Name)
}

func TestTokenRejectedWithDifferentSecret(t *testing.T) {
	issuer := NewTokenManager("secret-one", time.Hour)
	verifier := NewTokenManager("secret-two", time.Hour)

	token, _, err := issuer.GenerateToken(testEmployee())
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenRejectedWhenExpired(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Millisecond)

	token, _, err := tm.GenerateToken(testEmployee())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = tm.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenRejectedWhenMalformed(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour)

	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}
