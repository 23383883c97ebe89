package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSignAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	token, err := svc.Sign(42)
	require.NoError(t, err)

	id, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestTokenVerifyInvalid(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	_, err := svc.Verify("invalid.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewTokenService("other-secret", time.Hour)
	token, err := other.Sign(1)
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService("test-secret", time.Minute)
	issued := time.Now().Add(-2 * time.Minute)
	svc.now = func() time.Time { return issued }
	token, err := svc.Sign(1)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWithoutExpiry(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	token, err := svc.Sign(5)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)
}

func TestTokenRejectsOtherAlgorithms(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{ID: 1})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{ID: 1})
	token, err = hs512.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
