package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	svc, err := NewService([]byte("test_secret"), "HS256")
	require.NoError(t, err)

	now := time.Now()
	token, err := svc.Issue(42, now)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token, now.Add(30*time.Minute))
	require.NoError(t, err)
	require.Equal(t, uint(42), userID)
}

func TestVerifyExpired(t *testing.T) {
	svc, err := NewService([]byte("test_secret"), "HS256")
	require.NoError(t, err)

	now := time.Now()
	token, err := svc.Issue(42, now)
	require.NoError(t, err)

	_, err = svc.Verify(token, now.Add(AccessTTL+time.Second))
	require.ErrorIs(t, err, ErrExpired)

	_, err = svc.Verify(token, now.Add(AccessTTL-time.Minute))
	require.NoError(t, err)
}

func TestVerifyMalformed(t *testing.T) {
	svc, err := NewService([]byte("test_secret"), "HS256")
	require.NoError(t, err)

	_, err = svc.Verify("not-a-token", time.Now())
	require.ErrorIs(t, err, ErrMalformed)

	_, err = svc.Verify("", time.Now())
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerifyWrongSecret(t *testing.T) {
	svc, err := NewService([]byte("test_secret"), "HS256")
	require.NoError(t, err)
	other, err := NewService([]byte("other_secret"), "HS256")
	require.NoError(t, err)

	token, err := svc.Issue(7, time.Now())
	require.NoError(t, err)

	_, err = other.Verify(token, time.Now())
	require.ErrorIs(t, err, ErrMalformed)
}

func TestVerifyWrongAlgorithm(t *testing.T) {
	hs256, err := NewService([]byte("test_secret"), "HS256")
	require.NoError(t, err)
	hs512, err := NewService([]byte("test_secret"), "HS512")
	require.NoError(t, err)

	token, err := hs256.Issue(7, time.Now())
	require.NoError(t, err)

	_, err = hs512.Verify(token, time.Now())
	require.ErrorIs(t, err, ErrMalformed)
}

func TestNewServiceUnknownAlgorithm(t *testing.T) {
	_, err := NewService([]byte("test_secret"), "ES256")
	require.Error(t, err)

	_, err = NewService([]byte("test_secret"), "nope")
	require.Error(t, err)
}
