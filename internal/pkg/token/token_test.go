package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-secret-that-is-long-enough-for-testing"
	testIssuer   = "https://localhost:8080"
	testAudience = "cityinfoapi"
)

var fixedTime = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, now time.Time) *Service {
	t.Helper()
	svc, err := NewService(testSecret, testIssuer, testAudience, time.Hour)
	require.NoError(t, err)
	return svc.WithTimeFunc(func() time.Time { return now })
}

func TestIssueAndValidate(t *testing.T) {
	svc := newTestService(t, fixedTime)

	signed, err := svc.Issue(Subject{UserID: 1, GivenName: "Kevin", FamilyName: "Dockx", City: "Antwerp"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := svc.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "Kevin", claims.GivenName)
	assert.Equal(t, "Dockx", claims.FamilyName)
	assert.Equal(t, "Antwerp", claims.City)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())

	city, ok := claims.Get(ClaimCity)
	assert.True(t, ok)
	assert.Equal(t, "Antwerp", city)
	sub, _ := claims.Get("sub")
	assert.Equal(t, "1", sub)
	_, ok = claims.Get("role")
	assert.False(t, ok)
}

func TestValidate_Failures(t *testing.T) {
	issuer := newTestService(t, fixedTime)
	signed, err := issuer.Issue(Subject{UserID: 7, City: "Paris"})
	require.NoError(t, err)

	otherAudience, err := NewService(testSecret, testIssuer, "someone-else", time.Hour)
	require.NoError(t, err)
	otherIssuer, err := NewService(testSecret, "https://evil.example", testAudience, time.Hour)
	require.NoError(t, err)
	otherKey, err := NewService("another-secret-that-is-long-enough-too", testIssuer, testAudience, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name    string
		svc     *Service
		token   string
		wantErr error
	}{
		{"expired", newTestService(t, fixedTime.Add(2*time.Hour)), signed, ErrExpiredToken},
		{"wrong audience", otherAudience.WithTimeFunc(func() time.Time { return fixedTime }), signed, ErrInvalidToken},
		{"wrong issuer", otherIssuer.WithTimeFunc(func() time.Time { return fixedTime }), signed, ErrInvalidToken},
		{"wrong key", otherKey.WithTimeFunc(func() time.Time { return fixedTime }), signed, ErrInvalidToken},
		{"garbage", issuer, "not.a.token", ErrInvalidToken},
		{"empty", issuer, "", ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := tt.svc.Validate(tt.token)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, claims)
		})
	}
}

func TestValidate_RejectsOtherAlgorithms(t *testing.T) {
	svc := newTestService(t, fixedTime)

	claims := cityInfoClaims{
		City: "Antwerp",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Validate(unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewService_RejectsShortSecret(t *testing.T) {
	_, err := NewService("short", testIssuer, testAudience, time.Hour)
	assert.Error(t, err)

	_, err = NewService(testSecret, testIssuer, testAudience, 0)
	assert.Error(t, err)
}

func TestValidate_RequiresIssuedAt(t *testing.T) {
	svc := newTestService(t, fixedTime)

	claims := cityInfoClaims{
		City: "Antwerp",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    testIssuer,
			Audience:  jwt.ClaimStrings{testAudience},
			ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	var got *Claims
	require.NotPanics(t, func() { got, err = svc.Validate(signed) })
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, got)
}
