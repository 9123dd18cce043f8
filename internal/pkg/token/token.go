// Package token issues and validates the HMAC-SHA256 bearer tokens of the API.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim keys that carry user information.
const (
	ClaimGivenName  = "given_name"
	ClaimFamilyName = "family_name"
	ClaimCity       = "city"
)

var (
	// ErrInvalidToken indicates the token is malformed, badly signed or addressed to someone else.
	ErrInvalidToken = errors.New("invalid authentication token")

	// ErrExpiredToken indicates the token validity window has passed.
	ErrExpiredToken = errors.New("authentication token has expired")
)

// Subject is what a token is issued for.
type Subject struct {
	UserID     int64
	GivenName  string
	FamilyName string
	City       string
}

// Claims are the validated contents of a token.
type Claims struct {
	UserID     int64
	GivenName  string
	FamilyName string
	City       string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}

// Get returns a claim by its token key. Only the user claims are addressable.
func (c *Claims) Get(key string) (string, bool) {
	switch key {
	case "sub":
		return strconv.FormatInt(c.UserID, 10), true
	case ClaimGivenName:
		return c.GivenName, true
	case ClaimFamilyName:
		return c.FamilyName, true
	case ClaimCity:
		return c.City, true
	default:
		return "", false
	}
}

type cityInfoClaims struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	City       string `json:"city"`
	jwt.RegisteredClaims
}

// Service signs and validates tokens for one issuer/audience pair.
type Service struct {
	signingKey []byte
	issuer     string
	audience   string
	lifetime   time.Duration
	timeFunc   func() time.Time
}

// NewService creates a Service. The secret must be at least 32 bytes.
func NewService(secret, issuer, audience string, lifetime time.Duration) (*Service, error) {
	if len(secret) < 32 {
		return nil, fmt.Errorf("token secret must be at least 32 characters")
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("token lifetime must be positive")
	}
	return &Service{
		signingKey: []byte(secret),
		issuer:     issuer,
		audience:   audience,
		lifetime:   lifetime,
		timeFunc:   time.Now,
	}, nil
}

// WithTimeFunc replaces the clock. Used by tests.
func (s *Service) WithTimeFunc(f func() time.Time) *Service {
	cp := *s
	cp.timeFunc = f
	return &cp
}

// Issue signs a token for the subject, valid from now (UTC) for the configured lifetime.
func (s *Service) Issue(subject Subject) (string, error) {
	now := s.timeFunc().UTC()

	claims := cityInfoClaims{
		GivenName:  subject.GivenName,
		FamilyName: subject.FamilyName,
		City:       subject.City,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(subject.UserID, 10),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}
	return signed, nil
}

// Validate checks signature, issuer, audience and lifetime and returns the claims.
func (s *Service) Validate(tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		&cityInfoClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.timeFunc),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*cityInfoClaims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	// every token issued here carries iat; the parser only requires exp
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &Claims{
		UserID:     userID,
		GivenName:  claims.GivenName,
		FamilyName: claims.FamilyName,
		City:       claims.City,
		IssuedAt:   claims.IssuedAt.Time,
		ExpiresAt:  claims.ExpiresAt.Time,
	}, nil
}
