package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTTL bounds the exposure of a leaked token. There is no refresh
// mechanism, clients re-authenticate via /auth/get-token when it runs out.
const AccessTTL = time.Hour

var (
	ErrMalformed = errors.New("malformed token")
	ErrExpired   = errors.New("token expired")
)

type AccessClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

type Service struct {
	secret []byte
	method jwt.SigningMethod
}

// NewService builds a token service for the given symmetric secret and
// algorithm identifier (HS256, HS384 or HS512).
func NewService(secret []byte, alg string) (*Service, error) {
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", alg)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", alg)
	}
	return &Service{secret: secret, method: method}, nil
}

func (s *Service) Issue(userID uint, now time.Time) (string, error) {
	claims := AccessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTTL)),
		},
	}

	t := jwt.NewWithClaims(s.method, claims)
	return t.SignedString(s.secret)
}

func (s *Service) Verify(tokenStr string, now time.Time) (uint, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	var claims AccessClaims
	tkn, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrMalformed
	}
	if !tkn.Valid {
		return 0, ErrMalformed
	}

	return claims.UserID, nil
}
