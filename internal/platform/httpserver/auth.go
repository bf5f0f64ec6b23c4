package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v4"
)

// identity is the authenticated caller the middleware resolves for every
// protected route. The services consume it as-is; credential issuance lives
// outside this process.
type identity struct {
	UserID int64
	Role   string
}

var (
	errMissingCredentials = errors.New("missing credentials")
	errInvalidToken       = errors.New("invalid token")
)

// resolveIdentity extracts the caller from a bearer token when one is
// present, otherwise from the X-User-Id / X-User-Role headers used by
// internal callers and tests.
func (s *Server) resolveIdentity(r *http.Request) (identity, error) {
	authorization := r.Header.Get("Authorization")
	if strings.HasPrefix(authorization, "Bearer ") {
		return s.identityFromToken(strings.TrimPrefix(authorization, "Bearer "))
	}

	rawID := r.Header.Get("X-User-Id")
	if rawID == "" {
		return identity{}, errMissingCredentials
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || userID <= 0 {
		return identity{}, errInvalidToken
	}

	role := r.Header.Get("X-User-Role")
	if role == "" {
		role = "USER"
	}
	return identity{UserID: userID, Role: role}, nil
}

func (s *Server) identityFromToken(raw string) (identity, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return identity{}, errInvalidToken
	}

	subject, _ := claims["sub"].(string)
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || userID <= 0 {
		return identity{}, errInvalidToken
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = "USER"
	}
	return identity{UserID: userID, Role: role}, nil
}
