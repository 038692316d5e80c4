// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotJWT is returned by [TokenExpiry] for tokens that are not JWTs.
var ErrNotJWT = errors.New("token is not a jwt")

// TokenExpiry reads the "exp" claim of a JWT without verifying the signature.
//
// The client never holds the signing key; the check only avoids sending a
// request the backend is bound to reject. ok is false when the token carries
// no expiry. Opaque (non-JWT) tokens yield [ErrNotJWT].
func TokenExpiry(tokenString string) (exp time.Time, ok bool, err error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %w", ErrNotJWT, err)
	}

	expiresAt, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid exp claim: %w", err)
	}
	if expiresAt == nil {
		return time.Time{}, false, nil
	}

	return expiresAt.Time, true, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
