package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiryClaim is returned by [ParseExpiryFromJWT] when the token
// parses as a JWT but carries no exp claim.
var ErrNoExpiryClaim = errors.New("token has no expiry claim")

// ParseExpiryFromJWT extracts the exp claim from a compact JWT string
// without verifying the signature. Verification is pointless here: the
// token belongs to some external service and its signing key is exactly
// what the vault is storing.
//
// Returns the expiry as UTC time, [ErrNoExpiryClaim] if the token has
// no exp claim, or a parse error if the string is not a JWT at all.
func ParseExpiryFromJWT(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return time.Time{}, errors.New("invalid token claims")
	}

	expiry, err := claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if expiry == nil {
		return time.Time{}, ErrNoExpiryClaim
	}

	return expiry.Time.UTC(), nil
}
