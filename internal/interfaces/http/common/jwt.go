package common

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenIssuer signs HS256 access tokens for verified users.
type TokenIssuer struct {
	Secret   []byte
	Issuer   string
	Audience string
	TTL      time.Duration
}

// IssuedClaims is the claim set carried by tokens this API issues.
type IssuedClaims struct {
	jwt.RegisteredClaims
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Issue returns a signed token whose subject is the user id.
func (i TokenIssuer) Issue(userID, name, phone string) (string, error) {
	if len(i.Secret) == 0 {
		return "", errors.New("token secret is not configured")
	}

	ttl := i.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now().UTC()
	claims := IssuedClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    i.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  name,
		Phone: phone,
	}
	if i.Audience != "" {
		claims.Audience = jwt.ClaimStrings{i.Audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.Secret)
}
