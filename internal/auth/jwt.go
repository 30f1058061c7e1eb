package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier validates HS256 tokens issued by the identity provider and
// extracts the caller's claims.
type TokenVerifier struct {
	secret   []byte
	issuer   string
	audience string
}

// NewTokenVerifier creates a verifier. Empty issuer or audience disables that check.
func NewTokenVerifier(secret, issuer, audience string) *TokenVerifier {
	return &TokenVerifier{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
	}
}

// idpClaims mirrors the OIDC claims the provider puts in its tokens.
type idpClaims struct {
	jwt.RegisteredClaims
	Email      string `json:"email"`
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
}

// Verify parses and validates a token. Email presence is checked by the
// identity resolver, not here.
func (v *TokenVerifier) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: token is empty", ErrInvalidToken)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, &idpClaims{}, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*idpClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token claims", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: subject is empty", ErrInvalidToken)
	}

	return &Claims{
		Subject:    claims.Subject,
		Email:      claims.Email,
		GivenName:  optional(claims.GivenName),
		FamilyName: optional(claims.FamilyName),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
