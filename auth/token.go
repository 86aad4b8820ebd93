package auth

import (
	"errors"
	"fmt"
	"time"

	"food-ordering-api/models"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidCredential is returned for any token that fails signature or
// structural checks. Role mismatches are not reported through it.
var ErrInvalidCredential = errors.New("invalid credential")

// Claims is the identity carried by a credential.
type Claims struct {
	UserID string          `json:"user_id"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// Tokens issues and verifies HS256 credentials.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokens returns a token issuer. A zero ttl issues tokens that never
// expire.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue creates a signed credential for the given identity.
func (t *Tokens) Issue(userID, email string, role models.UserRole) (string, error) {
	now := t.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if t.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(t.ttl))
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the credential and returns the identity it carries.
func (t *Tokens) Verify(credential string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(credential, claims, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredential, err)
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, fmt.Errorf("%w: incomplete claims", ErrInvalidCredential)
	}
	return claims, nil
}
