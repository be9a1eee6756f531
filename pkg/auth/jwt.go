// Package auth handles credentials and request identity: bcrypt password
// hashing, the signed JWT that names the logged-in user, and the resolved
// Identity struct handlers read from the request context.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shashiranjanraj/nightcap/config"
	"golang.org/x/crypto/bcrypt"
)

// CookieName is the cookie carrying the signed token. The same token is
// accepted as an Authorization bearer for non-browser clients.
const CookieName = "nightcap_token"

const (
	// TokenTTL is the default token lifetime.
	TokenTTL = 24 * time.Hour
	// RememberTTL is the token lifetime when the user asks to stay signed in.
	RememberTTL = 7 * 24 * time.Hour
)

// Claims holds the typed JWT payload. Email is the user key.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(config.JWTSecret())
}

// GenerateToken creates a signed JWT for the given user email.
func GenerateToken(email string, remember bool) (string, error) {
	ttl := TokenTTL
	if remember {
		ttl = RememberTTL
	}

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
}

// ValidateToken parses and validates a JWT string.
func ValidateToken(t string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(t, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// HashPassword returns a bcrypt hash of the plain-text password.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword compares a bcrypt hash against the plain-text candidate.
func CheckPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
