package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/01moynul/shopfront-api/internal/config"
	"github.com/01moynul/shopfront-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSubject = errors.New("invalid subject claim")

// Claims is the payload of an access token. The subject holds the user id.
type Claims struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
	jwt.RegisteredClaims
}

// UserID parses the subject as a positive user id.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidSubject
	}
	return id, nil
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewTokenIssuer builds an issuer from the JWT settings.
func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(cfg.SecretKey),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
}

// GenerateToken creates a signed token for user.
func (ti *TokenIssuer) GenerateToken(user *models.User) (string, error) {
	// 1. Create the claims. The subject carries the user id as a string.
	now := ti.now()
	claims := Claims{
		Email:  user.Email,
		Name:   user.Username,
		Active: user.IsActive,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    ti.issuer,
			Audience:  jwt.ClaimStrings{ti.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}

	// 2. Sign the token with our secret key.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ti.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, algorithm, issuer, audience and expiry.
func (ti *TokenIssuer) ValidateToken(tokenString string) (*Claims, error) {
	// 1. Parse the token string into our typed claims.
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// 2. Check the signing method.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		// 3. Return our secret key for validation.
		return ti.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(ti.issuer),
		jwt.WithAudience(ti.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ti.now),
	)
	if err != nil {
		return nil, err
	}
	// 4. The parser options already enforced issuer, audience and expiry.
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
