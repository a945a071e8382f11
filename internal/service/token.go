package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultConfirmTokenExpiry is used when no expiry is configured.
const DefaultConfirmTokenExpiry = time.Hour

// TokenCodec creates and validates signed, time-limited confirmation tokens.
// The token is a self-contained HS256 JWT carrying the user id in a
// "confirm" claim; nothing is persisted.
type TokenCodec struct {
	secret []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{secret: []byte(secret)}
}

func (c *TokenCodec) Generate(userID int64, expiry time.Duration) (string, error) {
	if expiry == 0 {
		expiry = DefaultConfirmTokenExpiry
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"confirm": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Validate reports whether the token is a valid, unexpired confirmation for
// the given user id. Decode and signature errors are treated as invalid,
// never surfaced to the caller.
func (c *TokenCodec) Validate(tokenString string, userID int64) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	// JSON numbers decode as float64
	confirm, ok := claims["confirm"].(float64)
	if !ok {
		return false
	}

	return int64(confirm) == userID
}
