package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var errTokenSubject = errors.New("token has no subject")

// TokenConfig holds the signing secrets and lifetimes of both token kinds.
type TokenConfig struct {
	AccessSecret  string
	AccessTTL     time.Duration
	RefreshSecret string
	RefreshTTL    time.Duration
}

type tokenPair struct {
	Access  string
	Refresh string
}

func issueTokenPair(cfg TokenConfig, userID string, now time.Time) (tokenPair, error) {
	access, err := signToken(cfg.AccessSecret, userID, cfg.AccessTTL, now)
	if err != nil {
		return tokenPair{}, err
	}
	refresh, err := signToken(cfg.RefreshSecret, userID, cfg.RefreshTTL, now)
	if err != nil {
		return tokenPair{}, err
	}
	return tokenPair{Access: access, Refresh: refresh}, nil
}

// signToken issues an HS256 JWT whose subject is the user id. The random jti
// keeps two tokens minted in the same second distinct.
func signToken(secret, userID string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// parseToken verifies signature and expiry and returns the subject.
func parseToken(secret, token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !tkn.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return "", errTokenSubject
	}
	return claims.Subject, nil
}

// tokenDigest is what gets persisted in place of the refresh token itself.
func tokenDigest(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
