package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

// TokenIssuer implements ports.TokenIssuer with HS256 and a server-held
// secret. Access and refresh tokens share the claim shape and differ only in
// token_type and lifetime.
type TokenIssuer struct {
	secret []byte
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"`
}

func NewTokenIssuer(secret []byte) *TokenIssuer {
	return &TokenIssuer{secret: secret}
}

func (t *TokenIssuer) IssueAccessToken(username, userID string, expiresInSeconds int64) (string, error) {
	return t.issue(tokenTypeAccess, username, userID, expiresInSeconds)
}

func (t *TokenIssuer) IssueRefreshToken(username, userID string, expiresInSeconds int64) (string, error) {
	return t.issue(tokenTypeRefresh, username, userID, expiresInSeconds)
}

func (t *TokenIssuer) issue(tokenType, username, userID string, expiresInSeconds int64) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiresInSeconds) * time.Second)),
		},
		UserID:    userID,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

func (t *TokenIssuer) ValidateAccessToken(tokenString string) (username, userID string, err error) {
	return t.validate(tokenString, tokenTypeAccess)
}

func (t *TokenIssuer) ValidateRefreshToken(tokenString string) (username, userID string, err error) {
	return t.validate(tokenString, tokenTypeRefresh)
}

func (t *TokenIssuer) validate(tokenString, wantType string) (username, userID string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return "", "", errors.New("invalid token claims")
	}
	if claims.TokenType != wantType {
		return "", "", fmt.Errorf("token is not a %s token", wantType)
	}
	return claims.Subject, claims.UserID, nil
}
