package auth

import (
	"errors"
	"time"

	"mindwell-be/internal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const claimUserID = "user_id"

// TokenVerifier resolves a bearer credential to a user id.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *TokenIssuer) Issue(userId uuid.UUID) (string, error) {
	if userId == uuid.Nil {
		return "", errors.New("user id cannot be empty")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		claimUserID: userId.String(),
		"iat":       now.Unix(),
		"exp":       now.Add(i.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify fails with Unauthenticated for an empty or structurally broken token and
// with InvalidCredential for signature, expiry or claim problems.
func (i *TokenIssuer) Verify(tokenStr string) (uuid.UUID, error) {
	if tokenStr == "" {
		return uuid.Nil, apperror.Unauthenticated("Access denied")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return uuid.Nil, apperror.Unauthenticated("Malformed token")
		}
		return uuid.Nil, apperror.InvalidCredential("Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return uuid.Nil, apperror.InvalidCredential("Invalid token")
	}

	raw, ok := claims[claimUserID].(string)
	if !ok {
		return uuid.Nil, apperror.InvalidCredential("Invalid claims")
	}
	userId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.InvalidCredential("Invalid claims")
	}
	return userId, nil
}
