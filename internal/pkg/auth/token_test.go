package auth

import (
	"testing"
	"time"

	"mindwell-be/internal/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	userId := uuid.New()

	token, err := issuer.Issue(userId)
	require.NoError(t, err)

	got, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userId, got)
}

func TestIssueRejectsNilUser(t *testing.T) {
	_, err := NewTokenIssuer("secret", time.Hour).Issue(uuid.Nil)
	assert.Error(t, err)
}

func TestVerifyFailures(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	userId := uuid.New()

	otherSecret, err := NewTokenIssuer("other", time.Hour).Issue(userId)
	require.NoError(t, err)
	expired, err := NewTokenIssuer("secret", -time.Minute).Issue(userId)
	require.NoError(t, err)

	noUserClaim, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	badUserClaim, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "not-a-uuid",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId.String(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  apperror.Kind
	}{
		{"empty", "", apperror.KindUnauthenticated},
		{"garbage", "not.a.jwt", apperror.KindUnauthenticated},
		{"wrong secret", otherSecret, apperror.KindInvalidCredential},
		{"expired", expired, apperror.KindInvalidCredential},
		{"missing user claim", noUserClaim, apperror.KindInvalidCredential},
		{"bad user claim", badUserClaim, apperror.KindInvalidCredential},
		{"missing expiry", noExpiry, apperror.KindInvalidCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := issuer.Verify(tt.token)
			require.Error(t, err)
			assert.Equal(t, tt.want, apperror.KindOf(err))
		})
	}
}
