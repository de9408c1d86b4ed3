// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"context"
	"strings"

	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const localUserID = "user_id"

// AdminChecker fails with AdminRequired when the user lacks the admin flag.
type AdminChecker interface {
	RequireAdmin(ctx context.Context, userId uuid.UUID) error
}

// JwtMiddleware resolves the bearer credential and stores the caller's id for
// CurrentUserID. Nothing else about the caller is kept on the request.
func JwtMiddleware(verifier auth.TokenVerifier) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apperror.Unauthenticated("Access denied")
		}
		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return apperror.Unauthenticated("Malformed authorization header")
		}

		userId, err := verifier.Verify(strings.TrimSpace(token))
		if err != nil {
			return err
		}

		ctx.Locals(localUserID, userId)
		return ctx.Next()
	}
}

// AdminMiddleware must run after JwtMiddleware.
func AdminMiddleware(checker AdminChecker) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := CurrentUserID(ctx)
		if err != nil {
			return err
		}
		if err := checker.RequireAdmin(ctx.UserContext(), userId); err != nil {
			return err
		}
		return ctx.Next()
	}
}

// CurrentUserID returns the identity resolved by JwtMiddleware.
func CurrentUserID(ctx *fiber.Ctx) (uuid.UUID, error) {
	userId, ok := ctx.Locals(localUserID).(uuid.UUID)
	if !ok || userId == uuid.Nil {
		return uuid.Nil, apperror.Unauthenticated("Unauthorized")
	}
	return userId, nil
}
