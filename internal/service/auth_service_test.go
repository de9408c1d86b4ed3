package service

import (
	"context"
	"testing"
	"time"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/events"
	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/pkg/auth"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/pkg/mailer"
	"mindwell-be/internal/pkg/ratelimit"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(env *testEnv, maxAttempts int) (IAuthService, *auth.TokenIssuer) {
	log := logger.NewNopLogger()
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Config{MaxAttempts: maxAttempts, Window: time.Minute})
	return NewAuthService(
		env.uowFactory,
		tokens,
		limiter,
		mailer.NewNoopEmailService(),
		events.NewBusPublisher(nil, log),
		log,
	), tokens
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc, tokens := newAuthService(env, 5)

	registered, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "  Ana@Example.com ",
		Password: "secret1",
		Name:     "Ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", registered.User.Email)

	userId, err := tokens.Verify(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, userId)

	loggedIn, err := svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret1"}, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, registered.User.Id, loggedIn.User.Id)

	me, err := svc.Me(ctx, userId)
	require.NoError(t, err)
	assert.Equal(t, "Ana", me.Name)
	assert.False(t, me.IsAdmin)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "ANA@example.com", Password: "another", Name: "Other"})
	assert.Equal(t, apperror.KindDuplicateEmail, apperror.KindOf(err))
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc, _ := newAuthService(env, 5)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "secret1", Name: "Ana"})
	require.NoError(t, err)

	for _, req := range []*dto.LoginRequest{
		{Email: "ana@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "secret1"},
	} {
		_, err := svc.Login(ctx, req, "10.0.0.1")
		require.Error(t, err)
		assert.Equal(t, apperror.KindInvalidCredential, apperror.KindOf(err))
		assert.Equal(t, "Invalid credentials", err.Error())
	}
}

func TestLoginIsRateLimited(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc, _ := newAuthService(env, 2)

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "ana@example.com", Password: "secret1", Name: "Ana"})
	require.NoError(t, err)

	bad := &dto.LoginRequest{Email: "ana@example.com", Password: "wrong"}
	for i := 0; i < 2; i++ {
		_, err := svc.Login(ctx, bad, "10.0.0.1")
		assert.Equal(t, apperror.KindInvalidCredential, apperror.KindOf(err))
	}

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret1"}, "10.0.0.1")
	assert.Equal(t, apperror.KindTooManyAttempts, apperror.KindOf(err))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ana@example.com", Password: "secret1"}, "10.0.0.2")
	assert.NoError(t, err)
}

func TestRequireAdmin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	svc, _ := newAuthService(env, 5)

	registered, err := svc.Register(ctx, &dto.RegisterRequest{Email: "admin@example.com", Password: "secret1", Name: "Admin"})
	require.NoError(t, err)

	err = svc.RequireAdmin(ctx, registered.User.Id)
	assert.Equal(t, apperror.KindAdminRequired, apperror.KindOf(err))

	uow := env.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: registered.User.Id})
	require.NoError(t, err)
	user.IsAdmin = true
	require.NoError(t, uow.UserRepository().Update(ctx, user))

	assert.NoError(t, svc.RequireAdmin(ctx, registered.User.Id))
	assert.Equal(t, apperror.KindAdminRequired, apperror.KindOf(svc.RequireAdmin(ctx, uuid.New())))
}
