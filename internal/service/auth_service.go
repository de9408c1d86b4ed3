// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/events"
	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/pkg/auth"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/pkg/mailer"
	"mindwell-be/internal/pkg/ratelimit"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "Invalid credentials"

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest, clientIP string) (*dto.AuthResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error)
	RequireAdmin(ctx context.Context, userId uuid.UUID) error
}

type authService struct {
	uowFactory   unitofwork.RepositoryFactory
	tokens       *auth.TokenIssuer
	limiter      ratelimit.Limiter
	emailService mailer.IEmailService
	publisher    events.Publisher
	logger       logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	tokens *auth.TokenIssuer,
	limiter ratelimit.Limiter,
	emailService mailer.IEmailService,
	publisher events.Publisher,
	logger logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory:   uowFactory,
		tokens:       tokens,
		limiter:      limiter,
		emailService: emailService,
		publisher:    publisher,
		logger:       logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" || req.Password == "" {
		return nil, apperror.InvalidRequest("Missing email, password or name")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 1. Check for existing user
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.Server("failed to look up user", err)
	}
	if existing != nil {
		return nil, apperror.DuplicateEmail()
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Server("failed to hash password", err)
	}

	// 3. Save
	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.DuplicateEmail()
		}
		return nil, apperror.Server("failed to create user", err)
	}

	token, err := s.tokens.Issue(user.Id)
	if err != nil {
		return nil, apperror.Server("failed to issue token", err)
	}

	s.logger.Info("AUTH", "User registered", map[string]interface{}{"user_id": user.Id.String()})
	s.publisher.PublishUserRegistered(ctx, user.Id, user.Email)

	go func() {
		if err := s.emailService.SendWelcome(user.Email, user.Name); err != nil {
			s.logger.Warn("AUTH", "Welcome email failed", map[string]interface{}{"user_id": user.Id.String(), "error": err.Error()})
		}
	}()

	return &dto.AuthResponse{Token: token, User: toAuthUser(user)}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, clientIP string) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	limitKey := clientIP + "|" + email

	allowed, err := s.limiter.Hit(ctx, limitKey)
	if err != nil {
		s.logger.Warn("AUTH", "Login limiter unavailable", map[string]interface{}{"error": err.Error()})
	} else if !allowed {
		return nil, apperror.TooManyAttempts()
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, apperror.Server("failed to look up user", err)
	}
	if user == nil {
		return nil, apperror.InvalidCredential(invalidCredentialsMessage)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.InvalidCredential(invalidCredentialsMessage)
	}

	if err := s.limiter.Reset(ctx, limitKey); err != nil {
		s.logger.Warn("AUTH", "Failed to reset login limiter", map[string]interface{}{"error": err.Error()})
	}

	token, err := s.tokens.Issue(user.Id)
	if err != nil {
		return nil, apperror.Server("failed to issue token", err)
	}

	return &dto.AuthResponse{Token: token, User: toAuthUser(user)}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.MeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, apperror.Server("failed to load user", err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}

	return &dto.MeResponse{
		Id:        user.Id,
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// RequireAdmin re-reads the user on every call so revoking the flag takes
// effect immediately.
func (s *authService) RequireAdmin(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return apperror.Server("failed to load user", err)
	}
	if user == nil || !user.IsAdmin {
		return apperror.AdminRequired()
	}
	return nil
}

func toAuthUser(u *entity.User) dto.AuthUser {
	return dto.AuthUser{Id: u.Id, Email: u.Email, Name: u.Name}
}
