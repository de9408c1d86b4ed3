package service

import (
	"context"
	"strings"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/repository/scope"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const sessionNotFoundMessage = "Session not found"

type ISessionService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error)
	Get(ctx context.Context, userId, id uuid.UUID) (*dto.SessionResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Update(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	Delete(ctx context.Context, userId, id uuid.UUID) error
}

type sessionService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewSessionService(uowFactory unitofwork.RepositoryFactory, logger logger.ILogger) ISessionService {
	return &sessionService{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

func (s *sessionService) List(ctx context.Context, userId uuid.UUID) ([]*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Scoped{scope.OrderByUpdatedDesc},
	)
	if err != nil {
		return nil, apperror.Server("failed to list sessions", err)
	}
	if err := resolveCategories(ctx, uow, sessions...); err != nil {
		return nil, err
	}

	res := make([]*dto.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		res = append(res, dto.NewSessionResponse(session))
	}
	return res, nil
}

func (s *sessionService) Get(ctx context.Context, userId, id uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := findOwnedSession(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound(sessionNotFoundMessage)
	}
	if err := resolveCategories(ctx, uow, session); err != nil {
		return nil, err
	}
	return dto.NewSessionResponse(session), nil
}

func (s *sessionService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := findCategory(ctx, uow, strings.TrimSpace(req.ConversationCategoryId))
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		UserId:                 userId,
		ConversationCategoryId: category.Id,
		Conversation:           category,
		Summary:                req.Summary,
		NMinusTenSummary:       req.NMinusTenSummary,
	}
	if err := uow.SessionRepository().Create(ctx, session); err != nil {
		return nil, apperror.Server("failed to create session", err)
	}

	s.logger.Info("SESSION", "Session created", map[string]interface{}{
		"user_id":     userId.String(),
		"session_id":  session.Id.String(),
		"category_id": category.Id.String(),
	})
	return dto.NewSessionResponse(session), nil
}

func (s *sessionService) Update(ctx context.Context, userId, id uuid.UUID, req *dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := findOwnedSession(ctx, uow, userId, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound(sessionNotFoundMessage)
	}

	if req.ConversationCategoryId != nil {
		category, err := findCategory(ctx, uow, strings.TrimSpace(*req.ConversationCategoryId))
		if err != nil {
			return nil, err
		}
		session.ConversationCategoryId = category.Id
		session.Conversation = category
	} else if err := resolveCategories(ctx, uow, session); err != nil {
		return nil, err
	}
	if req.Summary != nil {
		session.Summary = *req.Summary
	}
	if req.NMinusTenSummary != nil {
		session.NMinusTenSummary = *req.NMinusTenSummary
	}

	if err := saveSession(ctx, uow, session); err != nil {
		return nil, err
	}
	return dto.NewSessionResponse(session), nil
}

// Delete removes the session together with its chat log.
func (s *sessionService) Delete(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.Server("failed to begin transaction", err)
	}
	defer uow.Rollback()

	session, err := findOwnedSession(ctx, uow, userId, id)
	if err != nil {
		return err
	}
	if session == nil {
		return apperror.NotFound(sessionNotFoundMessage)
	}

	if err := uow.ChatLogRepository().DeleteBySession(ctx, id); err != nil {
		return apperror.Server("failed to delete chat log", err)
	}
	if err := uow.SessionRepository().Delete(ctx, id); err != nil {
		return apperror.Server("failed to delete session", err)
	}
	if err := uow.Commit(); err != nil {
		return apperror.Server("failed to commit transaction", err)
	}

	s.logger.Info("SESSION", "Session deleted", map[string]interface{}{
		"user_id":    userId.String(),
		"session_id": id.String(),
	})
	return nil
}
