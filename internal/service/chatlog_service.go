package service

import (
	"context"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/repository/scope"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IChatLogService interface {
	GetForSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ChatLogResponse, error)
	ListForUser(ctx context.Context, callerId, userId uuid.UUID) ([]*dto.ChatLogResponse, error)
}

type chatLogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewChatLogService(uowFactory unitofwork.RepositoryFactory) IChatLogService {
	return &chatLogService{uowFactory: uowFactory}
}

// GetForSession creates the log on first read so an owned session always has one.
func (s *chatLogService) GetForSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.ChatLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound("Chat log not found")
	}
	if err := resolveCategories(ctx, uow, session); err != nil {
		return nil, err
	}

	chatLog, err := uow.ChatLogRepository().FindOrCreate(ctx, userId, sessionId)
	if err != nil {
		return nil, apperror.Server("failed to load chat log", err)
	}
	chatLog.Session = session

	return dto.NewChatLogResponse(chatLog), nil
}

func (s *chatLogService) ListForUser(ctx context.Context, callerId, userId uuid.UUID) ([]*dto.ChatLogResponse, error) {
	if callerId != userId {
		return nil, apperror.NotFound("Chat logs not found")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	chatLogs, err := uow.ChatLogRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Scoped{scope.OrderByCreatedDesc},
	)
	if err != nil {
		return nil, apperror.Server("failed to list chat logs", err)
	}
	if err := s.attachSessions(ctx, uow, userId, chatLogs); err != nil {
		return nil, err
	}

	res := make([]*dto.ChatLogResponse, 0, len(chatLogs))
	for _, chatLog := range chatLogs {
		res = append(res, dto.NewChatLogResponse(chatLog))
	}
	return res, nil
}

func (s *chatLogService) attachSessions(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, chatLogs []*entity.ChatLog) error {
	if len(chatLogs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(chatLogs))
	for _, c := range chatLogs {
		ids = append(ids, c.SessionId)
	}
	sessions, err := uow.SessionRepository().FindAll(ctx,
		specification.ByIDs{IDs: ids},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return apperror.Server("failed to load sessions", err)
	}
	if err := resolveCategories(ctx, uow, sessions...); err != nil {
		return err
	}

	byId := make(map[uuid.UUID]*entity.Session, len(sessions))
	for _, session := range sessions {
		byId[session.Id] = session
	}
	for _, c := range chatLogs {
		c.Session = byId[c.SessionId]
	}
	return nil
}
