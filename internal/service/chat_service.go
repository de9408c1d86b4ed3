package service

import (
	"context"
	"strings"

	"mindwell-be/internal/constant"
	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/events"
	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/completion"

	"github.com/google/uuid"
)

type IChatService interface {
	SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	ChangeCategory(ctx context.Context, userId uuid.UUID, req *dto.ChangeCategoryRequest) (*dto.SessionResponse, error)
}

type chatService struct {
	uowFactory      unitofwork.RepositoryFactory
	categoryService ICategoryService
	completer       completion.Completer
	publisher       events.Publisher
	logger          logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	categoryService ICategoryService,
	completer completion.Completer,
	publisher events.Publisher,
	logger logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:      uowFactory,
		categoryService: categoryService,
		completer:       completer,
		publisher:       publisher,
		logger:          logger,
	}
}

// SendMessage runs one turn. The user message is stored before the model is
// asked, so a failed completion leaves it in the log without a reply. A
// redirect proposed by the model is reported back but never applied.
func (s *chatService) SendMessage(ctx context.Context, userId uuid.UUID, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	if userId == uuid.Nil {
		return nil, apperror.InvalidRequest("Missing userId")
	}
	sessionId, err := uuid.Parse(strings.TrimSpace(req.SessionId))
	if err != nil {
		return nil, apperror.InvalidRequest("Invalid sessionId")
	}
	userMessage := strings.TrimSpace(req.UserMessage)
	if userMessage == "" {
		return nil, apperror.InvalidRequest("Missing userMessage")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.SessionNotFound()
	}
	if err := resolveCategories(ctx, uow, session); err != nil {
		return nil, err
	}

	chatLog, err := uow.ChatLogRepository().FindOrCreate(ctx, userId, sessionId)
	if err != nil {
		return nil, apperror.Server("failed to load chat log", err)
	}
	history := toTurns(chatLog.Messages)

	messages, err := uow.ChatLogRepository().Append(ctx, chatLog.Id, entity.Message{
		Role:    entity.MessageRoleUser,
		Content: userMessage,
	})
	if err != nil {
		return nil, apperror.Server("failed to store message", err)
	}
	chatLog.Messages = messages

	request, err := s.buildRequest(ctx, session, history, userMessage)
	if err != nil {
		return nil, err
	}

	result, err := s.completer.Complete(ctx, request)
	if err != nil {
		s.logger.Warn("CHAT", "Completion failed", map[string]interface{}{
			"user_id":    userId.String(),
			"session_id": sessionId.String(),
			"kind":       string(apperror.KindOf(err)),
			"error":      err.Error(),
		})
		s.publisher.PublishChatTurnFailed(ctx, userId, sessionId, string(apperror.KindOf(err)))
		return nil, err
	}

	var metadata map[string]interface{}
	if result.RedirectToOtherCategory != "" {
		metadata = map[string]interface{}{
			constant.MetadataRedirectToOtherCategory: result.RedirectToOtherCategory,
		}
	}
	messages, err = uow.ChatLogRepository().Append(ctx, chatLog.Id, entity.Message{
		Role:     entity.MessageRoleModel,
		Content:  result.Message,
		Metadata: metadata,
	})
	if err != nil {
		return nil, apperror.Server("failed to store reply", err)
	}
	chatLog.Messages = messages

	res := &dto.SendMessageResponse{
		ChatLog:                 dto.NewChatLogResponse(chatLog),
		Session:                 dto.NewSessionResponse(session),
		RedirectToOtherCategory: result.RedirectToOtherCategory,
	}
	if result.RedirectToOtherCategory != "" {
		res.RedirectCategoryId = s.redirectCategoryId(ctx, uow, result.RedirectToOtherCategory)
	}

	s.publisher.PublishChatTurnCompleted(ctx, userId, sessionId, chatLog.Id, result.RedirectToOtherCategory)
	return res, nil
}

// ChangeCategory points the session at another category. Stored messages are
// not touched.
func (s *chatService) ChangeCategory(ctx context.Context, userId uuid.UUID, req *dto.ChangeCategoryRequest) (*dto.SessionResponse, error) {
	sessionId, err := uuid.Parse(strings.TrimSpace(req.SessionId))
	if err != nil {
		return nil, apperror.NotFound(sessionNotFoundMessage)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	session, err := findOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, apperror.NotFound(sessionNotFoundMessage)
	}

	category, err := findCategory(ctx, uow, strings.TrimSpace(req.NewCategoryId))
	if err != nil {
		return nil, err
	}

	previous := session.ConversationCategoryId
	session.ConversationCategoryId = category.Id
	session.Conversation = category
	if err := saveSession(ctx, uow, session); err != nil {
		return nil, err
	}

	s.logger.Info("CHAT", "Session category changed", map[string]interface{}{
		"user_id":         userId.String(),
		"session_id":      sessionId.String(),
		"old_category_id": previous.String(),
		"new_category_id": category.Id.String(),
	})
	s.publisher.PublishSessionCategoryChanged(ctx, userId, sessionId, previous, category.Id)

	return dto.NewSessionResponse(session), nil
}

func (s *chatService) buildRequest(ctx context.Context, session *entity.Session, history []completion.Turn, userMessage string) (completion.Request, error) {
	req := completion.Request{
		History:      history,
		UserMessage:  userMessage,
		SystemPrompt: constant.DefaultSystemPrompt,
	}

	category := session.Conversation
	if category == nil {
		return req, nil
	}

	req.SystemPrompt = category.Prompt
	if category.RedirectableToOtherCategory {
		topics, err := s.categoryService.TopicNames(ctx)
		if err != nil {
			return req, err
		}
		req.Redirectable = true
		req.Topics = topics
	}
	return req, nil
}

// redirectCategoryId returns nil when the proposed topic no longer names a
// category.
func (s *chatService) redirectCategoryId(ctx context.Context, uow unitofwork.UnitOfWork, name string) *uuid.UUID {
	category, err := uow.ConversationCategoryRepository().FindOne(ctx, specification.ByName{Name: name})
	if err != nil {
		s.logger.Warn("CHAT", "Failed to resolve redirect target", map[string]interface{}{"error": err.Error()})
		return nil
	}
	if category == nil {
		return nil
	}
	return &category.Id
}

func toTurns(messages []entity.Message) []completion.Turn {
	turns := make([]completion.Turn, 0, len(messages))
	for _, m := range messages {
		turns = append(turns, completion.Turn{Role: string(m.Role), Text: m.Content})
	}
	return turns
}
