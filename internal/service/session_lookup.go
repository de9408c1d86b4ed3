package service

import (
	"context"
	"errors"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/repository/specification"
	"mindwell-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// findOwnedSession returns nil, nil when the session is absent or belongs to
// another user; callers choose the error kind.
func findOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.Session, error) {
	session, err := uow.SessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, apperror.Server("failed to load session", err)
	}
	return session, nil
}

// resolveCategories fills Conversation on each session with one query. A
// dangling reference leaves Conversation nil.
func resolveCategories(ctx context.Context, uow unitofwork.UnitOfWork, sessions ...*entity.Session) error {
	if len(sessions) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(sessions))
	seen := make(map[uuid.UUID]bool, len(sessions))
	for _, s := range sessions {
		if s != nil && !seen[s.ConversationCategoryId] {
			seen[s.ConversationCategoryId] = true
			ids = append(ids, s.ConversationCategoryId)
		}
	}

	categories, err := uow.ConversationCategoryRepository().FindAll(ctx, specification.ByIDs{IDs: ids})
	if err != nil {
		return apperror.Server("failed to load categories", err)
	}
	byId := make(map[uuid.UUID]*entity.ConversationCategory, len(categories))
	for _, c := range categories {
		byId[c.Id] = c
	}

	for _, s := range sessions {
		if s != nil {
			s.Conversation = byId[s.ConversationCategoryId]
		}
	}
	return nil
}

// findCategory parses raw and loads the category, failing with
// InvalidCategory when either step does not produce one.
func findCategory(ctx context.Context, uow unitofwork.UnitOfWork, raw string) (*entity.ConversationCategory, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, apperror.InvalidCategory()
	}
	category, err := uow.ConversationCategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, apperror.Server("failed to load category", err)
	}
	if category == nil {
		return nil, apperror.InvalidCategory()
	}
	return category, nil
}

// saveSession persists session. A session deleted since it was loaded reports
// NotFound instead of being written back.
func saveSession(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.Session) error {
	if err := uow.SessionRepository().Update(ctx, session); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NotFound(sessionNotFoundMessage)
		}
		return apperror.Server("failed to update session", err)
	}
	return nil
}
