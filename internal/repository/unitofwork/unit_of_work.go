package unitofwork

import (
	"context"

	"mindwell-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ConversationCategoryRepository() contract.ConversationCategoryRepository
	SessionRepository() contract.SessionRepository
	ChatLogRepository() contract.ChatLogRepository
}
