package service

import (
	"context"
	"testing"
	"time"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/events"
	"mindwell-be/internal/pkg/logger"
	"mindwell-be/internal/repository/memory"
	"mindwell-be/internal/repository/unitofwork"
	"mindwell-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	uowFactory unitofwork.RepositoryFactory
	categories ICategoryService
	sessions   ISessionService
	chatLogs   IChatLogService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.NewInMemoryDB(uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	log := logger.NewNopLogger()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	publisher := events.NewBusPublisher(nil, log)

	return &testEnv{
		uowFactory: uowFactory,
		categories: NewCategoryService(uowFactory, memory.NewTopicCache(time.Minute), publisher, log),
		sessions:   NewSessionService(uowFactory, log),
		chatLogs:   NewChatLogService(uowFactory),
	}
}

func (e *testEnv) seedCategory(t *testing.T, name, prompt string, redirectable bool) *entity.ConversationCategory {
	t.Helper()
	category := &entity.ConversationCategory{
		Name:                        name,
		Description:                 name + " description",
		Prompt:                      prompt,
		RedirectableToOtherCategory: redirectable,
	}
	uow := e.uowFactory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.ConversationCategoryRepository().Create(context.Background(), category))
	return category
}

func (e *testEnv) seedSession(t *testing.T, userId, categoryId uuid.UUID) *entity.Session {
	t.Helper()
	session := &entity.Session{UserId: userId, ConversationCategoryId: categoryId}
	uow := e.uowFactory.NewUnitOfWork(context.Background())
	require.NoError(t, uow.SessionRepository().Create(context.Background(), session))
	return session
}

func (e *testEnv) messages(t *testing.T, userId, sessionId uuid.UUID) []entity.Message {
	t.Helper()
	uow := e.uowFactory.NewUnitOfWork(context.Background())
	chatLog, err := uow.ChatLogRepository().FindOrCreate(context.Background(), userId, sessionId)
	require.NoError(t, err)
	return chatLog.Messages
}

func ptr[T any](v T) *T {
	return &v
}
