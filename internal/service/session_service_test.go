package service

import (
	"context"
	"testing"

	"mindwell-be/internal/dto"
	"mindwell-be/internal/entity"
	"mindwell-be/internal/pkg/apperror"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCreate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	category := env.seedCategory(t, "Anxiety Support", "calm", true)
	userId := uuid.New()

	created, err := env.sessions.Create(ctx, userId, &dto.CreateSessionRequest{
		ConversationCategoryId: category.Id.String(),
		Summary:                "first chat",
	})
	require.NoError(t, err)
	assert.Equal(t, userId, created.UserId)
	require.NotNil(t, created.Conversation)
	assert.Equal(t, "Anxiety Support", created.Conversation.Name)

	for _, raw := range []string{"not-a-uuid", uuid.NewString()} {
		_, err := env.sessions.Create(ctx, userId, &dto.CreateSessionRequest{ConversationCategoryId: raw})
		assert.Equal(t, apperror.KindInvalidCategory, apperror.KindOf(err), raw)
	}
}

func TestSessionOwnership(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	category := env.seedCategory(t, "Anxiety Support", "calm", false)
	owner, stranger := uuid.New(), uuid.New()
	session := env.seedSession(t, owner, category.Id)

	_, err := env.sessions.Get(ctx, stranger, session.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	_, err = env.sessions.Update(ctx, stranger, session.Id, &dto.UpdateSessionRequest{Summary: ptr("x")})
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	err = env.sessions.Delete(ctx, stranger, session.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	list, err := env.sessions.List(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = env.sessions.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, session.Id, list[0].Id)
}

func TestSessionUpdateOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	anxiety := env.seedCategory(t, "Anxiety Support", "calm", false)
	sleep := env.seedCategory(t, "Sleep", "rest", false)
	userId := uuid.New()

	created, err := env.sessions.Create(ctx, userId, &dto.CreateSessionRequest{
		ConversationCategoryId: anxiety.Id.String(),
		Summary:                "keep me",
	})
	require.NoError(t, err)

	updated, err := env.sessions.Update(ctx, userId, created.Id, &dto.UpdateSessionRequest{
		NMinusTenSummary: ptr("older"),
	})
	require.NoError(t, err)
	assert.Equal(t, "keep me", updated.Summary)
	assert.Equal(t, "older", updated.NMinusTenSummary)
	require.NotNil(t, updated.Conversation)
	assert.Equal(t, anxiety.Id, updated.Conversation.Id)

	updated, err = env.sessions.Update(ctx, userId, created.Id, &dto.UpdateSessionRequest{
		ConversationCategoryId: ptr(sleep.Id.String()),
	})
	require.NoError(t, err)
	assert.Equal(t, sleep.Id, updated.ConversationCategoryId)
	assert.Equal(t, "Sleep", updated.Conversation.Name)

	_, err = env.sessions.Update(ctx, userId, created.Id, &dto.UpdateSessionRequest{
		ConversationCategoryId: ptr(uuid.NewString()),
	})
	assert.Equal(t, apperror.KindInvalidCategory, apperror.KindOf(err))
}

func TestSessionDeleteRemovesChatLog(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	category := env.seedCategory(t, "Anxiety Support", "calm", false)
	userId := uuid.New()
	session := env.seedSession(t, userId, category.Id)

	uow := env.uowFactory.NewUnitOfWork(ctx)
	chatLog, err := uow.ChatLogRepository().FindOrCreate(ctx, userId, session.Id)
	require.NoError(t, err)
	_, err = uow.ChatLogRepository().Append(ctx, chatLog.Id, entity.Message{Role: entity.MessageRoleUser, Content: "hi"})
	require.NoError(t, err)

	require.NoError(t, env.sessions.Delete(ctx, userId, session.Id))

	_, err = env.sessions.Get(ctx, userId, session.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	logs, err := env.chatLogs.ListForUser(ctx, userId, userId)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestSaveSessionAfterDeleteReportsNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	category := env.seedCategory(t, "Sleep", "rest", false)
	owner := uuid.New()
	session := env.seedSession(t, owner, category.Id)

	uow := env.uowFactory.NewUnitOfWork(ctx)
	stale, err := findOwnedSession(ctx, uow, owner, session.Id)
	require.NoError(t, err)
	require.NotNil(t, stale)

	require.NoError(t, env.sessions.Delete(ctx, owner, session.Id))

	stale.Summary = "late write"
	err = saveSession(ctx, uow, stale)
	require.Error(t, err)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))

	gone, err := uow.SessionRepository().FindOne(ctx, specification.ByID{ID: session.Id})
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Empty(t, env.messages(t, owner, session.Id))
}
