package service

import (
	"context"
	"testing"

	"mindwell-be/internal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatLogGetForSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	category := env.seedCategory(t, "Anxiety Support", "calm", false)
	owner := uuid.New()
	session := env.seedSession(t, owner, category.Id)

	chatLog, err := env.chatLogs.GetForSession(ctx, owner, session.Id)
	require.NoError(t, err)
	assert.Empty(t, chatLog.Messages)
	require.NotNil(t, chatLog.Session)
	assert.Equal(t, "Anxiety Support", chatLog.Session.Conversation.Name)

	again, err := env.chatLogs.GetForSession(ctx, owner, session.Id)
	require.NoError(t, err)
	assert.Equal(t, chatLog.Id, again.Id)

	_, err = env.chatLogs.GetForSession(ctx, uuid.New(), session.Id)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestChatLogListForUser(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	category := env.seedCategory(t, "Anxiety Support", "calm", false)
	owner := uuid.New()
	first := env.seedSession(t, owner, category.Id)
	second := env.seedSession(t, owner, category.Id)

	_, err := env.chatLogs.GetForSession(ctx, owner, first.Id)
	require.NoError(t, err)
	_, err = env.chatLogs.GetForSession(ctx, owner, second.Id)
	require.NoError(t, err)

	logs, err := env.chatLogs.ListForUser(ctx, owner, owner)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	for _, l := range logs {
		require.NotNil(t, l.Session)
		assert.Equal(t, l.SessionId, l.Session.Id)
	}

	_, err = env.chatLogs.ListForUser(ctx, uuid.New(), owner)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}
