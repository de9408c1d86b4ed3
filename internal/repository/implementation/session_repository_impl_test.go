package implementation

import (
	"context"
	"errors"
	"testing"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSessionUpdateChangesOnlyOwnedRow(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestDB(t))
	owner := uuid.New()

	session := &entity.Session{UserId: owner, ConversationCategoryId: uuid.New()}
	require.NoError(t, repo.Create(ctx, session))

	newCategory := uuid.New()
	session.ConversationCategoryId = newCategory
	session.Summary = "talked about sleep"
	require.NoError(t, repo.Update(ctx, session))

	stored, err := repo.FindOne(ctx, specification.ByID{ID: session.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, newCategory, stored.ConversationCategoryId)
	assert.Equal(t, "talked about sleep", stored.Summary)
	assert.Equal(t, owner, stored.UserId)

	foreign := *stored
	foreign.UserId = uuid.New()
	foreign.Summary = "overwritten"
	err = repo.Update(ctx, &foreign)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	stored, err = repo.FindOne(ctx, specification.ByID{ID: session.Id})
	require.NoError(t, err)
	assert.Equal(t, "talked about sleep", stored.Summary)
}

func TestSessionUpdateAfterDeleteDoesNotRecreate(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(newTestDB(t))

	session := &entity.Session{UserId: uuid.New(), ConversationCategoryId: uuid.New()}
	require.NoError(t, repo.Create(ctx, session))

	stale, err := repo.FindOne(ctx, specification.ByID{ID: session.Id})
	require.NoError(t, err)
	require.NotNil(t, stale)
	require.NoError(t, repo.Delete(ctx, session.Id))

	stale.Summary = "late write"
	err = repo.Update(ctx, stale)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	gone, err := repo.FindOne(ctx, specification.ByID{ID: session.Id})
	require.NoError(t, err)
	assert.Nil(t, gone)
}
