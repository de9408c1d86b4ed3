package implementation

import (
	"context"
	"errors"
	"testing"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/scope"
	"mindwell-be/internal/repository/specification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategoryNameIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationCategoryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, &entity.ConversationCategory{Name: "Sleep", Description: "d", Prompt: "p"}))
	err := repo.Create(ctx, &entity.ConversationCategory{Name: "Sleep", Description: "d2", Prompt: "p2"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCategoryPublicColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationCategoryRepository(newTestDB(t))

	for _, name := range []string{"Work Stress", "Anxiety Support"} {
		require.NoError(t, repo.Create(ctx, &entity.ConversationCategory{
			Name:                        name,
			Description:                 "about " + name,
			Prompt:                      "secret prompt",
			RedirectableToOtherCategory: true,
			Icon:                        "leaf",
		}))
	}

	public, err := repo.FindAll(ctx, specification.PublicCategoryColumns{}, specification.Scoped{scope.OrderByName})
	require.NoError(t, err)

	require.Len(t, public, 2)
	assert.Equal(t, "Anxiety Support", public[0].Name)
	assert.Equal(t, "leaf", public[0].Icon)
	assert.Empty(t, public[0].Prompt)
	assert.False(t, public[0].RedirectableToOtherCategory)
}

func TestCategoryUpdateAfterDeleteDoesNotRecreate(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationCategoryRepository(newTestDB(t))

	category := &entity.ConversationCategory{Name: "Sleep", Description: "d", Prompt: "p"}
	require.NoError(t, repo.Create(ctx, category))

	stale, err := repo.FindOne(ctx, specification.ByID{ID: category.Id})
	require.NoError(t, err)
	require.NotNil(t, stale)
	require.NoError(t, repo.Delete(ctx, category.Id))

	stale.Prompt = "late write"
	err = repo.Update(ctx, stale)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
