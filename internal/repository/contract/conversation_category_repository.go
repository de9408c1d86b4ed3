package contract

import (
	"context"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ConversationCategoryRepository interface {
	Create(ctx context.Context, category *entity.ConversationCategory) error
	Update(ctx context.Context, category *entity.ConversationCategory) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationCategory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationCategory, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
