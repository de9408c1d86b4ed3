package implementation

import (
	"context"
	"errors"
	"time"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/mapper"
	"mindwell-be/internal/model"
	"mindwell-be/internal/repository/contract"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationCategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func NewConversationCategoryRepository(db *gorm.DB) contract.ConversationCategoryRepository {
	return &ConversationCategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *ConversationCategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationCategoryRepositoryImpl) Create(ctx context.Context, category *entity.ConversationCategory) error {
	row := r.mapper.ToModel(category)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	*category = *r.mapper.ToEntity(row)
	return nil
}

// Update fails with gorm.ErrRecordNotFound when the category no longer exists.
func (r *ConversationCategoryRepositoryImpl) Update(ctx context.Context, category *entity.ConversationCategory) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.ConversationCategory{}).
		Where("id = ?", category.Id).
		Updates(map[string]interface{}{
			"name":                           category.Name,
			"description":                    category.Description,
			"prompt":                         category.Prompt,
			"redirectable_to_other_category": category.RedirectableToOtherCategory,
			"icon":                           category.Icon,
			"image_url":                      category.ImageUrl,
			"gradient":                       category.Gradient,
			"text_color":                     category.TextColor,
			"updated_at":                     now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	category.UpdatedAt = now
	return nil
}

func (r *ConversationCategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ConversationCategory{}).Error
}

func (r *ConversationCategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ConversationCategory, error) {
	var row model.ConversationCategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&row), nil
}

func (r *ConversationCategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationCategory, error) {
	var rows []*model.ConversationCategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(rows), nil
}

func (r *ConversationCategoryRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ConversationCategory{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
