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

type SessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SessionMapper
}

func NewSessionRepository(db *gorm.DB) contract.SessionRepository {
	return &SessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewSessionMapper(),
	}
}

func (r *SessionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *entity.Session) error {
	row := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	conversation := session.Conversation
	*session = *r.mapper.ToEntity(row)
	session.Conversation = conversation
	return nil
}

// Update writes the mutable columns of an existing session owned by
// session.UserId. It fails with gorm.ErrRecordNotFound when no such row exists
// and never inserts.
func (r *SessionRepositoryImpl) Update(ctx context.Context, session *entity.Session) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Session{}).
		Where("id = ? AND user_id = ?", session.Id, session.UserId).
		Updates(map[string]interface{}{
			"conversation_category_id": session.ConversationCategoryId,
			"summary":                  session.Summary,
			"n_minus_ten_summary":      session.NMinusTenSummary,
			"updated_at":               now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	session.UpdatedAt = now
	return nil
}

func (r *SessionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Session{}).Error
}

func (r *SessionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error) {
	var row model.Session
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&row), nil
}

func (r *SessionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Session, error) {
	var rows []*model.Session
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(rows), nil
}
