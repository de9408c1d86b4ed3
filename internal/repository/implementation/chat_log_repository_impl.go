package implementation

import (
	"context"
	"errors"
	"time"

	"mindwell-be/internal/entity"
	"mindwell-be/internal/mapper"
	"mindwell-be/internal/model"
	"mindwell-be/internal/repository/contract"
	"mindwell-be/internal/repository/scope"
	"mindwell-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ChatLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatLogMapper
}

func NewChatLogRepository(db *gorm.DB) contract.ChatLogRepository {
	return &ChatLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatLogMapper(),
	}
}

func (r *ChatLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatLogRepositoryImpl) FindOrCreate(ctx context.Context, userId, sessionId uuid.UUID) (*entity.ChatLog, error) {
	owner := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.BySessionID{SessionID: sessionId},
	}

	existing, err := r.FindOne(ctx, owner...)
	if err != nil || existing != nil {
		return existing, err
	}

	row := &model.ChatLog{UserId: userId, SessionId: sessionId}
	err = r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "session_id"}},
			DoNothing: true,
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}

	// Re-read so a concurrent create that won the unique index is returned
	// instead of the row we tried to insert.
	created, err := r.FindOne(ctx, owner...)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, errors.New("chat log missing after create")
	}
	return created, nil
}

func (r *ChatLogRepositoryImpl) Append(ctx context.Context, chatLogId uuid.UUID, msg entity.Message) ([]entity.Message, error) {
	db := r.db.WithContext(ctx)
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	// A concurrent append can take the allocated position first; allocate again
	// until the insert lands or the context ends.
	for {
		var next int
		err := db.Model(&model.ChatLogMessage{}).
			Where("chat_log_id = ?", chatLogId).
			Select("COALESCE(MAX(position), 0) + 1").
			Scan(&next).Error
		if err != nil {
			return nil, err
		}

		row := r.mapper.MessageToModel(chatLogId, msg)
		row.Position = next
		err = db.Create(row).Error
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
	}

	if err := db.Model(&model.ChatLog{}).Where("id = ?", chatLogId).Update("updated_at", time.Now()).Error; err != nil {
		return nil, err
	}

	rows, err := r.loadMessages(ctx, []uuid.UUID{chatLogId})
	if err != nil {
		return nil, err
	}
	messages := make([]entity.Message, 0, len(rows))
	for _, m := range rows {
		messages = append(messages, r.mapper.MessageToEntity(m))
	}
	return messages, nil
}

func (r *ChatLogRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ChatLog, error) {
	var row model.ChatLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	messages, err := r.loadMessages(ctx, []uuid.UUID{row.Id})
	if err != nil {
		return nil, err
	}
	return r.mapper.ChatLogToEntity(&row, messages), nil
}

func (r *ChatLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatLog, error) {
	var rows []*model.ChatLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []*entity.ChatLog{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.Id)
	}
	messages, err := r.loadMessages(ctx, ids)
	if err != nil {
		return nil, err
	}

	byLog := make(map[uuid.UUID][]*model.ChatLogMessage, len(rows))
	for _, m := range messages {
		byLog[m.ChatLogId] = append(byLog[m.ChatLogId], m)
	}

	logs := make([]*entity.ChatLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, r.mapper.ChatLogToEntity(row, byLog[row.Id]))
	}
	return logs, nil
}

func (r *ChatLogRepositoryImpl) DeleteBySession(ctx context.Context, sessionId uuid.UUID) error {
	db := r.db.WithContext(ctx)
	logIds := db.Model(&model.ChatLog{}).Select("id").Where("session_id = ?", sessionId)
	if err := db.Where("chat_log_id IN (?)", logIds).Delete(&model.ChatLogMessage{}).Error; err != nil {
		return err
	}
	return db.Where("session_id = ?", sessionId).Delete(&model.ChatLog{}).Error
}

func (r *ChatLogRepositoryImpl) loadMessages(ctx context.Context, chatLogIds []uuid.UUID) ([]*model.ChatLogMessage, error) {
	var rows []*model.ChatLogMessage
	err := r.db.WithContext(ctx).
		Where("chat_log_id IN ?", chatLogIds).
		Scopes(scope.OrderByPosition).
		Find(&rows).Error
	return rows, err
}
