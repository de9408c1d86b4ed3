package mapper

import (
	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"
)

type SessionMapper struct{}

func NewSessionMapper() *SessionMapper {
	return &SessionMapper{}
}

func (m *SessionMapper) ToEntity(s *model.Session) *entity.Session {
	if s == nil {
		return nil
	}
	return &entity.Session{
		Id:                     s.Id,
		UserId:                 s.UserId,
		ConversationCategoryId: s.ConversationCategoryId,
		Summary:                s.Summary,
		NMinusTenSummary:       s.NMinusTenSummary,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}

func (m *SessionMapper) ToEntities(rows []*model.Session) []*entity.Session {
	out := make([]*entity.Session, 0, len(rows))
	for _, r := range rows {
		out = append(out, m.ToEntity(r))
	}
	return out
}

func (m *SessionMapper) ToModel(s *entity.Session) *model.Session {
	if s == nil {
		return nil
	}
	return &model.Session{
		Id:                     s.Id,
		UserId:                 s.UserId,
		ConversationCategoryId: s.ConversationCategoryId,
		Summary:                s.Summary,
		NMinusTenSummary:       s.NMinusTenSummary,
		CreatedAt:              s.CreatedAt,
		UpdatedAt:              s.UpdatedAt,
	}
}
