package mapper

import (
	"mindwell-be/internal/entity"
	"mindwell-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.ConversationCategory) *entity.ConversationCategory {
	if c == nil {
		return nil
	}
	return &entity.ConversationCategory{
		Id:                          c.Id,
		Name:                        c.Name,
		Description:                 c.Description,
		Prompt:                      c.Prompt,
		RedirectableToOtherCategory: c.RedirectableToOtherCategory,
		Icon:                        c.Icon,
		ImageUrl:                    c.ImageUrl,
		Gradient:                    c.Gradient,
		TextColor:                   c.TextColor,
		CreatedAt:                   c.CreatedAt,
		UpdatedAt:                   c.UpdatedAt,
	}
}

func (m *CategoryMapper) ToEntities(rows []*model.ConversationCategory) []*entity.ConversationCategory {
	out := make([]*entity.ConversationCategory, 0, len(rows))
	for _, r := range rows {
		out = append(out, m.ToEntity(r))
	}
	return out
}

func (m *CategoryMapper) ToModel(c *entity.ConversationCategory) *model.ConversationCategory {
	if c == nil {
		return nil
	}
	return &model.ConversationCategory{
		Id:                          c.Id,
		Name:                        c.Name,
		Description:                 c.Description,
		Prompt:                      c.Prompt,
		RedirectableToOtherCategory: c.RedirectableToOtherCategory,
		Icon:                        c.Icon,
		ImageUrl:                    c.ImageUrl,
		Gradient:                    c.Gradient,
		TextColor:                   c.TextColor,
		CreatedAt:                   c.CreatedAt,
		UpdatedAt:                   c.UpdatedAt,
	}
}
