package dto

import (
	"time"

	"mindwell-be/internal/entity"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name                        string `json:"name" validate:"required,max=100"`
	Description                 string `json:"description" validate:"required"`
	Prompt                      string `json:"prompt" validate:"required"`
	RedirectableToOtherCategory bool   `json:"redirectableToOtherCategory"`
	Icon                        string `json:"icon"`
	ImageUrl                    string `json:"imageUrl"`
	Gradient                    string `json:"gradient"`
	TextColor                   string `json:"textColor"`
}

// UpdateCategoryRequest changes only the fields present in the body.
type UpdateCategoryRequest struct {
	Name                        *string `json:"name" validate:"omitempty,max=100"`
	Description                 *string `json:"description"`
	Prompt                      *string `json:"prompt"`
	RedirectableToOtherCategory *bool   `json:"redirectableToOtherCategory"`
	Icon                        *string `json:"icon"`
	ImageUrl                    *string `json:"imageUrl"`
	Gradient                    *string `json:"gradient"`
	TextColor                   *string `json:"textColor"`
}

type PublicCategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	ImageUrl    string    `json:"imageUrl"`
	Gradient    string    `json:"gradient"`
	TextColor   string    `json:"textColor"`
}

type CategoryResponse struct {
	Id                          uuid.UUID `json:"id"`
	Name                        string    `json:"name"`
	Description                 string    `json:"description"`
	Prompt                      string    `json:"prompt"`
	RedirectableToOtherCategory bool      `json:"redirectableToOtherCategory"`
	Icon                        string    `json:"icon"`
	ImageUrl                    string    `json:"imageUrl"`
	Gradient                    string    `json:"gradient"`
	TextColor                   string    `json:"textColor"`
	CreatedAt                   time.Time `json:"createdAt"`
	UpdatedAt                   time.Time `json:"updatedAt"`
}

func NewPublicCategoryResponse(c *entity.ConversationCategory) *PublicCategoryResponse {
	return &PublicCategoryResponse{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
		ImageUrl:    c.ImageUrl,
		Gradient:    c.Gradient,
		TextColor:   c.TextColor,
	}
}

func NewCategoryResponse(c *entity.ConversationCategory) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
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
