package entity

import (
	"time"

	"github.com/google/uuid"
)

type ConversationCategory struct {
	Id                          uuid.UUID
	Name                        string
	Description                 string
	Prompt                      string
	RedirectableToOtherCategory bool
	Icon                        string
	ImageUrl                    string
	Gradient                    string
	TextColor                   string
	CreatedAt                   time.Time
	UpdatedAt                   time.Time
}
