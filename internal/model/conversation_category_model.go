package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ConversationCategory struct {
	Id                          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description                 string    `gorm:"type:text;not null"`
	Prompt                      string    `gorm:"type:text;not null"`
	RedirectableToOtherCategory bool      `gorm:"not null;default:false"`
	Icon                        string    `gorm:"type:varchar(100)"`
	ImageUrl                    string    `gorm:"type:text"`
	Gradient                    string    `gorm:"type:varchar(255)"`
	TextColor                   string    `gorm:"type:varchar(50)"`
	CreatedAt                   time.Time `gorm:"autoCreateTime"`
	UpdatedAt                   time.Time `gorm:"autoUpdateTime"`
}

func (ConversationCategory) TableName() string {
	return "conversation_categories"
}

func (c *ConversationCategory) BeforeCreate(tx *gorm.DB) error {
	if c.Id == uuid.Nil {
		c.Id = uuid.New()
	}
	return nil
}
