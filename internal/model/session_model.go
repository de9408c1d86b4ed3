package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session.ConversationCategoryId carries no foreign key: deleting a category
// leaves the reference dangling.
type Session struct {
	Id                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId                 uuid.UUID `gorm:"type:uuid;not null;index"`
	ConversationCategoryId uuid.UUID `gorm:"type:uuid;not null;index"`
	Summary                string    `gorm:"type:text"`
	NMinusTenSummary       string    `gorm:"type:text"`
	CreatedAt              time.Time `gorm:"autoCreateTime"`
	UpdatedAt              time.Time `gorm:"autoUpdateTime;index"`
}

func (Session) TableName() string {
	return "sessions"
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.Id == uuid.Nil {
		s.Id = uuid.New()
	}
	return nil
}
