package database

import (
	"mindwell-be/internal/model"

	"gorm.io/gorm"
)

func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.ConversationCategory{},
		&model.Session{},
		&model.ChatLog{},
		&model.ChatLogMessage{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
