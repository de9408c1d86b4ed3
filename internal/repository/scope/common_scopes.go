package scope

import "gorm.io/gorm"

func OrderByCreatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at DESC")
}

func OrderByCreatedAsc(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

func OrderByUpdatedDesc(db *gorm.DB) *gorm.DB {
	return db.Order("updated_at DESC")
}

func OrderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

func OrderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
