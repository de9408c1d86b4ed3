package specification

import "gorm.io/gorm"

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

// PublicCategoryColumns limits a category query to the fields shown to every
// signed-in user.
type PublicCategoryColumns struct{}

func (s PublicCategoryColumns) Apply(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "description", "icon", "image_url", "gradient", "text_color")
}
