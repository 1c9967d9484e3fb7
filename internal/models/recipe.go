package models

import (
	"time"

	"gorm.io/gorm"
)

// Recipe categories. Anything else in a query string is ignored, and anything
// else in a write payload fails validation.
const (
	CategoryVeg    = "VEG"
	CategoryNonVeg = "NON-VEG"
)

// ValidCategory reports whether c is one of the fixed category values.
func ValidCategory(c string) bool {
	return c == CategoryVeg || c == CategoryNonVeg
}

// Recipe is a food recipe owned by the user who created it. UserID is nullable:
// seeded or imported recipes may have no owner.
type Recipe struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Category    string         `gorm:"size:10" json:"category"`
	Name        string         `gorm:"size:255;uniqueIndex:idx_recipes_name,where:deleted_at IS NULL" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Ingredients string         `gorm:"type:text" json:"ingredients"`
	Method      string         `gorm:"type:text" json:"method"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	UserID      *uint          `json:"user"`
}
