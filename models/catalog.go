package models

// FoodItem is a catalog entry. Items are seeded once and read-only afterwards.
type FoodItem struct {
	ID          string  `json:"id" gorm:"primaryKey;size:36"`
	Name        string  `json:"name" gorm:"not null"`
	Category    string  `json:"category" gorm:"index;not null"`
	Price       float64 `json:"price" gorm:"not null"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Restaurant  string  `json:"restaurant"`
	Available   bool    `json:"available" gorm:"index"`
}

// CategoryAll is the synthetic category that disables filtering.
const CategoryAll = "All"
