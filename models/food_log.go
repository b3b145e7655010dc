package models

import (
	"time"

	"gorm.io/gorm"
)

// FoodLog is one user's intake for one calendar day.
// Date is always start-of-day in the app's reference timezone; the compound
// unique index is what keeps concurrent first-access calls from materializing
// two rows for the same day.
type FoodLog struct {
	gorm.Model
	UserID uint      `gorm:"uniqueIndex:idx_food_logs_user_date;not null"`
	Date   time.Time `gorm:"uniqueIndex:idx_food_logs_user_date;not null"`

	Items []FoodLogItem

	Water float64 // milliliters, never negative

	// Cached sums over Items, recomputed on every item mutation.
	TotalCalories float64
	TotalProtein  float64
	TotalCarbs    float64
	TotalFat      float64
}

// ItemCount is what the streak logic keys on.
func (l *FoodLog) ItemCount() int { return len(l.Items) }

// Each FoodLogItem snapshots the scaled nutrition at log time, so later
// edits to the base food never rewrite history.
type FoodLogItem struct {
	gorm.Model
	FoodLogID uint   `gorm:"index;not null"`
	ItemID    string `gorm:"type:varchar(36);index;not null"` // opaque, stable across saves

	FoodID       string `gorm:"type:varchar(255)"` // catalog or custom-food reference, not validated here
	Name         string `gorm:"not null"`
	Quantity     float64
	Unit         string `gorm:"type:varchar(2)"` // "g" | "ml"
	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64
	ServingLabel string
	LoggedAt     time.Time
}
