package models

import "gorm.io/gorm"

// A user-defined base food, stored per 100 g / 100 ml.
type CustomFood struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"not null"`
	Unit   string `gorm:"type:varchar(2);not null"` // "g" | "ml"

	CaloriesPer100 float64
	ProteinPer100  float64
	CarbsPer100    float64
	FatPer100      float64

	ServingLabel string // e.g. "medium (150g)"
}
