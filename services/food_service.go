package services

import (
	"errors"

	"github.com/mohdrafey1/FitTrack-sub000/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type CustomFoodInput struct {
	Name           string  `json:"name"`
	Unit           string  `json:"unit"` // "g" | "ml"
	CaloriesPer100 float64 `json:"calories_per_100"`
	ProteinPer100  float64 `json:"protein_per_100"`
	CarbsPer100    float64 `json:"carbs_per_100"`
	FatPer100      float64 `json:"fat_per_100"`
	ServingLabel   string  `json:"serving_label,omitempty"`
}

func (in *CustomFoodInput) validate() error {
	if in.Name == "" || (in.Unit != "g" && in.Unit != "ml") {
		return ErrInvalidEntry
	}
	if in.CaloriesPer100 < 0 || in.ProteinPer100 < 0 || in.CarbsPer100 < 0 || in.FatPer100 < 0 {
		return ErrInvalidEntry
	}
	return nil
}

func (s *FoodService) Create(userID uint, in CustomFoodInput) (*models.CustomFood, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	food := models.CustomFood{
		UserID:         userID,
		Name:           in.Name,
		Unit:           in.Unit,
		CaloriesPer100: in.CaloriesPer100,
		ProteinPer100:  in.ProteinPer100,
		CarbsPer100:    in.CarbsPer100,
		FatPer100:      in.FatPer100,
		ServingLabel:   in.ServingLabel,
	}
	if err := s.db.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) List(userID uint) ([]models.CustomFood, error) {
	var foods []models.CustomFood
	err := s.db.
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&foods).Error
	return foods, err
}

func (s *FoodService) Get(userID, foodID uint) (*models.CustomFood, error) {
	var food models.CustomFood
	err := s.db.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Update(userID, foodID uint, in CustomFoodInput) (*models.CustomFood, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	food, err := s.Get(userID, foodID)
	if err != nil {
		return nil, err
	}

	food.Name = in.Name
	food.Unit = in.Unit
	food.CaloriesPer100 = in.CaloriesPer100
	food.ProteinPer100 = in.ProteinPer100
	food.CarbsPer100 = in.CarbsPer100
	food.FatPer100 = in.FatPer100
	food.ServingLabel = in.ServingLabel

	if err := s.db.Save(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Delete(userID, foodID uint) error {
	res := s.db.
		Where("id = ? AND user_id = ?", foodID, userID).
		Delete(&models.CustomFood{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrFoodNotFound
	}
	return nil
}

// Preview scales a custom food to a quantity without logging anything; the
// client uses it to show nutrition before the user commits an entry.
func (s *FoodService) Preview(userID, foodID uint, quantity float64) (*models.CustomFood, Nutrients, error) {
	food, err := s.Get(userID, foodID)
	if err != nil {
		return nil, Nutrients{}, err
	}
	scaled, err := ScaleNutrition(Nutrients{
		Calories: food.CaloriesPer100,
		Protein:  food.ProteinPer100,
		Carbs:    food.CarbsPer100,
		Fat:      food.FatPer100,
	}, quantity)
	if err != nil {
		return nil, Nutrients{}, err
	}
	return food, scaled, nil
}
