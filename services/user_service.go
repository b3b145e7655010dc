package services

import (
	"errors"

	"github.com/mohdrafey1/FitTrack-sub000/config"
	"github.com/mohdrafey1/FitTrack-sub000/models"
	"github.com/mohdrafey1/FitTrack-sub000/utils"
)

type ProfileInput struct {
	FullName string  `json:"full_name"`
	HeightCm float64 `json:"height_cm"`
	WeightKg float64 `json:"weight_kg"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	profile := map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"full_name": user.FullName,
		"height_cm": user.HeightCm,
		"weight_kg": user.WeightKg,
	}

	if bmi, err := utils.BMIFromProfile(user.HeightCm, user.WeightKg); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}

	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	user.FullName = input.FullName
	user.HeightCm = input.HeightCm
	user.WeightKg = input.WeightKg

	return config.DB.Save(&user).Error
}
