package services

import (
	"errors"
	"time"

	"github.com/mohdrafey1/FitTrack-sub000/models"

	"gorm.io/gorm"
)

// FoodLogStore is the persistence contract the log and analytics services
// consume. Mutation services build the desired state in memory and hand the
// whole log back through SaveLog.
type FoodLogStore interface {
	GetOrCreate(userID uint, day time.Time) (*models.FoodLog, error)
	GetRange(userID uint, from, to time.Time) ([]models.FoodLog, error)
	SaveLog(log *models.FoodLog) error
}

type GormFoodLogStore struct {
	db  *gorm.DB
	loc *time.Location
}

func NewGormFoodLogStore(db *gorm.DB, loc *time.Location) *GormFoodLogStore {
	if loc == nil {
		loc = time.UTC
	}
	return &GormFoodLogStore{db: db, loc: loc}
}

func itemOrder(db *gorm.DB) *gorm.DB { return db.Order("food_log_items.id ASC") }

// GetOrCreate fetches the log for the calendar day of `day`, creating an
// empty one on first access. Uniqueness lives in the (user_id, date) index:
// when a concurrent create wins the race we re-fetch the winner instead of
// surfacing the conflict.
func (s *GormFoodLogStore) GetOrCreate(userID uint, day time.Time) (*models.FoodLog, error) {
	start := DayStart(day, s.loc)

	var log models.FoodLog
	err := s.db.
		Preload("Items", itemOrder).
		Where("user_id = ? AND date = ?", userID, start).
		First(&log).Error
	if err == nil {
		return &log, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	log = models.FoodLog{UserID: userID, Date: start}
	if err := s.db.Create(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing models.FoodLog
			if err := s.db.
				Preload("Items", itemOrder).
				Where("user_id = ? AND date = ?", userID, start).
				First(&existing).Error; err != nil {
				return nil, err
			}
			return &existing, nil
		}
		return nil, err
	}
	return &log, nil
}

// GetRange returns the logs covering the full calendar days of both
// endpoints, newest first.
func (s *GormFoodLogStore) GetRange(userID uint, from, to time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.
		Preload("Items", itemOrder).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, DayStart(from, s.loc), DayEnd(to, s.loc)).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

// SaveLog persists the in-memory state of a log: the item set is replaced
// wholesale and the water/total columns updated, all in one transaction so no
// reader ever sees items and totals disagree.
func (s *GormFoodLogStore) SaveLog(log *models.FoodLog) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("food_log_id = ?", log.ID).
			Unscoped().
			Delete(&models.FoodLogItem{}).Error; err != nil {
			return err
		}

		for i := range log.Items {
			log.Items[i].ID = 0
			log.Items[i].FoodLogID = log.ID
		}
		if len(log.Items) > 0 {
			if err := tx.Create(&log.Items).Error; err != nil {
				return err
			}
		}

		return tx.Model(log).
			Select("water", "total_calories", "total_protein", "total_carbs", "total_fat").
			Updates(map[string]interface{}{
				"water":          log.Water,
				"total_calories": log.TotalCalories,
				"total_protein":  log.TotalProtein,
				"total_carbs":    log.TotalCarbs,
				"total_fat":      log.TotalFat,
			}).Error
	})
}
