package services

import (
	"math"
	"time"

	"github.com/mohdrafey1/FitTrack-sub000/models"

	"github.com/google/uuid"
)

type FoodLogService struct {
	store FoodLogStore
	now   func() time.Time
}

func NewFoodLogService(store FoodLogStore) *FoodLogService {
	return &FoodLogService{store: store, now: time.Now}
}

// FoodLogItemInput carries already-scaled absolute values (see
// ScaleNutrition); the service trusts them beyond sign checks.
type FoodLogItemInput struct {
	FoodID       string  `json:"food_id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"` // "g" | "ml"
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	ServingLabel string  `json:"serving_label,omitempty"`
}

func (in *FoodLogItemInput) validate() error {
	if in.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if in.Name == "" || (in.Unit != "g" && in.Unit != "ml") {
		return ErrInvalidEntry
	}
	if in.Calories < 0 || in.Protein < 0 || in.Carbs < 0 || in.Fat < 0 {
		return ErrInvalidEntry
	}
	return nil
}

func (s *FoodLogService) GetLog(userID uint, day time.Time) (*models.FoodLog, error) {
	return s.store.GetOrCreate(userID, day)
}

// AddItem appends one logged food to the day and persists items + totals as a
// single unit. Validation happens before the log is even fetched, so a bad
// entry never creates a day row as a side effect.
func (s *FoodLogService) AddItem(userID uint, day time.Time, in FoodLogItemInput) (*models.FoodLog, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	log, err := s.store.GetOrCreate(userID, day)
	if err != nil {
		return nil, err
	}

	log.Items = append(log.Items, models.FoodLogItem{
		FoodLogID:    log.ID,
		ItemID:       uuid.NewString(),
		FoodID:       in.FoodID,
		Name:         in.Name,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		Calories:     in.Calories,
		Protein:      in.Protein,
		Carbs:        in.Carbs,
		Fat:          in.Fat,
		ServingLabel: in.ServingLabel,
		LoggedAt:     s.now(),
	})
	recomputeTotals(log)

	if err := s.store.SaveLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

func (s *FoodLogService) RemoveItem(userID uint, day time.Time, itemID string) (*models.FoodLog, error) {
	log, err := s.store.GetOrCreate(userID, day)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range log.Items {
		if log.Items[i].ItemID == itemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	log.Items = append(log.Items[:idx], log.Items[idx+1:]...)
	recomputeTotals(log)

	if err := s.store.SaveLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

// SetWater replaces the day's water total with an absolute target, clamped at
// zero. Items and macro totals are untouched.
func (s *FoodLogService) SetWater(userID uint, day time.Time, amount float64) (*models.FoodLog, error) {
	log, err := s.store.GetOrCreate(userID, day)
	if err != nil {
		return nil, err
	}
	log.Water = math.Max(0, amount)
	if err := s.store.SaveLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

// AdjustWater applies a delta. A zero delta is rejected up front; a decrement
// past zero clamps rather than going negative.
func (s *FoodLogService) AdjustWater(userID uint, day time.Time, delta float64) (*models.FoodLog, error) {
	if delta == 0 {
		return nil, ErrZeroWaterDelta
	}
	log, err := s.store.GetOrCreate(userID, day)
	if err != nil {
		return nil, err
	}
	log.Water = math.Max(0, log.Water+delta)
	if err := s.store.SaveLog(log); err != nil {
		return nil, err
	}
	return log, nil
}

// recomputeTotals is the only code path that derives the cached totals.
// Calories of logged items are whole kcal, so their sum needs no rounding;
// macros are rounded once on the aggregate, never per item. An empty day is
// forced to exact zeros so float residue can't leak into an emptied log.
func recomputeTotals(log *models.FoodLog) {
	if len(log.Items) == 0 {
		log.TotalCalories = 0
		log.TotalProtein = 0
		log.TotalCarbs = 0
		log.TotalFat = 0
		return
	}

	var cals, prot, carbs, fat float64
	for _, it := range log.Items {
		cals += it.Calories
		prot += it.Protein
		carbs += it.Carbs
		fat += it.Fat
	}
	log.TotalCalories = cals
	log.TotalProtein = round1(prot)
	log.TotalCarbs = round1(carbs)
	log.TotalFat = round1(fat)
}
