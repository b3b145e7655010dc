package services

import (
	"fmt"
	"math"
	"time"

	"github.com/mohdrafey1/FitTrack-sub000/models"
)

type AnalyticsService struct {
	store FoodLogStore
}

func NewAnalyticsService(store FoodLogStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

// ---------- Summary ----------

type IntakeSummary struct {
	TotalEntries  int     `json:"total_entries"`
	AvgCalories   float64 `json:"avg_calories"`
	AvgProtein    float64 `json:"avg_protein"`
	AvgWater      float64 `json:"avg_water"`
	TotalCalories float64 `json:"total_calories"`
	TotalProtein  float64 `json:"total_protein"`
	TotalWater    float64 `json:"total_water"`
}

func (s *AnalyticsService) Summary(userID uint, from, to time.Time) (IntakeSummary, error) {
	logs, err := s.store.GetRange(userID, from, to)
	if err != nil {
		return IntakeSummary{}, err
	}
	return Summarize(logs), nil
}

func Summarize(logs []models.FoodLog) IntakeSummary {
	out := IntakeSummary{TotalEntries: len(logs)}
	for _, l := range logs {
		out.TotalCalories += l.TotalCalories
		out.TotalProtein += l.TotalProtein
		out.TotalWater += l.Water
	}
	if out.TotalEntries > 0 {
		n := float64(out.TotalEntries)
		out.AvgCalories = math.Round(out.TotalCalories / n)
		out.AvgProtein = round1(out.TotalProtein / n)
		out.AvgWater = math.Round(out.TotalWater / n)
	}
	return out
}

// ---------- Best days ----------

const (
	MetricCalories = "calories"
	MetricProtein  = "protein"
	MetricWater    = "water"
)

type BestDay struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

type BestDaysReport struct {
	Calories *BestDay `json:"calories"`
	Protein  *BestDay `json:"protein"`
	Water    *BestDay `json:"water"`
}

func (s *AnalyticsService) BestDays(userID uint, from, to time.Time) (BestDaysReport, error) {
	logs, err := s.store.GetRange(userID, from, to)
	if err != nil {
		return BestDaysReport{}, err
	}
	cal, _ := BestDayFor(logs, MetricCalories)
	prot, _ := BestDayFor(logs, MetricProtein)
	water, _ := BestDayFor(logs, MetricWater)
	return BestDaysReport{Calories: cal, Protein: prot, Water: water}, nil
}

// BestDayFor picks the log with the highest value of the metric. The floor of
// the reduction is zero, so an empty range (or one where nothing exceeds
// zero) yields nil rather than a zero-valued record. Ties keep the log seen
// first in input order.
func BestDayFor(logs []models.FoodLog, metric string) (*BestDay, error) {
	var best *BestDay
	for _, l := range logs {
		var v float64
		switch metric {
		case MetricCalories:
			v = l.TotalCalories
		case MetricProtein:
			v = l.TotalProtein
		case MetricWater:
			v = l.Water
		default:
			return nil, fmt.Errorf("unknown metric %q", metric)
		}

		floor := 0.0
		if best != nil {
			floor = best.Value
		}
		if v > floor {
			best = &BestDay{Date: l.Date, Value: v}
		}
	}
	return best, nil
}

// ---------- Streaks ----------

type StreakReport struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

func (s *AnalyticsService) Streaks(userID uint, from, to time.Time) (StreakReport, error) {
	logs, err := s.store.GetRange(userID, from, to)
	if err != nil {
		return StreakReport{}, err
	}
	return Streaks(logs), nil
}

// Streaks reduces a newest-first sequence of logs into the current and
// longest runs of days with at least one logged item. The current streak is
// anchored to the most recent day: it freezes at the first empty day, and an
// older run, however long, only ever feeds the longest streak.
func Streaks(logs []models.FoodLog) StreakReport {
	var report StreakReport
	run := 0
	currentFrozen := false

	for _, l := range logs {
		if l.ItemCount() == 0 {
			run = 0
			currentFrozen = true
			continue
		}
		run++
		if run > report.Longest {
			report.Longest = run
		}
		if !currentFrozen {
			report.Current = run
		}
	}
	return report
}
