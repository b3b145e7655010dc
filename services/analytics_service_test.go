package services

import (
	"testing"
	"time"

	"github.com/mohdrafey1/FitTrack-sub000/models"
)

// newest-first helper: builds one log per day walking backwards from `latest`.
func logsWithItemCounts(latest time.Time, counts []int) []models.FoodLog {
	logs := make([]models.FoodLog, 0, len(counts))
	for i, n := range counts {
		log := models.FoodLog{Date: latest.AddDate(0, 0, -i)}
		for j := 0; j < n; j++ {
			log.Items = append(log.Items, models.FoodLogItem{ItemID: "x"})
		}
		logs = append(logs, log)
	}
	return logs
}

func TestSummarize(t *testing.T) {
	logs := []models.FoodLog{
		{TotalCalories: 2000, TotalProtein: 80.5, Water: 1500},
		{TotalCalories: 1800, TotalProtein: 61.25, Water: 2000},
		{TotalCalories: 2205, TotalProtein: 90.25, Water: 1750},
	}

	got := Summarize(logs)

	if got.TotalEntries != 3 {
		t.Errorf("total entries = %d, want 3", got.TotalEntries)
	}
	if got.TotalCalories != 6005 {
		t.Errorf("total calories = %v, want 6005", got.TotalCalories)
	}
	if got.AvgCalories != 2002 {
		t.Errorf("avg calories = %v, want 2002 (round(6005/3))", got.AvgCalories)
	}
	if got.TotalProtein != 232 {
		t.Errorf("total protein = %v, want 232", got.TotalProtein)
	}
	if got.AvgProtein != 77.3 {
		t.Errorf("avg protein = %v, want 77.3 (round1(232/3))", got.AvgProtein)
	}
	if got.TotalWater != 5250 {
		t.Errorf("total water = %v, want 5250", got.TotalWater)
	}
	if got.AvgWater != 1750 {
		t.Errorf("avg water = %v, want 1750", got.AvgWater)
	}
}

func TestSummarizeEmptyRangeHasNoDivision(t *testing.T) {
	got := Summarize(nil)
	if got.TotalEntries != 0 {
		t.Errorf("total entries = %d, want 0", got.TotalEntries)
	}
	if got.AvgCalories != 0 || got.AvgProtein != 0 || got.AvgWater != 0 {
		t.Errorf("averages over empty range must be zero, got %+v", got)
	}
}

func TestBestDayPicksMaximum(t *testing.T) {
	latest := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	calories := []float64{0, 1800, 2200, 1500} // newest first
	logs := make([]models.FoodLog, 0, len(calories))
	for i, cal := range calories {
		logs = append(logs, models.FoodLog{
			Date:          latest.AddDate(0, 0, -i),
			TotalCalories: cal,
		})
	}

	best, err := BestDayFor(logs, MetricCalories)
	if err != nil {
		t.Fatalf("best day: %v", err)
	}
	if best == nil {
		t.Fatal("best day is nil")
	}
	if best.Value != 2200 {
		t.Errorf("value = %v, want 2200", best.Value)
	}
	if !best.Date.Equal(logs[2].Date) {
		t.Errorf("date = %v, want %v (the 2200 day)", best.Date, logs[2].Date)
	}
}

func TestBestDayTieKeepsFirstEncountered(t *testing.T) {
	latest := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	logs := []models.FoodLog{
		{Date: latest, Water: 2000},
		{Date: latest.AddDate(0, 0, -1), Water: 2000},
	}

	best, err := BestDayFor(logs, MetricWater)
	if err != nil {
		t.Fatalf("best day: %v", err)
	}
	if best == nil || !best.Date.Equal(latest) {
		t.Errorf("tie must keep the first log in input order, got %+v", best)
	}
}

func TestBestDayEmptyAndAllZero(t *testing.T) {
	if best, err := BestDayFor(nil, MetricProtein); err != nil || best != nil {
		t.Errorf("empty range: got (%+v, %v), want (nil, nil)", best, err)
	}

	zeros := []models.FoodLog{{}, {}}
	if best, err := BestDayFor(zeros, MetricCalories); err != nil || best != nil {
		t.Errorf("all-zero range: got (%+v, %v), want (nil, nil)", best, err)
	}
}

func TestBestDayUnknownMetric(t *testing.T) {
	if _, err := BestDayFor([]models.FoodLog{{}}, "sodium"); err == nil {
		t.Error("expected an error for an unknown metric")
	}
}

func TestStreaksGapFreezesCurrent(t *testing.T) {
	latest := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	got := Streaks(logsWithItemCounts(latest, []int{3, 2, 0, 4, 1}))
	if got.Current != 2 {
		t.Errorf("current = %d, want 2", got.Current)
	}
	if got.Longest != 2 {
		t.Errorf("longest = %d, want 2", got.Longest)
	}
}

func TestStreaksOlderRunOnlyFeedsLongest(t *testing.T) {
	latest := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	got := Streaks(logsWithItemCounts(latest, []int{1, 0, 5, 5}))
	if got.Current != 1 {
		t.Errorf("current = %d, want 1 (anchored to the most recent day)", got.Current)
	}
	if got.Longest != 2 {
		t.Errorf("longest = %d, want 2 (the older run)", got.Longest)
	}
}

func TestStreaksEdges(t *testing.T) {
	latest := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	if got := Streaks(nil); got.Current != 0 || got.Longest != 0 {
		t.Errorf("no logs: got %+v, want zeros", got)
	}

	// Most recent day empty: current is 0 even though older days have food.
	if got := Streaks(logsWithItemCounts(latest, []int{0, 2, 1})); got.Current != 0 || got.Longest != 2 {
		t.Errorf("empty latest day: got %+v, want current=0 longest=2", got)
	}

	// Unbroken run.
	if got := Streaks(logsWithItemCounts(latest, []int{1, 1, 1, 1})); got.Current != 4 || got.Longest != 4 {
		t.Errorf("unbroken run: got %+v, want current=4 longest=4", got)
	}
}
