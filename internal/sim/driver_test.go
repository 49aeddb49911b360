//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sim

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
	"github.com/datasynth/shopgen/internal/profile"
)

func TestPullTowardPreferredHour(t *testing.T) {
	tests := []struct {
		name string
		pref float64
		hour int
		want int
	}{
		{"pull forward", 20, 10, 15},
		{"pull backward", 2, 10, 6},
		{"wrap across midnight", 1, 23, 0},
		{"already preferred", 14, 14, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testState(90)
			s.Params["time_of_day_preference"] = tt.pref
			at := time.Date(2021, 5, 10, tt.hour, 0, 0, 0, time.UTC)
			got := pullTowardPreferredHour(s, at)
			if got.Hour() != tt.want {
				t.Errorf("hour %d pulled to %d, want %d", tt.hour, got.Hour(), tt.want)
			}
		})
	}
}

func simulateOne(t *testing.T, seed uint64, days int, activity float64) *profile.Finalized {
	t.Helper()
	cat := catalog.Default()
	f := datagen.NewFakerWithSeed(seed)
	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)

	shell, err := profile.New(f, cat, int(seed), start, days)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if activity > 0 {
		shell.Params["activity_level"] = activity
	}
	doc, err := Simulate(f, cat, shell)
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	return doc
}

func TestSimulateLogIsTimeSorted(t *testing.T) {
	doc := simulateOne(t, 60, 180, 0.8)

	if len(doc.ActivityLog) == 0 {
		t.Fatal("no events generated over 180 days at high activity")
	}
	timestamps := make([]string, len(doc.ActivityLog))
	for i, e := range doc.ActivityLog {
		timestamps[i] = e.Timestamp
	}
	if !sort.StringsAreSorted(timestamps) {
		t.Error("activity log not sorted by timestamp")
	}

	first, err := time.Parse("2006-01-02T15:04:05Z", timestamps[0])
	if err != nil {
		t.Fatalf("timestamp %q not ISO-8601: %v", timestamps[0], err)
	}
	last, _ := time.Parse("2006-01-02T15:04:05Z", timestamps[len(timestamps)-1])

	start := time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 180)
	if first.Before(start) || last.After(end) {
		t.Errorf("events [%v, %v] escape the horizon [%v, %v]", first, last, start, end)
	}
}

func TestSimulateActivityScalesEventCount(t *testing.T) {
	lowTotal, highTotal := 0, 0
	for seed := uint64(70); seed < 73; seed++ {
		lowTotal += len(simulateOne(t, seed, 365, 0.05).ActivityLog)
		highTotal += len(simulateOne(t, seed, 365, 0.95).ActivityLog)
	}
	if highTotal <= lowTotal {
		t.Errorf("high activity produced %d events, low produced %d; expected more for high",
			highTotal, lowTotal)
	}
}

func TestSimulateFinalSummaries(t *testing.T) {
	doc := simulateOne(t, 61, 365, 0.7)

	if !sort.StringsAreSorted(doc.InterestsFinal) {
		t.Error("final interests not sorted")
	}
	if !sort.StringsAreSorted(doc.AmazonStatus.ServicesFinal) {
		t.Error("final services not sorted")
	}
	for _, le := range doc.LifeEvents {
		if le.EventName == "" {
			t.Error("life event with empty name")
		}
		if le.AgeAtEvent <= 0 {
			t.Errorf("life event %q carries age %v", le.EventName, le.AgeAtEvent)
		}
	}
}

func TestSimulateDeterministic(t *testing.T) {
	a := simulateOne(t, 62, 120, 0)
	b := simulateOne(t, 62, 120, 0)

	if len(a.ActivityLog) != len(b.ActivityLog) {
		t.Fatalf("event counts differ: %d vs %d", len(a.ActivityLog), len(b.ActivityLog))
	}
	for i := range a.ActivityLog {
		if a.ActivityLog[i].Timestamp != b.ActivityLog[i].Timestamp ||
			a.ActivityLog[i].EventType != b.ActivityLog[i].EventType {
			t.Fatalf("event %d differs between identical seeds", i)
		}
	}
}

func TestSimulateJSONRoundTrip(t *testing.T) {
	doc := simulateOne(t, 63, 90, 0.8)

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	for _, key := range []string{
		"profile_id", "generation_timestamp", "simulation_period_start",
		"simulation_period_end", "demographics", "amazon_status",
		"device_usage", "interests_initial", "interests_final",
		"activity_log", "life_events",
	} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("serialized profile missing key %q", key)
		}
	}

	log, ok := decoded["activity_log"].([]any)
	if !ok {
		t.Fatal("activity_log is not an array")
	}
	for _, raw := range log {
		entry := raw.(map[string]any)
		for _, key := range []string{"timestamp", "event_type", "details"} {
			if _, ok := entry[key]; !ok {
				t.Fatalf("activity log entry missing key %q", key)
			}
		}
		details := entry["details"].(map[string]any)
		if _, ok := details["session_id"]; !ok {
			t.Fatal("event details missing session_id")
		}
		if _, ok := details["device_used"]; !ok {
			t.Fatal("event details missing device_used")
		}
	}
}

func TestAdvanceOrders(t *testing.T) {
	s := testState(64)
	placed := testNow

	tests := []struct {
		name   string
		status string
		days   int
		want   string
	}{
		{"fresh order stays processing", StatusProcessing, 0, StatusProcessing},
		{"ships after a day", StatusProcessing, 2, StatusShipped},
		{"delivers after four days", StatusShipped, 5, StatusDelivered},
		{"delivered stays delivered", StatusDelivered, 30, StatusDelivered},
		{"returns never regress", StatusReturnedFull, 60, StatusReturnedFull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{ID: "x", Placed: placed, Status: tt.status}
			s.Orders = []*Order{o}
			advanceOrders(s, placed.AddDate(0, 0, tt.days))
			if o.Status != tt.want {
				t.Errorf("status %q, want %q", o.Status, tt.want)
			}
		})
	}
}

func TestCalendarDays(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day",
			time.Date(2020, 1, 1, 8, 0, 0, 0, time.UTC),
			time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC), 0},
		{"across midnight",
			time.Date(2020, 1, 1, 23, 0, 0, 0, time.UTC),
			time.Date(2020, 1, 2, 1, 0, 0, 0, time.UTC), 1},
		{"multiple days",
			time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC),
			time.Date(2020, 1, 5, 12, 0, 0, 0, time.UTC), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calendarDays(tt.from, tt.to); got != tt.want {
				t.Errorf("calendarDays = %d, want %d", got, tt.want)
			}
		})
	}
}
