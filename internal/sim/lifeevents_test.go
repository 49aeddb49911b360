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
	"testing"

	"github.com/datasynth/shopgen/internal/profile"
)

func TestApplyLifeEventClampsParams(t *testing.T) {
	s := testState(81)
	s.Params["activity_level"] = 0.9

	applyLifeEvent(s, "Test Event", map[string]float64{"activity_level": 5.0}, nil)

	max := s.Cat.Params["activity_level"].Max
	if got := s.Params["activity_level"]; got != max {
		t.Errorf("activity_level = %v after huge adjustment, want clamped %v", got, max)
	}
}

func TestApplyLifeEventSkipsUnknownParams(t *testing.T) {
	s := testState(82)
	before := len(s.Params)

	applyLifeEvent(s, "Test Event", map[string]float64{"charisma": 0.5}, nil)

	if len(s.Params) != before {
		t.Error("unknown parameter was added to the set")
	}
}

func TestApplyLifeEventShiftsInterests(t *testing.T) {
	s := testState(83)
	applyLifeEvent(s, "Test Event", nil, []string{"Home Office", "Ergonomic Furniture"})

	for _, want := range []string{"Home Office", "Ergonomic Furniture"} {
		if !s.hasInterest(want) {
			t.Errorf("interest %q not added", want)
		}
	}
}

func TestApplyLifeEventResolvesHobbyPlaceholder(t *testing.T) {
	s := testState(84)
	before := len(s.Interests)

	applyLifeEvent(s, "Test Event", nil, []string{"Related Hobby Supplies"})

	if len(s.Interests) != before+1 {
		t.Fatalf("expected one resolved hobby interest, had %d now %d", before, len(s.Interests))
	}
	added := s.Interests[len(s.Interests)-1]
	if added == "Related Hobby Supplies" {
		t.Error("placeholder stored literally instead of being resolved")
	}
}

func TestAddInterestsEnforcesCap(t *testing.T) {
	s := testState(85)
	s.Interests = nil
	for _, cat := range s.Cat.Interests[:maxInterests] {
		s.Interests = append(s.Interests, cat)
	}

	newcomers := []string{"Test Category A", "Test Category B"}
	s.addInterests(newcomers)

	if len(s.Interests) != maxInterests {
		t.Fatalf("interest set holds %d entries, cap is %d", len(s.Interests), maxInterests)
	}
	for _, n := range newcomers {
		if !s.hasInterest(n) {
			t.Errorf("newly added interest %q was evicted", n)
		}
	}
}

func TestMaybeLifeEventProbabilityGrows(t *testing.T) {
	// With enough daily rolls at a long cooldown, events fire; the record
	// lands in the life-event log with a rounded age.
	s := testState(86)
	doc := &profile.Finalized{ProfileID: "cust_00000"}

	fired := false
	ts := testNow
	for day := 0; day < 4000 && !fired; day++ {
		fired = maybeLifeEvent(s, doc, ts, 900)
		ts = ts.AddDate(0, 0, 1)
	}
	if !fired {
		t.Fatal("life event never fired despite a huge cooldown")
	}
	if len(doc.LifeEvents) != 1 {
		t.Fatalf("life-event log holds %d entries, want 1", len(doc.LifeEvents))
	}
	got := doc.LifeEvents[0]
	if got.EventName == "" {
		t.Error("life event recorded without a name")
	}
	if got.Details["type"] != "minor" {
		t.Errorf("life event type %v, want minor", got.Details["type"])
	}
}

func TestMaybeMajorLifeEventFires(t *testing.T) {
	// A full year per roll lifts each template's chance to its yearly
	// frequency, so a couple thousand rolls fire with near certainty.
	s := testState(87)
	doc := &profile.Finalized{ProfileID: "cust_00000"}

	fired := false
	ts := testNow
	for i := 0; i < 2000 && !fired; i++ {
		fired = maybeMajorLifeEvent(s, doc, ts, 365)
		ts = ts.AddDate(0, 0, 1)
	}
	if !fired {
		t.Fatal("major life event never fired")
	}
	if len(doc.LifeEvents) != 1 {
		t.Fatalf("life-event log holds %d entries, want 1", len(doc.LifeEvents))
	}
	got := doc.LifeEvents[0]
	if got.EventName == "" {
		t.Error("major life event recorded without a name")
	}
	if got.Details["type"] != "major" {
		t.Errorf("life event type %v, want major", got.Details["type"])
	}
}

func TestMaybeMajorLifeEventNeedsElapsedDays(t *testing.T) {
	s := testState(88)
	doc := &profile.Finalized{ProfileID: "cust_00000"}

	for i := 0; i < 500; i++ {
		if maybeMajorLifeEvent(s, doc, testNow, 0) {
			t.Fatal("major life event fired with zero elapsed days")
		}
	}
}
