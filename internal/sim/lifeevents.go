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
	"math"
	"strings"
	"time"

	"github.com/datasynth/shopgen/internal/datagen"
	"github.com/datasynth/shopgen/internal/logging"
	"github.com/datasynth/shopgen/internal/profile"
)

// minorEventYearlyProb is the baseline yearly probability of a minor life
// event; the daily probability grows slowly with the days since the last
// one.
const minorEventYearlyProb = 0.6

// hobbyMarkers identify interest categories that can stand in for the
// related-hobby placeholder in life-event templates.
var hobbyMarkers = []string{"hobby", "craft", "sport", "outdoor", "music", "collectible", "game"}

// maybeLifeEvent rolls the daily life-event check. On trigger it picks a
// template, perturbs the parameters and interests, and appends a record to
// the profile's life-event log. Reports whether an event fired.
func maybeLifeEvent(s *State, doc *profile.Finalized, ts time.Time, daysSince int) bool {
	dailyProb := (minorEventYearlyProb / 365.0) * (1 + float64(daysSince)/(365*2.5))
	if !s.Rand.Chance(dailyProb) {
		return false
	}
	if len(s.Cat.LifeEvents) == 0 {
		return false
	}

	tmpl := datagen.Choose(s.Rand, s.Cat.LifeEvents)
	logging.Debug().
		Str("profile", doc.ProfileID).
		Str("event", tmpl.Name).
		Float64("age", math.Round(s.Age*10)/10).
		Msg("life event triggered")

	applyLifeEvent(s, tmpl.Name, tmpl.Adjustments, tmpl.InterestShift)

	doc.LifeEvents = append(doc.LifeEvents, profile.LifeEvent{
		Timestamp:  datagen.ISOTime(ts),
		EventName:  tmpl.Name,
		AgeAtEvent: math.Round(s.Age*10) / 10,
		Details:    map[string]any{"type": "minor"},
	})
	return true
}

// maybeMajorLifeEvent rolls every major template's yearly frequency,
// scaled to the days just passed. At most one fires per check; templates
// are tried in catalog order.
func maybeMajorLifeEvent(s *State, doc *profile.Finalized, ts time.Time, days int) bool {
	for _, tmpl := range s.Cat.MajorEvents {
		if !s.Rand.Chance(tmpl.Frequency / 365.0 * float64(days)) {
			continue
		}
		logging.Debug().
			Str("profile", doc.ProfileID).
			Str("event", tmpl.Name).
			Float64("age", math.Round(s.Age*10)/10).
			Msg("major life event triggered")

		applyLifeEvent(s, tmpl.Name, tmpl.Adjustments, tmpl.InterestShift)

		doc.LifeEvents = append(doc.LifeEvents, profile.LifeEvent{
			Timestamp:  datagen.ISOTime(ts),
			EventName:  tmpl.Name,
			AgeAtEvent: math.Round(s.Age*10) / 10,
			Details:    map[string]any{"type": "major"},
		})
		return true
	}
	return false
}

// applyLifeEvent perturbs parameters (skipping names the set does not
// carry) and shifts interests, resolving the related-hobby placeholder to
// one not-yet-held hobby-like category.
func applyLifeEvent(s *State, name string, adjustments map[string]float64, shift []string) {
	for param, delta := range adjustments {
		if _, ok := s.Params[param]; !ok {
			logging.Debug().Str("event", name).Str("param", param).
				Msg("life event names unknown parameter")
			continue
		}
		s.Params.Adjust(s.Cat.Params, param, delta)
	}

	var added []string
	for _, interest := range shift {
		if interest == "Related Hobby Supplies" {
			if hobby, ok := s.pickHobby(); ok {
				added = append(added, hobby)
			}
			continue
		}
		added = append(added, interest)
	}
	if len(added) > 0 {
		s.addInterests(added)
	}
}

// pickHobby returns one hobby-like catalog category the profile does not
// hold yet.
func (s *State) pickHobby() (string, bool) {
	var pool []string
	for _, cat := range s.Cat.Interests {
		lower := strings.ToLower(cat)
		for _, marker := range hobbyMarkers {
			if strings.Contains(lower, marker) {
				if !s.hasInterest(cat) {
					pool = append(pool, cat)
				}
				break
			}
		}
	}
	if len(pool) == 0 {
		return "", false
	}
	return datagen.Choose(s.Rand, pool), true
}
