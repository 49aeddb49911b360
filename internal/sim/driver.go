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
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
	"github.com/datasynth/shopgen/internal/logging"
	"github.com/datasynth/shopgen/internal/profile"
)

// Inter-event gap model: mean hours between events for a profile of
// average activity, and the floors that keep the division sane.
const (
	baseGapHours  = 72.0
	activityFloor = 0.05
	boostFloor    = 0.1
	minGapHours   = 0.01
)

// Order fulfillment pace, in days after placement.
const (
	shipAfterDays    = 1
	deliverAfterDays = 4
)

// Simulate runs the activity timeline for one profile shell and returns
// the finalized output document. The shell's mutable seeds are consumed;
// the shell must not be reused.
func Simulate(f *datagen.Faker, cat *catalog.Catalog, shell *profile.Shell) (*profile.Finalized, error) {
	s := newState(f, cat, shell)
	doc := shell.Doc
	start := time.Now()

	logging.Debug().
		Str("profile", doc.ProfileID).
		Time("from", shell.Start).
		Time("to", shell.End).
		Msg("simulating profile")

	eventCount := 0
	for s.Now.Before(shell.End) {
		gap := nextGapHours(s)
		next := s.Now.Add(time.Duration(gap * float64(time.Hour)))
		if pulled := pullTowardPreferredHour(s, next); pulled.After(s.Now) {
			next = pulled
		}

		if next.Sub(s.LastEvent) > sessionTimeout {
			s.SessionID = uuid.NewString()
			s.SessionStart = next
			s.SessionEvents = 0
		}

		if daysPassed := calendarDays(s.Now, next); daysPassed > 0 {
			s.MinorCooldown += daysPassed
			s.Age += float64(daysPassed) / 365.0
			s.Seasonal = seasonalBoost(cat.Seasons, next)
			advanceOrders(s, next)
			maybeMajorLifeEvent(s, &doc, next, daysPassed)
			if maybeLifeEvent(s, &doc, next, s.MinorCooldown) {
				s.MinorCooldown = 0
			}
		}

		s.Now = next
		if s.Now.After(shell.End) {
			break
		}

		eventType := chooseEventType(s)
		details := generateDetails(s, eventType, s.Now)
		if details != nil {
			doc.ActivityLog = append(doc.ActivityLog, profile.Event{
				Timestamp: datagen.ISOTime(s.Now),
				EventType: string(eventType),
				Details:   details,
			})
			eventCount++
			s.SessionEvents++
		}
		s.LastEvent = s.Now
	}

	// ISO strings sort the same as their instants.
	sort.Slice(doc.ActivityLog, func(i, j int) bool {
		return doc.ActivityLog[i].Timestamp < doc.ActivityLog[j].Timestamp
	})

	doc.Demographics.AgeAtSimulationEnd = int(math.Round(s.Age))
	doc.InterestsFinal = sortedStrings(s.Interests)
	doc.AmazonStatus.IsPrimeFinal = s.IsPrime
	doc.AmazonStatus.ServicesFinal = serviceNames(s.Services)

	logging.Debug().
		Str("profile", doc.ProfileID).
		Int("events", eventCount).
		Dur("elapsed", time.Since(start)).
		Msg("finished simulating profile")
	return &doc, nil
}

// nextGapHours draws the exponentially-distributed gap until the next
// event. The mean shrinks with activity and seasonal boost, with ±20%
// jitter on top.
func nextGapHours(s *State) float64 {
	activity := math.Max(activityFloor, s.param("activity_level"))
	boost := math.Max(boostFloor, s.Seasonal)
	mean := baseGapHours / activity / boost
	mean = s.Rand.Jitter(mean, 0.2)
	if mean < minGapHours {
		mean = minGapHours
	}
	return s.Rand.ExpFloat64() * mean
}

// hourPull is the fraction of the circular hour distance an event is
// dragged toward the profile's preferred hour.
const hourPull = 0.5

// pullTowardPreferredHour shifts the event instant part of the way toward
// the profile's preferred hour of day, taking the short way around the
// clock. The caller rejects shifts that would move the event into the past.
func pullTowardPreferredHour(s *State, t time.Time) time.Time {
	pref := int(s.param("time_of_day_preference")) % 24
	delta := float64(pref - t.Hour())
	if delta > 12 {
		delta -= 24
	}
	if delta < -12 {
		delta += 24
	}
	return t.Add(time.Duration(delta * hourPull * float64(time.Hour)))
}

// advanceOrders moves in-flight orders forward: processing orders ship
// after about a day, shipped orders deliver a few days later. Status never
// moves backwards.
func advanceOrders(s *State, now time.Time) {
	for _, o := range s.Orders {
		age := now.Sub(o.Placed).Hours() / 24
		switch o.Status {
		case StatusProcessing:
			if age >= shipAfterDays {
				o.Status = StatusShipped
			}
		case StatusShipped:
			if age >= deliverAfterDays {
				o.Status = StatusDelivered
			}
		}
	}
}

// calendarDays counts midnights crossed between two instants.
func calendarDays(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

func sortedStrings(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func serviceNames(services map[string]bool) []string {
	out := make([]string, 0, len(services))
	for name, on := range services {
		if on {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
