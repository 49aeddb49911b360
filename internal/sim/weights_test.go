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

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
	"github.com/datasynth/shopgen/internal/profile"
)

func TestChooseEventTypeGating(t *testing.T) {
	// A fresh profile with no cart, no orders, no membership, no media
	// services and no voice device can never produce the gated events.
	s := testState(51)

	blocked := map[catalog.EventType]bool{
		catalog.EventRemoveFromCart:     true,
		catalog.EventReturnItem:         true,
		catalog.EventReorderItem:        true,
		catalog.EventTrackPackage:       true,
		catalog.EventWriteReview:        true,
		catalog.EventRateProduct:        true,
		catalog.EventWatchVideo:         true,
		catalog.EventListenMusic:        true,
		catalog.EventListenAudiobook:    true,
		catalog.EventVoiceInteraction:   true,
		catalog.EventOrderGrocery:       true,
		catalog.EventManageSubscription: true,
		catalog.EventUsePharmacy:        true,
		catalog.EventUsePhotos:          true,
	}
	for i := 0; i < 2000; i++ {
		if event := chooseEventType(s); blocked[event] {
			t.Fatalf("gated event %q chosen with no qualifying state", event)
		}
	}
}

func TestChooseEventTypeDeterministic(t *testing.T) {
	a := testState(52)
	b := testState(52)
	for i := 0; i < 100; i++ {
		ea, eb := chooseEventType(a), chooseEventType(b)
		if ea != eb {
			t.Fatalf("draw %d diverged: %q vs %q", i, ea, eb)
		}
	}
}

func TestChooseEventTypeFallback(t *testing.T) {
	s := &State{
		Cat:    &catalog.Catalog{EventBase: map[catalog.EventType]float64{}},
		Rand:   datagen.NewFakerWithSeed(53),
		Params: profile.ParamSet{},
	}
	if event := chooseEventType(s); event != catalog.EventBrowseCategory {
		t.Errorf("empty weight table yielded %q, want %q", event, catalog.EventBrowseCategory)
	}
}

func TestChooseEventTypeTrackPackageWhenShipped(t *testing.T) {
	s := testState(54)
	o := deliveredOrder(s, testNow.AddDate(0, 0, -2), 1)
	o.Status = StatusShipped

	seen := false
	for i := 0; i < 2000 && !seen; i++ {
		if chooseEventType(s) == catalog.EventTrackPackage {
			seen = true
		}
	}
	if !seen {
		t.Error("track_package never chosen despite a shipped order")
	}
}
