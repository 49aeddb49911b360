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
	"sort"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
)

// weightEpsilon drops near-zero candidates before the draw.
const weightEpsilon = 0.01

// chooseEventType adjusts every base weight by the profile's parameters and
// current state, drops candidates below epsilon, and draws one. If nothing
// survives it falls back to plain category browsing.
func chooseEventType(s *State) catalog.EventType {
	hasCart := len(s.Cart) > 0
	hasShipped := s.hasOrderStatus(StatusShipped)
	hasDelivered := s.hasOrderStatus(StatusDelivered, StatusReturnedPartial)
	hasOrders := len(s.Orders) > 0

	abandon := s.param("cart_abandon_propensity")
	activityMult := 0.5 + s.param("activity_level")

	// Iterate in sorted order so a seeded run is reproducible.
	events := make([]catalog.EventType, 0, len(s.Cat.EventBase))
	for event := range s.Cat.EventBase {
		events = append(events, event)
	}
	sort.Slice(events, func(i, j int) bool { return events[i] < events[j] })

	candidates := make([]catalog.EventType, 0, len(events))
	weights := make([]float64, 0, len(events))

	for _, event := range events {
		base := s.Cat.EventBase[event]
		w := base
		switch event {
		case catalog.EventPurchase:
			cartFactor := 0.2
			if hasCart {
				cartFactor = 1.5
			}
			w *= cartFactor * (1.0 - abandon*0.5)
		case catalog.EventAddToCart:
			w *= 1.0 - abandon*0.3
		case catalog.EventRemoveFromCart:
			if !hasCart {
				w = 0
			} else {
				w *= abandon * 2
			}
		case catalog.EventReturnItem:
			if !hasDelivered {
				w = 0
			} else {
				w *= s.param("return_propensity") * 2
			}
		case catalog.EventReorderItem:
			if !hasOrders {
				w = 0
			} else {
				w *= s.param("habit_formation_speed") * 1.5
			}
		case catalog.EventTrackPackage:
			if !hasShipped {
				w = 0
			} else {
				w = base * 5
			}
		case catalog.EventWriteReview, catalog.EventRateProduct:
			if !hasDelivered {
				w = 0
			} else {
				w *= s.param("review_write_propensity") * 2
			}
		case catalog.EventViewReview:
			w *= s.param("review_read_propensity") * 1.5
		case catalog.EventWatchVideo:
			if !s.IsPrime {
				w = 0
			} else {
				w = base * s.param("video_engagement")
			}
		case catalog.EventListenMusic:
			if !s.hasService("Music Unlimited", "Music (Bundled)") {
				w = 0
			} else {
				w = base * s.param("music_engagement")
			}
		case catalog.EventReadBook:
			if !s.hasService("Kindle Unlimited", "Prime Reading") &&
				!s.hasInterest("Books (Physical)") && !s.hasInterest("eBooks") {
				w = 0
			} else {
				w = base * s.param("ebook_engagement")
			}
		case catalog.EventListenAudiobook:
			if !s.hasService("Audiobook Membership") && !s.hasInterest("Audiobooks") {
				w = 0
			} else {
				w = base * s.param("audiobook_engagement")
			}
		case catalog.EventVoiceInteraction:
			if !s.hasDevicePlatform("voice") {
				w = 0
			}
		case catalog.EventOrderGrocery:
			if !s.hasService("Fresh Grocery Delivery") {
				w = 0
			}
		case catalog.EventManageSubscription:
			if !s.hasService("Subscribe & Save") {
				w = 0
			} else {
				w = base * s.param("subscribe_save_propensity") * 1.5
			}
		case catalog.EventUsePharmacy:
			if !s.hasService("Pharmacy") {
				w = 0
			}
		case catalog.EventUsePhotos:
			if !s.hasService("Cloud Photos") {
				w = 0
			}
		case catalog.EventClipCoupon, catalog.EventViewDeal:
			w *= s.param("deal_seeking_propensity") * 1.8
		case catalog.EventUpdateWishlist:
			w *= s.param("wishlist_usage_propensity") * 1.5
		}

		w *= activityMult
		if w > weightEpsilon {
			candidates = append(candidates, event)
			weights = append(weights, w)
		}
	}

	if len(candidates) == 0 {
		return catalog.EventBrowseCategory
	}
	return datagen.ChooseWeighted(s.Rand, candidates, weights)
}
