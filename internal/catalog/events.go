//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

// EventType names a kind of customer activity event.
type EventType string

const (
	EventBrowseCategory     EventType = "browse_category"
	EventSearch             EventType = "search"
	EventViewProduct        EventType = "view_product"
	EventAddToCart          EventType = "add_to_cart"
	EventRemoveFromCart     EventType = "remove_from_cart"
	EventPurchase           EventType = "purchase"
	EventUpdateWishlist     EventType = "update_wishlist"
	EventViewReview         EventType = "view_review"
	EventWriteReview        EventType = "write_review"
	EventRateProduct        EventType = "rate_product"
	EventReturnItem         EventType = "return_item"
	EventReorderItem        EventType = "reorder_item"
	EventTrackPackage       EventType = "track_package"
	EventViewDeal           EventType = "view_deal"
	EventClipCoupon         EventType = "clip_coupon"
	EventWatchVideo         EventType = "watch_video"
	EventListenMusic        EventType = "listen_music"
	EventReadBook           EventType = "read_book"
	EventListenAudiobook    EventType = "listen_audiobook"
	EventVoiceInteraction   EventType = "voice_interaction"
	EventOrderGrocery       EventType = "order_grocery"
	EventManageSubscription EventType = "manage_subscription"
	EventUsePharmacy        EventType = "use_pharmacy"
	EventUsePhotos          EventType = "use_photos"
)

// baseEventWeights expresses the relative frequency of each event type
// before any per-profile adjustment. Weights are not probabilities; the
// engine normalizes whatever survives eligibility filtering.
var baseEventWeights = map[EventType]float64{
	EventBrowseCategory:     25,
	EventSearch:             20,
	EventViewProduct:        30,
	EventAddToCart:          8,
	EventRemoveFromCart:     2,
	EventPurchase:           5,
	EventUpdateWishlist:     3,
	EventViewReview:         10,
	EventWriteReview:        0.5,
	EventRateProduct:        0.8,
	EventReturnItem:         0.7,
	EventReorderItem:        1.5,
	EventTrackPackage:       1.5,
	EventViewDeal:           4,
	EventClipCoupon:         2.5,
	EventWatchVideo:         6,
	EventListenMusic:        3,
	EventReadBook:           2,
	EventListenAudiobook:    1,
	EventVoiceInteraction:   4,
	EventOrderGrocery:       0.5,
	EventManageSubscription: 0.6,
	EventUsePharmacy:        0.2,
	EventUsePhotos:          0.4,
}
