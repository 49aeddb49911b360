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
	"time"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
)

// Handlers for review, wishlist, deal, voice and media/service events.

type viewReviewPayload struct {
	eventBase
	ProductID   string `json:"product_id"`
	ReviewsRead int    `json:"number_of_reviews_read"`
	SortOrder   string `json:"sort_order"`
	Filter      string `json:"filter_applied,omitempty"`
}

func handleViewReview(s *State, _ time.Time) any {
	if len(s.Viewed) == 0 {
		return nil
	}
	start := len(s.Viewed) - 5
	if start < 0 {
		start = 0
	}
	product := datagen.Choose(s.Rand, s.Viewed[start:])

	read := int(s.Rand.Gauss(5, 4) * (0.5 + s.param("review_read_propensity")))
	if read < 1 {
		read = 1
	}
	var filter string
	if s.Rand.Chance(0.5) {
		filter = datagen.Choose(s.Rand, []string{"verified_purchase", "with_images", "5_star"})
	}
	return viewReviewPayload{
		eventBase:   s.base(),
		ProductID:   product.ProductID,
		ReviewsRead: read,
		SortOrder:   datagen.Choose(s.Rand, []string{"most_recent", "top_rated", "most_helpful"}),
		Filter:      filter,
	}
}

type writeReviewPayload struct {
	eventBase
	ReviewID     string `json:"review_id"`
	ProductID    string `json:"product_id"`
	OrderID      string `json:"order_id"`
	Rating       int    `json:"rating"`
	ReviewLength int    `json:"review_length_words"`
	HasTitle     bool   `json:"has_title"`
	HasPhotos    bool   `json:"has_photos"`
	HasVideo     bool   `json:"has_video"`
}

// reviewableItem picks a delivered, not-returned, not-yet-reviewed item
// from orders placed within the window.
func (s *State) reviewableItem(ts time.Time, windowDays int) (*Order, *OrderItem) {
	var orders []*Order
	for _, o := range s.Orders {
		if o.Status != StatusDelivered {
			continue
		}
		if ts.Sub(o.Placed).Hours()/24 >= float64(windowDays) {
			continue
		}
		for _, item := range o.Items {
			if !item.Reviewed && !item.Returned {
				orders = append(orders, o)
				break
			}
		}
	}
	if len(orders) == 0 {
		return nil, nil
	}
	order := datagen.Choose(s.Rand, orders)
	var items []*OrderItem
	for _, item := range order.Items {
		if !item.Reviewed && !item.Returned {
			items = append(items, item)
		}
	}
	return order, datagen.Choose(s.Rand, items)
}

func handleWriteReview(s *State, ts time.Time) any {
	order, item := s.reviewableItem(ts, 90)
	if item == nil {
		return nil
	}
	write := s.param("review_write_propensity")
	rating := datagen.ChooseWeighted(s.Rand, []int{1, 2, 3, 4, 5}, []float64{5, 5, 15, 35, 40})
	length := int(s.Rand.Gauss(100, 80) * (0.5 + write))
	if length < 10 {
		length = 10
	}
	item.Reviewed = true
	return writeReviewPayload{
		eventBase:    s.base(),
		ReviewID:     s.Rand.ReviewID(),
		ProductID:    item.ProductID,
		OrderID:      order.ID,
		Rating:       rating,
		ReviewLength: length,
		HasTitle:     s.Rand.Chance(0.4 + write*0.4),
		HasPhotos:    s.Rand.Chance(0.1 + write*0.2),
		HasVideo:     s.Rand.Chance(0.02 + write*0.1),
	}
}

type rateProductPayload struct {
	eventBase
	ProductID string `json:"product_id"`
	OrderID   string `json:"order_id"`
	Rating    int    `json:"rating"`
}

func handleRateProduct(s *State, ts time.Time) any {
	order, item := s.reviewableItem(ts, 90)
	if item == nil {
		return nil
	}
	item.Reviewed = true
	return rateProductPayload{
		eventBase: s.base(),
		ProductID: item.ProductID,
		OrderID:   order.ID,
		Rating:    datagen.ChooseWeighted(s.Rand, []int{1, 2, 3, 4, 5}, []float64{4, 6, 15, 35, 40}),
	}
}

type wishlistPayload struct {
	eventBase
	Action       string `json:"action"`
	ProductID    string `json:"product_id"`
	Source       string `json:"source"`
	WishlistSize int    `json:"wishlist_size"`
}

func handleUpdateWishlist(s *State, _ time.Time) any {
	action := "add"
	if len(s.Wishlist) > 0 && s.Rand.Chance(0.5) {
		action = "remove"
	}
	var productID, source string
	if action == "add" {
		product := s.productFor("")
		productID = product.ProductID
		s.Wishlist = append(s.Wishlist, productID)
		source = "product_page"
	} else {
		idx := s.Rand.Int(0, len(s.Wishlist)-1)
		productID = s.Wishlist[idx]
		s.Wishlist = append(s.Wishlist[:idx], s.Wishlist[idx+1:]...)
		source = "wishlist_page"
	}
	return wishlistPayload{
		eventBase:    s.base(),
		Action:       action,
		ProductID:    productID,
		Source:       source,
		WishlistSize: len(s.Wishlist),
	}
}

type clipCouponPayload struct {
	eventBase
	CouponCode      string  `json:"coupon_code"`
	CouponValue     float64 `json:"coupon_value"`
	CouponType      string  `json:"coupon_type"`
	CategoryApplied string  `json:"category_applied"`
}

func handleClipCoupon(s *State, _ time.Time) any {
	category := s.relevantCategory(0.6)
	kind := datagen.Choose(s.Rand, []string{"percentage", "fixed_amount"})
	var value float64
	if kind == "percentage" {
		value = float64(s.Rand.Int(5, 50))
	} else {
		value = math.Round(s.Rand.Float64(0.5, 25.0)*100) / 100
	}
	code := s.Rand.CouponCode()
	s.Promos[code] = Promotion{Code: code, Value: value, Kind: kind, Category: category}
	return clipCouponPayload{
		eventBase:       s.base(),
		CouponCode:      code,
		CouponValue:     value,
		CouponType:      kind,
		CategoryApplied: category,
	}
}

type viewDealPayload struct {
	eventBase
	Product
	DealType        string `json:"deal_type"`
	DiscountPercent int    `json:"discount_percent"`
}

func handleViewDeal(s *State, _ time.Time) any {
	return viewDealPayload{
		eventBase:       s.base(),
		Product:         s.productFor(""),
		DealType:        datagen.Choose(s.Rand, []string{"lightning_deal", "deal_of_the_day", "clearance", "limited_time"}),
		DiscountPercent: s.Rand.Int(5, 70),
	}
}

type voicePayload struct {
	eventBase
	Intent  string `json:"intent"`
	Value   string `json:"value,omitempty"`
	Success bool   `json:"success"`
}

func handleVoiceInteraction(s *State, _ time.Time) any {
	var voiceDevices []catalog.Device
	for _, d := range s.Devices {
		if d.Platform == "voice" {
			voiceDevices = append(voiceDevices, d)
		}
	}
	if len(voiceDevices) == 0 {
		return nil
	}

	intent := datagen.Choose(s.Rand, s.Cat.Intents)
	shoppingIntents := map[string]bool{
		"Order Product": true, "Shopping List Add/Remove": true, "Check Order Status": true,
	}
	if !shoppingIntents[intent] && s.Rand.Chance(s.param("alexa_shopping_propensity")) {
		intent = datagen.Choose(s.Rand, []string{"Order Product", "Shopping List Add/Remove"})
	}

	var value string
	switch intent {
	case "Order Product", "Shopping List Add/Remove":
		product := s.productFor(datagen.Choose(s.Rand, []string{"Grocery Staples", "Cleaning Supplies"}))
		value = product.ProductName
	case "Play Music":
		value = s.Rand.Word() + " playlist"
	case "Set Timer", "Set Reminder":
		value = datagen.Choose(s.Rand, []string{"5 minutes", "10 minutes", "30 minutes", "1 hour"})
	}

	payload := voicePayload{
		eventBase: s.base(),
		Intent:    intent,
		Value:     value,
		Success:   s.Rand.Chance(0.95),
	}
	payload.Device = datagen.Choose(s.Rand, voiceDevices).Name
	return payload
}

type watchVideoPayload struct {
	eventBase
	Title             string `json:"title"`
	ContentType       string `json:"content_type"`
	DurationMinutes   int    `json:"duration_minutes"`
	CompletionPercent int    `json:"completion_percent"`
}

func handleWatchVideo(s *State, _ time.Time) any {
	engagement := s.param("video_engagement")
	duration := int(s.Rand.Gauss(60, 40) * (0.5 + engagement))
	if duration < 5 {
		duration = 5
	}
	return watchVideoPayload{
		eventBase:         s.base(),
		Title:             s.Rand.MovieName(),
		ContentType:       datagen.Choose(s.Rand, []string{"movie", "series_episode", "documentary", "live_event"}),
		DurationMinutes:   duration,
		CompletionPercent: s.Rand.Int(10, 100),
	}
}

type listenMusicPayload struct {
	eventBase
	Playlist        string `json:"playlist"`
	TrackCount      int    `json:"track_count"`
	DurationMinutes int    `json:"duration_minutes"`
}

func handleListenMusic(s *State, _ time.Time) any {
	duration := int(s.Rand.Gauss(45, 30) * (0.5 + s.param("music_engagement")))
	if duration < 3 {
		duration = 3
	}
	return listenMusicPayload{
		eventBase:       s.base(),
		Playlist:        s.Rand.Word() + " mix",
		TrackCount:      duration/3 + 1,
		DurationMinutes: duration,
	}
}

type readBookPayload struct {
	eventBase
	Title           string `json:"title"`
	MinutesRead     int    `json:"minutes_read"`
	PagesRead       int    `json:"pages_read"`
	ProgressPercent int    `json:"progress_percent"`
}

func handleReadBook(s *State, _ time.Time) any {
	minutes := int(s.Rand.Gauss(40, 25) * (0.5 + s.param("ebook_engagement")))
	if minutes < 5 {
		minutes = 5
	}
	return readBookPayload{
		eventBase:       s.base(),
		Title:           s.Rand.ProductName("Books (Physical)", ""),
		MinutesRead:     minutes,
		PagesRead:       minutes * 2 / 3,
		ProgressPercent: s.Rand.Int(1, 100),
	}
}

type audiobookPayload struct {
	eventBase
	Title           string `json:"title"`
	MinutesListened int    `json:"minutes_listened"`
	ProgressPercent int    `json:"progress_percent"`
}

func handleListenAudiobook(s *State, _ time.Time) any {
	minutes := int(s.Rand.Gauss(50, 30) * (0.5 + s.param("audiobook_engagement")))
	if minutes < 5 {
		minutes = 5
	}
	return audiobookPayload{
		eventBase:       s.base(),
		Title:           s.Rand.ProductName("Audiobooks", ""),
		MinutesListened: minutes,
		ProgressPercent: s.Rand.Int(1, 100),
	}
}

type groceryPayload struct {
	eventBase
	OrderID      string      `json:"order_id"`
	Items        []OrderItem `json:"items"`
	TotalAmount  float64     `json:"total_amount"`
	DeliverySlot string      `json:"delivery_slot"`
}

func handleOrderGrocery(s *State, ts time.Time) any {
	count := s.Rand.Int(3, 12)
	items := make([]*OrderItem, 0, count)
	total := 0.0
	for i := 0; i < count; i++ {
		cat := datagen.Choose(s.Rand, []string{
			"Grocery Staples", "Produce", "Dairy & Eggs", "Snacks & Treats", "Beverages & Drinks",
		})
		p := s.productFor(cat)
		qty := s.Rand.Int(1, 3)
		items = append(items, &OrderItem{
			ProductID:   p.ProductID,
			ProductName: p.ProductName,
			Category:    p.Category,
			Quantity:    qty,
			UnitPrice:   p.Price,
			Brand:       p.Brand,
		})
		total += p.Price * float64(qty)
	}
	total = math.Round(total*100) / 100

	orderID := s.Rand.OrderID()
	s.Orders = append(s.Orders, &Order{
		ID:     orderID,
		Items:  items,
		Total:  total,
		Placed: ts,
		Status: StatusProcessing,
		Source: "grocery",
	})
	for _, it := range items {
		s.countBrand(it.Category, it.Brand, it.Quantity)
	}

	return groceryPayload{
		eventBase:   s.base(),
		OrderID:     orderID,
		Items:       snapshotItems(items),
		TotalAmount: total,
		DeliverySlot: datagen.Choose(s.Rand, []string{
			"same_day_evening", "next_day_morning", "next_day_afternoon", "two_hour_window",
		}),
	}
}

type subscriptionPayload struct {
	eventBase
	Action         string `json:"action"`
	ProductName    string `json:"product_name"`
	FrequencyWeeks int    `json:"frequency_weeks"`
}

func handleManageSubscription(s *State, _ time.Time) any {
	product := s.productFor(datagen.Choose(s.Rand, []string{
		"Grocery Staples", "Personal Care", "Vitamins & Supplements", "Pet Supplies", "Cleaning Supplies",
	}))
	return subscriptionPayload{
		eventBase:      s.base(),
		Action:         datagen.Choose(s.Rand, []string{"add", "skip_delivery", "change_frequency", "cancel"}),
		ProductName:    product.ProductName,
		FrequencyWeeks: datagen.Choose(s.Rand, []int{2, 4, 8, 12}),
	}
}

type pharmacyPayload struct {
	eventBase
	Action       string `json:"action"`
	DeliveryType string `json:"delivery_type"`
}

func handleUsePharmacy(s *State, _ time.Time) any {
	return pharmacyPayload{
		eventBase:    s.base(),
		Action:       datagen.Choose(s.Rand, []string{"refill_prescription", "new_prescription", "transfer_prescription", "pharmacist_chat"}),
		DeliveryType: datagen.Choose(s.Rand, []string{"standard_mail", "expedited", "pickup"}),
	}
}

type photosPayload struct {
	eventBase
	Action    string `json:"action"`
	ItemCount int    `json:"item_count"`
}

func handleUsePhotos(s *State, _ time.Time) any {
	return photosPayload{
		eventBase: s.base(),
		Action:    datagen.Choose(s.Rand, []string{"upload", "view_album", "share_album", "order_prints"}),
		ItemCount: s.Rand.Int(1, 200),
	}
}
