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
	"strings"
	"sync"
	"time"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
)

// Handler materializes one event type: it builds the payload and applies
// the matching state mutation. A nil payload means the event cannot happen
// in the current state and must not be recorded.
type Handler func(s *State, ts time.Time) any

var handlers = struct {
	sync.RWMutex
	m map[catalog.EventType]Handler
}{m: make(map[catalog.EventType]Handler)}

// RegisterHandler binds a handler to an event type, replacing any previous
// binding.
func RegisterHandler(t catalog.EventType, h Handler) {
	handlers.Lock()
	defer handlers.Unlock()
	handlers.m[t] = h
}

func lookupHandler(t catalog.EventType) (Handler, bool) {
	handlers.RLock()
	defer handlers.RUnlock()
	h, ok := handlers.m[t]
	return h, ok
}

// generateDetails dispatches to the registered handler. Unregistered event
// types get a minimal generic payload rather than an error.
func generateDetails(s *State, t catalog.EventType, ts time.Time) any {
	if h, ok := lookupHandler(t); ok {
		return h(s, ts)
	}
	return genericPayload{eventBase: s.base(), Note: "event of type " + string(t)}
}

func init() {
	RegisterHandler(catalog.EventSearch, handleSearch)
	RegisterHandler(catalog.EventViewProduct, handleViewProduct)
	RegisterHandler(catalog.EventAddToCart, handleAddToCart)
	RegisterHandler(catalog.EventRemoveFromCart, handleRemoveFromCart)
	RegisterHandler(catalog.EventPurchase, handlePurchase)
	RegisterHandler(catalog.EventReorderItem, handleReorderItem)
	RegisterHandler(catalog.EventReturnItem, handleReturnItem)
	RegisterHandler(catalog.EventTrackPackage, handleTrackPackage)
	RegisterHandler(catalog.EventBrowseCategory, handleBrowseCategory)
	RegisterHandler(catalog.EventViewReview, handleViewReview)
	RegisterHandler(catalog.EventWriteReview, handleWriteReview)
	RegisterHandler(catalog.EventRateProduct, handleRateProduct)
	RegisterHandler(catalog.EventUpdateWishlist, handleUpdateWishlist)
	RegisterHandler(catalog.EventClipCoupon, handleClipCoupon)
	RegisterHandler(catalog.EventViewDeal, handleViewDeal)
	RegisterHandler(catalog.EventVoiceInteraction, handleVoiceInteraction)
	RegisterHandler(catalog.EventWatchVideo, handleWatchVideo)
	RegisterHandler(catalog.EventListenMusic, handleListenMusic)
	RegisterHandler(catalog.EventReadBook, handleReadBook)
	RegisterHandler(catalog.EventListenAudiobook, handleListenAudiobook)
	RegisterHandler(catalog.EventOrderGrocery, handleOrderGrocery)
	RegisterHandler(catalog.EventManageSubscription, handleManageSubscription)
	RegisterHandler(catalog.EventUsePharmacy, handleUsePharmacy)
	RegisterHandler(catalog.EventUsePhotos, handleUsePhotos)
}

// eventBase carries the fields every payload shares.
type eventBase struct {
	SessionID string `json:"session_id"`
	Device    string `json:"device_used"`
}

func (s *State) base() eventBase {
	return eventBase{SessionID: s.SessionID, Device: s.pickDevice()}
}

// pickDevice favors the primary device but occasionally uses a secondary
// one.
func (s *State) pickDevice() string {
	if len(s.Devices) == 0 {
		return "Unknown Device"
	}
	if len(s.Devices) == 1 || s.Rand.Chance(0.7) {
		return s.Primary.Name
	}
	secondary := make([]catalog.Device, 0, len(s.Devices)-1)
	for _, d := range s.Devices {
		if d.Name != s.Primary.Name {
			secondary = append(secondary, d)
		}
	}
	if len(secondary) == 0 {
		return s.Primary.Name
	}
	return datagen.Choose(s.Rand, secondary).Name
}

// relevantCategory picks a category biased toward recent views, searches
// and purchases; otherwise it falls back to the interest set.
func (s *State) relevantCategory(recentBias float64) string {
	var recent []string
	start := len(s.Viewed) - 10
	if start < 0 {
		start = 0
	}
	for _, v := range s.Viewed[start:] {
		recent = append(recent, v.Category)
	}
	start = len(s.Searches) - 5
	if start < 0 {
		start = 0
	}
	for _, sr := range s.Searches[start:] {
		q := strings.ToLower(sr.Query)
		for _, cat := range s.Cat.Interests {
			if strings.Contains(q, strings.ToLower(cat)) {
				recent = append(recent, cat)
				break
			}
		}
	}
	start = len(s.Orders) - 3
	if start < 0 {
		start = 0
	}
	for _, o := range s.Orders[start:] {
		for _, item := range o.Items {
			recent = append(recent, item.Category)
		}
	}
	if len(recent) > 0 && s.Rand.Chance(recentBias) {
		return datagen.Choose(s.Rand, recent)
	}
	if len(s.Interests) > 0 {
		return datagen.Choose(s.Rand, s.Interests)
	}
	return datagen.Choose(s.Rand, s.Cat.Interests)
}

// productFor generates a product in the given category (or a relevant one),
// preferring brands the profile has bought before with probability equal to
// its brand affinity.
func (s *State) productFor(category string) Product {
	if category == "" {
		category = s.relevantCategory(0.6)
	}
	var brand string
	if counts := s.BrandCounts[category]; len(counts) > 0 && s.Rand.Chance(s.param("brand_affinity_strength")) {
		names := make([]string, 0, len(counts))
		for b := range counts {
			names = append(names, b)
		}
		sort.Strings(names)
		weights := make([]float64, len(names))
		for i, b := range names {
			weights[i] = float64(counts[b])
		}
		brand = datagen.ChooseWeighted(s.Rand, names, weights)
	}
	if brand == "" {
		brand = datagen.Choose(s.Rand, s.Cat.Brands)
	}
	return Product{
		ProductID:   s.Rand.ProductID(),
		ProductName: s.Rand.ProductName(category, brand),
		Category:    category,
		Price:       s.Rand.PlausiblePrice(category),
		Brand:       brand,
	}
}

type genericPayload struct {
	eventBase
	Note string `json:"notes"`
}

type searchPayload struct {
	eventBase
	SearchType   string   `json:"search_type"`
	SearchQuery  string   `json:"search_query"`
	ResultsCount int      `json:"results_count"`
	FiltersUsed  []string `json:"filters_used"`
}

func handleSearch(s *State, ts time.Time) any {
	kind := datagen.Choose(s.Rand, s.Cat.SearchKinds)
	var queryBase string
	if kind == "Product Search" {
		queryBase = s.relevantCategory(0.6)
	} else {
		queryBase = datagen.Choose(s.Rand, []string{"action movie", "popular playlist", "thriller novel", "how to"})
	}

	mods := []string{"reviews", "best", "cheap", "used", "refurbished", "gift", "organic", "sustainable", ""}
	if s.Rand.Chance(s.param("deal_seeking_propensity")) {
		mods = append(mods, "deals", "discount", "coupon", "clearance")
	}
	if s.Rand.Chance(s.param("brand_affinity_strength") * 0.5) {
		var bought []string
		for _, o := range s.Orders {
			for _, item := range o.Items {
				if item.Brand != "" {
					bought = append(bought, item.Brand)
				}
			}
		}
		if len(bought) > 0 {
			mods = append(mods, datagen.Choose(s.Rand, bought))
		}
	}

	query := strings.TrimSpace(queryBase + " " + datagen.Choose(s.Rand, mods))
	results := s.Rand.Int(0, 5000)

	maxFilters := 1 + int(s.param("comparison_shopping_prob")*4)
	allFilters := []string{"prime", "rating_4_star_up", "price_range", "brand", "color", "release_year", "genre", "size"}
	filters := datagen.ChooseN(s.Rand, allFilters, s.Rand.Int(0, maxFilters))

	s.Searches = append(s.Searches, SearchRecord{Query: query, Kind: kind, Results: results, At: ts})
	if len(s.Searches) > maxSearchHistory {
		s.Searches = s.Searches[len(s.Searches)-maxSearchHistory:]
	}

	return searchPayload{
		eventBase:    s.base(),
		SearchType:   kind,
		SearchQuery:  query,
		ResultsCount: results,
		FiltersUsed:  filters,
	}
}

type viewProductPayload struct {
	eventBase
	Product
	Source       string `json:"source"`
	ViewDuration int    `json:"view_duration_seconds"`
}

func handleViewProduct(s *State, ts time.Time) any {
	source := "browse"
	switch {
	case len(s.Searches) > 0 && s.Rand.Chance(0.5):
		source = "search_results"
	case len(s.Wishlist) > 0 && s.Rand.Chance(s.param("wishlist_usage_propensity")*0.5):
		source = "wishlist"
	case len(s.Viewed) > 0 && s.Rand.Chance(0.3):
		source = "related_product"
	default:
		source = datagen.Choose(s.Rand, []string{"browse", "recommendation", "external_link"})
	}

	product := s.productFor("")

	// High-latency shoppers split research into short looks; attention
	// stretches each one.
	latency := math.Max(0.5, s.param("purchase_latency_factor"))
	attention := 0.5 + s.param("attention_focus")
	duration := float64(s.Rand.Int(5, 300)) * attention / latency
	if duration < 3 {
		duration = 3
	}

	s.Viewed = append(s.Viewed, ViewRecord{Product: product, At: ts})
	if len(s.Viewed) > maxViewHistory {
		s.Viewed = s.Viewed[len(s.Viewed)-maxViewHistory:]
	}

	return viewProductPayload{
		eventBase:    s.base(),
		Product:      product,
		Source:       source,
		ViewDuration: int(math.Round(duration)),
	}
}

type addToCartPayload struct {
	eventBase
	ProductID        string `json:"product_id"`
	QuantityAdded    int    `json:"quantity_added"`
	NewTotalQuantity int    `json:"new_total_quantity"`
	Source           string `json:"source"`
}

func handleAddToCart(s *State, ts time.Time) any {
	source := "browse"
	switch {
	case len(s.Viewed) > 0 && s.Rand.Chance(0.6):
		source = "product_page"
	case len(s.Wishlist) > 0 && s.Rand.Chance(s.param("wishlist_usage_propensity")*0.4):
		source = "wishlist"
	case s.Rand.Chance(s.param("impulse_purchase_prob") * 0.5):
		source = "impulse"
	}

	product := s.productFor("")
	qty := s.Rand.Int(1, 3)

	for i := range s.Cart {
		if s.Cart[i].ProductID == product.ProductID && s.Rand.Chance(0.5) {
			s.Cart[i].Quantity += qty
			s.Cart[i].Added = ts
			return addToCartPayload{
				eventBase:        s.base(),
				ProductID:        product.ProductID,
				QuantityAdded:    qty,
				NewTotalQuantity: s.Cart[i].Quantity,
				Source:           source,
			}
		}
	}

	s.Cart = append(s.Cart, CartItem{
		ProductID:   product.ProductID,
		ProductName: product.ProductName,
		Category:    product.Category,
		Quantity:    qty,
		UnitPrice:   product.Price,
		Brand:       product.Brand,
		Added:       ts,
	})
	return addToCartPayload{
		eventBase:        s.base(),
		ProductID:        product.ProductID,
		QuantityAdded:    qty,
		NewTotalQuantity: qty,
		Source:           source,
	}
}

type removeFromCartPayload struct {
	eventBase
	ProductID       string  `json:"product_id"`
	QuantityRemoved int     `json:"quantity_removed"`
	UnitPrice       float64 `json:"price_per_item"`
}

func handleRemoveFromCart(s *State, _ time.Time) any {
	if len(s.Cart) == 0 {
		return nil
	}
	idx := s.Rand.Int(0, len(s.Cart)-1)
	removed := s.Cart[idx]
	s.Cart = append(s.Cart[:idx], s.Cart[idx+1:]...)
	return removeFromCartPayload{
		eventBase:       s.base(),
		ProductID:       removed.ProductID,
		QuantityRemoved: removed.Quantity,
		UnitPrice:       removed.UnitPrice,
	}
}

type purchasePayload struct {
	eventBase
	OrderID           string      `json:"order_id"`
	Items             []OrderItem `json:"items"`
	ItemCount         int         `json:"item_count"`
	DistinctItemCount int         `json:"distinct_item_count"`
	TotalAmount       float64     `json:"total_amount"`
	PaymentMethod     string      `json:"payment_method"`
	ShippingAddress   string      `json:"shipping_address_type"`
	ShippingSpeed     string      `json:"shipping_speed"`
	PurchaseSource    string      `json:"purchase_source"`
	CouponUsed        string      `json:"coupon_used,omitempty"`
}

func handlePurchase(s *State, ts time.Time) any {
	var items []*OrderItem
	source := "cart"

	isImpulse := len(s.Cart) == 0 || s.Rand.Chance(s.param("impulse_purchase_prob"))
	if isImpulse {
		source = "impulse"
		for i := 0; i < s.Rand.Int(1, 2); i++ {
			p := s.productFor("")
			items = append(items, &OrderItem{
				ProductID:   p.ProductID,
				ProductName: p.ProductName,
				Category:    p.Category,
				Quantity:    1,
				UnitPrice:   p.Price,
				Brand:       p.Brand,
			})
		}
	} else {
		lines := s.Cart
		if s.Rand.Chance(s.param("cart_abandon_propensity")) && len(lines) > 1 {
			n := s.Rand.Int(1, len(lines)-1)
			idxs := datagen.ChooseN(s.Rand, indexesOf(lines), n)
			picked := make(map[int]bool, n)
			for _, i := range idxs {
				picked[i] = true
			}
			var kept []CartItem
			for i, line := range lines {
				if picked[i] {
					items = append(items, cartLineToOrderItem(line))
				} else {
					kept = append(kept, line)
				}
			}
			s.Cart = kept
		} else {
			for _, line := range lines {
				items = append(items, cartLineToOrderItem(line))
			}
			s.Cart = nil
		}
	}
	if len(items) == 0 {
		return nil
	}

	total := 0.0
	itemCount := 0
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
		itemCount += it.Quantity
	}

	var couponUsed string
	couponProb := math.Max(s.param("deal_seeking_propensity"), s.param("reward_sensitivity")*0.8)
	if codes := s.promoCodes(); len(codes) > 0 && s.Rand.Chance(couponProb) {
		code := codes[0]
		promo := s.Promos[code]
		delete(s.Promos, code)
		discount := promo.Value
		if promo.Kind == "percentage" {
			discount = total * promo.Value / 100
		}
		total = math.Max(0, total-discount)
		couponUsed = code
	}
	total = math.Round(total*s.Seasonal*100) / 100

	shippingSpeed := "Standard"
	if s.IsPrime {
		shippingSpeed = datagen.Choose(s.Rand, []string{"Standard", "Expedited", "Two-Day (Prime)"})
	}
	// Pay with one of the profile's own methods; catalog-weighted draw
	// only when the profile carries none.
	var payment string
	if len(s.Payments) > 0 {
		payment = datagen.Choose(s.Rand, s.Payments)
	} else {
		payments := make([]string, len(s.Cat.Payments))
		payWeights := make([]float64, len(s.Cat.Payments))
		for i, p := range s.Cat.Payments {
			payments[i] = p.Name
			payWeights[i] = p.Frequency
		}
		payment = datagen.ChooseWeighted(s.Rand, payments, payWeights)
	}

	orderID := s.Rand.OrderID()
	s.Orders = append(s.Orders, &Order{
		ID:     orderID,
		Items:  items,
		Total:  total,
		Placed: ts,
		Status: StatusProcessing,
		Source: source,
	})
	for _, it := range items {
		s.countBrand(it.Category, it.Brand, it.Quantity)
	}

	return purchasePayload{
		eventBase:         s.base(),
		OrderID:           orderID,
		Items:             snapshotItems(items),
		ItemCount:         itemCount,
		DistinctItemCount: len(items),
		TotalAmount:       total,
		PaymentMethod:     payment,
		ShippingAddress:   datagen.Choose(s.Rand, []string{"Home", "Work"}),
		ShippingSpeed:     shippingSpeed,
		PurchaseSource:    source,
		CouponUsed:        couponUsed,
	}
}

type reorderPayload struct {
	eventBase
	OrderID           string  `json:"order_id"`
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	DaysSincePurchase int     `json:"days_since_purchase"`
	TotalAmount       float64 `json:"total_amount"`
	PurchaseSource    string  `json:"purchase_source"`
}

// reorder window and logistic midpoint, in days since the prior purchase.
const (
	reorderMinDays = 14
	reorderMaxDays = 180
	reorderMidDays = 45.0
)

func handleReorderItem(s *State, ts time.Time) any {
	inCart := make(map[string]bool, len(s.Cart))
	for _, line := range s.Cart {
		inCart[line.ProductID] = true
	}

	type candidate struct {
		item *OrderItem
		days int
		prob float64
	}
	habit := s.param("habit_formation_speed")
	var cands []candidate
	for _, o := range s.Orders {
		days := int(ts.Sub(o.Placed).Hours() / 24)
		if days < reorderMinDays || days > reorderMaxDays {
			continue
		}
		for _, item := range o.Items {
			if item.Returned || inCart[item.ProductID] {
				continue
			}
			if last, ok := s.LastReorder[item.ProductID]; ok && ts.Sub(last).Hours()/24 < reorderMinDays {
				continue
			}
			// Logistic in days-since-purchase; steeper for habit formers.
			x := (float64(days) - reorderMidDays) / reorderMidDays
			prob := 1.0 / (1.0 + math.Exp(-x*(1+habit*3)))
			cands = append(cands, candidate{item: item, days: days, prob: prob})
		}
	}
	if len(cands) == 0 {
		return nil
	}

	weights := make([]float64, len(cands))
	for i, c := range cands {
		weights[i] = c.prob
	}
	chosen := datagen.ChooseWeighted(s.Rand, cands, weights)
	if !s.Rand.Chance(chosen.prob) {
		return nil
	}

	item := &OrderItem{
		ProductID:   chosen.item.ProductID,
		ProductName: chosen.item.ProductName,
		Category:    chosen.item.Category,
		Quantity:    chosen.item.Quantity,
		UnitPrice:   chosen.item.UnitPrice,
		Brand:       chosen.item.Brand,
	}
	total := math.Round(item.UnitPrice*float64(item.Quantity)*100) / 100
	orderID := s.Rand.OrderID()
	s.Orders = append(s.Orders, &Order{
		ID:     orderID,
		Items:  []*OrderItem{item},
		Total:  total,
		Placed: ts,
		Status: StatusProcessing,
		Source: "reorder",
	})
	s.countBrand(item.Category, item.Brand, item.Quantity)
	s.LastReorder[item.ProductID] = ts

	return reorderPayload{
		eventBase:         s.base(),
		OrderID:           orderID,
		ProductID:         item.ProductID,
		ProductName:       item.ProductName,
		DaysSincePurchase: chosen.days,
		TotalAmount:       total,
		PurchaseSource:    "reorder",
	}
}

type returnPayload struct {
	eventBase
	OrderID          string `json:"order_id"`
	ProductID        string `json:"product_id"`
	ProductName      string `json:"product_name"`
	QuantityReturned int    `json:"quantity_returned"`
	Reason           string `json:"reason"`
	ReturnMethod     string `json:"return_method"`
}

func handleReturnItem(s *State, ts time.Time) any {
	var eligible []*Order
	for _, o := range s.Orders {
		if o.Status != StatusDelivered && o.Status != StatusReturnedPartial {
			continue
		}
		if ts.Sub(o.Placed).Hours()/24 >= 30 {
			continue
		}
		for _, item := range o.Items {
			if !item.Returned {
				eligible = append(eligible, o)
				break
			}
		}
	}
	if len(eligible) == 0 {
		return nil
	}
	order := datagen.Choose(s.Rand, eligible)
	var items []*OrderItem
	for _, item := range order.Items {
		if !item.Returned {
			items = append(items, item)
		}
	}
	item := datagen.Choose(s.Rand, items)
	item.Returned = true

	allReturned := true
	for _, it := range order.Items {
		if !it.Returned {
			allReturned = false
			break
		}
	}
	if allReturned {
		order.Status = StatusReturnedFull
	} else {
		order.Status = StatusReturnedPartial
	}

	return returnPayload{
		eventBase:        s.base(),
		OrderID:          order.ID,
		ProductID:        item.ProductID,
		ProductName:      item.ProductName,
		QuantityReturned: item.Quantity,
		Reason:           datagen.Choose(s.Rand, s.Cat.ReturnWhys),
		ReturnMethod: datagen.Choose(s.Rand, []string{
			"Carrier Dropoff", "Partner Store Dropoff", "Locker", "Mail Back (Prepaid Label)",
		}),
	}
}

type trackPackagePayload struct {
	eventBase
	OrderID       string `json:"order_id"`
	Status        string `json:"order_status"`
	Carrier       string `json:"carrier"`
	EstimatedDays int    `json:"estimated_days_until_delivery"`
}

func handleTrackPackage(s *State, _ time.Time) any {
	var shipped []*Order
	for _, o := range s.Orders {
		if o.Status == StatusShipped || o.Status == StatusProcessing {
			shipped = append(shipped, o)
		}
	}
	if len(shipped) == 0 {
		return nil
	}
	order := datagen.Choose(s.Rand, shipped)
	return trackPackagePayload{
		eventBase:     s.base(),
		OrderID:       order.ID,
		Status:        order.Status,
		Carrier:       datagen.Choose(s.Rand, []string{"UPS", "USPS", "FedEx", "Carrier Fleet"}),
		EstimatedDays: s.Rand.Int(0, 4),
	}
}

type browsePayload struct {
	eventBase
	CategoryName   string   `json:"category_name"`
	TimeSpent      int      `json:"time_spent_seconds"`
	ProductsViewed int      `json:"products_viewed_count"`
	SortApplied    string   `json:"sort_applied,omitempty"`
	FiltersApplied []string `json:"filters_applied"`
}

func handleBrowseCategory(s *State, _ time.Time) any {
	attention := 0.5 + s.param("attention_focus")
	timeSpent := float64(s.Rand.Int(30, 600)) * s.param("session_length_factor") * attention
	if timeSpent < 10 {
		timeSpent = 10
	}
	viewed := int(s.Rand.Gauss(2, 2) * s.param("page_view_factor") * attention)
	if viewed < 0 {
		viewed = 0
	}
	var sortApplied string
	if s.Rand.Chance(0.5) {
		sortApplied = datagen.Choose(s.Rand, []string{"price_low_high", "avg_customer_review", "featured"})
	}
	return browsePayload{
		eventBase:      s.base(),
		CategoryName:   s.relevantCategory(0.3),
		TimeSpent:      int(math.Round(timeSpent)),
		ProductsViewed: viewed,
		SortApplied:    sortApplied,
		FiltersApplied: datagen.ChooseN(s.Rand, []string{"prime", "brand", "rating", "price_range"}, s.Rand.Int(0, 2)),
	}
}

func cartLineToOrderItem(line CartItem) *OrderItem {
	return &OrderItem{
		ProductID:   line.ProductID,
		ProductName: line.ProductName,
		Category:    line.Category,
		Quantity:    line.Quantity,
		UnitPrice:   line.UnitPrice,
		Brand:       line.Brand,
	}
}

func snapshotItems(items []*OrderItem) []OrderItem {
	out := make([]OrderItem, len(items))
	for i, it := range items {
		out[i] = *it
	}
	return out
}

func indexesOf(lines []CartItem) []int {
	out := make([]int, len(lines))
	for i := range lines {
		out[i] = i
	}
	return out
}
