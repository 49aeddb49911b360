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
	"time"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
	"github.com/datasynth/shopgen/internal/profile"
)

var testNow = time.Date(2021, 5, 10, 14, 0, 0, 0, time.UTC)

// testState builds a minimal simulation context for handler tests.
func testState(seed uint64) *State {
	cat := catalog.Default()
	return &State{
		Now:  testNow,
		Age:  34,
		Cat:  cat,
		Rand: datagen.NewFakerWithSeed(seed),
		Params: profile.ParamSet{
			"activity_level": 0.6,
		},
		Interests:   []string{"Consumer Electronics", "Grocery Staples"},
		Devices:     []catalog.Device{{Name: "Smartphone (Android)", Platform: "mobile"}},
		Primary:     catalog.Device{Name: "Smartphone (Android)", Platform: "mobile"},
		Services:    map[string]bool{},
		BrandCounts: make(map[string]map[string]int),
		Promos:      make(map[string]Promotion),
		LastReorder: make(map[string]time.Time),
		SessionID:   "sess-test",
		Seasonal:    1.0,
	}
}

func deliveredOrder(s *State, placed time.Time, itemCount int) *Order {
	items := make([]*OrderItem, itemCount)
	for i := range items {
		items[i] = &OrderItem{
			ProductID:   s.Rand.ProductID(),
			ProductName: "Widget",
			Category:    "Consumer Electronics",
			Quantity:    1,
			UnitPrice:   19.99,
			Brand:       "TechNova",
		}
	}
	o := &Order{
		ID:     s.Rand.OrderID(),
		Items:  items,
		Total:  19.99 * float64(itemCount),
		Placed: placed,
		Status: StatusDelivered,
	}
	s.Orders = append(s.Orders, o)
	return o
}

func TestReturnItemNoEligibleOrder(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *State)
	}{
		{"no orders", func(s *State) {}},
		{"only processing", func(s *State) {
			o := deliveredOrder(s, testNow.AddDate(0, 0, -2), 1)
			o.Status = StatusProcessing
		}},
		{"outside window", func(s *State) {
			deliveredOrder(s, testNow.AddDate(0, 0, -45), 1)
		}},
		{"everything returned", func(s *State) {
			o := deliveredOrder(s, testNow.AddDate(0, 0, -5), 1)
			o.Items[0].Returned = true
			o.Status = StatusReturnedFull
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testState(21)
			tt.setup(s)
			if got := handleReturnItem(s, testNow); got != nil {
				t.Errorf("expected nil payload, got %#v", got)
			}
		})
	}
}

func TestReturnItemUpdatesStatus(t *testing.T) {
	s := testState(22)
	order := deliveredOrder(s, testNow.AddDate(0, 0, -5), 2)

	payload := handleReturnItem(s, testNow)
	if payload == nil {
		t.Fatal("expected a return payload")
	}
	if order.Status != StatusReturnedPartial {
		t.Errorf("order status %q after returning 1 of 2 items, want %q", order.Status, StatusReturnedPartial)
	}

	payload = handleReturnItem(s, testNow)
	if payload == nil {
		t.Fatal("expected a second return payload")
	}
	if order.Status != StatusReturnedFull {
		t.Errorf("order status %q after returning everything, want %q", order.Status, StatusReturnedFull)
	}

	// Nothing left to return.
	if got := handleReturnItem(s, testNow); got != nil {
		t.Errorf("expected nil after full return, got %#v", got)
	}
}

func TestPurchaseEmptyCartIsImpulse(t *testing.T) {
	s := testState(23)

	payload := handlePurchase(s, testNow)
	p, ok := payload.(purchasePayload)
	if !ok {
		t.Fatalf("expected purchasePayload, got %#v", payload)
	}
	if p.PurchaseSource != "impulse" {
		t.Errorf("purchase source %q with empty cart, want impulse", p.PurchaseSource)
	}
	if p.ItemCount < 1 {
		t.Errorf("impulse purchase carried %d items", p.ItemCount)
	}
	if len(s.Orders) != 1 || s.Orders[0].Status != StatusProcessing {
		t.Error("purchase did not record a processing order")
	}
}

func TestViewDurationDividesByLatency(t *testing.T) {
	total := func(latency float64) int {
		s := testState(33)
		s.Params["purchase_latency_factor"] = latency
		sum := 0
		for i := 0; i < 200; i++ {
			p, ok := handleViewProduct(s, testNow).(viewProductPayload)
			if !ok {
				t.Fatal("expected viewProductPayload")
			}
			sum += p.ViewDuration
		}
		return sum
	}

	// Same seed, so the base draws pair up and only the divisor differs.
	deliberate := total(0.5)
	decisive := total(4.0)
	if deliberate <= decisive {
		t.Errorf("view time %d at latency 0.5 not above %d at latency 4.0",
			deliberate, decisive)
	}
}

func TestPurchaseUsesProfilePaymentMethods(t *testing.T) {
	s := testState(31)
	s.Params["impulse_purchase_prob"] = 1.0
	s.Payments = []string{"Gift Card"}

	payload := handlePurchase(s, testNow)
	p, ok := payload.(purchasePayload)
	if !ok {
		t.Fatalf("expected purchasePayload, got %#v", payload)
	}
	if p.PaymentMethod != "Gift Card" {
		t.Errorf("payment method %q, want the profile's only method", p.PaymentMethod)
	}
}

func TestPurchaseDrainsCart(t *testing.T) {
	s := testState(24)
	s.Params["impulse_purchase_prob"] = 0.0
	s.Params["cart_abandon_propensity"] = 0.0
	s.Cart = []CartItem{
		{ProductID: "B012345678A", ProductName: "Widget", Category: "Consumer Electronics",
			Quantity: 2, UnitPrice: 10.0, Brand: "TechNova"},
	}

	payload := handlePurchase(s, testNow)
	p, ok := payload.(purchasePayload)
	if !ok {
		t.Fatalf("expected purchasePayload, got %#v", payload)
	}
	if p.PurchaseSource != "cart" {
		t.Errorf("purchase source %q, want cart", p.PurchaseSource)
	}
	if len(s.Cart) != 0 {
		t.Errorf("cart still holds %d lines after full checkout", len(s.Cart))
	}
	if p.ItemCount != 2 || p.DistinctItemCount != 1 {
		t.Errorf("item counts %d/%d, want 2/1", p.ItemCount, p.DistinctItemCount)
	}
	if s.BrandCounts["Consumer Electronics"]["TechNova"] != 2 {
		t.Error("brand purchase counter not updated")
	}
}

func TestRemoveFromEmptyCart(t *testing.T) {
	s := testState(25)
	if got := handleRemoveFromCart(s, testNow); got != nil {
		t.Errorf("expected nil payload for empty cart, got %#v", got)
	}
}

func TestAddToCartAppendsLine(t *testing.T) {
	s := testState(26)
	payload := handleAddToCart(s, testNow)
	p, ok := payload.(addToCartPayload)
	if !ok {
		t.Fatalf("expected addToCartPayload, got %#v", payload)
	}
	if len(s.Cart) != 1 {
		t.Fatalf("cart holds %d lines, want 1", len(s.Cart))
	}
	if p.NewTotalQuantity != s.Cart[0].Quantity {
		t.Errorf("payload total quantity %d, cart line has %d", p.NewTotalQuantity, s.Cart[0].Quantity)
	}
}

func TestReorderOutsideWindow(t *testing.T) {
	tests := []struct {
		name string
		days int
	}{
		{"too recent", 5},
		{"too old", 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testState(27)
			deliveredOrder(s, testNow.AddDate(0, 0, -tt.days), 1)
			if got := handleReorderItem(s, testNow); got != nil {
				t.Errorf("expected nil payload, got %#v", got)
			}
		})
	}
}

func TestReorderSkipsReturnedItems(t *testing.T) {
	s := testState(28)
	o := deliveredOrder(s, testNow.AddDate(0, 0, -60), 1)
	o.Items[0].Returned = true
	if got := handleReorderItem(s, testNow); got != nil {
		t.Errorf("expected nil payload for returned item, got %#v", got)
	}
}

func TestReorderCreatesNewOrder(t *testing.T) {
	// Late in the window with a strong habit former the re-roll passes with
	// near certainty; a handful of seeds makes the test robust anyway.
	var p reorderPayload
	fired := false
	for seed := uint64(30); seed < 40 && !fired; seed++ {
		s := testState(seed)
		s.Params["habit_formation_speed"] = 0.9
		deliveredOrder(s, testNow.AddDate(0, 0, -170), 1)

		payload := handleReorderItem(s, testNow)
		if payload == nil {
			continue
		}
		fired = true
		p = payload.(reorderPayload)
		if p.PurchaseSource != "reorder" {
			t.Errorf("purchase source %q, want reorder", p.PurchaseSource)
		}
		if p.DaysSincePurchase != 170 {
			t.Errorf("days since purchase %d, want 170", p.DaysSincePurchase)
		}
		if len(s.Orders) != 2 {
			t.Fatalf("expected a second order, have %d", len(s.Orders))
		}
		reordered := s.Orders[1]
		if reordered.Source != "reorder" || reordered.Status != StatusProcessing {
			t.Errorf("reorder order source/status %q/%q", reordered.Source, reordered.Status)
		}
		if _, ok := s.LastReorder[p.ProductID]; !ok {
			t.Error("reorder cooldown not recorded")
		}

		// Immediate repeat for the same product is blocked by the cooldown.
		if again := handleReorderItem(s, testNow.AddDate(0, 0, 1)); again != nil {
			t.Errorf("expected cooldown to block repeat reorder, got %#v", again)
		}
	}
	if !fired {
		t.Fatal("reorder never fired across seeds")
	}
}

func TestWriteReviewOncePerItem(t *testing.T) {
	s := testState(41)
	deliveredOrder(s, testNow.AddDate(0, 0, -10), 1)

	payload := handleWriteReview(s, testNow)
	p, ok := payload.(writeReviewPayload)
	if !ok {
		t.Fatalf("expected writeReviewPayload, got %#v", payload)
	}
	if p.Rating < 1 || p.Rating > 5 {
		t.Errorf("rating %d out of range", p.Rating)
	}
	if p.ReviewLength < 10 {
		t.Errorf("review length %d below floor", p.ReviewLength)
	}

	// The only item is now reviewed; both review paths must decline.
	if got := handleWriteReview(s, testNow); got != nil {
		t.Errorf("expected nil for already-reviewed item, got %#v", got)
	}
	if got := handleRateProduct(s, testNow); got != nil {
		t.Errorf("expected nil for already-reviewed item, got %#v", got)
	}
}

func TestViewReviewNeedsViewHistory(t *testing.T) {
	s := testState(42)
	if got := handleViewReview(s, testNow); got != nil {
		t.Errorf("expected nil without view history, got %#v", got)
	}
}

func TestTrackPackageNeedsInFlightOrder(t *testing.T) {
	s := testState(43)
	if got := handleTrackPackage(s, testNow); got != nil {
		t.Errorf("expected nil without orders, got %#v", got)
	}

	o := deliveredOrder(s, testNow.AddDate(0, 0, -1), 1)
	o.Status = StatusShipped
	payload := handleTrackPackage(s, testNow)
	p, ok := payload.(trackPackagePayload)
	if !ok {
		t.Fatalf("expected trackPackagePayload, got %#v", payload)
	}
	if p.OrderID != o.ID || p.Status != StatusShipped {
		t.Errorf("payload tracked %q/%q, want %q/%q", p.OrderID, p.Status, o.ID, StatusShipped)
	}
}

func TestPurchaseAppliesCoupon(t *testing.T) {
	s := testState(44)
	s.Params["impulse_purchase_prob"] = 0.0
	s.Params["cart_abandon_propensity"] = 0.0
	s.Params["deal_seeking_propensity"] = 1.0
	s.Cart = []CartItem{
		{ProductID: "B012345678B", ProductName: "Widget", Category: "Consumer Electronics",
			Quantity: 1, UnitPrice: 100.0, Brand: "TechNova"},
	}
	s.Promos["SAVE-TEN"] = Promotion{Code: "SAVE-TEN", Value: 10, Kind: "percentage"}

	payload := handlePurchase(s, testNow)
	p, ok := payload.(purchasePayload)
	if !ok {
		t.Fatalf("expected purchasePayload, got %#v", payload)
	}
	if p.CouponUsed != "SAVE-TEN" {
		t.Fatalf("coupon used %q, want SAVE-TEN", p.CouponUsed)
	}
	if p.TotalAmount != 90.0 {
		t.Errorf("total %v after 10%% coupon, want 90", p.TotalAmount)
	}
	if len(s.Promos) != 0 {
		t.Error("coupon not consumed")
	}
}

func TestGenerateDetailsUnregisteredType(t *testing.T) {
	s := testState(45)
	payload := generateDetails(s, catalog.EventType("solar_eclipse"), testNow)
	if _, ok := payload.(genericPayload); !ok {
		t.Errorf("expected generic payload for unregistered type, got %#v", payload)
	}
}
