//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package sim runs the per-profile activity simulation: a time-stepping
// loop that draws weighted event types from the profile's behavioral
// parameters, materializes event payloads, and mutates a stateful shopping
// context until the simulation horizon is reached.
package sim

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
	"github.com/datasynth/shopgen/internal/profile"
)

// Order status values. Transitions only move forward: processing orders
// ship, shipped orders deliver, delivered orders may be partially or fully
// returned.
const (
	StatusProcessing      = "processing"
	StatusShipped         = "shipped"
	StatusDelivered       = "delivered"
	StatusReturnedPartial = "returned_partial"
	StatusReturnedFull    = "returned_full"
)

// Bounded history lengths and the interest-set cardinality cap.
const (
	maxViewHistory   = 50
	maxSearchHistory = 50
	maxInterests     = 25
	sessionTimeout   = 30 * time.Minute
)

// Product is a generated product reference shared by several payloads.
type Product struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Brand       string  `json:"brand"`
}

// CartItem is one line of the cart. Quantity is always at least 1; removing
// the last unit removes the line.
type CartItem struct {
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Category    string    `json:"category"`
	Quantity    int       `json:"quantity"`
	UnitPrice   float64   `json:"price_per_item"`
	Brand       string    `json:"brand"`
	Added       time.Time `json:"-"`
}

// OrderItem is a purchased line with its return/review flags.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"price_per_item"`
	Brand       string  `json:"brand"`
	Returned    bool    `json:"-"`
	Reviewed    bool    `json:"-"`
}

// Order is one placed order with its status history collapsed to the
// current status.
type Order struct {
	ID     string
	Items  []*OrderItem
	Total  float64
	Placed time.Time
	Status string
	Source string
}

// SearchRecord is one entry of the bounded search history.
type SearchRecord struct {
	Query   string
	Kind    string
	Results int
	At      time.Time
}

// ViewRecord is one entry of the bounded view history.
type ViewRecord struct {
	Product
	At time.Time
}

// Promotion is an active clipped coupon.
type Promotion struct {
	Code     string
	Value    float64
	Kind     string
	Category string
}

// State is the mutable simulation context for one profile. It is owned
// exclusively by that profile's simulation run and never shared.
type State struct {
	Now  time.Time
	Age  float64
	Cat  *catalog.Catalog
	Rand *datagen.Faker

	Params    profile.ParamSet
	Interests []string
	Payments  []string
	Devices   []catalog.Device
	Primary   catalog.Device
	Services  map[string]bool
	IsPrime   bool

	Cart        []CartItem
	Orders      []*Order
	Wishlist    []string
	Viewed      []ViewRecord
	Searches    []SearchRecord
	BrandCounts map[string]map[string]int
	Promos      map[string]Promotion
	LastReorder map[string]time.Time

	SessionID     string
	SessionStart  time.Time
	SessionEvents int
	LastEvent     time.Time
	Seasonal      float64
	MinorCooldown int
}

// newState seeds the simulation context from a factory shell.
func newState(f *datagen.Faker, cat *catalog.Catalog, shell *profile.Shell) *State {
	return &State{
		Now:           shell.Start,
		Age:           float64(shell.AgeAtEnd) - shell.End.Sub(shell.Start).Hours()/24/365,
		Cat:           cat,
		Rand:          f,
		Params:        shell.Params,
		Interests:     append([]string(nil), shell.Interests...),
		Payments:      shell.Payments,
		Devices:       shell.Devices,
		Primary:       shell.Primary,
		Services:      shell.Services,
		IsPrime:       shell.IsPrime,
		BrandCounts:   make(map[string]map[string]int),
		Promos:        make(map[string]Promotion),
		LastReorder:   make(map[string]time.Time),
		SessionID:     uuid.NewString(),
		SessionStart:  shell.Start,
		LastEvent:     shell.Start,
		Seasonal:      seasonalBoost(cat.Seasons, shell.Start),
		MinorCooldown: f.Int(0, 180),
	}
}

func (s *State) hasInterest(name string) bool {
	for _, i := range s.Interests {
		if i == name {
			return true
		}
	}
	return false
}

func (s *State) hasService(names ...string) bool {
	for _, n := range names {
		if s.Services[n] {
			return true
		}
	}
	return false
}

func (s *State) hasDevicePlatform(platform string) bool {
	for _, d := range s.Devices {
		if d.Platform == platform {
			return true
		}
	}
	return false
}

func (s *State) hasOrderStatus(statuses ...string) bool {
	for _, o := range s.Orders {
		for _, st := range statuses {
			if o.Status == st {
				return true
			}
		}
	}
	return false
}

// countBrand bumps the category/brand purchase counter. Counters only ever
// grow within a run.
func (s *State) countBrand(category, brand string, qty int) {
	if category == "" || brand == "" {
		return
	}
	m, ok := s.BrandCounts[category]
	if !ok {
		m = make(map[string]int)
		s.BrandCounts[category] = m
	}
	m[brand] += qty
}

// addInterests unions the given categories into the interest set, then
// enforces the cardinality cap by evicting random members that were not
// part of this update.
func (s *State) addInterests(added []string) {
	newly := make(map[string]bool, len(added))
	for _, a := range added {
		if !s.hasInterest(a) {
			s.Interests = append(s.Interests, a)
		}
		newly[a] = true
	}
	if len(s.Interests) <= maxInterests {
		return
	}
	evictable := make([]string, 0, len(s.Interests))
	for _, i := range s.Interests {
		if !newly[i] {
			evictable = append(evictable, i)
		}
	}
	drop := len(s.Interests) - maxInterests
	if drop > len(evictable) {
		drop = len(evictable)
	}
	victims := make(map[string]bool, drop)
	for _, v := range datagen.ChooseN(s.Rand, evictable, drop) {
		victims[v] = true
	}
	kept := s.Interests[:0]
	for _, i := range s.Interests {
		if !victims[i] {
			kept = append(kept, i)
		}
	}
	s.Interests = kept
}

// promoCode returns the active promotion codes in deterministic order.
func (s *State) promoCodes() []string {
	codes := make([]string, 0, len(s.Promos))
	for c := range s.Promos {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// param reads a behavioral parameter with a catalog-midpoint fallback.
func (s *State) param(name string) float64 {
	return s.Params.Get(s.Cat.Params, name)
}
