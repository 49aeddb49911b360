//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ISOTime formats a timestamp as an ISO-8601 string with a Z suffix, the
// wire format for every timestamp in a finalized profile.
func ISOTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

// ProductID generates an ASIN-like product ID: B0 followed by 9 hex digits.
func (f *Faker) ProductID() string {
	return fmt.Sprintf("B0%09X", uint64(f.src.Int63n(1<<36)))
}

// OrderID generates an order ID of the form 111-1234567-1234567.
func (f *Faker) OrderID() string {
	return fmt.Sprintf("%d-%07d-%07d",
		f.Int(100, 999), f.Int(1000000, 9999999), f.Int(1000000, 9999999))
}

// ReviewID generates a review ID: R followed by 10 digits.
func (f *Faker) ReviewID() string {
	return fmt.Sprintf("R%010d", f.src.Int63n(1e10))
}

// CouponCode generates a coupon code of the form XXXX-XXXX.
func (f *Faker) CouponCode() string {
	return f.LetterN(4) + "-" + f.LetterN(4)
}

// Price ranges per category keyword; first match wins.
var priceRanges = []struct {
	keyword  string
	min, max float64
}{
	{"luxury", 200, 5000},
	{"watch", 50, 10000},
	{"jewelry", 25, 5000},
	{"computing", 100, 4000},
	{"electronics", 30, 3000},
	{"appliance", 50, 2500},
	{"furniture", 100, 3000},
	{"smart home", 20, 500},
	{"clothing", 15, 500},
	{"wear", 15, 500},
	{"shoes", 20, 600},
	{"tools", 10, 800},
	{"automotive", 5, 1000},
	{"sports", 10, 1500},
	{"outdoor", 15, 2000},
	{"toys", 5, 300},
	{"baby", 5, 400},
	{"pet", 3, 200},
	{"book", 5, 150},
	{"music", 1, 50},
	{"gaming", 10, 100},
	{"grocery", 0.5, 100},
	{"health", 2, 200},
	{"beauty", 3, 300},
	{"pharmacy", 5, 500},
	{"office", 1, 300},
	{"craft", 2, 150},
	{"hobby", 5, 500},
}

// PlausiblePrice generates a price appropriate to the category, with common
// retail endings most of the time.
func (f *Faker) PlausiblePrice(category string) float64 {
	lo, hi := 5.0, 500.0
	lower := strings.ToLower(category)
	for _, r := range priceRanges {
		if strings.Contains(lower, r.keyword) {
			lo, hi = r.min, r.max
			break
		}
	}

	price := f.Float64(lo, hi)
	if f.Chance(0.75) {
		price = math.Floor(price) + Choose(f, []float64{0.99, 0.95, 0.49, 0.79, 0.00})
	} else if f.Chance(0.1) {
		price = math.Round(price)
	}
	if price < 0.50 {
		price = 0.50
	}
	return math.Round(price*100) / 100
}

var (
	nameAdjectives = []string{
		"Premium", "Basic", "Advanced", "Deluxe", "Standard", "Pro", "Lite",
		"Ultra", "Eco",
	}
	nameEditions = []string{
		"Series", "Model", "Edition", "Version", "Generation", "Plus", "Max",
		"Mini",
	}
	nameNouns = []string{
		"Device", "Item", "Accessory", "Gadget", "Tool", "Appliance", "Kit",
		"System", "Unit",
	}
	nameModifiers = []string{
		"for Home", "for Office", "Portable", "Wireless", "Heavy Duty",
		"Compact", "Smart", "",
	}

	clothingNouns = []string{
		"Shirt", "Sweater", "Hoodie", "Jacket", "Pants", "Jeans", "Dress",
		"Sneakers", "Boots", "Hat", "Scarf", "Socks",
	}
	clothingAdjectives = []string{
		"Cotton", "Wool", "Leather", "Denim", "Casual", "Formal", "Vintage",
		"Slim Fit", "Performance",
	}
	electronicsNouns = []string{
		"Laptop", "Smartphone", "Tablet", "Monitor", "Keyboard", "Headphones",
		"Speaker", "Router", "Camera", "Smart Plug", "Security Camera",
		"Thermostat",
	}
	electronicsAdjectives = []string{
		"Wireless", "Bluetooth", "Gaming", "4K", "Mechanical",
		"Noise-Cancelling", "Portable", "High-Performance",
	}
	homeNouns = []string{
		"Blender", "Toaster", "Coffee Maker", "Air Fryer", "Lamp", "Chair",
		"Table", "Bookshelf", "Desk", "Cookware Set", "Vacuum Cleaner",
		"Air Purifier",
	}
	homeAdjectives = []string{
		"Stainless Steel", "Non-stick", "Wooden", "Modern", "Minimalist",
		"Farmhouse", "Adjustable", "Ergonomic",
	}
	groceryNouns = []string{
		"Coffee Beans", "Tea Bags", "Pasta", "Cereal", "Granola Bar",
		"Olive Oil", "Spice Blend", "Yogurt", "Cheese",
	}
	groceryAdjectives = []string{
		"Organic", "Gluten-Free", "Fair Trade", "Artisanal", "Gourmet",
		"Family Size",
	}

	bookGenreAdjectives = []string{
		"Lost", "Secret", "Forgotten", "Hidden", "Last", "Eternal", "Silent",
		"Crystal", "Shadow", "Gilded", "Crimson",
	}
	bookGenreNouns = []string{
		"City", "Garden", "Key", "Chronicle", "Journey", "Legacy", "Witness",
		"Throne", "River", "Empire", "Cipher",
	}
)

// ProductName generates a descriptive fake product name for the category.
// Book-like categories get a title-and-author form; a few other category
// families get vocabulary of their own.
func (f *Faker) ProductName(category, brand string) string {
	lower := strings.ToLower(category)

	if strings.Contains(lower, "book") || strings.Contains(lower, "reading") {
		return fmt.Sprintf("'%s %s %s' by %s %s",
			Choose(f, []string{"The", "A", "An"}),
			Choose(f, bookGenreAdjectives), Choose(f, bookGenreNouns),
			f.FirstName(), f.LastName())
	}

	adj := Choose(f, nameAdjectives)
	noun := Choose(f, nameNouns)
	switch {
	case strings.Contains(lower, "clothing"), strings.Contains(lower, "wear"),
		strings.Contains(lower, "shoes"), strings.Contains(lower, "fashion"):
		adj, noun = Choose(f, clothingAdjectives), Choose(f, clothingNouns)
	case strings.Contains(lower, "electronic"), strings.Contains(lower, "comput"),
		strings.Contains(lower, "smart home"), strings.Contains(lower, "tech"):
		adj, noun = Choose(f, electronicsAdjectives), Choose(f, electronicsNouns)
	case strings.Contains(lower, "home"), strings.Contains(lower, "kitchen"),
		strings.Contains(lower, "furniture"):
		adj, noun = Choose(f, homeAdjectives), Choose(f, homeNouns)
	case strings.Contains(lower, "grocery"), strings.Contains(lower, "food"):
		adj, noun = Choose(f, groceryAdjectives), Choose(f, groceryNouns)
	}

	num := Choose(f, []string{
		fmt.Sprintf("%d", f.Int(100, 999)),
		fmt.Sprintf("%d000", f.Int(1, 9)),
		fmt.Sprintf("X%d", f.Int(1, 25)),
		"",
	})

	parts := []string{brand, adj, noun, Choose(f, nameEditions), num, Choose(f, nameModifiers)}
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	name := strings.Join(kept, " ")
	if len(name) > 150 {
		name = name[:150]
	}
	return name
}
