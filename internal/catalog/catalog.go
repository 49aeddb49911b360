//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package catalog holds the read-only reference data that drives profile
// generation and activity simulation: life stages, behavioral parameter
// specifications, event weight tables, device and brand catalogs, seasonal
// peaks, and life-event templates. The tables are loaded once and passed
// into the generators explicitly; nothing in this package is mutated at
// runtime.
package catalog

import "github.com/datasynth/shopgen/internal/datagen"

// Catalog bundles every reference table needed by the profile factory and
// the simulation engine. A single shared instance is safe for concurrent
// readers because all fields are treated as immutable after construction.
type Catalog struct {
	Params      ParamCatalog
	LifeStages  []LifeStage
	EventBase   map[EventType]float64
	Devices     []Device
	Brands      []string
	Interests   []string
	Services    []string
	LifeEvents  []LifeEventTemplate
	MajorEvents []LifeEventTemplate
	Seasons     []SeasonalPeak
	DayParts    []datagen.DayPart
	Payments    []PaymentMethod
	Incomes     []string
	Locations   []string
	Households  []string
	Educations  []string
	Employments []string
	LoginFreqs  []string
	Intents     []string
	ReturnWhys  []string
	SearchKinds []string
}

// Default returns the built-in reference catalog.
func Default() *Catalog {
	return &Catalog{
		Params:      behavioralParams,
		LifeStages:  lifeStages,
		EventBase:   baseEventWeights,
		Devices:     deviceTypes,
		Brands:      brands,
		Interests:   interestCategories,
		Services:    services,
		LifeEvents:  minorLifeEvents,
		MajorEvents: majorLifeEvents,
		Seasons:     seasonalPeaks,
		DayParts:    dayParts,
		Payments:    paymentMethods,
		Incomes:     incomeBrackets,
		Locations:   locationTypes,
		Households:  householdCompositions,
		Educations:  educationLevels,
		Employments: employmentStatuses,
		LoginFreqs:  loginFrequencies,
		Intents:     voiceIntents,
		ReturnWhys:  returnReasons,
		SearchKinds: searchKinds,
	}
}

var dayParts = []datagen.DayPart{
	{Name: "early_morning", Hours: []int{5, 6, 7, 8}, Weight: 0.10},
	{Name: "morning", Hours: []int{9, 10, 11}, Weight: 0.20},
	{Name: "afternoon", Hours: []int{12, 13, 14, 15, 16}, Weight: 0.25},
	{Name: "evening", Hours: []int{17, 18, 19, 20, 21}, Weight: 0.35},
	{Name: "late_night", Hours: []int{22, 23, 0, 1, 2, 3, 4}, Weight: 0.10},
}

// SeasonalPeak boosts activity and spend around a recurring calendar window.
// Days is optional; when empty the whole month qualifies.
type SeasonalPeak struct {
	Name   string
	Months []int
	Days   []int
	Boost  float64
}

var seasonalPeaks = []SeasonalPeak{
	{Name: "holiday_season", Months: []int{11, 12}, Boost: 1.5},
	{Name: "summer_deal_week", Months: []int{7}, Days: daysRange(10, 16), Boost: 1.8},
	{Name: "black_friday", Months: []int{11}, Days: daysRange(20, 29), Boost: 2.0},
	{Name: "back_to_school", Months: []int{8}, Boost: 1.3},
	{Name: "spring_cleaning", Months: []int{3, 4}, Boost: 1.2},
	{Name: "summer_shopping", Months: []int{6, 7}, Boost: 1.1},
	{Name: "post_holiday", Months: []int{1}, Days: daysRange(1, 14), Boost: 1.2},
	{Name: "tax_refund", Months: []int{2, 3}, Boost: 1.15},
}

func daysRange(lo, hi int) []int {
	out := make([]int, 0, hi-lo+1)
	for d := lo; d <= hi; d++ {
		out = append(out, d)
	}
	return out
}

// PaymentMethod describes one entry of the payment catalog. Frequency is a
// relative selection weight, not a probability.
type PaymentMethod struct {
	Name           string
	CreditRequired bool
	Rewards        bool
	Frequency      float64
}

var paymentMethods = []PaymentMethod{
	{Name: "Store Card", CreditRequired: true, Rewards: true, Frequency: 0.15},
	{Name: "Rewards Visa", CreditRequired: true, Rewards: true, Frequency: 0.20},
	{Name: "Credit Card", CreditRequired: true, Rewards: true, Frequency: 0.35},
	{Name: "Debit Card", Frequency: 0.25},
	{Name: "Bank Account", Frequency: 0.10},
	{Name: "Gift Card", Frequency: 0.15},
	{Name: "Buy Now Pay Later", CreditRequired: true, Frequency: 0.08},
	{Name: "Wallet Pay", Frequency: 0.05},
	{Name: "PayPal", Frequency: 0.07},
}

var incomeBrackets = []string{
	"Low (<$30k)",
	"Lower-Medium ($30k-$50k)",
	"Medium ($50k-$75k)",
	"Upper-Medium ($75k-$120k)",
	"High ($120k-$200k)",
	"Very High (>$200k)",
}

var locationTypes = []string{
	"Dense Urban", "Urban", "Suburban", "Small Town", "Rural", "Remote",
}

var householdCompositions = []string{
	"Single", "Couple (No Kids)", "Family (Young Kids)", "Family (Teenagers)",
	"Roommates", "Single Parent", "Multi-generational", "Empty Nester",
	"Extended Family",
}

var educationLevels = []string{
	"Some High School", "High School Diploma", "Some College",
	"Associate's Degree", "Bachelor's Degree", "Master's Degree",
	"Doctoral/Professional Degree",
}

var employmentStatuses = []string{
	"Full-time", "Part-time", "Self-employed", "Student", "Retired",
	"Unemployed", "Homemaker",
}

var loginFrequencies = []string{
	"Multiple times a day", "Daily", "Few times a week", "Weekly",
	"Bi-Weekly", "Monthly", "Quarterly", "Rarely (< Quarterly)",
}

var voiceIntents = []string{
	"Play Music", "Set Timer", "Check Weather", "Ask Question",
	"Control Smart Home", "Order Product", "Shopping List Add/Remove",
	"Check Order Status", "Get News", "Set Reminder", "Tell Joke",
	"Get Traffic Update",
}

var returnReasons = []string{
	"Defective/Does not work properly", "Wrong item was sent", "Changed mind",
	"Found better price elsewhere", "Item doesn't fit",
	"Not as described on website", "Accidental order", "Arrived too late",
	"Damaged during shipping", "No longer needed",
}

var searchKinds = []string{
	"Product Search", "Information Search", "Media Search", "How-to Search",
}

var brands = []string{
	"OmniCorp", "Acme", "GenericBrand", "Innovate Inc.", "HomeSphere",
	"Nature's Best", "Urban Threads", "Summit Gear", "Coastal Co.",
	"Heritage Brand", "Nova Fashion", "TechCore", "Apex Devices",
	"Quantum Systems", "ElectroGadget", "KitchenWiz", "ComfortLiving",
	"DesignHaus", "UrbanFurnish", "FarmFresh", "Pantry Staples",
	"Gourmet Select", "Healthy Harvest", "ToyWorld", "PlayFun",
	"KidzKraft", "GameMasters", "BrainyBuilders",
}

// Services the platform offers. Enrollment rules live in the profile factory.
var services = []string{
	"Prime Membership", "Prime Video", "Music Unlimited", "Music (Bundled)",
	"Kindle Unlimited", "Prime Reading", "Audiobook Membership",
	"Cloud Photos", "Subscribe & Save", "Fresh Grocery Delivery",
	"Pharmacy", "Voice Assistant Skills", "Warehouse Deals", "Outlet",
}
