//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

// LifeStage describes a demographic archetype. AgeMin/AgeMax bound the
// sampled age, IncomeIndices index into the income bracket list, and
// Adjustments shift behavioral parameter means before clamping. The
// ActivityBoost key is applied to simulated activity rather than a
// sampled parameter.
type LifeStage struct {
	Name          string
	AgeMin        int
	AgeMax        int
	IncomeIndices []int
	Employment    []string
	Interests     []string
	Adjustments   map[string]float64
	ActivityBoost float64
	Weight        float64
}

var lifeStages = []LifeStage{
	// Young adults (18-24)
	{
		Name: "College Student", AgeMin: 18, AgeMax: 24,
		IncomeIndices: []int{0, 1},
		Employment:    []string{"Student", "Part-time"},
		Interests: []string{"Textbooks", "Electronics", "Dorm Essentials", "Study Supplies",
			"Instant Food", "Entertainment", "Budget Fashion", "Fitness Equipment", "Streaming Services"},
		Adjustments: map[string]float64{"deal_seeking_propensity": 0.3, "tech_adoption_propensity": 0.2, "price_sensitivity": 0.4},
		Weight:      8,
	},
	{
		Name: "Trade School Student", AgeMin: 18, AgeMax: 24,
		IncomeIndices: []int{0, 1, 2},
		Employment:    []string{"Student", "Part-time", "Full-time"},
		Interests: []string{"Tools", "Work Wear", "Safety Equipment", "Technical Manuals",
			"Professional Equipment", "Industry Supplies"},
		Adjustments: map[string]float64{"deal_seeking_propensity": 0.2, "practical_purchase_bias": 0.3, "brand_loyalty": 0.2},
		Weight:      3,
	},
	{
		Name: "Early Career Professional", AgeMin: 22, AgeMax: 28,
		IncomeIndices: []int{1, 2, 3},
		Employment:    []string{"Full-time"},
		Interests: []string{"Business Attire", "Professional Development Books", "Office Supplies",
			"Meal Prep", "Commuting Gear", "Home Basics", "Budget Furniture"},
		Adjustments: map[string]float64{"brand_loyalty": 0.1, "comparison_shopping_prob": 0.3, "career_focus": 0.4},
		Weight:      12,
	},
	{
		Name: "Service Industry Worker", AgeMin: 18, AgeMax: 30,
		IncomeIndices: []int{0, 1},
		Employment:    []string{"Full-time", "Part-time"},
		Interests: []string{"Comfortable Shoes", "Work Clothes", "Energy Drinks", "Quick Meals",
			"Budget Entertainment", "Mobile Gaming"},
		Adjustments: map[string]float64{"deal_seeking_propensity": 0.4, "price_sensitivity": 0.5, "time_saving_focus": 0.3},
		Weight:      7,
	},
	{
		Name: "Young Adult Living at Home", AgeMin: 18, AgeMax: 25,
		IncomeIndices: []int{0, 1, 2},
		Employment:    []string{"Student", "Part-time", "Full-time", "Unemployed"},
		Interests: []string{"Video Games", "Entertainment", "Electronics", "Personal Care",
			"Hobby Supplies", "Fashion"},
		Adjustments: map[string]float64{"price_sensitivity": 0.2, "impulse_purchase_prob": 0.4, "tech_adoption_propensity": 0.3},
		Weight:      6,
	},
	{
		Name: "Military (Early Career)", AgeMin: 18, AgeMax: 24,
		IncomeIndices: []int{1, 2},
		Employment:    []string{"Full-time"},
		Interests: []string{"Fitness Equipment", "Tactical Gear", "Portable Electronics",
			"Outdoor Equipment", "Casual Clothing"},
		Adjustments: map[string]float64{"practical_purchase_bias": 0.4, "brand_loyalty": 0.3, "activity_level": 0.2},
		Weight:      2,
	},

	// Young to mid adults (25-34)
	{
		Name: "Tech Professional", AgeMin: 25, AgeMax: 34,
		IncomeIndices: []int{2, 3, 4, 5},
		Employment:    []string{"Full-time", "Self-employed"},
		Interests: []string{"Latest Gadgets", "Smart Home", "Gaming", "Tech Books",
			"Ergonomic Office", "Software Subscriptions"},
		Adjustments: map[string]float64{"tech_adoption_propensity": 0.4, "early_adopter_bias": 0.3, "brand_loyalty": 0.2},
		Weight:      10,
	},
	{
		Name: "Creative Professional", AgeMin: 25, AgeMax: 34,
		IncomeIndices: []int{1, 2, 3, 4},
		Employment:    []string{"Full-time", "Part-time", "Self-employed"},
		Interests: []string{"Art Supplies", "Photography", "Design Books", "Creative Software",
			"Studio Equipment", "Premium Coffee"},
		Adjustments: map[string]float64{"aesthetic_preference_bias": 0.3, "brand_loyalty": 0.2, "research_depth": 0.2},
		Weight:      6,
	},
	{
		Name: "Healthcare Worker", AgeMin: 25, AgeMax: 34,
		IncomeIndices: []int{2, 3, 4, 5},
		Employment:    []string{"Full-time", "Part-time"},
		Interests: []string{"Scrubs", "Comfortable Shoes", "Medical References", "Wellness Products",
			"Quick Meals", "Sleep Aids", "Stress Management"},
		Adjustments: map[string]float64{"health_consciousness": 0.3, "time_saving_focus": 0.4, "practical_purchase_bias": 0.3},
		Weight:      9,
	},
	{
		Name: "Young Parent", AgeMin: 25, AgeMax: 34,
		IncomeIndices: []int{1, 2, 3, 4},
		Employment:    []string{"Full-time", "Part-time", "Self-employed", "Homemaker"},
		Interests: []string{"Baby Essentials", "Child Safety", "Parenting Books", "Family Entertainment",
			"Time-Saving Devices", "Children's Clothing"},
		Adjustments: map[string]float64{"safety_conscious_bias": 0.4, "bulk_buying_propensity": 0.3, "subscription_services": 0.3},
		Weight:      11,
	},
	{
		Name: "Urban Professional", AgeMin: 27, AgeMax: 38,
		IncomeIndices: []int{2, 3, 4, 5},
		Employment:    []string{"Full-time", "Self-employed"},
		Interests: []string{"Fashion", "Fine Dining", "Travel Gear", "Luxury Accessories",
			"Smart Home", "Premium Electronics", "Entertainment"},
		Adjustments: map[string]float64{"luxury_orientation": 0.3, "tech_adoption_propensity": 0.3, "brand_loyalty": 0.3},
		Weight:      8,
	},
	{
		Name: "First-Time Homeowner", AgeMin: 26, AgeMax: 35,
		IncomeIndices: []int{2, 3, 4},
		Employment:    []string{"Full-time", "Self-employed"},
		Interests: []string{"Home Improvement", "Tools", "Furniture", "Home Decor",
			"Appliances", "Gardening", "DIY Books"},
		Adjustments: map[string]float64{"home_improvement_focus": 0.4, "research_depth": 0.3, "comparison_shopping_prob": 0.4},
		Weight:      7,
	},

	// Mid adults (35-44)
	{
		Name: "Established Professional", AgeMin: 35, AgeMax: 44,
		IncomeIndices: []int{3, 4, 5},
		Employment:    []string{"Full-time", "Self-employed"},
		Interests: []string{"Business Books", "Premium Electronics", "Home Office", "Luxury Items",
			"Wellness", "Fine Dining", "Smart Home"},
		Adjustments: map[string]float64{"brand_loyalty": 0.3, "quality_preference_bias": 0.4, "luxury_orientation": 0.3},
		Weight:      14,
	},
	{
		Name: "Mid-Career Parent", AgeMin: 35, AgeMax: 44,
		IncomeIndices: []int{2, 3, 4},
		Employment:    []string{"Full-time", "Part-time", "Self-employed", "Homemaker"},
		Interests: []string{"Family Activities", "Educational Toys", "Home Organization", "Bulk Groceries",
			"Family Entertainment", "Children's Sports Equipment"},
		Adjustments: map[string]float64{"bulk_buying_propensity": 0.3, "family_oriented_bias": 0.4, "subscription_services": 0.3},
		Weight:      15,
	},
	{
		Name: "Small Business Owner", AgeMin: 35, AgeMax: 44,
		IncomeIndices: []int{2, 3, 4, 5},
		Employment:    []string{"Self-employed"},
		Interests: []string{"Business Supplies", "Office Equipment", "Professional Services",
			"Industry Publications", "Business Software"},
		Adjustments: map[string]float64{"business_oriented_bias": 0.4, "practical_purchase_bias": 0.3, "research_depth": 0.3},
		Weight:      5,
	},

	// Mid to late adults (45-54)
	{
		Name: "Senior Professional", AgeMin: 45, AgeMax: 54,
		IncomeIndices: []int{3, 4, 5},
		Employment:    []string{"Full-time", "Self-employed"},
		Interests: []string{"Premium Products", "Investment Books", "Luxury Travel", "High-End Electronics",
			"Home Improvement", "Wine & Spirits"},
		Adjustments: map[string]float64{"quality_preference_bias": 0.4, "brand_loyalty": 0.3, "luxury_orientation": 0.4},
		Weight:      13,
	},
	{
		Name: "Parent of Teenagers", AgeMin: 40, AgeMax: 54,
		IncomeIndices: []int{2, 3, 4},
		Employment:    []string{"Full-time", "Part-time", "Self-employed", "Homemaker"},
		Interests: []string{"Teen Electronics", "College Prep", "Family Entertainment",
			"Household Organization", "Teen Fashion", "Sports Equipment"},
		Adjustments: map[string]float64{"family_oriented_bias": 0.3, "bulk_buying_propensity": 0.2, "research_depth": 0.3},
		Weight:      12,
	},
	{
		Name: "Career Changer", AgeMin: 40, AgeMax: 54,
		IncomeIndices: []int{1, 2, 3, 4},
		Employment:    []string{"Full-time", "Part-time", "Self-employed", "Student"},
		Interests: []string{"Educational Materials", "Career Books", "Professional Development",
			"Home Office", "Stress Management", "Productivity Tools"},
		Adjustments: map[string]float64{"learning_focused_bias": 0.3, "career_focus": 0.4, "research_depth": 0.3},
		Weight:      4,
	},

	// Late adults (55+)
	{
		Name: "Active Retiree", AgeMin: 55, AgeMax: 75,
		IncomeIndices: []int{2, 3, 4},
		Employment:    []string{"Retired", "Part-time"},
		Interests: []string{"Travel", "Hobbies", "Health Products", "Garden", "Entertainment",
			"Books", "Outdoor Activities"},
		Adjustments: map[string]float64{"leisure_focused_bias": 0.4, "health_consciousness": 0.3, "quality_preference_bias": 0.3},
		Weight:      10,
	},
	{
		Name: "Grandparent", AgeMin: 55, AgeMax: 80,
		IncomeIndices: []int{1, 2, 3, 4},
		Employment:    []string{"Retired", "Part-time", "Full-time"},
		Interests: []string{"Gifts for Grandkids", "Crafts", "Family Games", "Comfort Items",
			"Traditional Products", "Photography", "Holiday Decorations"},
		Adjustments: map[string]float64{"family_oriented_bias": 0.4, "nostalgia_bias": 0.3, "seasonal_shopping": 0.4},
		Weight:      9,
	},
	{
		Name: "Tech-Savvy Senior", AgeMin: 60, AgeMax: 80,
		IncomeIndices: []int{2, 3, 4},
		Employment:    []string{"Retired", "Part-time", "Self-employed"},
		Interests: []string{"Electronics", "Smart Home", "Digital Content", "Online Learning",
			"Tech Gadgets", "Photography", "Health Tech"},
		Adjustments: map[string]float64{"tech_adoption_propensity": 0.3, "learning_focused_bias": 0.3, "research_depth": 0.4},
		Weight:      5,
	},

	// Cross-age archetypes
	{
		Name: "Luxury Shopper", AgeMin: 30, AgeMax: 65,
		IncomeIndices: []int{4, 5},
		Employment:    []string{"Full-time", "Self-employed"},
		Interests: []string{"Designer Fashion", "Luxury Electronics", "Fine Jewelry",
			"Premium Home Goods", "Gourmet Food & Wine", "High-End Beauty"},
		Adjustments: map[string]float64{"luxury_orientation": 0.8, "brand_loyalty": 0.4, "quality_preference_bias": 0.5, "price_sensitivity": -0.3},
		Weight:      3,
	},
	{
		Name: "Minimalist", AgeMin: 25, AgeMax: 55,
		IncomeIndices: []int{1, 2, 3, 4, 5},
		Employment:    []string{"Full-time", "Part-time", "Self-employed"},
		Interests: []string{"Sustainable Products", "Multi-purpose Items", "Quality Basics",
			"Digital Content", "Experiential Purchases", "Organization Solutions"},
		Adjustments: map[string]float64{"minimalist_bias": 0.5, "quality_preference_bias": 0.4, "eco_consciousness": 0.3},
		Weight:      4,
	},
	{
		Name: "Eco-Conscious Consumer", AgeMin: 18, AgeMax: 70,
		IncomeIndices: []int{1, 2, 3, 4, 5},
		Employment:    []string{"Full-time", "Part-time", "Self-employed", "Student", "Retired"},
		Interests: []string{"Sustainable Products", "Eco-Friendly Packaging", "Organic Food",
			"Energy Efficient Devices", "Environmental Books", "Second-Hand Items"},
		Adjustments: map[string]float64{"eco_consciousness": 0.6, "research_depth": 0.4, "brand_ethics_importance": 0.5},
		Weight:      6,
	},
	{
		Name: "Deal Hunter", AgeMin: 25, AgeMax: 65,
		IncomeIndices: []int{0, 1, 2, 3, 4},
		Employment:    []string{"Full-time", "Part-time", "Self-employed", "Student", "Homemaker", "Retired"},
		Interests: []string{"Clearance Items", "Couponing", "Warehouse Deals", "Refurbished Electronics",
			"Outlet Shopping", "Discount Brands", "Sale Events"},
		Adjustments: map[string]float64{"deal_seeking_propensity": 0.7, "price_sensitivity": 0.6, "comparison_shopping_prob": 0.5},
		Weight:      7,
	},
}
