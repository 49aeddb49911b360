//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

// LifeEventTemplate describes a life event and its effects. Adjustments
// shift the named behavioral parameters additively (clamped afterwards);
// adjustments naming a parameter the profile does not carry are skipped.
// InterestShift lists interest categories the event adds. Frequency is the
// yearly occurrence probability for major events and unused for minor ones.
type LifeEventTemplate struct {
	Name          string
	Adjustments   map[string]float64
	InterestShift []string
	Frequency     float64
}

var minorLifeEvents = []LifeEventTemplate{
	// Career and work life
	{Name: "Job Promotion",
		Adjustments:   map[string]float64{"activity_level": 0.1, "luxury_orientation": 0.1},
		InterestShift: []string{"Professional Attire", "Office Upgrades", "Success Books"}},
	{Name: "Career Change",
		Adjustments:   map[string]float64{"learning_focused_bias": 0.2},
		InterestShift: []string{"Educational Materials", "Professional Development", "Industry Specific Items"}},
	{Name: "Started Side Business",
		Adjustments:   map[string]float64{"business_oriented_bias": 0.2},
		InterestShift: []string{"Business Supplies", "Marketing Materials", "Home Office"}},
	{Name: "Work From Home Transition",
		Adjustments:   map[string]float64{"home_improvement_focus": 0.3},
		InterestShift: []string{"Home Office", "Ergonomic Furniture", "Video Conference Gear"}},
	{Name: "Career Certification",
		Adjustments:   map[string]float64{"career_focus": 0.2},
		InterestShift: []string{"Professional References", "Educational Materials", "Professional Development"}},
	{Name: "Job Loss",
		Adjustments:   map[string]float64{"price_sensitivity": 0.3, "deal_seeking_propensity": 0.3},
		InterestShift: []string{"Career Books", "Budget Items", "Professional Development"}},
	{Name: "Retirement",
		Adjustments:   map[string]float64{"leisure_focused_bias": 0.3},
		InterestShift: []string{"Hobbies", "Travel Gear", "Health Products"}},

	// Home and living situation
	{Name: "New Pet",
		Adjustments:   map[string]float64{"activity_level": 0.1},
		InterestShift: []string{"Pet Supplies", "Pet Care", "Home Protection"}},
	{Name: "Home Renovation",
		Adjustments:   map[string]float64{"home_improvement_focus": 0.3},
		InterestShift: []string{"Tools", "Home Decor", "Furniture"}},
	{Name: "Downsizing",
		Adjustments:   map[string]float64{"minimalist_bias": 0.2},
		InterestShift: []string{"Storage Solutions", "Organization", "Space Saving"}},
	{Name: "Garden/Yard Project",
		Adjustments:   map[string]float64{"leisure_focused_bias": 0.2},
		InterestShift: []string{"Garden Tools", "Plants", "Outdoor Decor"}},
	{Name: "Move to New Home",
		Adjustments:   map[string]float64{"home_improvement_focus": 0.3},
		InterestShift: []string{"Home Essentials", "Furniture", "Moving Supplies"}},
	{Name: "Roommate Change",
		Adjustments:   map[string]float64{"activity_level": 0.1},
		InterestShift: []string{"Home Organization", "Kitchen Supplies", "Household Essentials"}},
	{Name: "Home Appliance Upgrade",
		Adjustments:   map[string]float64{"home_improvement_focus": 0.2},
		InterestShift: []string{"Appliances", "Smart Home", "Kitchen Gadgets"}},

	// Health and lifestyle
	{Name: "New Fitness Goal",
		Adjustments:   map[string]float64{"health_consciousness": 0.2},
		InterestShift: []string{"Fitness Equipment", "Workout Clothes", "Supplements"}},
	{Name: "Dietary Change",
		Adjustments:   map[string]float64{"health_consciousness": 0.2},
		InterestShift: []string{"Specialty Foods", "Kitchen Gadgets", "Cookbooks"}},
	{Name: "New Health Focus",
		Adjustments:   map[string]float64{"health_consciousness": 0.2},
		InterestShift: []string{"Health Products", "Vitamins", "Wellness Books"}},
	{Name: "Sleep Improvement Focus",
		Adjustments:   map[string]float64{"health_consciousness": 0.2},
		InterestShift: []string{"Bedding", "Sleep Aids", "Relaxation"}},
	{Name: "Minor Health Issue",
		Adjustments:   map[string]float64{"health_consciousness": 0.3},
		InterestShift: []string{"Medical Supplies", "Health Products", "Comfort Items"}},
	{Name: "Wellness Retreat/Program",
		Adjustments:   map[string]float64{"health_consciousness": 0.2},
		InterestShift: []string{"Wellness Books", "Fitness Equipment", "Health Foods"}},

	// Hobbies and interests
	{Name: "Started Gaming",
		Adjustments:   map[string]float64{"tech_adoption_propensity": 0.2},
		InterestShift: []string{"Video Games", "Gaming Gear", "Gaming Furniture"}},
	{Name: "Photography Interest",
		Adjustments:   map[string]float64{"aesthetic_preference_bias": 0.2},
		InterestShift: []string{"Cameras", "Photography Gear", "Editing Software"}},
	{Name: "Music Learning",
		Adjustments:   map[string]float64{"aesthetic_preference_bias": 0.2},
		InterestShift: []string{"Musical Instruments", "Music Books", "Audio Equipment"}},
	{Name: "Art/Craft Interest",
		Adjustments:   map[string]float64{"aesthetic_preference_bias": 0.2},
		InterestShift: []string{"Art Supplies", "Craft Tools", "Creative Books"}},
	{Name: "Cooking Interest",
		Adjustments:   map[string]float64{"novelty_seeking": 0.2},
		InterestShift: []string{"Kitchen Gadgets", "Cookware", "Specialty Ingredients"}},
	{Name: "Started Collecting",
		Adjustments:   map[string]float64{"research_depth": 0.2},
		InterestShift: []string{"Collectibles", "Storage/Display", "Reference Materials"}},
	{Name: "Outdoor Hobby Adoption",
		Adjustments:   map[string]float64{"activity_level": 0.2},
		InterestShift: []string{"Related Hobby Supplies", "Specialty Clothing", "Adventure Equipment"}},

	// Technology adoption
	{Name: "Smart Home Addition",
		Adjustments:   map[string]float64{"tech_adoption_propensity": 0.2},
		InterestShift: []string{"Smart Devices", "Home Automation", "Tech Accessories"}},
	{Name: "New Device Ecosystem",
		Adjustments:   map[string]float64{"tech_adoption_propensity": 0.3},
		InterestShift: []string{"Electronics", "Tech Accessories", "Digital Services"}},
	{Name: "Digital Security Focus",
		Adjustments:   map[string]float64{"tech_adoption_propensity": 0.2},
		InterestShift: []string{"Security Devices", "Privacy Tools", "Tech Protection"}},
	{Name: "Subscription Service Adoption",
		Adjustments:   map[string]float64{"subscription_services": 0.3},
		InterestShift: []string{"Digital Content", "Streaming Services", "Subscription Boxes"}},
	{Name: "Social Media Platform Adoption",
		Adjustments:   map[string]float64{"social_sharing": 0.2},
		InterestShift: []string{"Mobile Accessories", "Photography Gear", "Tech Gadgets"}},
	{Name: "Remote Work Tech Upgrade",
		Adjustments:   map[string]float64{"tech_adoption_propensity": 0.2},
		InterestShift: []string{"Home Office", "Computer Accessories", "Video Conferencing"}},

	// Social and family
	{Name: "New Social Circle",
		Adjustments:   map[string]float64{"social_proof_sensitivity": 0.2},
		InterestShift: []string{"Social Activities", "Group Games", "Entertainment"}},
	{Name: "Family Member Visit",
		Adjustments:   map[string]float64{"family_oriented_bias": 0.2},
		InterestShift: []string{"Guest Supplies", "Entertainment", "Home Comfort"}},
	{Name: "Holiday Hosting",
		Adjustments:   map[string]float64{"seasonal_shopping": 0.2},
		InterestShift: []string{"Party Supplies", "Kitchen Gear", "Home Decor"}},
	{Name: "New Relationship",
		Adjustments:   map[string]float64{"activity_level": 0.2},
		InterestShift: []string{"Date Night Items", "Gifts", "Home Updates"}},
	{Name: "Relationship Status Change",
		Adjustments:   map[string]float64{"activity_level": 0.1, "home_improvement_focus": 0.2},
		InterestShift: []string{"Home Decor", "Self-Care", "Personal Development"}},
	{Name: "Friend's Life Event",
		Adjustments:   map[string]float64{"social_sharing": 0.1},
		InterestShift: []string{"Gift Items", "Celebration Supplies", "Event-Specific Goods"}},
	{Name: "New Cultural Interest",
		Adjustments:   map[string]float64{"novelty_seeking": 0.2},
		InterestShift: []string{"Cultural Books", "Specialty Foods", "International Products"}},

	// Financial changes
	{Name: "Minor Income Increase",
		Adjustments:   map[string]float64{"price_sensitivity": -0.1, "luxury_orientation": 0.1},
		InterestShift: []string{"Quality Upgrades", "Premium Versions", "Home Improvements"}},
	{Name: "Budget Constraints",
		Adjustments:   map[string]float64{"price_sensitivity": 0.3, "deal_seeking_propensity": 0.3},
		InterestShift: []string{"Budget Items", "Essential Goods", "DIY Supplies"}},
	{Name: "Financial Planning Focus",
		Adjustments:   map[string]float64{"research_depth": 0.2},
		InterestShift: []string{"Finance Books", "Planning Tools", "Organization Solutions"}},
	{Name: "Investment Interest",
		Adjustments:   map[string]float64{"research_depth": 0.2, "risk_tolerance": 0.1},
		InterestShift: []string{"Finance Books", "Business News", "Premium Digital Content"}},
	{Name: "Large Purchase Planning",
		Adjustments:   map[string]float64{"research_depth": 0.3, "comparison_shopping_prob": 0.3},
		InterestShift: []string{"Research Materials", "Product Comparisons", "Review Subscriptions"}},

	// Seasonal and environmental
	{Name: "Seasonal Wardrobe Update",
		Adjustments:   map[string]float64{"seasonal_shopping": 0.3},
		InterestShift: []string{"Seasonal Clothing", "Weather Appropriate Gear", "Fashion Accessories"}},
	{Name: "Holiday Preparation",
		Adjustments:   map[string]float64{"seasonal_shopping": 0.4},
		InterestShift: []string{"Holiday Decor", "Gift Items", "Entertaining Supplies"}},
	{Name: "Climate/Weather Adaptation",
		Adjustments:   map[string]float64{"seasonal_shopping": 0.3},
		InterestShift: []string{"Weather Protection", "Home Climate Control", "Emergency Supplies"}},
	{Name: "Eco-Friendly Lifestyle Shift",
		Adjustments:   map[string]float64{"eco_consciousness": 0.3},
		InterestShift: []string{"Sustainable Products", "Eco-Friendly Alternatives", "Reusable Items"}},
	{Name: "Local Environmental Event",
		Adjustments:   map[string]float64{"activity_level": 0.1},
		InterestShift: []string{"Emergency Supplies", "Home Safety", "Protective Equipment"}},
}

var majorLifeEvents = []LifeEventTemplate{
	{Name: "Marriage/Partnership", Frequency: 0.02,
		Adjustments:   map[string]float64{"family_oriented_bias": 0.4, "home_improvement_focus": 0.3},
		InterestShift: []string{"Home Essentials", "Furniture", "Registry Items", "Couple Activities"}},
	{Name: "Divorce/Separation", Frequency: 0.01,
		Adjustments:   map[string]float64{"activity_level": 0.2, "price_sensitivity": 0.2},
		InterestShift: []string{"Home Essentials", "Self-Help", "Organization", "New Hobbies"}},
	{Name: "New Child", Frequency: 0.02,
		Adjustments:   map[string]float64{"family_oriented_bias": 0.5, "safety_conscious_bias": 0.4},
		InterestShift: []string{"Baby Essentials", "Child Safety", "Parenting Books", "Family Activities"}},
	{Name: "Child Leaving Home", Frequency: 0.01,
		Adjustments:   map[string]float64{"leisure_focused_bias": 0.3, "home_improvement_focus": 0.2},
		InterestShift: []string{"Travel", "Hobbies", "Home Updates", "Personal Development"}},
	{Name: "Major Relocation", Frequency: 0.03,
		Adjustments:   map[string]float64{"activity_level": 0.3, "home_improvement_focus": 0.4},
		InterestShift: []string{"Moving Supplies", "Furniture", "Home Essentials", "Local Resources"}},
	{Name: "Major Career Shift", Frequency: 0.02,
		Adjustments:   map[string]float64{"career_focus": 0.4, "learning_focused_bias": 0.3},
		InterestShift: []string{"Professional Development", "Career Books", "Industry Tools", "Work Attire"}},
	{Name: "Significant Health Event", Frequency: 0.01,
		Adjustments:   map[string]float64{"health_consciousness": 0.5, "research_depth": 0.3},
		InterestShift: []string{"Medical Supplies", "Health Books", "Wellness Products", "Adaptive Equipment"}},
	{Name: "Home Purchase", Frequency: 0.02,
		Adjustments:   map[string]float64{"home_improvement_focus": 0.5, "research_depth": 0.3},
		InterestShift: []string{"Home Essentials", "Tools", "Furniture", "Home Improvement"}},
	{Name: "Retirement", Frequency: 0.01,
		Adjustments:   map[string]float64{"leisure_focused_bias": 0.4, "health_consciousness": 0.3},
		InterestShift: []string{"Travel", "Hobbies", "Health Products", "Home Comfort"}},
	{Name: "Major Financial Change", Frequency: 0.01,
		Adjustments:   map[string]float64{"price_sensitivity": 0.4, "research_depth": 0.3},
		InterestShift: []string{"Financial Planning", "Budget Solutions", "Investment Resources"}},
}
