//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

// interestCategories is the base pool the profile factory draws general
// interests from, on top of the life-stage interests.
var interestCategories = []string{
	// Technology & electronics
	"Smartphones & Accessories", "Laptops & Computing", "Gaming & VR", "Smart Home Devices", "Wearable Tech",
	"Audio Equipment", "Photography & Video", "Home Theater", "Computer Components", "Network & WiFi",
	"Tech Protection & Security", "Charging & Power", "Streaming Devices", "Digital Storage", "Tech Repair Tools",

	// Home & living
	"Furniture & Decor", "Kitchen & Dining", "Bed & Bath", "Storage & Organization", "Cleaning Supplies",
	"Home Improvement", "Garden & Outdoor", "Smart Home Integration", "Home Security", "Seasonal Decor",
	"Pet Supplies", "Laundry & Garment Care", "Home Safety", "Air Quality & Climate", "Pest Control",

	// Health & wellness
	"Fitness Equipment", "Vitamins & Supplements", "Personal Care", "Mental Wellness", "Sleep & Recovery",
	"Medical Supplies", "Natural Remedies", "Fitness Tracking", "Massage & Relaxation", "Air Purification",
	"Water Filtration", "Oral Care", "Vision Care", "First Aid", "Mobility Assistance",

	// Fashion & accessories
	"Casual Wear", "Professional Attire", "Athletic Wear", "Shoes & Footwear", "Accessories & Jewelry",
	"Designer Brands", "Sustainable Fashion", "Seasonal Clothing", "Special Occasion", "Fashion Tech",
	"Handbags & Wallets", "Watches", "Eyewear", "Children's Clothing", "Maternity Wear",

	// Food & beverage
	"Grocery Staples", "Specialty Foods", "Beverages & Drinks", "Snacks & Treats", "Organic & Natural",
	"International Foods", "Meal Prep", "Diet Specific", "Coffee & Tea", "Wine & Spirits",
	"Baking Supplies", "Condiments & Sauces", "Meat & Seafood", "Dairy & Eggs", "Produce",

	// Entertainment & media
	"Streaming Services", "Gaming", "Books (Physical)", "eBooks", "Audiobooks",
	"Music (Digital)", "Movies & TV (Digital)", "Board Games", "Outdoor Recreation", "Arts & Crafts",
	"Musical Instruments", "Collectibles", "Toys & Games", "Hobby Supplies", "Subscription Boxes",

	// Work & professional
	"Office Supplies", "Business Equipment", "Professional Development", "Work From Home", "Business Services",
	"Industry Tools", "Safety Equipment", "Professional References", "Networking Tools", "Business Software",
	"Education & Teaching", "Legal Services", "Financial Services", "HR & Recruiting", "Marketing Materials",

	// Special interests & hobbies
	"Photography", "Art Supplies", "Crafting", "DIY Tools", "Gardening",
	"Cooking & Baking", "Sports Equipment", "Travel Gear", "Collecting", "Music Making",
	"Outdoor Adventure", "Camping & Hiking", "Fishing & Hunting", "Winter Sports", "Water Sports",

	// Family & kids
	"Baby Essentials", "Kids Clothing", "Educational Toys", "Family Games", "Child Safety",
	"School Supplies", "Kids Tech", "Family Activities", "Parenting Tools", "Kids Room",
	"Baby Feeding", "Diapering", "Children's Books", "Kids Furniture", "Pregnancy & Maternity",

	// Automotive & industrial
	"Car Accessories", "Motorcycle Gear", "Vehicle Maintenance", "Tools & Equipment", "Car Electronics",
	"RV & Camping", "Automotive Safety", "Industrial Supplies", "Janitorial & Sanitation", "Material Handling",

	// Specialty
	"Sustainable Products", "Luxury Items", "Handmade Goods", "Vintage & Antique", "Limited Editions",
	"Local Products", "Seasonal Items", "Personalized Items", "Gift Sets",
	"Cultural Products", "Religious Items", "Charity & Causes", "Celebrity Brands", "Trending Products",
}
