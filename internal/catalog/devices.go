//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

// Device is a client device a customer may shop from. Platform groups
// devices into the buckets the usage parameters are expressed in.
type Device struct {
	Name     string
	Platform string // mobile, desktop, tablet, tv, voice, reader
}

var deviceTypes = []Device{
	{"iPhone 15 Pro", "mobile"},
	{"iPhone 14", "mobile"},
	{"iPhone SE", "mobile"},
	{"Samsung Galaxy S24", "mobile"},
	{"Samsung Galaxy A54", "mobile"},
	{"Google Pixel 8", "mobile"},
	{"OnePlus 12", "mobile"},
	{"Motorola Edge", "mobile"},
	{"iPad Pro", "tablet"},
	{"iPad Air", "tablet"},
	{"Samsung Galaxy Tab S9", "tablet"},
	{"Fire Tablet HD 10", "tablet"},
	{"Fire Tablet 8", "tablet"},
	{"Windows Desktop Chrome", "desktop"},
	{"Windows Desktop Edge", "desktop"},
	{"Windows Desktop Firefox", "desktop"},
	{"Mac Desktop Safari", "desktop"},
	{"Mac Desktop Chrome", "desktop"},
	{"Linux Desktop Firefox", "desktop"},
	{"Linux Desktop Chrome", "desktop"},
	{"Chromebook", "desktop"},
	{"Smart TV App", "tv"},
	{"Fire TV Stick", "tv"},
	{"Fire TV Cube", "tv"},
	{"Roku Channel App", "tv"},
	{"Echo Dot", "voice"},
	{"Echo Show 8", "voice"},
	{"Echo Show 15", "voice"},
	{"Echo Studio", "voice"},
	{"Kindle Paperwhite", "reader"},
	{"Kindle Oasis", "reader"},
	{"Kindle Scribe", "reader"},
}
