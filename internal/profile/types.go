//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package profile builds synthetic customer profiles: it samples behavioral
// parameters from the catalog, derives demographics and account metadata
// from a weighted life stage, and hands the simulation a fully seeded shell.
package profile

import (
	"time"

	"github.com/datasynth/shopgen/internal/catalog"
)

// Demographics is the observable demographic context of a profile.
type Demographics struct {
	AgeAtSimulationEnd int    `json:"age_at_simulation_end"`
	BirthYear          int    `json:"birth_year"`
	LocationType       string `json:"location_type"`
	Household          string `json:"household_composition_initial"`
	IncomeBracket      string `json:"estimated_income_bracket_initial"`
	Education          string `json:"education_level"`
	Employment         string `json:"employment_status_initial"`
	LifeStageContext   string `json:"life_stage_initial_context"`
}

// AccountStatus summarizes membership and service enrollment at simulation
// start.
type AccountStatus struct {
	AccountCreated  string   `json:"account_creation_date"`
	IsPrimeInitial  bool     `json:"is_prime_member_initial"`
	PrimeStart      string   `json:"prime_membership_start_date,omitempty"`
	ServicesInitial []string `json:"used_services_initial"`
	PaymentMethods  []string `json:"payment_methods"`
	IsPrimeFinal    bool     `json:"is_prime_member_final"`
	ServicesFinal   []string `json:"used_services_final,omitempty"`
}

// DeviceInfo is one device in the profile's device set.
type DeviceInfo struct {
	Name     string `json:"name"`
	Platform string `json:"platform"`
}

// DeviceUsage summarizes the device set and estimated login cadence.
type DeviceUsage struct {
	PrimaryDevice DeviceInfo   `json:"primary_device"`
	AllDevices    []DeviceInfo `json:"all_devices"`
	LoginFreq     string       `json:"login_frequency_initial_estimate"`
}

// Event is one entry of the activity log. Timestamp is an ISO-8601 UTC
// string so lexicographic order equals chronological order.
type Event struct {
	Timestamp string `json:"timestamp"`
	EventType string `json:"event_type"`
	Details   any    `json:"details"`
}

// LifeEvent records a life event that occurred during simulation.
type LifeEvent struct {
	Timestamp  string         `json:"timestamp"`
	EventName  string         `json:"event_name"`
	AgeAtEvent float64        `json:"age_at_event"`
	Details    map[string]any `json:"details"`
}

// Finalized is the complete output document for one profile, serialized as
// one JSON file per customer.
type Finalized struct {
	ProfileID        string       `json:"profile_id"`
	GeneratedAt      string       `json:"generation_timestamp"`
	SimulationStart  string       `json:"simulation_period_start"`
	SimulationEnd    string       `json:"simulation_period_end"`
	Demographics     Demographics `json:"demographics"`
	AmazonStatus     AccountStatus `json:"amazon_status"`
	DeviceUsage      DeviceUsage  `json:"device_usage"`
	InterestsInitial []string     `json:"interests_initial"`
	InterestsFinal   []string     `json:"interests_final"`
	ActivityLog      []Event      `json:"activity_log"`
	LifeEvents       []LifeEvent  `json:"life_events"`
}

// Shell is the factory output: the immutable document skeleton plus the
// initial mutable seeds the simulation driver needs. The simulation fills
// ActivityLog, LifeEvents and InterestsFinal before the document is
// persisted.
type Shell struct {
	Doc Finalized

	Params     ParamSet
	Interests  []string
	Payments   []string
	Devices    []catalog.Device
	Primary    catalog.Device
	Services   map[string]bool
	IsPrime    bool
	PrimeStart time.Time
	Created    time.Time

	Start    time.Time
	End      time.Time
	AgeAtEnd int
}
