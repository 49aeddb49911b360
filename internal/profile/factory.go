//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package profile

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
)

const accountFloorYear = 1998

var primeLaunch = time.Date(2005, 2, 1, 0, 0, 0, 0, time.UTC)

// New builds the profile shell for one customer: life stage, behavioral
// parameters, demographics, account and service enrollment, devices, and
// initial interests. The shell carries everything the simulation driver
// needs to run the activity timeline.
func New(f *datagen.Faker, cat *catalog.Catalog, index int, start time.Time, days int) (*Shell, error) {
	stage := chooseLifeStage(f, cat.LifeStages)

	params, err := SampleParams(f, cat.Params, stage.Adjustments)
	if err != nil {
		return nil, fmt.Errorf("profile %d: %w", index, err)
	}
	if stage.ActivityBoost != 0 {
		v := params["activity_level"] * (1 + stage.ActivityBoost)
		params["activity_level"] = math.Max(0.01, math.Min(1.0, v))
	}

	ageAtEnd := f.Int(stage.AgeMin, stage.AgeMax)
	birthYear := start.Year() - ageAtEnd
	created := accountCreation(f, birthYear, start)

	incomeIdx := datagen.Choose(f, stage.IncomeIndices)
	income := cat.Incomes[incomeIdx]
	household := datagen.Choose(f, cat.Households)
	location := datagen.Choose(f, cat.Locations)
	education := datagen.Choose(f, cat.Educations)
	employment := chooseEmployment(f, cat, stage)

	interests := seedInterests(f, cat, stage, params)

	isPrime, primeStart := primeMembership(f, params, created, start)
	services := enrollServices(f, params, interests, location, isPrime)
	if isPrime {
		services["Prime Membership"] = true
	}

	devices := chooseDevices(f, cat.Devices, params["tech_adoption_propensity"])
	primary := datagen.Choose(f, devices)
	loginFreq := loginFrequency(f, cat.LoginFreqs, params["activity_level"])
	payments := choosePayments(f, cat.Payments, params["payment_method_diversity"])

	end := start.AddDate(0, 0, days)
	shell := &Shell{
		Params:     params,
		Interests:  interests,
		Payments:   payments,
		Devices:    devices,
		Primary:    primary,
		Services:   services,
		IsPrime:    isPrime,
		PrimeStart: primeStart,
		Created:    created,
		Start:      start,
		End:        end,
		AgeAtEnd:   ageAtEnd,
	}

	shell.Doc = Finalized{
		ProfileID:       fmt.Sprintf("cust_%05d", index),
		GeneratedAt:     datagen.ISOTime(time.Now().UTC()),
		SimulationStart: datagen.ISOTime(start),
		SimulationEnd:   datagen.ISOTime(end),
		Demographics: Demographics{
			AgeAtSimulationEnd: ageAtEnd,
			BirthYear:          birthYear,
			LocationType:       location,
			Household:          household,
			IncomeBracket:      income,
			Education:          education,
			Employment:         employment,
			LifeStageContext:   stage.Name,
		},
		AmazonStatus: AccountStatus{
			AccountCreated:  datagen.ISOTime(created),
			IsPrimeInitial:  isPrime,
			ServicesInitial: sortedServices(services),
			PaymentMethods:  payments,
		},
		DeviceUsage: DeviceUsage{
			PrimaryDevice: DeviceInfo{Name: primary.Name, Platform: primary.Platform},
			AllDevices:    deviceInfos(devices),
			LoginFreq:     loginFreq,
		},
		InterestsInitial: sortedCopy(interests),
		ActivityLog:      []Event{},
		LifeEvents:       []LifeEvent{},
	}
	if isPrime {
		shell.Doc.AmazonStatus.PrimeStart = datagen.ISOTime(primeStart)
	}
	return shell, nil
}

func chooseLifeStage(f *datagen.Faker, stages []catalog.LifeStage) catalog.LifeStage {
	weights := make([]float64, len(stages))
	for i, s := range stages {
		weights[i] = s.Weight
	}
	return datagen.ChooseWeighted(f, stages, weights)
}

// accountCreation picks a date in [max(18th birthday, floor year), start-1d].
// When the interval is empty the latest possible day wins.
func accountCreation(f *datagen.Faker, birthYear int, start time.Time) time.Time {
	latest := start.AddDate(0, 0, -1)
	minYear := birthYear + 18
	if minYear < accountFloorYear {
		minYear = accountFloorYear
	}
	maxYear := start.Year() - 1
	if minYear > maxYear {
		earliest := time.Date(birthYear+18, 1, 1, 0, 0, 0, 0, time.UTC)
		if earliest.Before(latest) {
			return f.DateRange(earliest, latest)
		}
		return latest
	}
	year := f.Int(minYear, maxYear)
	d := f.DateRange(
		time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	if d.After(latest) {
		return latest
	}
	return d
}

// seedInterests unions the stage's seed list with extra categories; the
// extra count grows linearly with category_exploration_propensity, from one
// up to five.
func seedInterests(f *datagen.Faker, cat *catalog.Catalog, stage catalog.LifeStage, params ParamSet) []string {
	seen := make(map[string]bool, len(stage.Interests))
	out := make([]string, 0, len(stage.Interests)+5)
	for _, i := range stage.Interests {
		if !seen[i] {
			seen[i] = true
			out = append(out, i)
		}
	}

	extra := 1 + int(math.Round(params.Get(cat.Params, "category_exploration_propensity")*4))
	if extra > 5 {
		extra = 5
	}
	pool := make([]string, 0, len(cat.Interests))
	for _, i := range cat.Interests {
		if !seen[i] {
			pool = append(pool, i)
		}
	}
	if extra > len(pool) {
		extra = len(pool)
	}
	out = append(out, datagen.ChooseN(f, pool, extra)...)
	return out
}

// primeMembership derives the membership flag from a base probability
// nudged by deal seeking, activity, tech adoption and reward sensitivity,
// then samples a start date no earlier than the service launch.
func primeMembership(f *datagen.Faker, params ParamSet, created, start time.Time) (bool, time.Time) {
	p := 0.6
	p += (params["deal_seeking_propensity"] - 0.5) * 0.1
	p += (params["activity_level"] - 0.5) * 0.2
	p += (params["tech_adoption_propensity"] - 0.5) * 0.1
	p += (params["reward_sensitivity"] - 0.5) * 0.1
	p = math.Max(0.01, math.Min(0.99, p))
	if !f.Chance(p) {
		return false, time.Time{}
	}

	latest := start.AddDate(0, 0, -1)
	earliest := created
	if earliest.Before(primeLaunch) {
		earliest = primeLaunch
	}
	if earliest.Before(latest) {
		return true, f.DateRange(earliest, latest)
	}
	return true, f.DateRange(created, latest)
}

// enrollServices runs the per-service Bernoulli gates. Each service has a
// precondition (membership, interest, location or device affinity) and a
// probability driven by one or two behavioral parameters.
func enrollServices(f *datagen.Faker, params ParamSet, interests []string, location string, isPrime bool) map[string]bool {
	has := func(names ...string) bool {
		for _, n := range names {
			for _, i := range interests {
				if i == n {
					return true
				}
			}
		}
		return false
	}
	tech := params["tech_adoption_propensity"]
	activity := params["activity_level"]
	out := make(map[string]bool)

	if isPrime && f.Chance(params["video_engagement"]) {
		out["Prime Video"] = true
	}
	if (isPrime || f.Chance(0.1)) && f.Chance(params["music_engagement"]) {
		out["Music (Bundled)"] = true
		if f.Chance(0.3 * tech) {
			out["Music Unlimited"] = true
		}
	}
	bookish := has("Books (Physical)", "eBooks", "Children's Books")
	if bookish && f.Chance(params["ebook_engagement"]) {
		if isPrime {
			out["Prime Reading"] = true
		}
		if f.Chance(0.4) {
			out["Kindle Unlimited"] = true
		}
	}
	if (has("Audiobooks") || (bookish && f.Chance(0.3))) && f.Chance(params["audiobook_engagement"]) {
		out["Audiobook Membership"] = true
	}
	if f.Chance(tech * 0.8) {
		out["Voice Assistant Skills"] = true
	}
	if f.Chance(params["subscribe_save_propensity"]) {
		out["Subscribe & Save"] = true
	}
	urban := location == "Dense Urban" || location == "Urban" || location == "Suburban"
	if has("Grocery Staples", "Organic & Natural") && urban && f.Chance(0.4*activity) {
		out["Fresh Grocery Delivery"] = true
	}
	if has("Personal Care", "Medical Supplies", "Vitamins & Supplements") && f.Chance(0.2*activity) {
		out["Pharmacy"] = true
	}
	if f.Chance(params["deal_seeking_propensity"] * 0.5) {
		out["Warehouse Deals"] = true
	}
	if f.Chance(params["deal_seeking_propensity"] * 0.4) {
		out["Outlet"] = true
	}
	if f.Chance(tech * 0.6) {
		out["Cloud Photos"] = true
	}
	return out
}

// chooseEmployment draws the employment status from the life stage's list,
// falling back to the full catalog for stages without one.
func chooseEmployment(f *datagen.Faker, cat *catalog.Catalog, stage catalog.LifeStage) string {
	if len(stage.Employment) > 0 {
		return datagen.Choose(f, stage.Employment)
	}
	return datagen.Choose(f, cat.Employments)
}

// choosePayments samples the profile's payment-method set. The count comes
// from the payment_method_diversity draw; each method is weighted by how
// common it is in the catalog.
func choosePayments(f *datagen.Faker, methods []catalog.PaymentMethod, diversity float64) []string {
	count := int(diversity)
	if count < 1 {
		count = 1
	}
	if count > len(methods) {
		count = len(methods)
	}

	weights := make([]float64, len(methods))
	for i, m := range methods {
		weights[i] = m.Frequency
	}

	chosen := make([]string, 0, count)
	have := make(map[string]bool, count)
	for attempts := 0; len(chosen) < count && attempts < count*4; attempts++ {
		m := datagen.ChooseWeighted(f, methods, weights)
		if !have[m.Name] {
			have[m.Name] = true
			chosen = append(chosen, m.Name)
		}
	}
	if len(chosen) == 0 {
		chosen = append(chosen, datagen.Choose(f, methods).Name)
	}
	sort.Strings(chosen)
	return chosen
}

// chooseDevices samples a device set sized by tech adoption: the count is
// normal around 1.5 + tech*3 (minimum one), and each catalog device is
// weighted by platform so techier profiles skew toward mobile, voice and tv.
func chooseDevices(f *datagen.Faker, devices []catalog.Device, tech float64) []catalog.Device {
	mean := 1.5 + tech*3
	count := int(math.Round(f.Gauss(mean, 1.0)))
	if count < 1 {
		count = 1
	}

	weights := make([]float64, len(devices))
	for i, d := range devices {
		w := 1.0
		switch d.Platform {
		case "mobile", "tablet":
			w *= 0.5 + tech
		case "voice", "tv":
			w *= 0.2 + tech*1.5
		case "desktop":
			w *= 1.5 - tech
		}
		if w < 0.1 {
			w = 0.1
		}
		weights[i] = w
	}

	chosen := make([]catalog.Device, 0, count)
	have := make(map[string]bool, count)
	for attempts := 0; len(chosen) < count && attempts < count*3; attempts++ {
		d := datagen.ChooseWeighted(f, devices, weights)
		if !have[d.Name] {
			have[d.Name] = true
			chosen = append(chosen, d)
		}
	}
	if len(chosen) == 0 {
		chosen = append(chosen, datagen.Choose(f, devices))
	}
	return chosen
}

// loginFrequency maps activity level onto the cadence ladder. Ties within a
// band are broken randomly.
func loginFrequency(f *datagen.Faker, freqs []string, activity float64) string {
	switch {
	case activity > 0.8:
		return freqs[0]
	case activity > 0.6:
		return datagen.Choose(f, freqs[0:2])
	case activity > 0.4:
		return datagen.Choose(f, freqs[1:3])
	case activity > 0.2:
		return datagen.Choose(f, freqs[2:5])
	case activity > 0.05:
		return datagen.Choose(f, freqs[3:7])
	default:
		return datagen.Choose(f, freqs[5:8])
	}
}

func deviceInfos(devices []catalog.Device) []DeviceInfo {
	out := make([]DeviceInfo, len(devices))
	for i, d := range devices {
		out[i] = DeviceInfo{Name: d.Name, Platform: d.Platform}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedServices(services map[string]bool) []string {
	out := make([]string, 0, len(services))
	for s, on := range services {
		if on {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
