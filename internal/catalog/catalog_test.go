//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

import "testing"

// The catalog is static data, so these tests pin the referential integrity
// the samplers rely on: every name a life stage or life event adjusts must
// exist in the parameter catalog, and every selection table must be
// non-empty with sane weights.

func TestDefaultCatalogPopulated(t *testing.T) {
	cat := Default()

	checks := []struct {
		name string
		size int
	}{
		{"params", len(cat.Params)},
		{"life stages", len(cat.LifeStages)},
		{"event weights", len(cat.EventBase)},
		{"devices", len(cat.Devices)},
		{"brands", len(cat.Brands)},
		{"interests", len(cat.Interests)},
		{"services", len(cat.Services)},
		{"life events", len(cat.LifeEvents)},
		{"major events", len(cat.MajorEvents)},
		{"seasonal peaks", len(cat.Seasons)},
		{"payments", len(cat.Payments)},
		{"income brackets", len(cat.Incomes)},
	}
	for _, c := range checks {
		if c.size == 0 {
			t.Errorf("catalog table %q is empty", c.name)
		}
	}
}

func TestLifeStageIntegrity(t *testing.T) {
	cat := Default()
	for _, stage := range cat.LifeStages {
		t.Run(stage.Name, func(t *testing.T) {
			if stage.AgeMin > stage.AgeMax {
				t.Errorf("age range [%d, %d] inverted", stage.AgeMin, stage.AgeMax)
			}
			if stage.Weight <= 0 {
				t.Errorf("non-positive weight %v", stage.Weight)
			}
			if len(stage.IncomeIndices) == 0 {
				t.Error("no eligible income brackets")
			}
			for _, idx := range stage.IncomeIndices {
				if idx < 0 || idx >= len(cat.Incomes) {
					t.Errorf("income index %d out of range", idx)
				}
			}
			for param := range stage.Adjustments {
				if _, ok := cat.Params[param]; !ok {
					t.Errorf("adjustment references unknown parameter %q", param)
				}
			}
		})
	}
}

func TestLifeEventAdjustmentsResolve(t *testing.T) {
	cat := Default()
	all := append(append([]LifeEventTemplate{}, cat.LifeEvents...), cat.MajorEvents...)
	for _, tmpl := range all {
		for param := range tmpl.Adjustments {
			if _, ok := cat.Params[param]; !ok {
				t.Errorf("event %q adjusts unknown parameter %q", tmpl.Name, param)
			}
		}
	}
}

func TestParamSpecRanges(t *testing.T) {
	cat := Default()
	for name, spec := range cat.Params {
		if spec.Name != name {
			t.Errorf("param %q carries mismatched name %q", name, spec.Name)
		}
		if spec.Min >= spec.Max {
			t.Errorf("param %q has degenerate range [%v, %v]", name, spec.Min, spec.Max)
		}
	}
}

func TestEventWeightsPositive(t *testing.T) {
	cat := Default()
	for event, w := range cat.EventBase {
		if w <= 0 {
			t.Errorf("event %q has non-positive base weight %v", event, w)
		}
	}
}

func TestDevicePlatformsKnown(t *testing.T) {
	known := map[string]bool{
		"mobile": true, "tablet": true, "desktop": true,
		"tv": true, "voice": true, "reader": true,
	}
	for _, d := range Default().Devices {
		if !known[d.Platform] {
			t.Errorf("device %q has unknown platform %q", d.Name, d.Platform)
		}
	}
}

func TestLoginFrequencyLadderDepth(t *testing.T) {
	// The activity ladder slices indexes 0 through 7.
	if got := len(Default().LoginFreqs); got < 8 {
		t.Fatalf("login frequency ladder has %d rungs, need at least 8", got)
	}
}

func TestSeasonalPeaksValid(t *testing.T) {
	for _, p := range Default().Seasons {
		if p.Boost <= 0 {
			t.Errorf("peak %q has non-positive boost", p.Name)
		}
		for _, m := range p.Months {
			if m < 1 || m > 12 {
				t.Errorf("peak %q lists invalid month %d", p.Name, m)
			}
		}
	}
}

func TestPaymentFrequenciesPositive(t *testing.T) {
	for _, p := range Default().Payments {
		if p.Frequency <= 0 {
			t.Errorf("payment method %q has non-positive frequency", p.Name)
		}
	}
}
