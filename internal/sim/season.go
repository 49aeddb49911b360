//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package sim

import (
	"time"

	"github.com/datasynth/shopgen/internal/catalog"
)

// seasonalBoost returns the activity/spend multiplier for a date. When
// several peaks overlap the highest boost wins; outside any peak the
// multiplier is 1.
func seasonalBoost(peaks []catalog.SeasonalPeak, date time.Time) float64 {
	month := int(date.Month())
	day := date.Day()
	boost := 1.0
	for _, p := range peaks {
		if !containsInt(p.Months, month) {
			continue
		}
		if len(p.Days) > 0 && !containsInt(p.Days, day) {
			continue
		}
		if p.Boost > boost {
			boost = p.Boost
		}
	}
	return boost
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
