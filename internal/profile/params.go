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

	"github.com/datasynth/shopgen/internal/catalog"
	"github.com/datasynth/shopgen/internal/datagen"
)

// ParamSet holds the sampled behavioral parameters for one profile, keyed by
// parameter name. Values stay inside their catalog ranges; Adjust re-clamps
// after every change.
type ParamSet map[string]float64

// SampleParams draws a complete parameter set from the catalog, applying the
// life-stage adjustments additively before re-clamping. Any sampling failure
// without a configured default aborts the whole set: callers must not build a
// profile from a partial one.
func SampleParams(f *datagen.Faker, params catalog.ParamCatalog, adjustments map[string]float64) (ParamSet, error) {
	// Iterate in sorted order so a seeded run is reproducible.
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(ParamSet, len(params))
	for _, name := range names {
		spec := params[name]
		v, err := f.Sample(spec.Dist)
		if err != nil {
			return nil, fmt.Errorf("sampling parameter %q: %w", name, err)
		}
		if delta, ok := adjustments[name]; ok {
			v += delta
		}
		v = clampTo(spec, v)
		out[name] = v
	}
	out.modulate(params)
	return out, nil
}

// Adjust shifts a parameter additively and clamps it back into its catalog
// range. Unknown parameter names are ignored so life-event templates may
// reference traits a given catalog does not carry.
func (p ParamSet) Adjust(params catalog.ParamCatalog, name string, delta float64) {
	spec, ok := params[name]
	if !ok {
		return
	}
	if _, ok := p[name]; !ok {
		return
	}
	p[name] = clampTo(spec, p[name]+delta)
}

// Get returns the parameter value, or the midpoint of its range when the set
// does not carry it.
func (p ParamSet) Get(params catalog.ParamCatalog, name string) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	if spec, ok := params[name]; ok {
		return (spec.Min + spec.Max) / 2
	}
	return 0.5
}

// modulate applies the cross-parameter rules that run once after the initial
// draw. Desktop usage sinks as mobile usage grows so the two do not both end
// up high for the same profile.
func (p ParamSet) modulate(params catalog.ParamCatalog) {
	mobile, okM := p["mobile_usage"]
	if desktop, okD := p["desktop_usage"]; okM && okD {
		spec := params["desktop_usage"]
		p["desktop_usage"] = clampTo(spec, desktop*(1.3-0.6*mobile))
	}
}

func clampTo(spec catalog.ParamSpec, v float64) float64 {
	if v < spec.Min {
		v = spec.Min
	}
	if v > spec.Max {
		v = spec.Max
	}
	if spec.Type == catalog.IntParam {
		v = math.Round(v)
	}
	return v
}
