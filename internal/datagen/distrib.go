//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package datagen

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/datasynth/shopgen/internal/logging"
)

// Kind names a supported sampling distribution.
type Kind string

const (
	KindUniform     Kind = "uniform"
	KindUniformInt  Kind = "uniform_int"
	KindBeta        Kind = "beta"
	KindNormal      Kind = "normal"
	KindExponential Kind = "exponential"
	KindPareto      Kind = "pareto"
	KindZipf        Kind = "zipf"
	KindPoisson     Kind = "poisson"
	KindTimeOfDay   Kind = "time_of_day"
)

// DayPart is a named part-of-day bucket used by the time-of-day sampler.
type DayPart struct {
	Name   string
	Hours  []int
	Weight float64
}

// Spec describes one distribution draw: the kind, its parameters, and the
// clamp range. Clamping is always applied last, after any rescaling. Default
// is the fallback value when the spec cannot be sampled; without it a broken
// spec is a hard error.
type Spec struct {
	Kind     Kind
	Params   map[string]float64
	Min      float64
	Max      float64
	HasRange bool
	Default  *float64
	DayParts []DayPart
}

// Integer reports whether the kind produces integer samples.
func (s Spec) Integer() bool {
	switch s.Kind {
	case KindUniformInt, KindZipf, KindPoisson, KindTimeOfDay:
		return true
	}
	return false
}

func (s Spec) param(name string) (float64, error) {
	v, ok := s.Params[name]
	if !ok {
		return 0, fmt.Errorf("distribution %q missing parameter %q", s.Kind, name)
	}
	return v, nil
}

// Sample draws one value according to the spec. Unknown kinds fall back to a
// uniform draw over the declared range with a logged warning; missing
// parameters or a missing range produce an error unless a default is set.
func (f *Faker) Sample(spec Spec) (float64, error) {
	v, err := f.sample(spec)
	if err != nil {
		if spec.Default != nil {
			return *spec.Default, nil
		}
		return 0, err
	}
	return v, nil
}

func (f *Faker) sample(spec Spec) (float64, error) {
	if !spec.HasRange && spec.Kind != KindTimeOfDay {
		return 0, fmt.Errorf("distribution %q has no range to sample over", spec.Kind)
	}

	switch spec.Kind {
	case KindUniform:
		return f.Float64(spec.Min, spec.Max), nil

	case KindUniformInt:
		return float64(f.Int(int(spec.Min), int(spec.Max))), nil

	case KindBeta:
		alpha, err := spec.param("alpha")
		if err != nil {
			return 0, err
		}
		beta, err := spec.param("beta")
		if err != nil {
			return 0, err
		}
		d := distuv.Beta{Alpha: alpha, Beta: beta, Src: f.src}
		// Beta samples in [0,1]; rescale into the declared range.
		return spec.Min + (spec.Max-spec.Min)*d.Rand(), nil

	case KindNormal:
		mean, err := spec.param("mean")
		if err != nil {
			return 0, err
		}
		stddev, err := spec.param("stddev")
		if err != nil {
			return 0, err
		}
		d := distuv.Normal{Mu: mean, Sigma: stddev, Src: f.src}
		return spec.clamp(d.Rand()), nil

	case KindExponential:
		scale, err := spec.param("scale")
		if err != nil {
			return 0, err
		}
		if scale <= 0 {
			return 0, fmt.Errorf("exponential scale must be positive, got %v", scale)
		}
		d := distuv.Exponential{Rate: 1 / scale, Src: f.src}
		return spec.clamp(d.Rand()), nil

	case KindPareto:
		shape, err := spec.param("shape")
		if err != nil {
			return 0, err
		}
		d := distuv.Pareto{Xm: 1, Alpha: shape, Src: f.src}
		return spec.clamp(d.Rand()), nil

	case KindZipf:
		exponent, err := spec.param("exponent")
		if err != nil {
			return 0, err
		}
		return spec.clamp(f.zipf(exponent)), nil

	case KindPoisson:
		lambda, err := spec.param("lambda")
		if err != nil {
			return 0, err
		}
		d := distuv.Poisson{Lambda: lambda, Src: f.src}
		return spec.clamp(d.Rand()), nil

	case KindTimeOfDay:
		return f.timeOfDay(spec)

	default:
		logging.Warn().
			Str("kind", string(spec.Kind)).
			Msg("Unknown distribution kind, falling back to uniform")
		if spec.Integer() {
			return float64(f.Int(int(spec.Min), int(spec.Max))), nil
		}
		return f.Float64(spec.Min, spec.Max), nil
	}
}

// zipf draws an unbounded zipf-like integer via inverse-power sampling.
func (f *Faker) zipf(exponent float64) float64 {
	if exponent <= 1 {
		exponent = 1.01
	}
	u := f.Float64(1e-9, 1)
	return math.Floor(math.Pow(u, -1/(exponent-1)))
}

// timeOfDay weighted-selects a day-part bucket then a uniform hour within it.
func (f *Faker) timeOfDay(spec Spec) (float64, error) {
	if len(spec.DayParts) == 0 {
		return 0, fmt.Errorf("time_of_day distribution has no day parts")
	}
	weights := make([]float64, len(spec.DayParts))
	for i, p := range spec.DayParts {
		weights[i] = p.Weight
	}
	part := ChooseWeighted(f, spec.DayParts, weights)
	if len(part.Hours) == 0 {
		return 0, fmt.Errorf("day part %q has no hours", part.Name)
	}
	return float64(Choose(f, part.Hours)), nil
}

func (s Spec) clamp(v float64) float64 {
	if !s.HasRange {
		return v
	}
	return math.Min(s.Max, math.Max(s.Min, v))
}
