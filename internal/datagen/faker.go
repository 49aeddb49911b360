//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package datagen provides the seeded random sources used across profile
// generation: fake-data helpers, weighted selection, and the statistical
// distribution sampler.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
	xrand "golang.org/x/exp/rand"
)

// Faker wraps gofakeit together with a gonum-compatible random source so a
// single seed drives both fake-data generation and distribution sampling.
// A Faker is owned by exactly one profile's generation run and must not be
// shared across goroutines.
type Faker struct {
	faker *gofakeit.Faker
	src   *xrand.Rand
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return NewFakerWithSeed(uint64(time.Now().UnixNano()))
}

// NewFakerWithSeed creates a new Faker with a specific seed for
// reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
		src:   xrand.New(xrand.NewSource(seed)),
	}
}

// Src exposes the underlying source for gonum distributions.
func (f *Faker) Src() xrand.Source {
	return f.src
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	return f.faker.IntRange(min, max)
}

// Float64 generates a random float64 between min and max.
func (f *Faker) Float64(min, max float64) float64 {
	if max < min {
		min, max = max, min
	}
	return f.faker.Float64Range(min, max)
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Chance returns true with probability p.
func (f *Faker) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return f.faker.Float64Range(0, 1) < p
}

// Jitter returns v scaled by a uniform factor in [1-spread, 1+spread].
func (f *Faker) Jitter(v, spread float64) float64 {
	return v * f.Float64(1-spread, 1+spread)
}

// Gauss draws from a normal distribution with the given mean and stddev.
func (f *Faker) Gauss(mean, stddev float64) float64 {
	return mean + stddev*f.src.NormFloat64()
}

// ExpFloat64 draws from the unit exponential distribution.
func (f *Faker) ExpFloat64() float64 {
	return f.src.ExpFloat64()
}

// DateRange generates a random time within [start, end]. If the interval is
// empty the start is returned unchanged.
func (f *Faker) DateRange(start, end time.Time) time.Time {
	if !start.Before(end) {
		return start
	}
	return f.faker.DateRange(start, end)
}

// LetterN generates a random string of n uppercase letters and digits.
func (f *Faker) LetterN(n int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	out := make([]byte, n)
	for i := range out {
		out[i] = charset[f.Int(0, len(charset)-1)]
	}
	return string(out)
}

// Word generates a random word.
func (f *Faker) Word() string {
	return f.faker.Word()
}

// FirstName generates a random first name.
func (f *Faker) FirstName() string {
	return f.faker.FirstName()
}

// LastName generates a random last name.
func (f *Faker) LastName() string {
	return f.faker.LastName()
}

// MovieName generates a random movie title.
func (f *Faker) MovieName() string {
	return f.faker.MovieName()
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}

// ChooseN returns up to n distinct elements from items, in random order.
func ChooseN[T any](f *Faker, items []T, n int) []T {
	if n >= len(items) {
		n = len(items)
	}
	if n <= 0 {
		return nil
	}
	idx := f.src.Perm(len(items))[:n]
	out := make([]T, 0, n)
	for _, i := range idx {
		out = append(out, items[i])
	}
	return out
}

// ChooseWeighted returns a random element based on float weights. Weights
// need not be normalized; non-positive weights exclude their item. When no
// weight is positive a uniform choice is made instead.
func ChooseWeighted[T any](f *Faker, items []T, weights []float64) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 || len(weights) != len(items) {
		return Choose(f, items)
	}

	r := f.Float64(0, total)
	cumulative := 0.0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		cumulative += w
		if r <= cumulative {
			return items[i]
		}
	}
	return items[len(items)-1]
}
