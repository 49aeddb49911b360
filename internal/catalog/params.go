//-------------------------------------------------------------------------
//
// shopgen - synthetic retail customer activity generator
//
// Copyright (c) 2025 - 2026, the shopgen authors
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package catalog

import "github.com/datasynth/shopgen/internal/datagen"

// ParamType is the numeric type of a behavioral parameter.
type ParamType int

const (
	FloatParam ParamType = iota
	IntParam
)

// ParamSpec describes one behavioral parameter: its valid range, the
// distribution it is sampled from, and the declared numeric type. Values are
// always clamped back into [Min, Max] after any adjustment.
type ParamSpec struct {
	Name string
	Type ParamType
	Min  float64
	Max  float64
	Dist datagen.Spec
}

// ParamCatalog maps parameter name to its spec.
type ParamCatalog map[string]ParamSpec

func beta(name string, min, max, alpha, b float64) ParamSpec {
	return ParamSpec{
		Name: name, Type: FloatParam, Min: min, Max: max,
		Dist: datagen.Spec{
			Kind:   datagen.KindBeta,
			Params: map[string]float64{"alpha": alpha, "beta": b},
			Min:    min, Max: max, HasRange: true,
		},
	}
}

func expo(name string, min, max, scale float64) ParamSpec {
	return ParamSpec{
		Name: name, Type: FloatParam, Min: min, Max: max,
		Dist: datagen.Spec{
			Kind:   datagen.KindExponential,
			Params: map[string]float64{"scale": scale},
			Min:    min, Max: max, HasRange: true,
		},
	}
}

func normal(name string, min, max, mean, stddev float64) ParamSpec {
	return ParamSpec{
		Name: name, Type: FloatParam, Min: min, Max: max,
		Dist: datagen.Spec{
			Kind:   datagen.KindNormal,
			Params: map[string]float64{"mean": mean, "stddev": stddev},
			Min:    min, Max: max, HasRange: true,
		},
	}
}

func poisson(name string, min, max, lambda float64) ParamSpec {
	return ParamSpec{
		Name: name, Type: IntParam, Min: min, Max: max,
		Dist: datagen.Spec{
			Kind:   datagen.KindPoisson,
			Params: map[string]float64{"lambda": lambda},
			Min:    min, Max: max, HasRange: true,
		},
	}
}

func timeOfDay(name string) ParamSpec {
	return ParamSpec{
		Name: name, Type: IntParam, Min: 0, Max: 23,
		Dist: datagen.Spec{
			Kind: datagen.KindTimeOfDay,
			Min:  0, Max: 23, HasRange: true,
			DayParts: dayParts,
		},
	}
}

// behavioralParams is the canonical parameter catalog. Historical synonym
// entries (cart_abandonment, comparison_shopping, impulse_buying_tendency,
// review_influence, review_writing, wishlist_usage) were folded into the
// *_propensity / *_prob names kept here.
var behavioralParams = buildParamCatalog(
	// Core shopping behaviors
	beta("activity_level", 0.05, 0.95, 1.8, 1.8),
	beta("purchase_frequency", 0.1, 0.9, 2.0, 3.0),
	asInt(expo("cart_size_tendency", 1, 10, 2.0)),
	beta("price_sensitivity", 0.1, 0.9, 3.0, 2.0),
	beta("brand_loyalty", 0.1, 0.9, 1.7, 1.7),
	beta("deal_seeking_propensity", 0.05, 0.95, 3.0, 2.0),
	beta("impulse_purchase_prob", 0.05, 0.8, 1.8, 3.5),

	// Decision-making patterns
	beta("research_depth", 0.1, 0.9, 2.0, 2.0),
	beta("review_read_propensity", 0.2, 0.9, 3.0, 2.0),
	beta("social_proof_sensitivity", 0.1, 0.9, 2.5, 2.0),
	beta("risk_tolerance", 0.1, 0.9, 2.0, 2.5),
	beta("novelty_seeking", 0.1, 0.9, 2.0, 2.5),

	// Category-specific behaviors
	beta("tech_adoption_propensity", 0.1, 0.9, 1.8, 2.5),
	beta("fashion_consciousness", 0.1, 0.9, 1.5, 2.0),
	beta("health_consciousness", 0.1, 0.9, 2.0, 2.0),
	beta("eco_consciousness", 0.1, 0.9, 1.5, 3.0),
	expo("luxury_orientation", 0.05, 0.9, 0.2),

	// Platform usage patterns
	beta("mobile_usage", 0.1, 0.9, 3.0, 2.0),
	beta("desktop_usage", 0.1, 0.9, 2.0, 2.5),
	beta("app_usage", 0.1, 0.9, 2.5, 2.0),
	expo("voice_shopping", 0.0, 0.7, 0.1),

	// Service engagement
	beta("prime_engagement", 0.2, 0.9, 3.0, 1.5),
	beta("video_engagement", 0.1, 0.85, 2.5, 2.0),
	beta("subscription_services", 0.1, 0.8, 1.5, 3.0),
	beta("digital_content_consumption", 0.1, 0.9, 2.0, 2.0),
	expo("fresh_grocery_usage", 0.0, 0.8, 0.2),
	beta("music_engagement", 0.1, 0.8, 2.0, 2.5),
	beta("audiobook_engagement", 0.05, 0.7, 1.5, 3.0),
	beta("ebook_engagement", 0.1, 0.9, 2.0, 2.0),

	// Shopping style
	beta("browse_depth", 0.1, 0.9, 2.0, 2.0),
	beta("cart_abandon_propensity", 0.1, 0.7, 2.0, 3.0),
	beta("wishlist_usage_propensity", 0.1, 0.8, 1.5, 3.0),
	beta("comparison_shopping_prob", 0.2, 0.9, 2.5, 2.0),
	beta("brand_affinity_strength", 0.1, 0.9, 2.0, 2.0),
	expo("return_propensity", 0.02, 0.4, 0.08),
	expo("review_write_propensity", 0.05, 0.7, 0.15),
	normal("page_view_factor", 0.5, 2.0, 1.0, 0.3),
	normal("purchase_latency_factor", 0.3, 3.0, 1.0, 0.5),
	normal("session_length_factor", 0.5, 2.5, 1.0, 0.4),
	expo("subscribe_save_propensity", 0.0, 0.6, 0.1),
	expo("alexa_shopping_propensity", 0.0, 0.4, 0.05),

	// Time-related patterns
	beta("seasonal_shopping", 0.2, 0.9, 2.0, 2.0),
	timeOfDay("time_of_day_preference"),
	beta("weekend_shopping", 0.1, 0.9, 2.0, 2.0),

	// Financial behaviors
	poisson("payment_method_diversity", 1, 4, 1.5),
	expo("installment_usage", 0.0, 0.7, 0.15),
	beta("credit_usage", 0.1, 0.9, 2.0, 2.0),

	// Social behaviors
	expo("question_asking", 0.05, 0.6, 0.1),
	beta("social_sharing", 0.05, 0.7, 1.5, 3.0),

	// Custom behavioral traits
	beta("practical_purchase_bias", 0.1, 0.9, 2.0, 2.0),
	beta("aesthetic_preference_bias", 0.1, 0.9, 2.0, 2.0),
	beta("safety_conscious_bias", 0.1, 0.9, 2.5, 2.0),
	beta("bulk_buying_propensity", 0.1, 0.8, 1.5, 3.0),
	beta("quality_preference_bias", 0.2, 0.9, 2.5, 2.0),
	beta("brand_ethics_importance", 0.1, 0.9, 1.5, 3.0),
	beta("time_saving_focus", 0.2, 0.9, 2.0, 2.0),
	beta("early_adopter_bias", 0.1, 0.8, 1.5, 3.0),
	beta("family_oriented_bias", 0.1, 0.9, 2.0, 2.0),
	beta("minimalist_bias", 0.1, 0.8, 1.5, 3.0),
	beta("nostalgia_bias", 0.1, 0.8, 2.0, 2.5),
	beta("business_oriented_bias", 0.1, 0.9, 2.0, 2.5),
	beta("home_improvement_focus", 0.0, 0.9, 1.5, 3.0),
	beta("career_focus", 0.1, 0.9, 2.0, 2.0),
	beta("learning_focused_bias", 0.1, 0.9, 2.0, 2.0),
	beta("leisure_focused_bias", 0.1, 0.9, 2.0, 2.0),

	// Marketing behavior ontology
	beta("reward_sensitivity", 0.1, 0.9, 2.5, 2.0),
	beta("attention_focus", 0.1, 0.9, 2.0, 2.0),
	beta("category_exploration_propensity", 0.1, 0.9, 2.0, 2.5),
	beta("habit_formation_speed", 0.1, 0.9, 1.5, 3.0),
)

func asInt(s ParamSpec) ParamSpec {
	s.Type = IntParam
	return s
}

func buildParamCatalog(specs ...ParamSpec) ParamCatalog {
	out := make(ParamCatalog, len(specs))
	for _, s := range specs {
		out[s.Name] = s
	}
	return out
}
