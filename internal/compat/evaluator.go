// Package compat decides whether a suitcase satisfies a carry-on baggage rule.
package compat

import "github.com/alexivanou/carryon-checker/internal/model"

// IsCompatible reports whether the suitcase satisfies every limit of the rule.
// A rule whose width, height or depth is not a number is never satisfied.
func IsCompatible(s model.Suitcase, r model.BaggageRule) bool {
	if !r.Width.Valid() || !r.Height.Valid() || !r.Depth.Valid() {
		return false
	}
	return DimensionsFit(s, r) && LengthFits(s, r) && WeightFits(s, r)
}

// DimensionsFit checks each dimension against its limit; ties pass
func DimensionsFit(s model.Suitcase, r model.BaggageRule) bool {
	return s.Width <= float64(r.Width) &&
		s.Height <= float64(r.Height) &&
		s.Depth <= float64(r.Depth)
}

// LengthFits checks the combined length; a rule without a length limit always fits
func LengthFits(s model.Suitcase, r model.BaggageRule) bool {
	if r.Length == nil {
		return true
	}
	return s.TotalLength() <= float64(*r.Length)
}

// WeightFits checks the weight. It passes when either the rule has no
// weight limit or the suitcase weight is unknown.
func WeightFits(s model.Suitcase, r model.BaggageRule) bool {
	if r.Weight == nil || s.Weight == nil {
		return true
	}
	return *s.Weight <= float64(*r.Weight)
}
