package model

import (
	"math"
	"strconv"
)

// Suitcase holds the measurements entered by the user
type Suitcase struct {
	Width  float64  `json:"width"`
	Height float64  `json:"height"`
	Depth  float64  `json:"depth"`
	Weight *float64 `json:"weight,omitempty"`
}

// TotalLength is the sum of the three dimensions
func (s Suitcase) TotalLength() float64 {
	return s.Width + s.Height + s.Depth
}

// Volume is the plain product of the three dimensions, in cubic centimetres
func (s Suitcase) Volume() float64 {
	return s.Width * s.Height * s.Depth
}

// Limit is a numeric restriction read from a baggage table.
// NaN marks a cell that did not hold a number.
type Limit float64

// Valid reports whether the limit holds a number
func (l Limit) Valid() bool {
	return !math.IsNaN(float64(l))
}

// MarshalJSON encodes NaN and infinite limits as null
func (l Limit) MarshalJSON() ([]byte, error) {
	f := float64(l)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// LimitPtr returns a pointer to a limit of value v
func LimitPtr(v float64) *Limit {
	l := Limit(v)
	return &l
}
