package service

import (
	"fmt"
	"math"

	"github.com/alexivanou/carryon-checker/internal/model"
	"go.uber.org/multierr"
)

const (
	maxDimensionCm = 300
	maxWeightKg    = 100
)

// ValidateSuitcase checks user input before it is evaluated. Every dimension
// must lie in (0, 300] cm; a declared weight must lie in [0, 100] kg.
// All problems are reported together, wrapped in ErrInvalidSuitcase.
func ValidateSuitcase(s model.Suitcase) error {
	var err error

	err = multierr.Append(err, checkDimension("width", s.Width))
	err = multierr.Append(err, checkDimension("height", s.Height))
	err = multierr.Append(err, checkDimension("depth", s.Depth))

	if s.Weight != nil {
		w := *s.Weight
		if math.IsNaN(w) || w < 0 || w > maxWeightKg {
			err = multierr.Append(err, fmt.Errorf("weight must be between 0 and %d kg, got %v", maxWeightKg, w))
		}
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSuitcase, err)
	}
	return nil
}

func checkDimension(name string, v float64) error {
	if math.IsNaN(v) || v <= 0 || v > maxDimensionCm {
		return fmt.Errorf("%s must be greater than 0 and at most %d cm, got %v", name, maxDimensionCm, v)
	}
	return nil
}
