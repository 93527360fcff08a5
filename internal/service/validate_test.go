package service

import (
	"math"
	"testing"

	"github.com/alexivanou/carryon-checker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSuitcase(t *testing.T) {
	tests := []struct {
		name     string
		suitcase model.Suitcase
		wantErr  []string
	}{
		{
			name:     "Valid without weight",
			suitcase: model.Suitcase{Width: 55, Height: 40, Depth: 25},
		},
		{
			name:     "Valid bounds",
			suitcase: model.Suitcase{Width: 300, Height: 0.5, Depth: 1, Weight: kg(0)},
		},
		{
			name:     "Valid maximum weight",
			suitcase: model.Suitcase{Width: 1, Height: 1, Depth: 1, Weight: kg(100)},
		},
		{
			name:     "Zero width",
			suitcase: model.Suitcase{Width: 0, Height: 40, Depth: 25},
			wantErr:  []string{"width"},
		},
		{
			name:     "Too deep and negative height",
			suitcase: model.Suitcase{Width: 55, Height: -1, Depth: 301},
			wantErr:  []string{"height", "depth"},
		},
		{
			name:     "NaN dimension",
			suitcase: model.Suitcase{Width: math.NaN(), Height: 40, Depth: 25},
			wantErr:  []string{"width"},
		},
		{
			name:     "Heavy",
			suitcase: model.Suitcase{Width: 55, Height: 40, Depth: 25, Weight: kg(100.5)},
			wantErr:  []string{"weight"},
		},
		{
			name:     "Negative weight",
			suitcase: model.Suitcase{Width: 55, Height: 40, Depth: 25, Weight: kg(-2)},
			wantErr:  []string{"weight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSuitcase(tt.suitcase)
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSuitcase)
			for _, field := range tt.wantErr {
				assert.Contains(t, err.Error(), field)
			}
		})
	}
}
