//go:build unit

package allowance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seasonConstants() Constants {
	return Constants{
		Base:              2,
		VolunteerBonus:    2,
		SecondWaveBonus:   4,
		MaxStandard:       4,
		MaxVolunteer:      8,
		DailyMaxStandard:  2,
		DailyMaxVolunteer: 4,
	}
}

func TestCalculate(t *testing.T) {
	calc := NewCalculator(seasonConstants())

	tests := []struct {
		name      string
		volunteer bool
		phase     Phase
		wantTotal int
		wantMax   int
	}{
		{
			name:      "standard household, initial phase",
			volunteer: false,
			phase:     PhaseInitial,
			wantTotal: 2,
			wantMax:   4,
		},
		{
			name:      "volunteer household, initial phase",
			volunteer: true,
			phase:     PhaseInitial,
			wantTotal: 4,
			wantMax:   8,
		},
		{
			name:      "standard household, second wave capped at standard max",
			volunteer: false,
			phase:     PhaseSecondWave,
			wantTotal: 4,
			wantMax:   4,
		},
		{
			name:      "volunteer household, second wave",
			volunteer: true,
			phase:     PhaseSecondWave,
			wantTotal: 8,
			wantMax:   8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := calc.Calculate(tt.volunteer, tt.phase)
			assert.Equal(t, tt.wantTotal, info.Total)
			assert.Equal(t, tt.wantMax, info.MaxAllowed)
			assert.LessOrEqual(t, info.Total, info.MaxAllowed)
		})
	}
}

// Moving from initial to second wave must never shrink an allowance, for any
// volunteer status.
func TestCalculatePhaseMonotonic(t *testing.T) {
	calc := NewCalculator(seasonConstants())

	for _, volunteer := range []bool{false, true} {
		initial := calc.Calculate(volunteer, PhaseInitial)
		second := calc.Calculate(volunteer, PhaseSecondWave)
		assert.GreaterOrEqual(t, second.Total, initial.Total, "volunteer=%v", volunteer)
	}
}

func TestCalculateCapBelowBase(t *testing.T) {
	// A pathological config where the cap is below base + bonuses still caps.
	calc := NewCalculator(Constants{
		Base:            5,
		VolunteerBonus:  5,
		SecondWaveBonus: 5,
		MaxStandard:     3,
		MaxVolunteer:    6,
	})

	assert.Equal(t, 3, calc.Calculate(false, PhaseSecondWave).Total)
	assert.Equal(t, 6, calc.Calculate(true, PhaseSecondWave).Total)
}

func TestDailyMax(t *testing.T) {
	calc := NewCalculator(seasonConstants())

	assert.Equal(t, 2, calc.DailyMax(false))
	assert.Equal(t, 4, calc.DailyMax(true))
}
