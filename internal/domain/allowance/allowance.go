package allowance

// Constants holds the configured policy numbers. All values are non-negative;
// the calculator must stay correct under any such configuration.
type Constants struct {
	Base              int
	VolunteerBonus    int
	SecondWaveBonus   int
	MaxStandard       int
	MaxVolunteer      int
	DailyMaxStandard  int
	DailyMaxVolunteer int
}

// Info is the computed per-night ceiling, broken out so rejection responses
// can show households where the number came from.
type Info struct {
	Base            int `json:"base"`
	VolunteerBonus  int `json:"volunteerBonus"`
	SecondWaveBonus int `json:"secondWaveBonus"`
	Total           int `json:"total"`
	MaxAllowed      int `json:"maxAllowed"`
}

// Calculator is a pure function over volunteer status and phase; it has no
// failure modes.
type Calculator struct {
	consts Constants
}

func NewCalculator(consts Constants) *Calculator {
	return &Calculator{consts: consts}
}

func (c *Calculator) Calculate(volunteer bool, phase Phase) Info {
	info := Info{
		Base:       c.consts.Base,
		MaxAllowed: c.consts.MaxStandard,
	}
	if volunteer {
		info.VolunteerBonus = c.consts.VolunteerBonus
		info.MaxAllowed = c.consts.MaxVolunteer
	}
	if phase == PhaseSecondWave {
		info.SecondWaveBonus = c.consts.SecondWaveBonus
	}

	info.Total = info.Base + info.VolunteerBonus + info.SecondWaveBonus
	if info.Total > info.MaxAllowed {
		info.Total = info.MaxAllowed
	}
	return info
}

// DailyMax is the cross-show purchase ceiling for one calendar day.
func (c *Calculator) DailyMax(volunteer bool) int {
	if volunteer {
		return c.consts.DailyMaxVolunteer
	}
	return c.consts.DailyMaxStandard
}
