package queries

import (
	"time"

	"stagenight/internal/domain/allowance"
)

// Read models (DTO for read side)

type NightStateView struct {
	Night            string   `json:"night"`
	TicketsRequested int      `json:"tickets_requested"`
	TicketsPurchased int      `json:"tickets_purchased"`
	ShowsSelected    []string `json:"shows_selected"`
}

type ShowtimeView struct {
	Key         string    `json:"key"`
	Night       string    `json:"night"`
	DisplayName string    `json:"display_name"`
	StartsAt    time.Time `json:"starts_at"`
}

type HouseholdStateView struct {
	HouseholdID        string            `json:"household_id"`
	Volunteer          bool              `json:"volunteer"`
	Phase              string            `json:"phase"`
	Allowance          allowance.Info    `json:"allowance"`
	Nights             []*NightStateView `json:"nights"`
	AvailableShowtimes []ShowtimeView    `json:"available_showtimes"`
}
