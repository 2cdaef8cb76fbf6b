package response

import (
	"time"

	"stagenight/internal/usecase/commands"
	"stagenight/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AllowanceResponse struct {
	Base            int `json:"base"`
	VolunteerBonus  int `json:"volunteer_bonus"`
	SecondWaveBonus int `json:"second_wave_bonus"`
	Total           int `json:"total"`
	MaxAllowed      int `json:"max_allowed"`
}

type NightStateResponse struct {
	Night            string   `json:"night"`
	TicketsRequested int      `json:"tickets_requested"`
	TicketsPurchased int      `json:"tickets_purchased"`
	ShowsSelected    []string `json:"shows_selected"`
}

type ShowtimeResponse struct {
	Key         string    `json:"key"`
	Night       string    `json:"night"`
	DisplayName string    `json:"display_name"`
	StartsAt    time.Time `json:"starts_at"`
}

type StateResponse struct {
	HouseholdID        string               `json:"household_id"`
	Volunteer          bool                 `json:"volunteer"`
	Phase              string               `json:"phase"`
	Allowance          AllowanceResponse    `json:"allowance"`
	Nights             []NightStateResponse `json:"nights"`
	AvailableShowtimes []ShowtimeResponse   `json:"available_showtimes"`
}

type SelectSlotResponse struct {
	Night            string            `json:"night"`
	ShowtimeKey      string            `json:"showtime_key"`
	TicketsRequested int               `json:"tickets_requested"`
	TicketsPurchased int               `json:"tickets_purchased"`
	ShowsSelected    []string          `json:"shows_selected"`
	Allowance        AllowanceResponse `json:"allowance"`
}

type IssueIntentResponse struct {
	IntentID    string `json:"intent_id"`
	CheckoutURL string `json:"checkout_url"`
}

type ConfirmPurchaseResponse struct {
	Status string `json:"status"`
}

func FromStateView(view *queries.HouseholdStateView) (*StateResponse, error) {
	resp := &StateResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, err
	}
	if resp.Nights == nil {
		resp.Nights = []NightStateResponse{}
	}
	if resp.AvailableShowtimes == nil {
		resp.AvailableShowtimes = []ShowtimeResponse{}
	}
	return resp, nil
}

func FromSelectSlotResult(result *commands.SelectSlotResult) (*SelectSlotResponse, error) {
	resp := &SelectSlotResponse{}
	if err := copier.Copy(resp, result); err != nil {
		return nil, err
	}
	resp.Night = string(result.Night)
	return resp, nil
}

func FromIssueIntentResult(result *commands.IssueIntentResult) *IssueIntentResponse {
	return &IssueIntentResponse{
		IntentID:    result.IntentID,
		CheckoutURL: result.CheckoutURL,
	}
}
