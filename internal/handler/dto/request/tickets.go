package request

import (
	"stagenight/internal/domain/event"
)

type SelectSlotRequest struct {
	Night       string `json:"night" binding:"required"`
	ShowtimeKey string `json:"showtime_key" binding:"required"`
	Tickets     int    `json:"tickets" binding:"required,min=1"`
}

func (r SelectSlotRequest) ParseNight() (event.Night, bool) {
	return event.ParseNight(r.Night)
}

type IssueIntentRequest struct {
	ShowtimeKey string `json:"showtime_key" binding:"required"`
	Tickets     int    `json:"tickets" binding:"required,min=1"`
}

// ConfirmPurchaseRequest is the notification body posted by the checkout
// provider. It identifies the household directly; the provider does not hold
// a session token.
type ConfirmPurchaseRequest struct {
	HouseholdID   string `json:"household_id" binding:"required"`
	ShowtimeKey   string `json:"showtime_key" binding:"required"`
	Tickets       int    `json:"tickets" binding:"required,min=1"`
	AmountCents   int64  `json:"amount_cents" binding:"min=0"`
	PaymentStatus string `json:"payment_status"`
}
