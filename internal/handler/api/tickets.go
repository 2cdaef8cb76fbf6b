package api

import (
	"errors"
	"net/http"

	reqdto "stagenight/internal/handler/dto/request"
	resdto "stagenight/internal/handler/dto/response"
	"stagenight/internal/handler/httperr"
	"stagenight/internal/handler/middleware"
	"stagenight/internal/pkg/errs"
	"stagenight/internal/usecase/commands"
	"stagenight/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TicketsHandler struct {
	reservations commands.ReservationCommands
	intents      commands.IntentCommands
	state        queries.StateQueries
}

func NewTicketsHandler(
	reservations commands.ReservationCommands,
	intents commands.IntentCommands,
	state queries.StateQueries,
) *TicketsHandler {
	return &TicketsHandler{
		reservations: reservations,
		intents:      intents,
		state:        state,
	}
}

// @Summary Get household ticket state
// @Description Current phase, allowance, per-night state and open showtimes for the authenticated household
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StateResponse
// @Failure 401 {object} httperr.Response
// @Router /tickets/state [get]
func (h *TicketsHandler) GetState(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	view, err := h.state.GetState(c.Request.Context(), actor.HouseholdID, actor.Volunteer)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromStateView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Select a showtime slot
// @Description Request tickets for a showtime; checked against the allowance and the night's sales window
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectSlotRequest true "Slot selection"
// @Success 201 {object} resdto.SelectSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tickets/selections [post]
func (h *TicketsHandler) SelectSlot(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	night, ok := req.ParseNight()
	if !ok {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrInvalidEvent, "Unknown night", nil)
		return
	}

	result, err := h.reservations.SelectSlot(c.Request.Context(), actor, night, req.ShowtimeKey, req.Tickets)
	if err != nil {
		h.abortWithDomainError(c, err)
		return
	}

	resp, err := resdto.FromSelectSlotResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Issue a purchase intent
// @Description Re-check the daily purchase limit and hand off to the external checkout
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.IssueIntentRequest true "Intent request"
// @Success 201 {object} resdto.IssueIntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /tickets/intents [post]
func (h *TicketsHandler) IssueIntent(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.IssueIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.intents.IssueIntent(c.Request.Context(), actor, req.ShowtimeKey, req.Tickets)
	if err != nil {
		h.abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIssueIntentResult(result))
}

// @Summary Confirm a purchase
// @Description Purchase notification from the checkout provider; trusted as-is
// @Tags tickets
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPurchaseRequest true "Purchase notification"
// @Success 200 {object} resdto.ConfirmPurchaseResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /tickets/purchases [post]
func (h *TicketsHandler) ConfirmPurchase(c *gin.Context) {
	var req reqdto.ConfirmPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	err := h.intents.ConfirmPurchase(
		c.Request.Context(),
		req.HouseholdID, req.ShowtimeKey,
		req.Tickets, req.AmountCents, req.PaymentStatus,
	)
	if err != nil {
		h.abortWithDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.ConfirmPurchaseResponse{Status: "recorded"})
}

func (h *TicketsHandler) abortWithDomainError(c *gin.Context, err error) {
	var allowanceErr *commands.AllowanceExceededError
	var dailyErr *commands.DailyLimitExceededError

	switch {
	case errors.As(err, &allowanceErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Ticket allowance exceeded", gin.H{
			"allowance": allowanceErr.Allowance,
		})
	case errors.As(err, &dailyErr):
		httperr.AbortWithError(c, http.StatusConflict, err, "Daily purchase limit exceeded", gin.H{
			"purchased_today": dailyErr.Current,
			"daily_max":       dailyErr.Max,
		})
	case errors.Is(err, errs.ErrSalesClosed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Sales are closed for this night", nil)
	case errors.Is(err, errs.ErrInvalidEvent):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Unknown showtime", nil)
	case errors.Is(err, errs.ErrNoSelection):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No selection for this showtime", nil)
	case errors.Is(err, errs.ErrInvalidTicketCount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Ticket count must be positive", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
