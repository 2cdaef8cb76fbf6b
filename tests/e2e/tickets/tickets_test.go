//go:build e2e

package tickets_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stagenight/internal/pkg/jwt"
	"stagenight/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TicketsE2ETestSuite struct {
	e2e.SharedSuite
}

func TestTicketsE2ESuite(t *testing.T) {
	suite.Run(t, new(TicketsE2ETestSuite))
}

func (s *TicketsE2ETestSuite) token(householdID string, volunteer bool) string {
	svc := jwt.NewService(s.Config.JWT.Secret, time.Hour)
	token, err := svc.GenerateToken(householdID, volunteer)
	s.Require().NoError(err)
	return token
}

func (s *TicketsE2ETestSuite) do(method, path, token string, body map[string]any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *TicketsE2ETestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (s *TicketsE2ETestSuite) TestBookingFlow() {
	s.Run("full flow from selection to confirmed purchase", func() {
		household := "hh-" + uuid.NewString()
		token := s.token(household, true)

		// Select a Tuesday slot
		w := s.do(http.MethodPost, "/api/tickets/selections", token, map[string]any{
			"night": "tue", "showtime_key": "tue-530", "tickets": 2,
		})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		selection := s.decode(w)
		s.Equal(float64(2), selection["tickets_requested"])

		// Issue an intent for the selected slot
		w = s.do(http.MethodPost, "/api/tickets/intents", token, map[string]any{
			"showtime_key": "tue-530", "tickets": 2,
		})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
		intent := s.decode(w)
		s.NotEmpty(intent["intent_id"])
		s.Contains(intent["checkout_url"], "tue-530")

		// Checkout provider confirms the purchase
		w = s.do(http.MethodPost, "/api/tickets/purchases", "", map[string]any{
			"household_id": household, "showtime_key": "tue-530",
			"tickets": 2, "amount_cents": 2400, "payment_status": "paid",
		})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		// State reflects the purchase
		w = s.do(http.MethodGet, "/api/tickets/state", token, nil)
		s.Require().Equal(http.StatusOK, w.Code)
		state := s.decode(w)
		nights := state["nights"].([]any)
		s.Require().Len(nights, 1)
		night := nights[0].(map[string]any)
		s.Equal(float64(2), night["tickets_purchased"])
	})

	s.Run("selections past the allowance are rejected", func() {
		household := "hh-" + uuid.NewString()
		token := s.token(household, false)

		// Standard second-wave allowance is 4 per night
		w := s.do(http.MethodPost, "/api/tickets/selections", token, map[string]any{
			"night": "thu", "showtime_key": "thu-530", "tickets": 4,
		})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = s.do(http.MethodPost, "/api/tickets/selections", token, map[string]any{
			"night": "thu", "showtime_key": "thu-630", "tickets": 1,
		})
		s.Require().Equal(http.StatusConflict, w.Code, w.Body.String())
		s.Contains(w.Body.String(), "allowance")
	})

	s.Run("the two nights have independent allowances", func() {
		household := "hh-" + uuid.NewString()
		token := s.token(household, false)

		w := s.do(http.MethodPost, "/api/tickets/selections", token, map[string]any{
			"night": "tue", "showtime_key": "tue-530", "tickets": 4,
		})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = s.do(http.MethodPost, "/api/tickets/selections", token, map[string]any{
			"night": "thu", "showtime_key": "thu-530", "tickets": 4,
		})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("intents require a prior selection", func() {
		household := "hh-" + uuid.NewString()
		token := s.token(household, false)

		w := s.do(http.MethodPost, "/api/tickets/intents", token, map[string]any{
			"showtime_key": "tue-530", "tickets": 1,
		})
		s.Require().Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("confirmed purchases land in the ledger under the show's date", func() {
		household := "hh-" + uuid.NewString()
		token := s.token(household, false)

		w := s.do(http.MethodPost, "/api/tickets/selections", token, map[string]any{
			"night": "tue", "showtime_key": "tue-530", "tickets": 2,
		})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

		w = s.do(http.MethodPost, "/api/tickets/purchases", "", map[string]any{
			"household_id": household, "showtime_key": "tue-530",
			"tickets": 2, "amount_cents": 2400, "payment_status": "paid",
		})
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var day string
		var total int
		err := s.DB.QueryRow(context.Background(),
			`SELECT day, total_tickets FROM daily_limits WHERE household_id = $1`, household,
		).Scan(&day, &total)
		s.Require().NoError(err)
		s.Equal(s.Config.Event.TueDate, day)
		s.Equal(2, total)

		// The intent check reads today's ledger row, so a purchase booked
		// under a future show date does not block a same-day intent.
		w = s.do(http.MethodPost, "/api/tickets/intents", token, map[string]any{
			"showtime_key": "tue-530", "tickets": 1,
		})
		s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("unauthenticated requests are rejected", func() {
		w := s.do(http.MethodGet, "/api/tickets/state", "", nil)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
