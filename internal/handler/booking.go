package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ggwellplayed/booking-service/internal/engine"
	"github.com/ggwellplayed/booking-service/internal/model"
	"github.com/ggwellplayed/booking-service/internal/queue"
)

// rateLimitMessage is the single general-purpose message shown when the
// attempt ledger is full.  No field attribution, matching the form.
const rateLimitMessage = "Too many attempts. Please try again in 5 minutes."

// BookingHandler exposes the booking engine over HTTP: quoting, draft
// submission, lifecycle state and the tier-preselection producer path.
type BookingHandler struct {
	Engine *engine.Engine
	Bus    *queue.Bus
}

// NewBookingHandler constructs a BookingHandler.  Both dependencies must
// be non-nil.
func NewBookingHandler(eng *engine.Engine, bus *queue.Bus) *BookingHandler {
	if eng == nil || bus == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Engine: eng, Bus: bus}
}

// GetQuote handles GET /v1/quote?tier=mid&duration=3.  It prices a
// tier/duration pair without touching any state; the form calls it on
// every selection change.
func (h *BookingHandler) GetQuote(c echo.Context) error {
	tierID := c.QueryParam("tier")
	durationID, err := strconv.Atoi(c.QueryParam("duration"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid duration"})
	}
	price, err := h.Engine.Quote(tierID, durationID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown tier or duration"})
	}
	return c.JSON(http.StatusOK, echo.Map{"price": price})
}

// SelectTier handles POST /v1/tiers/select.  The pricing display calls it
// when a plan card is clicked; the engine adopts the tier as the default
// for drafts that omit one.
func (h *BookingHandler) SelectTier(c echo.Context) error {
	var body struct {
		TierID string `json:"tier_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if _, ok := model.TierByID(body.TierID); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown tier"})
	}
	h.Bus.PublishTierSelected(body.TierID)
	return c.NoContent(http.StatusNoContent)
}

// GetState handles GET /v1/bookings/state and reports the submission
// lifecycle state so the form can disable its submit control outside IDLE.
func (h *BookingHandler) GetState(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"state": h.Engine.State()})
}

// Submit handles POST /v1/bookings.  Field validation failures come back
// as a 400 with per-field messages; the anti-bot rejection is a bare 400
// with no detail on purpose; a full attempt ledger is a 429 with the
// standing retry message.  On success the created record and the hand-off
// URL are returned with 201.
func (h *BookingHandler) Submit(c echo.Context) error {
	var draft model.BookingDraft
	if err := c.Bind(&draft); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	result, err := h.Engine.Submit(c.Request().Context(), draft, time.Now())
	if err != nil {
		var verrs *engine.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			return c.JSON(http.StatusBadRequest, echo.Map{"errors": verrs})
		case errors.Is(err, engine.ErrRejected):
			// Deliberately undifferentiated so bots get no signal.
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "submission failed"})
		case errors.Is(err, engine.ErrRateLimited):
			return c.JSON(http.StatusTooManyRequests, echo.Map{"errors": echo.Map{"general": rateLimitMessage}})
		case errors.Is(err, engine.ErrUnknownSelection):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown tier or duration"})
		case errors.Is(err, engine.ErrBusy):
			return c.JSON(http.StatusConflict, echo.Map{"error": "submission in progress"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}
	return c.JSON(http.StatusCreated, result)
}
