package api

import (
	"errors"
	"io"
	"net/http"

	"amhara-checkout/internal/domain/payment"
	reqdto "amhara-checkout/internal/handler/dto/request"
	resdto "amhara-checkout/internal/handler/dto/response"
	"amhara-checkout/internal/handler/httperr"
	"amhara-checkout/internal/pkg/errs"
	"amhara-checkout/internal/usecase/checkout"

	"github.com/gin-gonic/gin"
)

type PaymentSessionHandler struct {
	coordinator checkout.SessionCoordinator
	events      checkout.EventSubscriber
}

func NewPaymentSessionHandler(coordinator checkout.SessionCoordinator, events checkout.EventSubscriber) *PaymentSessionHandler {
	return &PaymentSessionHandler{
		coordinator: coordinator,
		events:      events,
	}
}

// @Summary Open payment session
// @Description Start a payment session for a booking draft, replacing any open one
// @Tags payment-session
// @Accept json
// @Produce json
// @Param request body reqdto.OpenSessionRequest true "Booking draft"
// @Success 201 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/payment-session [post]
func (h *PaymentSessionHandler) Open(c *gin.Context) {
	var req reqdto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	draft, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking draft", err.Error())
		return
	}

	view, err := h.coordinator.Open(c.Request.Context(), draft)
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	respond(c, http.StatusCreated, view)
}

// @Summary Get payment session
// @Description Get the active payment session
// @Tags payment-session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Router /api/payment-session [get]
func (h *PaymentSessionHandler) Get(c *gin.Context) {
	view, err := h.coordinator.Current(c.Request.Context())
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// @Summary Select rail
// @Description Select the payment rail and, for the redirect aggregator, a wallet option
// @Tags payment-session
// @Accept json
// @Produce json
// @Param request body reqdto.SelectRailRequest true "Rail selection"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/payment-session/rail [put]
func (h *PaymentSessionHandler) SelectRail(c *gin.Context) {
	var req reqdto.SelectRailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	rail, wallet := req.ToDomain()

	view, err := h.coordinator.SelectRail(c.Request.Context(), rail, wallet)
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// @Summary Enter credentials
// @Description Enter the guest's credentials for the active rail
// @Tags payment-session
// @Accept json
// @Produce json
// @Param request body reqdto.CredentialsRequest true "Credentials"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/payment-session/credentials [put]
func (h *PaymentSessionHandler) EnterCredentials(c *gin.Context) {
	var req reqdto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.coordinator.EnterCredentials(c.Request.Context(), req.ToDomain())
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// @Summary Submit payment
// @Description Validate and submit the payment to the selected rail
// @Tags payment-session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/payment-session/submit [post]
func (h *PaymentSessionHandler) Submit(c *gin.Context) {
	view, err := h.coordinator.Submit(c.Request.Context())
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// @Summary Report navigation
// @Description Report a navigation of the embedded checkout page
// @Tags payment-session
// @Accept json
// @Produce json
// @Param request body reqdto.NavigationRequest true "Navigated URL"
// @Success 200 {object} resdto.SessionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/payment-session/navigation [post]
func (h *PaymentSessionHandler) Navigate(c *gin.Context) {
	var req reqdto.NavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.coordinator.Navigate(c.Request.Context(), req.URL)
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// @Summary Cancel payment session
// @Description Cancel the active session; refused once verification has started
// @Tags payment-session
// @Produce json
// @Success 200 {object} resdto.SessionResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payment-session/cancel [post]
func (h *PaymentSessionHandler) Cancel(c *gin.Context) {
	view, err := h.coordinator.Cancel(c.Request.Context())
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	respond(c, http.StatusOK, view)
}

// @Summary Stream session events
// @Description Server-sent stream of outcome and closed events
// @Tags payment-session
// @Produce text/event-stream
// @Success 200 {object} checkout.Event
// @Router /api/payment-session/events [get]
func (h *PaymentSessionHandler) Events(c *gin.Context) {
	events, err := h.events.Subscribe(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Event stream unavailable", nil)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		ev, ok := <-events
		if !ok {
			return false
		}
		c.SSEvent(string(ev.Type), ev)
		return true
	})
}

// @Summary Get payment mode
// @Tags payment-mode
// @Produce json
// @Success 200 {object} resdto.ModeResponse
// @Router /api/payment-mode [get]
func (h *PaymentSessionHandler) GetMode(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.ModeResponse{Mode: h.coordinator.Mode().String()})
}

// @Summary Set payment mode
// @Description Switch between test and live mode; locked while a payment is in flight
// @Tags payment-mode
// @Accept json
// @Produce json
// @Param request body reqdto.ModeRequest true "Mode"
// @Success 200 {object} resdto.ModeResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payment-mode [put]
func (h *PaymentSessionHandler) SetMode(c *gin.Context) {
	var req reqdto.ModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	mode, err := h.coordinator.SetMode(c.Request.Context(), payment.Mode(req.Mode))
	if err != nil {
		abortWithSessionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.ModeResponse{Mode: mode.String()})
}

func respond(c *gin.Context, status int, view *checkout.SessionView) {
	resp, err := resdto.FromSessionView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, resp)
}

func abortWithSessionError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, checkout.ErrNoActiveSession):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No active payment session", nil)
	case errs.Is(err, errs.ErrValidation):
		var fe payment.FieldErrors
		if errors.As(err, &fe) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", fe)
			return
		}
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	case errs.Is(err, checkout.ErrInvalidDraft):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid booking draft", nil)
	case errs.Is(err, checkout.ErrInvalidSelection):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid payment selection", nil)
	case errs.Is(err, checkout.ErrUnsupportedRail):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Payment rail is not available", nil)
	case errs.Is(err, checkout.ErrInvalidMode):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment mode", nil)
	case errs.Is(err, checkout.ErrSubmitInFlight),
		errs.Is(err, checkout.ErrVerificationInFlight):
		httperr.AbortWithError(c, http.StatusConflict, err, "A payment is already in progress", nil)
	case errs.Is(err, checkout.ErrCancelNotAllowed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment is being verified and can no longer be cancelled", nil)
	case errs.Is(err, checkout.ErrModeLocked):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment mode cannot change while a payment is in progress", nil)
	case errs.Is(err, checkout.ErrNotEditable),
		errs.Is(err, checkout.ErrSessionFinished),
		errs.Is(err, checkout.ErrStaleResult):
		httperr.AbortWithError(c, http.StatusConflict, err, "Payment session is not accepting changes", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
