package api

import (
	"log/slog"
	"net/http"
	"strings"

	"amhara-checkout/internal/domain/payment"
	"amhara-checkout/internal/handler/httperr"
	"amhara-checkout/internal/pkg/errs"
	"amhara-checkout/internal/usecase/checkout"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

const returnPage = `<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Payment complete</title></head>
<body><p>Your payment is being confirmed. You can return to the app.</p></body></html>`

// WebhookHandler serves the rail-facing endpoints: the server callback and
// the return page the hosted checkout redirects to.
type WebhookHandler struct {
	coordinator checkout.SessionCoordinator
	returnURL   string
}

func NewWebhookHandler(coordinator checkout.SessionCoordinator, returnURL string) *WebhookHandler {
	return &WebhookHandler{
		coordinator: coordinator,
		returnURL:   returnURL,
	}
}

type callbackPayload struct {
	TxRef  string `json:"tx_ref" form:"tx_ref"`
	TrxRef string `json:"trx_ref" form:"trx_ref"`
	Status string `json:"status" form:"status"`
}

// @Summary Rail callback
// @Description Callback from the redirect aggregator once a payment settles
// @Tags webhooks
// @Accept json
// @Produce json
// @Param tx_ref query string false "Transaction reference"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Router /webhooks/chapa [post]
// @Router /webhooks/chapa [get]
func (h *WebhookHandler) Callback(c *gin.Context) {
	var p callbackPayload
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBind(&p); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid callback payload", nil)
			return
		}
	}
	ref, _ := lo.Coalesce(p.TxRef, p.TrxRef, c.Query("tx_ref"), c.Query("trx_ref"))
	if ref == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("callback without reference"), "Missing transaction reference", nil)
		return
	}

	view, err := h.coordinator.NotifyCallback(c.Request.Context(), payment.Reference(ref))
	if err != nil {
		if errs.Is(err, checkout.ErrNoActiveSession) {
			slog.Info("callback for unknown session ignored", "tx_ref", ref, "status", p.Status)
			c.JSON(http.StatusOK, gin.H{"status": "ignored"})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Callback processing failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "received", "state": view.State})
}

// @Summary Return page
// @Description Landing page of the hosted checkout; reaching it triggers verification
// @Tags webhooks
// @Produce html
// @Success 200 {string} string
// @Router /payment-complete [get]
func (h *WebhookHandler) ReturnPage(c *gin.Context) {
	target := h.returnURL
	if q := c.Request.URL.RawQuery; q != "" {
		target = strings.TrimSuffix(target, "?") + lo.Ternary(strings.Contains(target, "?"), "&", "?") + q
	}

	if _, err := h.coordinator.Navigate(c.Request.Context(), target); err != nil && !errs.Is(err, checkout.ErrNoActiveSession) {
		slog.Warn("return page navigation failed", "error", err)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(returnPage))
}
