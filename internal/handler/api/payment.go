package api

import (
	"log/slog"
	"net/http"
	"strconv"

	resdto "gin-order-service/internal/handler/dto/response"
	"gin-order-service/internal/handler/httperr"
	"gin-order-service/internal/pkg/config"
	"gin-order-service/internal/pkg/errs"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const signatureHeader = "Stripe-Signature"

type PaymentHandler struct {
	events          commands.PaymentEventCommands
	methods         commands.PaymentMethodCommands
	q               queries.PaymentQueries
	webhookMaxBytes int64
}

func NewPaymentHandler(events commands.PaymentEventCommands, methods commands.PaymentMethodCommands, q queries.PaymentQueries, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{events: events, methods: methods, q: q, webhookMaxBytes: cfg.Payment.WebhookMaxBytes}
}

// @Summary Payment provider webhook
// @Description Verifies the provider signature and applies the payment outcome; redeliveries are acknowledged without effect
// @Tags payments
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Provider signature"
// @Success 200 {object} map[string]bool
// @Failure 400 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.webhookMaxBytes)
	payload, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errs.As(err, &tooLarge) {
			slog.Warn("webhook payload over limit", "limit", tooLarge.Limit)
			httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payload too large",
				map[string]string{"max_bytes": strconv.FormatInt(tooLarge.Limit, 10)})
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable payload", nil)
		return
	}

	if err := h.events.HandleWebhook(c.Request.Context(), payload, c.GetHeader(signatureHeader)); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}

// @Summary Payment status of an order
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.PaymentStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id}/status [get]
func (h *PaymentHandler) Status(c *gin.Context) {
	userID, role, ok := identity(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.StatusByOrder(c.Request.Context(), userID, role, orderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentStatus(view))
}

// @Summary List my payment methods
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.PaymentMethodResponse
// @Router /payments/methods [get]
func (h *PaymentHandler) ListMethods(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	methods, err := h.q.ListMethods(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentMethods(methods))
}

// @Summary Set default payment method
// @Description Clears the previous default in the same transaction
// @Tags payments
// @Security BearerAuth
// @Param id path string true "Payment method ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/methods/{id}/default [put]
func (h *PaymentHandler) SetDefaultMethod(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	methodID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.methods.SetDefault(c.Request.Context(), userID, methodID); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
