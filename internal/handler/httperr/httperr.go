package httperr

import (
	"net/http"
	"strings"

	"gin-order-service/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

type mapping struct {
	target  error
	status  int
	message string
}

// checked in order; the first match wins
var table = []mapping{
	{errs.ErrValidationFailed, http.StatusBadRequest, "Invalid request"},
	{errs.ErrInvalidWebhookSignature, http.StatusBadRequest, "Invalid webhook signature"},

	{errs.ErrPaymentAuthorizationFailed, http.StatusPaymentRequired, "Payment authorization failed"},
	{errs.ErrUserInactive, http.StatusForbidden, "Account is inactive"},

	{errs.ErrTimeslotNotFound, http.StatusNotFound, "Timeslot not found"},
	{errs.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{errs.ErrAddressNotFound, http.StatusNotFound, "Address not found"},
	{errs.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{errs.ErrPaymentMethodNotFound, http.StatusNotFound, "Payment method not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},

	{errs.ErrCapacityExceeded, http.StatusConflict, "Timeslot is full"},
	{errs.ErrCutoffPassed, http.StatusConflict, "Timeslot cutoff has passed"},
	{errs.ErrInvalidStateTransition, http.StatusConflict, "Invalid order state transition"},
	{errs.ErrInsufficientStock, http.StatusConflict, "Insufficient stock"},
	{errs.ErrIdempotencyInProgress, http.StatusConflict, "Request with this Idempotency-Key is in progress"},
	{errs.ErrIdempotencyConflict, http.StatusConflict, "Idempotency-Key was used with a different request"},

	{errs.ErrEmptyCart, http.StatusUnprocessableEntity, "Cart is empty"},
	{errs.ErrNoDefaultPaymentMethod, http.StatusUnprocessableEntity, "No default payment method"},
	{errs.ErrInvalidPromo, http.StatusUnprocessableEntity, "Invalid promo code"},
	{errs.ErrCouponNotFound, http.StatusUnprocessableEntity, "Invalid promo code"},

	{errs.ErrRefundFailed, http.StatusBadGateway, "Refund failed"},
}

// StatusOf maps err to an HTTP status and a client-safe message.
// Unknown errors become 500 so internal causes never leak.
func StatusOf(err error) (int, string) {
	for _, m := range table {
		if errs.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "Internal server error"
}

// Abort renders err through the sentinel table. Details attached with errs.WithDetail
// (slot_id=..., order_id=...) are returned as a key/value map on 4xx responses.
func Abort(c *gin.Context, err error) {
	status, msg := StatusOf(err)
	var detail any
	if status < http.StatusInternalServerError {
		if d := detailMap(errs.Details(err)); d != nil {
			detail = d
		}
	}
	AbortWithError(c, status, err, msg, detail)
}

func detailMap(details []string) map[string]string {
	if len(details) == 0 {
		return nil
	}
	out := make(map[string]string, len(details))
	for _, d := range details {
		k, v, ok := strings.Cut(d, "=")
		if !ok {
			out["hint"] = d
			continue
		}
		if _, exists := out[k]; !exists {
			out[k] = v
		}
	}
	return out
}
