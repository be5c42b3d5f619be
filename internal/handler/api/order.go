package api

import (
	"net/http"
	"time"

	reqdto "gin-order-service/internal/handler/dto/request"
	resdto "gin-order-service/internal/handler/dto/response"
	"gin-order-service/internal/handler/httperr"
	"gin-order-service/internal/handler/middleware"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	idempotencyKeyHeader = "Idempotency-Key"
	replayedHeader       = "Idempotent-Replayed"
)

type OrderHandler struct {
	cmds commands.OrderCommands
	q    queries.OrderQueries
}

func NewOrderHandler(cmds commands.OrderCommands, q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{cmds: cmds, q: q}
}

// @Summary Place order
// @Description Turn the caller's active cart into an order: reserves the timeslot, decrements stock and authorizes card payments in one transaction
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string false "UUID; retries with the same key and body replay the first result"
// @Param request body reqdto.PlaceOrderRequest true "Order request"
// @Success 201 {object} resdto.PlaceOrderResponse
// @Success 200 {object} resdto.PlaceOrderResponse "Replayed"
// @Failure 400 {object} httperr.Response
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	var key *uuid.UUID
	if raw := c.GetHeader(idempotencyKeyHeader); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
			return
		}
		key = &parsed
	}

	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.PlaceOrder(c.Request.Context(), req, userID, key)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	middleware.SetOrderID(c, result.Order.ID)
	status := http.StatusCreated
	if result.IsReplayed {
		c.Header(replayedHeader, "true")
		status = http.StatusOK
	}
	c.JSON(status, resdto.PlaceOrderResponse{
		Order:           resdto.FromOrderView(result.Order),
		PaymentIntentID: result.PaymentIntentID,
	})
}

// @Summary List my orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param status query string false "Order status"
// @Param from_date query string false "Created on or after (YYYY-MM-DD)"
// @Param to_date query string false "Created on or before (YYYY-MM-DD)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} httperr.Response
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}

	var req reqdto.ListOrdersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	filter := queries.OrderListFilter{
		Status: req.Status,
		Limit:  req.Limit,
		Offset: req.Offset,
	}
	filter.FromDate = parseOptionalDate(req.FromDate)
	if to := parseOptionalDate(req.ToDate); to != nil {
		// inclusive upper bound
		end := to.AddDate(0, 0, 1)
		filter.ToDate = &end
	}

	list, err := h.q.List(c.Request.Context(), userID, filter)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(list))
}

// @Summary Get order
// @Description Customers see their own orders; staff see every order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	userID, role, ok := identity(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID, role, orderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Cancel order
// @Description Cancel a pending or confirmed order; capacity and stock are returned and card payments voided or refunded
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.CancelOrderRequest false "Cancel reason"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, _, ok := identity(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	middleware.SetOrderID(c, orderID)
	view, err := h.cmds.CancelOrder(c.Request.Context(), userID, orderID, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Refund order
// @Description Refund a delivered card order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.RefundOrderRequest true "Refund reason"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /orders/{id}/refund [post]
func (h *OrderHandler) Refund(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.RefundOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	middleware.SetOrderID(c, orderID)
	view, err := h.cmds.RefundOrder(c.Request.Context(), orderID, req.Reason)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// @Summary Advance order status
// @Description Move an order one step along the fulfilment chain
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body reqdto.AdvanceStatusRequest true "Target status"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) AdvanceStatus(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	middleware.SetOrderID(c, orderID)
	view, err := h.cmds.AdvanceStatus(c.Request.Context(), orderID, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}

// binding already validated the layout
func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.DateOnly, *s)
	if err != nil {
		return nil
	}
	return &t
}
