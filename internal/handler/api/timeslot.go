package api

import (
	"context"
	"net/http"

	reqdto "gin-order-service/internal/handler/dto/request"
	resdto "gin-order-service/internal/handler/dto/response"
	"gin-order-service/internal/handler/httperr"
	"gin-order-service/internal/usecase/commands"
	"gin-order-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TimeslotHandler struct {
	cmds commands.TimeslotCommands
	q    queries.TimeslotQueries
}

func NewTimeslotHandler(cmds commands.TimeslotCommands, q queries.TimeslotQueries) *TimeslotHandler {
	return &TimeslotHandler{cmds: cmds, q: q}
}

// @Summary List available timeslots
// @Description Slots of one day that are active, before cutoff and below capacity
// @Tags timeslots
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param includeBuffer query bool false "Count buffer capacity as available"
// @Success 200 {array} resdto.TimeslotResponse
// @Failure 400 {object} httperr.Response
// @Router /timeslots/available [get]
func (h *TimeslotHandler) ListAvailable(c *gin.Context) {
	var req reqdto.AvailableTimeslotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := req.ParseDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	slots, err := h.q.ListAvailable(c.Request.Context(), date, req.IncludeBuffer)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeslotViews(slots))
}

// @Summary Weekly timeslots
// @Description Seven days of slots starting at startDate (default today)
// @Tags timeslots
// @Produce json
// @Param startDate query string false "First day (YYYY-MM-DD)"
// @Param includeBuffer query bool false "Count buffer capacity as available"
// @Success 200 {object} resdto.WeeklyTimeslotsResponse
// @Failure 400 {object} httperr.Response
// @Router /timeslots/weekly [get]
func (h *TimeslotHandler) Weekly(c *gin.Context) {
	var req reqdto.WeeklyTimeslotsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	start, err := req.ParseStartDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid startDate", nil)
		return
	}

	week, err := h.q.Weekly(c.Request.Context(), start, req.IncludeBuffer)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWeeklyView(week))
}

// @Summary Get timeslot
// @Tags timeslots
// @Produce json
// @Param id path string true "Timeslot ID"
// @Success 200 {object} resdto.TimeslotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /timeslots/{id} [get]
func (h *TimeslotHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeslotView(view))
}

// @Summary Generate timeslots
// @Description Create one slot per template entry for every day in the range
// @Tags timeslots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.GenerateSlotsRequest true "Generation template"
// @Success 201 {array} resdto.TimeslotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /timeslots/generate [post]
func (h *TimeslotHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	slots, err := h.cmds.Generate(c.Request.Context(), req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTimeslotViews(slots))
}

// @Summary Update timeslot settings
// @Description Omitted fields keep their stored value
// @Tags timeslots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Timeslot ID"
// @Param request body reqdto.UpdateTimeslotRequest true "Settings"
// @Success 200 {object} resdto.TimeslotResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /timeslots/{id} [patch]
func (h *TimeslotHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateTimeslotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeslotView(view))
}

// @Summary Reserve capacity
// @Description Hold one unit of slot capacity for an order; repeating the call is a no-op
// @Tags timeslots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Timeslot ID"
// @Param request body reqdto.ReservationRequest true "Order to hold"
// @Success 200 {object} resdto.TimeslotResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /timeslots/{id}/reserve [post]
func (h *TimeslotHandler) Reserve(c *gin.Context) {
	h.holdOrRelease(c, h.cmds.Reserve)
}

// @Summary Release capacity
// @Tags timeslots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Timeslot ID"
// @Param request body reqdto.ReservationRequest true "Order to release"
// @Success 200 {object} resdto.TimeslotResponse
// @Failure 404 {object} httperr.Response
// @Router /timeslots/{id}/release [post]
func (h *TimeslotHandler) Release(c *gin.Context) {
	h.holdOrRelease(c, h.cmds.Release)
}

func (h *TimeslotHandler) holdOrRelease(c *gin.Context, run func(context.Context, uuid.UUID, uuid.UUID) (*queries.TimeslotView, error)) {
	slotID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	orderID := uuid.MustParse(req.OrderID)

	view, err := run(c.Request.Context(), slotID, orderID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeslotView(view))
}
