package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
	"task-calendar/pkg/response"
)

// Create godoc
// @Summary     Create an event
// @Description Creates an event. The creator is recorded when the caller is authenticated.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       Authorization header string    false "Bearer token"
// @Param       body          body   createReq true  "Event data"
// @Success     200 {object} eventItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, eventItemResp{Event: newEventResp(output.Event)})
}

// List godoc
// @Summary     List events
// @Description Returns visible events, oldest first.
// @Tags        Events
// @Produce     json
// @Param       Authorization header string false "Bearer token"
// @Param       limit         query  int    false "Page size (0 = all)"
// @Param       offset        query  int    false "Page offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get event detail
// @Tags        Events
// @Produce     json
// @Param       Authorization header string false "Bearer token"
// @Param       id            path   string true  "Event ID"
// @Success     200 {object} eventItemResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	output, err := h.uc.Detail(ctx, middleware.GetScope(c), id)
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, eventItemResp{Event: newEventResp(output.Event)})
}

// Update godoc
// @Summary     Update an event
// @Description Partial update. Only provided fields change. Set clear_end to drop the end time.
// @Tags        Events
// @Accept      json
// @Produce     json
// @Param       Authorization header string    false "Bearer token"
// @Param       id            path   string    true  "Event ID"
// @Param       body          body   updateReq true  "Fields to update"
// @Success     200 {object} eventItemResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, eventItemResp{Event: newEventResp(output.Event)})
}

// Delete godoc
// @Summary     Delete an event
// @Tags        Events
// @Produce     json
// @Param       Authorization header string false "Bearer token"
// @Param       id            path   string true  "Event ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, errIDRequired)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Search godoc
// @Summary     Search events by title
// @Description Case-insensitive title substring search. Exact matches rank first. At most 20 results.
// @Tags        Events
// @Produce     json
// @Param       Authorization header string false "Bearer token"
// @Param       q             query  string true  "Title text"
// @Param       limit         query  int    false "Max results (<= 20)"
// @Success     200 {object} searchResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Search(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Search: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, searchResp{Events: newEventResps(output.Events)})
}

// Query godoc
// @Summary     Filter events by date range and text
// @Description date_range accepts today, tomorrow, this_week, next_week (spaces or hyphens allowed) or a date.
// @Tags        Events
// @Produce     json
// @Param       Authorization header string false "Bearer token"
// @Param       date_range    query  string false "Date range keyword or date"
// @Param       q             query  string false "Text matched against title and description"
// @Param       time_of_day   query  string false "morning, afternoon or evening"
// @Success     200 {object} queryResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/query [GET]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Query(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// Export godoc
// @Summary     Export events as iCalendar
// @Tags        Events
// @Produce     text/calendar
// @Param       Authorization header string false "Bearer token"
// @Param       date_range    query  string false "Date range keyword or date"
// @Success     200 {file} file
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/events/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, middleware.GetScope(c), req.toExportInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", output.Filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", output.Content)
}
