package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/middleware"
	"task-calendar/pkg/response"
)

// Command godoc
// @Summary     Run a natural-language command
// @Description Classifies the text, applies it to the event store and records the turn in the session.
// @Description A missing session_id starts a new session whose id is returned.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       Authorization header string     false "Bearer token"
// @Param       X-Session-ID  header string     false "Session id, used when the body has none"
// @Param       body          body   commandReq true  "Command"
// @Success     200 {object} commandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Session busy"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/commands [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCommandReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, middleware.GetScope(c), input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCommandResp(output))
}

// Classify godoc
// @Summary     Classify text without acting on it
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body     classifyReq true "Text to classify"
// @Success     200  {object} intentResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/assistant/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, newIntentResp(h.uc.Classify(c.Request.Context(), req.Text)))
}

// History godoc
// @Summary     Get session history
// @Description Returns the last turns of a session, oldest first, plus the last response.
// @Tags        Assistant
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions/{id} [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.History(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// ClearHistory godoc
// @Summary     Clear session history
// @Tags        Assistant
// @Produce     json
// @Param       id  path     string true "Session ID"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions/{id} [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processSessionID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.ClearHistory(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.ClearHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
