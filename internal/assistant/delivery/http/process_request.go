package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-calendar/internal/assistant"
)

// processCommandReq binds the command body. The session id may also come from X-Session-ID.
func (h *handler) processCommandReq(c *gin.Context) (assistant.ProcessInput, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return assistant.ProcessInput{}, err
	}
	if req.SessionID == "" {
		req.SessionID = c.GetHeader(sessionHeader)
	}
	return req.toInput(), nil
}

func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSessionID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", errSessionIDRequired
	}
	return id, nil
}
