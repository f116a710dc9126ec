package http

import (
	"github.com/gin-gonic/gin"

	"task-calendar/internal/event"
)

// processCreateReq binds the create body and converts it to use-case input.
func (h *handler) processCreateReq(c *gin.Context) (event.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return event.CreateInput{}, err
	}
	return req.toInput(h.loc)
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update body plus the URI id.
func (h *handler) processUpdateReq(c *gin.Context) (event.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return event.UpdateInput{}, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return event.UpdateInput{}, errIDRequired
	}
	return req.toInput(h.loc)
}

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
