package http

import (
	"github.com/gin-gonic/gin"
)

// processNamesReq binds the {"names": [...]} body shared by the bulk commands.
func (h *handler) processNamesReq(c *gin.Context) (namesReq, error) {
	var req namesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSetContentReq(c *gin.Context) (setContentReq, error) {
	var req setContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSetLabelReq(c *gin.Context) (setLabelReq, error) {
	var req setLabelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
