package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"voice-memos/pkg/response"
)

const (
	ServiceName    = "voice-memos"
	ServiceVersion = "1.0.0"

	readyTimeout = 2 * time.Second
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type healthResp struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Store   string `json:"store,omitempty"`
}

func newHealthResp(status string) healthResp {
	return healthResp{Status: status, Service: ServiceName, Version: ServiceVersion}
}

// healthCheck godoc
// @Summary Health check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, newHealthResp("healthy"))
}

// readyCheck reports ready once the memo store answers a ping.
// @Summary Readiness check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Failure 503 {object} response.Resp
// @Router  /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	resp := newHealthResp("ready")
	if srv.db == nil {
		response.OK(c, resp)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: store ping failed: %v", err)
		resp.Status, resp.Store = "not ready", "unreachable"
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "memo store unreachable",
			Data:      resp,
		})
		return
	}

	resp.Store = "ok"
	response.OK(c, resp)
}

// liveCheck godoc
// @Summary Liveness check
// @Tags    Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router  /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, newHealthResp("alive"))
}
