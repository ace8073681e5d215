package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	memoHTTP "voice-memos/internal/memo/delivery/http"
	"voice-memos/internal/middleware"
)

// setupMemoDomain registers the memo command routes.
// The use case is built by the caller so the CLI and the server share one wiring.
func (srv HTTPServer) setupMemoDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := memoHTTP.New(srv.l, srv.memoUC)

	// Routes: registers /api/v1/memos
	memoHTTP.RegisterRoutes(api.Group("/memos"), h, mw)

	srv.l.Infof(ctx, "Memo domain registered")
	return nil
}
