package http

import (
	"github.com/gin-gonic/gin"

	"voice-memos/internal/memo"
	"voice-memos/pkg/log"
)

// Handler is the public interface for the memo HTTP delivery layer.
type Handler interface {
	Load(c *gin.Context)
	Kill(c *gin.Context)
	Merge(c *gin.Context)
	SetContent(c *gin.Context)
	SetLabel(c *gin.Context)
	Open(c *gin.Context)
	AddToThings(c *gin.Context)
	Copy(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc memo.UseCase
}

// New creates a new HTTP handler for the memo domain.
func New(l log.Logger, uc memo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
