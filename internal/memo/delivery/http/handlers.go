package http

import (
	"github.com/gin-gonic/gin"

	"voice-memos/pkg/response"
)

// Load godoc
// @Summary     List memos
// @Description Returns every memo ordered by name.
// @Tags        Memos
// @Security    BearerAuth
// @Produce     json
// @Success     200 {object} loadResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos [GET]
func (h *handler) Load(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Load(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Load: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLoadResp(output))
}

// Kill godoc
// @Summary     Delete memos
// @Description Deletes the named memos. Unknown names are ignored.
// @Tags        Memos
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body namesReq true "Memo names"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/kill [POST]
func (h *handler) Kill(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNamesReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.Kill(ctx, req.Names); err != nil {
		h.l.Errorf(ctx, "uc.Kill: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Merge godoc
// @Summary     Merge memos
// @Description Replaces the named memos with one memo. Fewer than two names is a no-op.
// @Tags        Memos
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body namesReq true "Memo names"
// @Success     200 {object} mergeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/merge [POST]
func (h *handler) Merge(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNamesReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	output, err := h.uc.Merge(ctx, req.Names)
	if err != nil {
		h.l.Errorf(ctx, "uc.Merge: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMergeResp(output))
}

// SetContent godoc
// @Summary     Edit a transcript
// @Description Overwrites the content of one memo.
// @Tags        Memos
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body setContentReq true "Memo name and new content"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/content [PUT]
func (h *handler) SetContent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetContentReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.SetContent(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SetContent: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// SetLabel godoc
// @Summary     Relabel a memo
// @Description Sets the category of one memo. Labels are a single lowercase word.
// @Tags        Memos
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body setLabelReq true "Memo name and label"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Invalid label"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/label [PUT]
func (h *handler) SetLabel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetLabelReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.SetLabel(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.SetLabel: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Open godoc
// @Summary     Play recordings
// @Description Launches the audio player with the named files from the storage directory.
// @Tags        Memos
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body namesReq true "Memo names"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Audio file missing"
// @Failure     501 {object} response.Resp "Unsupported platform"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/open [POST]
func (h *handler) Open(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNamesReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.Open(ctx, req.Names); err != nil {
		h.l.Errorf(ctx, "uc.Open: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// AddToThings godoc
// @Summary     Send memos to Things
// @Description Creates one Things to-do per named memo. The memos are kept.
// @Tags        Memos
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body namesReq true "Memo names"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     501 {object} response.Resp "Things not installed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/things [POST]
func (h *handler) AddToThings(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNamesReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.AddToThings(ctx, req.Names); err != nil {
		h.l.Errorf(ctx, "uc.AddToThings: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Copy godoc
// @Summary     Copy transcripts
// @Description Puts the contents of the named memos on the host clipboard.
// @Tags        Memos
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       body body namesReq true "Memo names"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/memos/copy [POST]
func (h *handler) Copy(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processNamesReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	if err := h.uc.Copy(ctx, req.Names); err != nil {
		h.l.Errorf(ctx, "uc.Copy: %v", err)
		response.HTTPError(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
