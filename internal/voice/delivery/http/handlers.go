package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "fridge-inventory/pkg/errors"
	"fridge-inventory/pkg/response"
)

// Command godoc
// @Summary     Run a natural-language command
// @Description Interprets a Polish command such as "dodaj 2 mleka na górną półkę" and applies the resulting actions in order.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command text (at most 500 characters)"
// @Success     200 {object} commandResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "Interpreter unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/command [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCommandReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	def, err := h.inventoryUC.GetDefaultShelf(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "voice.delivery.http.Command: inventoryUC.GetDefaultShelf: %v", err)
		response.Error(c, err)
		return
	}
	defaultShelfID := ""
	if def.Shelf != nil {
		defaultShelfID = def.Shelf.Shelf.ID
	}

	output, err := h.uc.ProcessCommand(ctx, sc, req.toInput(defaultShelfID))
	if err != nil {
		h.l.Errorf(ctx, "voice.delivery.http.Command: uc.ProcessCommand: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newCommandResp(output))
}

// Query godoc
// @Summary     Look up stored items
// @Description Case-insensitive search that sums quantities of same-named items across shelves.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Search term (at most 200 characters) and optional container filter"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/query [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processQueryReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	output, err := h.uc.ProcessQuery(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "voice.delivery.http.Query: uc.ProcessQuery: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// Transcribe godoc
// @Summary     Transcribe a voice recording
// @Description Converts recorded speech to text with the configured speech-to-text engine.
// @Tags        Voice
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio formData file true "Recording (ogg/opus, webm, flac, wav)"
// @Success     200 {object} transcribeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     413 {object} response.Resp "Recording too large"
// @Failure     422 {object} response.Resp "Nothing recognised"
// @Failure     501 {object} response.Resp "Transcription not configured"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/voice/transcribe [POST]
func (h *handler) Transcribe(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := h.processScope(c); !ok {
		response.Unauthorized(c)
		return
	}

	input, err := h.processTranscribeReq(c)
	if err != nil {
		h.renderBindError(c, err)
		return
	}

	text, err := h.uc.Transcribe(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "voice.delivery.http.Transcribe: uc.Transcribe: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, transcribeResp{Text: text})
}

// renderBindError renders HTTPErrors as they are and binding failures as 400.
func (h *handler) renderBindError(c *gin.Context, err error) {
	if _, ok := pkgErrors.AsHTTPError(err); ok {
		response.Error(c, err)
		return
	}
	response.ValidationError(c, err)
}
