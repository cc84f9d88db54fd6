package http

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"fridge-inventory/internal/model"
	"fridge-inventory/internal/voice"
	"fridge-inventory/pkg/scope"
)

const defaultAudioMIMEType = "audio/ogg"

// processScope returns the caller's scope set by middleware.Auth.
func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	sc, ok := scope.GetScopeFromContext(c.Request.Context())
	if !ok || sc.IsAnonymous() {
		return model.Scope{}, false
	}
	return sc, true
}

// processCommandReq binds the command body and enforces the length limit.
func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Text) == "" {
		return req, errEmptyCommand
	}
	if utf8.RuneCountInString(req.Text) > h.limits.MaxCommandLength {
		return req, errCommandTooLong
	}
	return req, nil
}

// processQueryReq binds the query body and enforces the length limit.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if strings.TrimSpace(req.Query) == "" {
		return req, errEmptyQuery
	}
	if utf8.RuneCountInString(req.Query) > h.limits.MaxQueryLength {
		return req, errQueryTooLong
	}
	return req, nil
}

// processTranscribeReq reads the multipart "audio" file.
func (h *handler) processTranscribeReq(c *gin.Context) (voice.TranscribeInput, error) {
	fh, err := c.FormFile("audio")
	if err != nil {
		return voice.TranscribeInput{}, errEmptyAudio
	}
	if fh.Size > maxAudioBytes {
		return voice.TranscribeInput{}, errAudioTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return voice.TranscribeInput{}, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxAudioBytes+1))
	if err != nil {
		return voice.TranscribeInput{}, err
	}
	if len(data) > maxAudioBytes {
		return voice.TranscribeInput{}, errAudioTooLarge
	}
	if len(data) == 0 {
		return voice.TranscribeInput{}, errEmptyAudio
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = defaultAudioMIMEType
	}
	return voice.TranscribeInput{Audio: data, MIMEType: mimeType}, nil
}
