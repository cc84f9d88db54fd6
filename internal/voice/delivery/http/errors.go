package http

import (
	"errors"
	"net/http"

	"fridge-inventory/internal/voice"
	pkgErrors "fridge-inventory/pkg/errors"
)

var (
	errCommandTooLong  = pkgErrors.NewHTTPError(130001, "Command is too long")
	errQueryTooLong    = pkgErrors.NewHTTPError(130002, "Search term is too long")
	errEmptyCommand    = pkgErrors.NewHTTPError(130003, "Command text is required")
	errEmptyQuery      = pkgErrors.NewHTTPError(130004, "Search term is required")
	errEmptyAudio      = pkgErrors.NewHTTPError(130005, "Audio file is required")
	errAudioTooLarge   = pkgErrors.NewHTTPErrorWithStatus(http.StatusRequestEntityTooLarge, 130006, "Audio file is too large")
	errRateLimited     = pkgErrors.NewHTTPErrorWithStatus(http.StatusTooManyRequests, 130007, "Voice assistant is busy, try again in a moment")
	errUnavailable     = pkgErrors.NewHTTPErrorWithStatus(http.StatusServiceUnavailable, 130008, "Voice assistant is temporarily unavailable")
	errNoTranscriber   = pkgErrors.NewHTTPErrorWithStatus(http.StatusNotImplemented, 130009, "Speech transcription is not configured")
	errEmptyTranscript = pkgErrors.NewHTTPErrorWithStatus(http.StatusUnprocessableEntity, 130010, "Nothing was recognised in the recording")
)

// mapError translates voice errors into HTTP errors. Anything unmapped is
// rendered as a masked 500 by response.Error.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrEmptyCommand):
		return errEmptyCommand
	case errors.Is(err, voice.ErrEmptyQuery):
		return errEmptyQuery
	case errors.Is(err, voice.ErrEmptyAudio):
		return errEmptyAudio
	case errors.Is(err, voice.ErrInterpreterRateLimited):
		return errRateLimited
	case errors.Is(err, voice.ErrInterpreterUnavailable):
		return errUnavailable
	case errors.Is(err, voice.ErrNoTranscriber):
		return errNoTranscriber
	case errors.Is(err, voice.ErrEmptyTranscript):
		return errEmptyTranscript
	default:
		return err
	}
}
