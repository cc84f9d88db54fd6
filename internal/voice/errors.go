package voice

import "errors"

var (
	ErrEmptyCommand    = errors.New("command text is empty")
	ErrEmptyQuery      = errors.New("search term is empty")
	ErrEmptyAudio      = errors.New("audio is empty")
	ErrNoTranscriber   = errors.New("speech transcription is not configured")
	ErrEmptyTranscript = errors.New("nothing was recognised in the audio")

	// ErrMalformedInterpretation means the model answered with something that
	// is not the expected structure. The pipeline recovers from it locally.
	ErrMalformedInterpretation = errors.New("interpreter returned malformed output")

	// ErrInterpreterUnavailable and ErrInterpreterRateLimited are infrastructure
	// failures of the language model and propagate to the caller.
	ErrInterpreterUnavailable = errors.New("interpreter unavailable")
	ErrInterpreterRateLimited = errors.New("interpreter rate limited")
)
