package speech

import "errors"

var (
	ErrNoCredentials = errors.New("speech: credentials or api key are required")
	ErrUnknownEngine = errors.New("speech: unknown provider")
)
