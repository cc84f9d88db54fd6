package scope

import "errors"

var (
	ErrEmptyToken   = errors.New("scope: token is empty")
	ErrInvalidToken = errors.New("scope: invalid token")
	ErrMissingScope = errors.New("scope: no scope in context")
)
