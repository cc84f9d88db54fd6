package middleware

import (
	"fridge-inventory/config"
	"fridge-inventory/pkg/log"
	"fridge-inventory/pkg/scope"
)

type Middleware struct {
	l            log.Logger
	jwtManager   scope.Manager
	cookieConfig config.CookieConfig
	limiter      *rateLimiter
}

// New builds the middleware set. requestsPerMin bounds RateLimit per caller.
func New(l log.Logger, jwtManager scope.Manager, cookieConfig config.CookieConfig, requestsPerMin int) Middleware {
	return Middleware{
		l:            l,
		jwtManager:   jwtManager,
		cookieConfig: cookieConfig,
		limiter:      newRateLimiter(requestsPerMin),
	}
}
