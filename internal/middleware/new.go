package middleware

import (
	pkgLog "agenda-notifier/pkg/log"
)

// Middleware holds the gin middlewares guarding the trigger routes.
type Middleware struct {
	l            pkgLog.Logger
	triggerToken string
	rateLimiter  *rateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l pkgLog.Logger, triggerToken string, requestsPerMin int) Middleware {
	return Middleware{
		l:            l,
		triggerToken: triggerToken,
		rateLimiter:  newRateLimiter(requestsPerMin),
	}
}
