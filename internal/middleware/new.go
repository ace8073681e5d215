package middleware

import (
	"voice-memos/pkg/log"
)

type Middleware struct {
	l           log.Logger
	apiToken    string
	rateLimiter *rateLimiter
}

// New builds the shared middleware set. An empty apiToken disables Auth;
// a non-positive requestsPerMin disables RateLimit.
func New(l log.Logger, apiToken string, requestsPerMin int) Middleware {
	mw := Middleware{
		l:        l,
		apiToken: apiToken,
	}
	if requestsPerMin > 0 {
		mw.rateLimiter = newRateLimiter(requestsPerMin)
	}
	return mw
}
