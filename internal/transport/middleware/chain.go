package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain composes mws so that the first one runs outermost. Nil entries are
// skipped, which lets callers pass optional middleware inline.
func Chain(mws ...Middleware) Middleware {
	return func(h http.Handler) http.Handler {
		for i := range mws {
			if mw := mws[len(mws)-1-i]; mw != nil {
				h = mw(h)
			}
		}
		return h
	}
}
