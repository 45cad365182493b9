package feed

import "github.com/labstack/echo/v4"

// The store handle is only reachable inside an active provider scope.
// Reaching for it anywhere else is a wiring bug and panics, unlike data
// errors which degrade silently.

const contextKey = "feed.store"

// Middleware installs the store handle into the request scope
func Middleware(store *FeedStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(contextKey, store)
			return next(c)
		}
	}
}

// MustFromContext returns the store handle for the active scope.
// It panics when called outside one.
func MustFromContext(c echo.Context) *FeedStore {
	store, ok := c.Get(contextKey).(*FeedStore)
	if !ok {
		panic("feed: store accessed outside an active provider scope")
	}
	return store
}
