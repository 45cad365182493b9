package feed

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMustFromContextPanicsOutsideScope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	assert.Panics(t, func() { MustFromContext(c) })
}

func TestMiddlewareInstallsHandle(t *testing.T) {
	store, _ := emptyStore(t, nil)

	e := echo.New()
	e.GET("/probe", func(c echo.Context) error {
		got := MustFromContext(c)
		require.Same(t, store, got)
		return c.NoContent(http.StatusOK)
	}, Middleware(store))

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
