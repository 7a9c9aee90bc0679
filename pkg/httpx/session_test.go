package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/Gunvolt24/storefront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionRouter(gotID *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.SessionMiddleware("", false))
	r.GET("/", func(c *gin.Context) {
		*gotID, _ = ctxmeta.SessionIDFromContext(c.Request.Context())
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestSessionMiddleware_IssuesCookie(t *testing.T) {
	var gotID string
	r := newSessionRouter(&gotID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, httpx.DefaultSessionCookie, c.Name)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	_, err := uuid.Parse(c.Value)
	require.NoError(t, err)
	assert.Equal(t, c.Value, gotID)
}

func TestSessionMiddleware_ReusesValidCookie(t *testing.T) {
	var gotID string
	r := newSessionRouter(&gotID)
	existing := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: httpx.DefaultSessionCookie, Value: existing})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Result().Cookies())
	assert.Equal(t, existing, gotID)
}

func TestSessionMiddleware_ReplacesGarbageCookie(t *testing.T) {
	var gotID string
	r := newSessionRouter(&gotID)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: httpx.DefaultSessionCookie, Value: "not-a-uuid"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "not-a-uuid", gotID)
	assert.Equal(t, cookies[0].Value, gotID)
}

func TestPageSessionMiddleware_RotatesAndDiscardsOld(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var discarded, gotID string
	r := gin.New()
	r.GET("/", httpx.PageSessionMiddleware("", false, func(_ context.Context, old string) {
		discarded = old
	}), func(c *gin.Context) {
		gotID, _ = ctxmeta.SessionIDFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	old := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: httpx.DefaultSessionCookie, Value: old})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, old, discarded)
	assert.NotEqual(t, old, cookies[0].Value)
	assert.Equal(t, cookies[0].Value, gotID)
}

func TestPageSessionMiddleware_NoCookieNothingDiscarded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	called := false
	r := gin.New()
	r.GET("/", httpx.PageSessionMiddleware("", false, func(context.Context, string) { called = true }),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	assert.False(t, called)
	require.Len(t, w.Result().Cookies(), 1)
}
