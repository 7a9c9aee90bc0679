package httpx

import (
	"context"
	"net/http"

	"github.com/Gunvolt24/storefront/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// DefaultSessionCookie — имя cookie сессии витрины по умолчанию.
const DefaultSessionCookie = "sid"

// SessionMiddleware:
// - берёт ID сессии из cookie или выпускает новый UUID
// - кладёт его в контекст (ctxmeta.SessionIDFromContext)
// - новый ID отдаёт клиенту cookie HttpOnly, SameSite=Lax
func SessionMiddleware(cookieName string, secure bool) gin.HandlerFunc {
	cookieName = orDefaultCookie(cookieName)
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || !validSessionID(sessionID) {
			sessionID = issueSession(c, cookieName, secure)
		}
		c.Request = c.Request.WithContext(ctxmeta.WithSessionID(c.Request.Context(), sessionID))
		c.Next()
	}
}

// PageSessionMiddleware — загрузка страницы начинает новую сессию: всегда выдаётся
// свежий ID, а прежний (если был) передаётся в discard.
func PageSessionMiddleware(cookieName string, secure bool, discard func(ctx context.Context, oldID string)) gin.HandlerFunc {
	cookieName = orDefaultCookie(cookieName)
	return func(c *gin.Context) {
		if old, err := c.Cookie(cookieName); err == nil && validSessionID(old) && discard != nil {
			discard(c.Request.Context(), old)
		}
		sessionID := issueSession(c, cookieName, secure)
		c.Request = c.Request.WithContext(ctxmeta.WithSessionID(c.Request.Context(), sessionID))
		c.Next()
	}
}

func issueSession(c *gin.Context, cookieName string, secure bool) string {
	sessionID := uuid.NewString()
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sessionID
}

func orDefaultCookie(name string) string {
	if name == "" {
		return DefaultSessionCookie
	}
	return name
}

// принимаются только UUID
func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
