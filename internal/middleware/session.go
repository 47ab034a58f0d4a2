package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/naturalsuds/soapshop/internal/session"
)

const sessionKey = "session"

// Session loads the request's session from the store (creating one and
// setting the cookie on first contact), exposes it to handlers, and saves
// it back after the handler chain runs.
func Session(store session.Store, cookieName string, ttl time.Duration, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var sess *session.Session
		if id, err := c.Cookie(cookieName); err == nil {
			sess, err = store.Get(ctx, id)
			if err != nil && !errors.Is(err, session.ErrNotFound) {
				log.Warn("load session", "error", err)
			}
		}
		if sess == nil {
			sess = session.New(ttl)
			c.SetCookie(cookieName, sess.ID, int(ttl/time.Second), "/", "", false, true)
		}

		c.Set(sessionKey, sess)
		c.Next()

		if err := store.Put(ctx, sess); err != nil {
			log.Warn("save session", "error", err)
		}
	}
}

func GetSession(c *gin.Context) *session.Session {
	v, _ := c.Get(sessionKey)
	sess, _ := v.(*session.Session)
	return sess
}

// RequireUser gates a route to authenticated actors (user or admin).
// Anonymous visitors are redirected to the login page with the requested
// URL captured so login can return them here.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || sess.Actor().IsAnonymous() {
			redirectToLogin(c, sess)
			return
		}
		c.Next()
	}
}

// RequireAdmin gates a route to the admin actor only.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := GetSession(c)
		if sess == nil || !sess.Actor().IsAdmin() {
			redirectToLogin(c, sess)
			return
		}
		c.Next()
	}
}

func redirectToLogin(c *gin.Context, sess *session.Session) {
	if sess != nil {
		sess.NextURL = c.Request.URL.RequestURI()
	}
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
