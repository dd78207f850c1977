package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
)

// Session describes who is making the current request. The zero value is
// an anonymous visitor.
type Session struct {
	Authenticated bool
	ID            string
	UserID        int64
	Username      string
}

type ctxKey string

const sessionKey ctxKey = "session"

func withSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the request's session, anonymous if none was
// attached.
func SessionFromContext(ctx context.Context) Session {
	s, _ := ctx.Value(sessionKey).(Session)
	return s
}

// loadSession resolves the session cookie and attaches the result to the
// request context. Revoked, expired or forged cookies are cleared.
func (h *Handler) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var s Session

		if c, err := r.Cookie(common.SessionCookieName); err == nil && c.Value != "" {
			id, err := h.sessions.Resolve(r.Context(), c.Value)
			switch {
			case err == nil:
				s = Session{Authenticated: true, ID: id.SessionID, UserID: id.UserID, Username: id.Username}
			case errors.Is(err, common.ErrSessionExpired), errors.Is(err, common.ErrInvalidToken):
				h.clearSessionCookie(w)
			default:
				h.logger.Error(r.Context(), "session lookup failed", "error", err)
			}
		}

		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), s)))
	})
}

// requireLogin sends anonymous visitors to the login page; the wrapped
// handler never runs for them.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !SessionFromContext(r.Context()).Authenticated {
			h.flash(w, r, FlashDanger, "Please log in to access this page.")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
