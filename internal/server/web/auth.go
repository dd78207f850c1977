package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "index.html", view{})
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Error(r.Context(), "health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login.html", view{})
}

// login starts a session on valid credentials. A failed attempt re-renders
// the form with the notice inline.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.Verify(r.Context(), username, password)
	if err != nil {
		if !errors.Is(err, common.ErrInvalidCredentials) {
			h.logger.Error(r.Context(), "login failed", "username", username, "error", err)
		}
		h.render(w, r, http.StatusOK, "login.html", view{
			Flashes: []Flash{{Category: FlashDanger, Message: "Login failed. Please check your username and password."}},
		})
		return
	}

	token, id, err := h.sessions.Start(r.Context(), user)
	if err != nil {
		h.failure(w, r, "Session", err)
		redirect(w, r, "/login")
		return
	}

	h.setSessionCookie(w, token, id.ExpiresAt)
	h.logger.Info(r.Context(), "user logged in", "user_id", user.ID)
	h.flash(w, r, FlashSuccess, "Welcome back, "+user.Username+"!")
	redirect(w, r, "/")
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "register.html", view{})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.users.Register(r.Context(), username, password)
	switch {
	case err == nil:
		h.flash(w, r, FlashSuccess, "Account created! Please log in.")
		redirect(w, r, "/login")
	case errors.Is(err, common.ErrDuplicateUsername):
		h.flash(w, r, FlashDanger, "Username already exists.")
		redirect(w, r, "/register")
	default:
		h.failure(w, r, "User", err)
		redirect(w, r, "/register")
	}
}

// logout revokes the server-side session so the old cookie stops working
// even if a client keeps it.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if c, err := r.Cookie(common.SessionCookieName); err == nil && c.Value != "" {
		if err := h.sessions.End(r.Context(), c.Value); err != nil {
			h.logger.Error(r.Context(), "logout failed", "error", err)
		}
	}
	h.clearSessionCookie(w)
	h.flash(w, r, FlashInfo, "You have been logged out.")
	redirect(w, r, "/login")
}
