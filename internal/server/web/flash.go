package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/airlineadmin/internal/common"
)

// Flash categories map to CSS classes in the layout.
const (
	FlashSuccess = "success"
	FlashInfo    = "info"
	FlashDanger  = "danger"
)

// Flash is a one-shot notice shown on the next rendered page.
type Flash struct {
	Category string `json:"c"`
	Message  string `json:"m"`
}

func decodeFlashes(v string) []Flash {
	raw, err := base64.RawURLEncoding.DecodeString(v)
	if err != nil {
		return nil
	}
	var out []Flash
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

func encodeFlashes(fs []Flash) string {
	raw, _ := json.Marshal(fs)
	return base64.RawURLEncoding.EncodeToString(raw)
}

func pendingFlashes(r *http.Request) []Flash {
	c, err := r.Cookie(common.FlashCookieName)
	if err != nil {
		return nil
	}
	return decodeFlashes(c.Value)
}

// flash queues a notice for the next page view, keeping notices that have
// not been shown yet.
func (h *Handler) flash(w http.ResponseWriter, r *http.Request, category, message string) {
	fs := append(pendingFlashes(r), Flash{Category: category, Message: message})
	http.SetCookie(w, &http.Cookie{
		Name:     common.FlashCookieName,
		Value:    encodeFlashes(fs),
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlashes returns the queued notices and clears the cookie.
func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	fs := pendingFlashes(r)
	if fs == nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     common.FlashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return fs
}
