package httpapi

import (
	"net/http"
	"strings"
	"time"
)

const (
	activeTeamCookieName   = "activeTeamId"
	activeTeamCookieMaxAge = 30 * 24 * time.Hour
)

func (h *Handler) setActiveTeamCookie(w http.ResponseWriter, teamID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     activeTeamCookieName,
		Value:    teamID,
		Path:     "/",
		MaxAge:   int(activeTeamCookieMaxAge.Seconds()),
		Expires:  time.Now().Add(activeTeamCookieMaxAge),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func activeTeamFromCookie(r *http.Request) string {
	c, err := r.Cookie(activeTeamCookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}
