package handlers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	applog "vartheme/internal/log"
)

// visitorToken returns the long-lived visitor identifier, issuing a new
// cookie on first contact. Without a database there is nothing to key and
// no cookie is set.
func visitorToken(w http.ResponseWriter, r *http.Request) string {
	if database == nil {
		return ""
	}

	if cookie, err := r.Cookie(visitor.cookieName); err == nil {
		if token := strings.TrimSpace(cookie.Value); validToken(token) {
			return token
		}
		applog.Debug(r.Context(), "ignoring malformed visitor cookie")
	}

	token := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     visitor.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(visitor.lifetime.Seconds()),
		HttpOnly: true,
		Secure:   visitor.secure,
		SameSite: http.SameSiteLaxMode,
	})
	applog.Debug(r.Context(), "issued visitor cookie")
	return token
}

func validToken(token string) bool {
	_, err := uuid.Parse(token)
	return err == nil
}
