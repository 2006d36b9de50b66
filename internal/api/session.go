package api

import (
	"net/http"

	"github.com/campusware/course-advisor/internal/service"
)

// sessionCookieName carries the opaque session ID between requests.
const sessionCookieName = "advisor_session"

// ensureSession returns the request's session ID, creating a new session and
// setting the cookie when the request carries none (or a stale one).
func ensureSession(w http.ResponseWriter, r *http.Request, store *service.SessionStore) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if _, ok := store.Get(cookie.Value); ok {
			return cookie.Value
		}
	}

	id := store.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
