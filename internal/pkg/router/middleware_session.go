package router

import (
	"net/http"
	"time"

	"github.com/putrawicaksana/travelreg/internal/pkg/session"
	"github.com/putrawicaksana/travelreg/internal/pkg/uid"
)

// middlewareSession makes sure every request carries a session token. A new
// token is minted and set as a cookie when the browser presents none; the
// server-side state is created lazily by whichever handler first saves it.
func middlewareSession(uid uid.StringID, ttl time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var token string
			if c, err := r.Cookie(session.CookieName); err == nil && c.Value != "" {
				token = c.Value
			}

			if token == "" && uid != nil {
				token = uid.Generate()
				http.SetCookie(w, &http.Cookie{
					Name:     session.CookieName,
					Value:    token,
					Path:     "/",
					MaxAge:   int(ttl.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			if token != "" {
				r = r.WithContext(session.SetToken(r.Context(), token))
			}

			next.ServeHTTP(w, r)
		})
	}
}
