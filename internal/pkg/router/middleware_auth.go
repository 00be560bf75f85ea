package router

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

// middlewareAuthentication gates non-public endpoints on an authenticated
// server-side session. Pending (unverified) sessions do not pass.
func middlewareAuthentication(store session.Store, publicEndpoints map[string]map[string]struct{}) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := matchedRoutePath(r)

			if s, ok := publicEndpoints[r.Method]; ok {
				if _, skip := s[path]; skip {
					next.ServeHTTP(w, r)
					return
				}
			}

			token, ok := session.GetToken(r.Context())
			if !ok {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			state, err := store.Load(r.Context(), token)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
					return
				}

				slog.ErrorContext(r.Context(), "router: failed to load session", "error", err)
				writeJSON(w, errorResponse{Message: "Internal server error"}, http.StatusInternalServerError)
				return
			}
			if state.Auth == nil {
				writeJSON(w, errorResponse{Message: "Authentication required"}, http.StatusUnauthorized)
				return
			}

			ctx := session.SetAuth(r.Context(), *state.Auth)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
