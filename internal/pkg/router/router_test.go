package router

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/putrawicaksana/travelreg/internal/pkg/instrument"
	"github.com/putrawicaksana/travelreg/internal/pkg/session"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

type stubStore struct {
	state *session.State
	err   error
}

func (s *stubStore) Load(context.Context, string) (*session.State, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.state, nil
}

func (s *stubStore) Save(context.Context, string, *session.State, time.Duration) error {
	return nil
}

func (s *stubStore) Delete(context.Context, string) error {
	return nil
}

func newTestRouter(store session.Store) *Router {
	return NewRouter(Config{
		UUID:         fixedID("cid-generated"),
		SessionToken: fixedID("tok-generated"),
		Sessions:     store,
		SessionTTL:   time.Hour,
		Instrument:   instrument.NewNoop(),
	})
}

func TestRouterSeparatesCorrelationIDFromSessionToken(t *testing.T) {
	// Arrange
	rt := newTestRouter(&stubStore{})
	rt.GET("/", func(*Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	// Act
	rt.ServeHTTP(rec, req)

	// Assert
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	cid := rec.Header().Get(HeaderCorrelationID)
	if cid != "cid-generated" {
		t.Fatalf("correlation ID = %q, want %q", cid, "cid-generated")
	}

	var token string
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			token = c.Value
		}
	}
	if token != "tok-generated" {
		t.Fatalf("session token = %q, want %q", token, "tok-generated")
	}
	if token == cid {
		t.Fatalf("session token %q must not reuse the correlation ID", token)
	}
}

func TestMiddlewareAuthenticationStoreOutcomes(t *testing.T) {
	tests := []struct {
		name  string
		store *stubStore
		want  int
	}{
		{
			name:  "store failure answers 500",
			store: &stubStore{err: errors.New("redis: connection refused")},
			want:  http.StatusInternalServerError,
		},
		{
			name:  "missing session answers 401",
			store: &stubStore{err: session.ErrNotFound},
			want:  http.StatusUnauthorized,
		},
		{
			name: "pending session answers 401",
			store: &stubStore{state: &session.State{
				Pending: &session.Pending{Kind: session.KindLogin, Email: "trip@example.com"},
			}},
			want: http.StatusUnauthorized,
		},
		{
			name: "authenticated session passes",
			store: &stubStore{state: &session.State{
				Auth: &session.Auth{AccountID: 7, Username: "putra", Email: "trip@example.com"},
			}},
			want: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			rt := newTestRouter(tc.store)
			rt.GET("/me", func(*Request) (any, error) {
				return map[string]string{"status": "ok"}, nil
			})

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "tok-browser"})
			rec := httptest.NewRecorder()

			// Act
			rt.ServeHTTP(rec, req)

			// Assert
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}
