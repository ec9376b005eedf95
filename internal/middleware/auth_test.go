package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/entities"
	"github.com/SergeyBogomolovv/herbal-pharmacy/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type staticVerifier map[string]entities.Caller

func (v staticVerifier) Verify(token string) (entities.Caller, error) {
	c, ok := v[token]
	if !ok {
		return entities.Caller{}, errors.New("unknown token")
	}
	return c, nil
}

func TestAuth(t *testing.T) {
	verifier := staticVerifier{
		"customer": {UserID: 7, Role: entities.RoleCustomer},
		"admin":    {UserID: 1, Role: entities.RoleAdmin},
	}

	r := chi.NewRouter()
	r.Use(middleware.Authenticate(verifier))
	r.Get("/public", func(w http.ResponseWriter, r *http.Request) {
		if _, ok := middleware.CallerFrom(r.Context()); ok {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	r.With(middleware.RequireRole()).Get("/user", func(w http.ResponseWriter, r *http.Request) {})
	r.With(middleware.RequireRole(entities.RoleAdmin)).Get("/admin", func(w http.ResponseWriter, r *http.Request) {})

	testCases := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "anonymous public", path: "/public", wantStatus: http.StatusOK},
		{name: "signed-in public", path: "/public", header: "Bearer customer", wantStatus: http.StatusAccepted},
		{name: "bad scheme", path: "/public", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", path: "/public", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
		{name: "anonymous user route", path: "/user", wantStatus: http.StatusUnauthorized},
		{name: "customer user route", path: "/user", header: "Bearer customer", wantStatus: http.StatusOK},
		{name: "customer admin route", path: "/admin", header: "Bearer customer", wantStatus: http.StatusForbidden},
		{name: "admin admin route", path: "/admin", header: "Bearer admin", wantStatus: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
