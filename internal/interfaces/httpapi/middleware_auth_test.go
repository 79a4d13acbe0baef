package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fplstack/companion/internal/domain/user"
	"github.com/fplstack/companion/internal/usecase"
)

type stubVerifier struct {
	principal user.Principal
	err       error
}

func (s *stubVerifier) VerifyAccessToken(_ context.Context, _ string) (user.Principal, error) {
	return s.principal, s.err
}

func TestRequireAuth_AttachesPrincipal(t *testing.T) {
	verifier := &stubVerifier{principal: user.Principal{UserID: "user-1", Email: "one@example.com"}}

	var got user.Principal
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = principalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer token-1")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !ok {
		t.Fatalf("expected principal in request context")
	}
	if got.UserID != "user-1" {
		t.Fatalf("principal user id: got=%q want=%q", got.UserID, "user-1")
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	verifier := &stubVerifier{principal: user.Principal{UserID: "user-1"}}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run without credentials")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", nil)
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	verifier := &stubVerifier{principal: user.Principal{UserID: "user-1"}}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run without credentials")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireAuth_VerifierRejects(t *testing.T) {
	verifier := &stubVerifier{err: fmt.Errorf("%w: inactive token", usecase.ErrUnauthorized)}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatalf("next handler must not run for a rejected token")
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
