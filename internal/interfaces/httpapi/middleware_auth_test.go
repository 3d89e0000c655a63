package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/wordle-teams/internal/domain/user"
	"github.com/riskibarqy/wordle-teams/internal/usecase"
)

type stubVerifier struct {
	principal user.Principal
	err       error
	gotToken  string
}

func (v *stubVerifier) VerifyAccessToken(_ context.Context, token string) (user.Principal, error) {
	v.gotToken = token
	if v.err != nil {
		return user.Principal{}, v.err
	}
	return v.principal, nil
}

func TestRequireAuth_InjectsPrincipal(t *testing.T) {
	verifier := &stubVerifier{principal: user.Principal{UserID: "player-1", Email: "ada@example.com"}}

	var seen user.Principal
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, found = principalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	req.Header.Set("Authorization", "Bearer token-123")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if verifier.gotToken != "token-123" {
		t.Fatalf("unexpected token passed to verifier: %q", verifier.gotToken)
	}
	if !found || seen.UserID != "player-1" {
		t.Fatalf("principal not injected: found=%t principal=%+v", found, seen)
	}
}

func TestRequireAuth_RejectsMissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("handler must not run without credentials")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	rec := httptest.NewRecorder()

	RequireAuth(&stubVerifier{}, next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireAuth_RejectsMalformedHeader(t *testing.T) {
	for _, header := range []string{"token-123", "Basic dXNlcjpwYXNz", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		RequireAuth(&stubVerifier{}, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected status 401, got %d", header, rec.Code)
		}
	}
}

func TestRequireAuth_PropagatesVerifierError(t *testing.T) {
	verifier := &stubVerifier{err: fmt.Errorf("%w: token inactive", usecase.ErrUnauthorized)}

	req := httptest.NewRequest(http.MethodGet, "/v1/teams", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()

	RequireAuth(verifier, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}
