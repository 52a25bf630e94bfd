package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ravikant-sharma/shopledger/internal/auth"
	"github.com/ravikant-sharma/shopledger/internal/http/handlers"
	"github.com/ravikant-sharma/shopledger/internal/models"
)

func TestAuthMiddlewareExposesUsername(t *testing.T) {
	token, err := auth.GenerateToken(models.User{ID: 1, Username: "admin", Role: "admin"})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = handlers.Username(r)
	})

	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got != "admin" {
		t.Errorf("expected username admin, got %q", got)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler must not run without a token")
	})

	req := httptest.NewRequest(http.MethodDelete, "/products/1", nil)
	w := httptest.NewRecorder()
	AuthMiddleware(next).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestUsernameEmptyOnPublicRoutes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/products", nil)
	if got := handlers.Username(req); got != "" {
		t.Errorf("expected empty username, got %q", got)
	}
}
