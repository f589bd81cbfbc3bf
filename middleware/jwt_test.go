package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Loki-59/Rlestate/utils"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, req *http.Request, setup func(echo.Context)) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if setup != nil {
		setup(c)
	}

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec, called
}

func TestJWTMiddlewareMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec, called := runMiddleware(t, JWTMiddleware(), req, nil)
	if called {
		t.Error("next handler should not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestJWTMiddlewareBadFormat(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec, called := runMiddleware(t, JWTMiddleware(), req, nil)
	if called || rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without next, got %d (called=%v)", rec.Code, called)
	}
}

func TestJWTMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec, called := runMiddleware(t, JWTMiddleware(), req, nil)
	if called || rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without next, got %d (called=%v)", rec.Code, called)
	}
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWT(userID, "user@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateJWT failed: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := JWTMiddleware()(func(c echo.Context) error {
		called = true
		if got := c.Get("user_id").(primitive.ObjectID); got != userID {
			t.Errorf("user_id = %s, want %s", got.Hex(), userID.Hex())
		}
		if got := c.Get("user_role").(string); got != "admin" {
			t.Errorf("user_role = %s", got)
		}
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if !called {
		t.Error("next handler not called for valid token")
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		role     interface{}
		wantCode int
		wantNext bool
	}{
		{"admin passes", "admin", http.StatusOK, true},
		{"user forbidden", "user", http.StatusForbidden, false},
		{"missing role forbidden", nil, http.StatusForbidden, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec, called := runMiddleware(t, AdminMiddleware(), req, func(c echo.Context) {
				if tt.role != nil {
					c.Set("user_role", tt.role)
				}
			})
			if called != tt.wantNext {
				t.Errorf("next called = %v, want %v", called, tt.wantNext)
			}
			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}
