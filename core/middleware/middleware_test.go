package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/config"
	"scheduler-callback-api/core/constants"
	"scheduler-callback-api/core/utils"
)

func setupAuth(t *testing.T) echo.HandlerFunc {
	t.Helper()
	config.SetForTest(&config.Config{JWT: config.JWTConfig{Secret: "test-secret"}})
	t.Cleanup(func() { config.SetForTest(nil) })

	mw := NewMiddleware()
	return mw.AuthMiddleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("user_id").(string))
	})
}

func invokeAuth(handler echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	handler := setupAuth(t)

	token, err := utils.GenerateToken("U42", time.Minute, constants.ScopeTokenAccess)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rec := invokeAuth(handler, "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if rec.Body.String() != "U42" {
		t.Fatalf("user_id = %q, want U42", rec.Body.String())
	}
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	handler := setupAuth(t)

	rec := invokeAuth(handler, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	handler := setupAuth(t)

	rec := invokeAuth(handler, "Token abc")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	handler := setupAuth(t)

	token, err := utils.GenerateToken("U42", -time.Minute, constants.ScopeTokenAccess)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	rec := invokeAuth(handler, "Bearer "+token)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
