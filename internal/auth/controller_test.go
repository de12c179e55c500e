package auth

import (
	"net/http"
	"testing"
)

func TestLoginEndpoint(t *testing.T) {
	r, svc := setupAuthRouter(t)
	seedUser(t, svc.DB, "13800000001", "secret123", []string{"waybill"}, true)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"phone":    "13800000001",
		"password": "secret123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["access_token"] == "" {
		t.Fatal("expected access_token in response")
	}
	if _, ok := body["user_id"].(string); !ok {
		t.Fatalf("expected string-encoded user_id, got %v", body["user_id"])
	}
	if body["has_initialized"] != false {
		t.Fatalf("expected has_initialized false, got %v", body["has_initialized"])
	}
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	r, svc := setupAuthRouter(t)
	seedUser(t, svc.DB, "13800000001", "secret123", nil, true)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"phone":    "13800000001",
		"password": "nope",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"phone": "13800000001",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoginEndpoint_DisabledUser(t *testing.T) {
	r, svc := setupAuthRouter(t)
	seedUser(t, svc.DB, "13800000001", "secret123", nil, false)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"phone":    "13800000001",
		"password": "secret123",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	r, svc := setupAuthRouter(t)
	seedUser(t, svc.DB, "13800000001", "secret123", nil, true)

	result, err := svc.Login("13800000001", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": result.RefreshToken,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	if body["access_token"] == "" {
		t.Fatal("expected access_token in response")
	}
}

func TestRefreshEndpoint_GarbageToken(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": "not-a-token",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestUserInfoEndpoint(t *testing.T) {
	r, svc := setupAuthRouter(t)
	seedUser(t, svc.DB, "13800000001", "secret123", []string{"admin"}, true)

	result, err := svc.Login("13800000001", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/user/info", result.AccessToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	body := decodeJSON(t, w)
	user, ok := body["user"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected user object, got %v", body)
	}
	if user["phone"] != "13800000001" {
		t.Fatalf("expected phone in user info, got %v", user["phone"])
	}
	if _, hasHash := user["password_hash"]; hasHash {
		t.Fatal("password hash must never appear in responses")
	}
}

func TestUserInfoEndpoint_RequiresAuth(t *testing.T) {
	r, _ := setupAuthRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/user/info", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestChangePasswordEndpoint(t *testing.T) {
	r, svc := setupAuthRouter(t)
	seedUser(t, svc.DB, "13800000001", "secret123", nil, true)

	result, err := svc.Login("13800000001", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/v1/user/password", result.AccessToken, map[string]interface{}{
		"old_password": "secret123",
		"new_password": "newsecret456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	if _, err := svc.Login("13800000001", "newsecret456"); err != nil {
		t.Fatalf("expected new password to work after change: %v", err)
	}
}

func TestChangePasswordEndpoint_WrongCurrent(t *testing.T) {
	r, svc := setupAuthRouter(t)
	seedUser(t, svc.DB, "13800000001", "secret123", nil, true)

	result, err := svc.Login("13800000001", "secret123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	w := doJSON(t, r, http.MethodPut, "/api/v1/user/password", result.AccessToken, map[string]interface{}{
		"old_password": "wrong",
		"new_password": "newsecret456",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
