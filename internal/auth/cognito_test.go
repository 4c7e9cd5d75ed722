package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestService() *CognitoService {
	return NewCognitoService(
		"client-id",
		"client-secret",
		"https://myapp.auth.us-east-1.amazoncognito.com/",
		"https://api.example.com/auth/callback",
		"https://app.example.com/",
		"https://app.example.com/auth",
	)
}

func TestLoginRedirectsToHostedUI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	newTestService().RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", resp.Code)
	}

	location, err := url.Parse(resp.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if location.Host != "myapp.auth.us-east-1.amazoncognito.com" {
		t.Fatalf("unexpected host: %s", location.Host)
	}
	if location.Path != "/oauth2/authorize" {
		t.Fatalf("unexpected path: %s", location.Path)
	}
	if location.Query().Get("state") == "" {
		t.Fatalf("expected state parameter")
	}
	if location.Query().Get("client_id") != "client-id" {
		t.Fatalf("unexpected client_id: %s", location.Query().Get("client_id"))
	}
}

func TestCallbackRejectsUnknownState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	newTestService().RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?state=forged&code=abc", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestLogoutRedirectsToCognitoLogout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	newTestService().RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/auth/logout", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusFound {
		t.Fatalf("expected status 302, got %d", resp.Code)
	}

	location := resp.Header().Get("Location")
	if !strings.HasPrefix(location, "https://myapp.auth.us-east-1.amazoncognito.com/logout?") {
		t.Fatalf("unexpected location: %s", location)
	}
	parsed, err := url.Parse(location)
	if err != nil {
		t.Fatalf("parse location: %v", err)
	}
	if parsed.Query().Get("logout_uri") != "https://app.example.com/" {
		t.Fatalf("unexpected logout_uri: %s", parsed.Query().Get("logout_uri"))
	}
}

func TestStateStoreConsumeIsSingleUse(t *testing.T) {
	store := newStateStore()
	store.put("abc", time.Now().Add(time.Minute))

	if !store.consume("abc") {
		t.Fatalf("expected first consume to succeed")
	}
	if store.consume("abc") {
		t.Fatalf("expected second consume to fail")
	}
}

func TestStateStoreRejectsExpired(t *testing.T) {
	store := newStateStore()
	store.put("old", time.Now().Add(-time.Second))

	if store.consume("old") {
		t.Fatalf("expected expired state to fail")
	}
}

func TestAppendTokenPreservesQuery(t *testing.T) {
	got, err := appendToken("https://app.example.com/auth?tab=profile", "jwt123")
	if err != nil {
		t.Fatalf("appendToken: %v", err)
	}
	parsed, err := url.Parse(got)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Query().Get("token") != "jwt123" {
		t.Fatalf("missing token: %s", got)
	}
	if parsed.Query().Get("tab") != "profile" {
		t.Fatalf("lost existing query: %s", got)
	}
}
