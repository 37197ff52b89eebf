package controllers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *AuthController) {
	t.Helper()

	db := newTestDB(t)
	ac := NewAuthController(db, testJWTSecret, newTestEmailService())

	r := gin.New()
	r.POST("/api/register", ac.Register)
	r.POST("/api/login", ac.Login)
	r.GET("/api/me", authed(), ac.Me)
	return r, ac
}

func TestRegisterAndLogin(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := doJSON(t, router, "POST", "/api/register", "", gin.H{
		"username": "new_skater",
		"email":    "New.Skater@Example.com",
		"password": "Skate123",
	})
	expectStatus(t, w, http.StatusOK)

	body := decodeBody(t, w)
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("registration should return a token")
	}
	user, _ := body["user"].(map[string]interface{})
	if user["username"] != "new_skater" {
		t.Errorf("username = %v, want new_skater", user["username"])
	}
	if user["email"] != "new.skater@example.com" {
		t.Errorf("email should be lowercased, got %v", user["email"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password must not appear in the response")
	}

	// The returned token must be usable as a bearer token.
	w = doJSON(t, router, "GET", "/api/me", token, nil)
	expectStatus(t, w, http.StatusOK)

	// Login with the same credentials.
	w = doJSON(t, router, "POST", "/api/login", "", gin.H{
		"username": "new_skater",
		"password": "Skate123",
	})
	expectStatus(t, w, http.StatusOK)
}

func TestRegisterDuplicate(t *testing.T) {
	router, _ := newAuthRouter(t)

	payload := gin.H{
		"username": "taken_name",
		"email":    "taken@example.com",
		"password": "Skate123",
	}
	expectStatus(t, doJSON(t, router, "POST", "/api/register", "", payload), http.StatusOK)

	// Same username, different email.
	w := doJSON(t, router, "POST", "/api/register", "", gin.H{
		"username": "taken_name",
		"email":    "other@example.com",
		"password": "Skate123",
	})
	expectStatus(t, w, http.StatusBadRequest)

	// Same email, different username.
	w = doJSON(t, router, "POST", "/api/register", "", gin.H{
		"username": "other_name",
		"email":    "taken@example.com",
		"password": "Skate123",
	})
	expectStatus(t, w, http.StatusBadRequest)
}

func TestRegisterCollectsAllValidationErrors(t *testing.T) {
	router, _ := newAuthRouter(t)

	w := doJSON(t, router, "POST", "/api/register", "", gin.H{
		"username": "x",
		"email":    "not-an-email",
		"password": "short",
	})
	expectStatus(t, w, http.StatusBadRequest)

	body := decodeBody(t, w)
	msg, _ := body["error"].(string)
	for _, fragment := range []string{"Username", "email", "Password"} {
		if !strings.Contains(msg, fragment) {
			t.Errorf("combined error %q should mention %s", msg, fragment)
		}
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	router, _ := newAuthRouter(t)

	expectStatus(t, doJSON(t, router, "POST", "/api/register", "", gin.H{
		"username": "real_user",
		"email":    "real@example.com",
		"password": "Skate123",
	}), http.StatusOK)

	// Unknown user and wrong password produce the same generic error.
	for _, payload := range []gin.H{
		{"username": "no_such_user", "password": "Skate123"},
		{"username": "real_user", "password": "WrongPass1"},
	} {
		w := doJSON(t, router, "POST", "/api/login", "", payload)
		expectStatus(t, w, http.StatusBadRequest)
		if body := decodeBody(t, w); body["error"] != "Invalid credentials" {
			t.Errorf("error = %v, want Invalid credentials", body["error"])
		}
	}
}

func TestMeRequiresToken(t *testing.T) {
	router, _ := newAuthRouter(t)

	expectStatus(t, doJSON(t, router, "GET", "/api/me", "", nil), http.StatusUnauthorized)
	expectStatus(t, doJSON(t, router, "GET", "/api/me", "not-a-jwt", nil), http.StatusUnauthorized)
}
