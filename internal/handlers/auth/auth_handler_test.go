// internal/handlers/auth/auth_handler_test.go
package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hopegivers-web/internal/apiclient"
	authHandler "hopegivers-web/internal/handlers/auth"
	"hopegivers-web/internal/pkg/session"
	authUsecase "hopegivers-web/internal/service/auth"
	prefsUsecase "hopegivers-web/internal/service/prefs"
	"hopegivers-web/internal/sessionevents"
)

func newEngine(t *testing.T, backend http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { redisClient.Close() })

	logger := zap.NewNop()
	api := apiclient.New(srv.URL, 5*time.Second, logger)
	sessions := session.NewManager(logger)
	prefsStore := prefsUsecase.NewStore(redisClient)

	hub := sessionevents.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	svc := authUsecase.NewService(api, sessions, prefsStore, hub, logger)
	h := authHandler.NewAuthHandler(svc, sessions, logger)

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/session", h.Session)
	return r
}

func loginBackend(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode": 200,
			"message":    "ok",
			"data": map[string]interface{}{
				"userName":         "wanjiku",
				"email":            "wanjiku@example.com",
				"fullName":         "Wanjiku Kamau",
				"roles":            "charity,user",
				"token":            "tok-abc",
				"expireAt":         time.Now().Add(2 * time.Hour).Format(time.RFC3339),
				"isEmailConfirmed": true,
			},
		})
	})
}

func TestLoginEstablishesSession(t *testing.T) {
	r := newEngine(t, loginBackend(t))

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"wanjiku@example.com","password":"secret123"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var sessionCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "login must set the session cookie")
	assert.Equal(t, "/", sessionCookie.Path)
	assert.True(t, sessionCookie.HttpOnly)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			DashboardPath string `json:"dashboardPath"`
			User          struct {
				UserName string   `json:"userName"`
				Roles    []string `json:"roles"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, session.PathCharityDashboard, body.Data.DashboardPath)
	assert.Equal(t, []string{"charity", "user"}, body.Data.User.Roles)
}

func TestLoginSoftFailureIsRelayed(t *testing.T) {
	r := newEngine(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		// Backend convention: HTTP 200 with the real error in the envelope.
		json.NewEncoder(w).Encode(map[string]interface{}{
			"statusCode": 401,
			"message":    "invalid credentials",
		})
	}))

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"wanjiku@example.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, session.CookieName, c.Name, "failed login must not set a session cookie")
	}
}

func TestLogoutClearsSessionAndAuxCookies(t *testing.T) {
	r := newEngine(t, loginBackend(t))

	// Log in first to obtain cookies.
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"wanjiku@example.com","password":"secret123"}`))
	loginReq.Header.Set("Content-Type", "application/json")
	loginW := httptest.NewRecorder()
	r.ServeHTTP(loginW, loginReq)
	require.Equal(t, http.StatusOK, loginW.Code)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	for _, c := range loginW.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, session.PathRoot, w.Header().Get("Location"))

	cleared := map[string]bool{}
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared[c.Name] = true
		}
	}
	assert.True(t, cleared[session.CookieName])
	assert.True(t, cleared[session.CartCookieName])
	assert.True(t, cleared[session.PrefsCookieName])
}

func TestSessionEndpointWithoutCookie(t *testing.T) {
	r := newEngine(t, loginBackend(t))

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Authenticated bool   `json:"authenticated"`
			DashboardPath string `json:"dashboardPath"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Data.Authenticated)
	assert.Equal(t, session.PathLogin, body.Data.DashboardPath)
}
