// internal/middleware/auth_middleware_test.go
package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/session"
)

func newEngine(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	sessions := session.NewManager(zap.NewNop())
	authMW := middleware.NewAuthMiddleware(sessions)

	r := gin.New()
	r.GET("/protected", authMW.RequireSession(), func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetUserName(c))
	})
	r.GET("/admin-only", authMW.RequireSession(), authMW.RequireRole(session.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	r.GET("/maybe", authMW.OptionalSession(), func(c *gin.Context) {
		if middleware.IsAuthenticated(c) {
			c.String(http.StatusOK, "signed in")
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	return r, sessions
}

func sessionCookies(t *testing.T, sessions *session.Manager, roles ...string) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	st := session.NewCookieStore(w, r)

	err := sessions.Establish(st, &session.Record{
		UserName: "wanjiku",
		Email:    "wanjiku@example.com",
		Roles:    session.RoleList(roles),
		Token:    "tok-123",
		ExpireAt: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	return w.Result().Cookies()
}

func doRequest(r *gin.Engine, path string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSessionRejectsAnonymous(t *testing.T) {
	r, _ := newEngine(t)

	w := doRequest(r, "/protected", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSessionPassesUserThrough(t *testing.T) {
	r, sessions := newEngine(t)
	cookies := sessionCookies(t, sessions, session.RoleUser)

	w := doRequest(r, "/protected", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "wanjiku", w.Body.String())
}

func TestRequireSessionTearsDownExpiredCookie(t *testing.T) {
	r, sessions := newEngine(t)

	// Establish, then let the clock run out.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	st := session.NewCookieStore(w, req)
	require.NoError(t, sessions.Establish(st, &session.Record{
		UserName: "wanjiku",
		Token:    "tok",
		ExpireAt: time.Now().Add(-time.Minute),
	}))

	resp := doRequest(r, "/protected", w.Result().Cookies())
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	// The stale cookie is expired on the way out.
	for _, c := range resp.Result().Cookies() {
		if c.Name == session.CookieName {
			assert.Less(t, c.MaxAge, 0)
		}
	}
}

func TestRequireRoleForbidsWrongRole(t *testing.T) {
	r, sessions := newEngine(t)
	cookies := sessionCookies(t, sessions, session.RoleUser)

	w := doRequest(r, "/admin-only", cookies)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAllowsAdmin(t *testing.T) {
	r, sessions := newEngine(t)
	cookies := sessionCookies(t, sessions, session.RoleUser, session.RoleAdmin)

	w := doRequest(r, "/admin-only", cookies)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalSession(t *testing.T) {
	r, sessions := newEngine(t)

	w := doRequest(r, "/maybe", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	cookies := sessionCookies(t, sessions, session.RoleUser)
	w = doRequest(r, "/maybe", cookies)
	assert.Equal(t, "signed in", w.Body.String())
}
