// internal/pkg/session/manager_test.go
package session_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hopegivers-web/internal/pkg/session"
)

func newManager() *session.Manager {
	return session.NewManager(zap.NewNop())
}

func validRecord(expireAt time.Time) *session.Record {
	return &session.Record{
		UserName:         "amina",
		Email:            "amina@example.org",
		FullName:         "Amina Hassan",
		Roles:            session.RoleList{"user"},
		Token:            "opaque-bearer-token",
		ExpireAt:         expireAt,
		IsEmailConfirmed: true,
	}
}

// establish writes rec through a fresh cookie store and returns the cookies
// the response set.
func establish(t *testing.T, m *session.Manager, rec *session.Record) []*http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Establish(session.NewCookieStore(w, r), rec))
	return w.Result().Cookies()
}

// storeWith builds a cookie store whose request carries the given cookies,
// mimicking the follow-up request of the same client.
func storeWith(cookies []*http.Cookie) (*session.CookieStore, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/user-dashboard", nil)
	for _, c := range cookies {
		if c.Value != "" {
			r.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
		}
	}
	return session.NewCookieStore(w, r), w
}

func TestEstablishThenCurrentRoundTrip(t *testing.T) {
	m := newManager()
	rec := validRecord(time.Now().Add(time.Hour).Truncate(time.Second))

	st, _ := storeWith(establish(t, m, rec))
	got, ok := m.Current(st)
	require.True(t, ok)

	assert.Equal(t, rec.UserName, got.UserName)
	assert.Equal(t, rec.Email, got.Email)
	assert.Equal(t, rec.FullName, got.FullName)
	assert.Equal(t, rec.Roles, got.Roles)
	assert.Equal(t, rec.Token, got.Token)
	assert.True(t, rec.ExpireAt.Equal(got.ExpireAt))
	assert.Equal(t, rec.IsEmailConfirmed, got.IsEmailConfirmed)
}

func TestEstablishCookieAttributes(t *testing.T) {
	m := newManager()
	expireAt := time.Now().Add(time.Hour).Truncate(time.Second)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	require.NoError(t, m.Establish(session.NewCookieStore(w, r), validRecord(expireAt)))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]

	assert.Equal(t, session.CookieName, c.Name)
	assert.Equal(t, "/", c.Path, "cookie must be scoped to the whole application")
	assert.WithinDuration(t, expireAt, c.Expires, time.Second)
	assert.True(t, c.HttpOnly)
	assert.False(t, c.Secure, "plain-HTTP request must not demand transport security")
}

func TestEstablishSecureUpgradeOverTLS(t *testing.T) {
	m := newManager()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	r.TLS = &tls.ConnectionState{}
	require.NoError(t, m.Establish(session.NewCookieStore(w, r), validRecord(time.Now().Add(time.Hour))))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestEstablishWithoutExpiryFails(t *testing.T) {
	m := newManager()
	rec := validRecord(time.Time{})
	rec.Token = "not-a-jwt"

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	err := m.Establish(session.NewCookieStore(w, r), rec)

	assert.ErrorIs(t, err, session.ErrMissingExpiry)
	assert.Empty(t, w.Result().Cookies(), "failed establish must not write anything")
}

func TestEstablishRecoversExpiryFromTokenClaims(t *testing.T) {
	m := newManager()
	exp := time.Now().Add(2 * time.Hour).Truncate(time.Second)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "amina",
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)

	rec := validRecord(time.Time{})
	rec.Token = token

	st, _ := storeWith(establish(t, m, rec))
	got, ok := m.Current(st)
	require.True(t, ok)
	assert.True(t, exp.Equal(got.ExpireAt))
}

func TestEstablishOversizedRecordFails(t *testing.T) {
	m := newManager()
	rec := validRecord(time.Now().Add(time.Hour))
	rec.FullName = strings.Repeat("x", 8192)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	err := m.Establish(session.NewCookieStore(w, r), rec)

	assert.ErrorIs(t, err, session.ErrSessionPersist)
}

func TestExpiredRecordIsTornDownOnQuery(t *testing.T) {
	m := newManager()
	st, w := storeWith(establish(t, m, validRecord(time.Now().Add(-time.Hour))))

	_, ok := m.Current(st)
	assert.False(t, ok)

	// Teardown happened as a side effect of the read.
	assertCleared(t, w)

	// A second query is just as quiet, no explicit Destroy needed.
	_, ok = m.Current(st)
	assert.False(t, ok)
	assert.False(t, m.IsAuthenticated(st))
}

func TestCorruptBlobsAreTornDownSilently(t *testing.T) {
	m := newManager()

	for _, raw := range []string{
		"%%%not-base64%%%",
		"bm90LWpzb24",            // base64("not-json")
		"eyJlbWFpbCI6ImEifQ",     // base64 of a partial record, no userName
	} {
		st, w := storeWith([]*http.Cookie{{Name: session.CookieName, Value: raw}})

		got, ok := m.Current(st)
		assert.False(t, ok, "raw=%q", raw)
		assert.Nil(t, got)
		assertCleared(t, w)
	}
}

func TestIsAuthenticatedRequiresToken(t *testing.T) {
	m := newManager()

	rec := validRecord(time.Now().Add(time.Hour))
	rec.Token = ""
	st, _ := storeWith(establish(t, m, rec))

	assert.False(t, m.IsAuthenticated(st))

	st2, _ := storeWith(establish(t, m, validRecord(time.Now().Add(time.Hour))))
	assert.True(t, m.IsAuthenticated(st2))
}

func TestHasRoleOnAbsentSession(t *testing.T) {
	m := newManager()
	st, _ := storeWith(nil)

	assert.False(t, m.HasRole(st, "admin"))
	assert.False(t, m.IsAuthenticated(st))
}

func TestHasRoleIsCaseInsensitive(t *testing.T) {
	m := newManager()
	rec := validRecord(time.Now().Add(time.Hour))
	rec.Roles = session.RoleList{"admin", "charity"}
	st, _ := storeWith(establish(t, m, rec))

	assert.Equal(t, m.HasRole(st, "admin"), m.HasRole(st, "Admin"))
	assert.True(t, m.HasRole(st, "Admin"))
	assert.True(t, m.HasRole(st, "CHARITY"))
	assert.False(t, m.HasRole(st, "user"))
}

func TestDashboardPathPriority(t *testing.T) {
	m := newManager()

	tests := []struct {
		name  string
		roles session.RoleList
		want  string
	}{
		{"admin wins over everything", session.RoleList{"admin", "charity", "user"}, session.PathAdminDashboard},
		{"charity wins over user", session.RoleList{"charity", "user"}, session.PathCharityDashboard},
		{"plain user", session.RoleList{"user"}, session.PathUserDashboard},
		{"unrecognized role falls through to user", session.RoleList{"volunteer"}, session.PathUserDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := validRecord(time.Now().Add(time.Hour))
			rec.Roles = tt.roles
			st, _ := storeWith(establish(t, m, rec))
			assert.Equal(t, tt.want, m.DashboardPath(st))
		})
	}

	t.Run("no session routes to login", func(t *testing.T) {
		st, _ := storeWith(nil)
		assert.Equal(t, session.PathLogin, m.DashboardPath(st))
	})
}

func TestDestroyClearsEverything(t *testing.T) {
	m := newManager()
	st, w := storeWith(establish(t, m, validRecord(time.Now().Add(time.Hour))))

	m.Destroy(st)
	assertCleared(t, w)

	_, ok := m.Current(st)
	// The request still carries the old cookie, but the cleared response is
	// what the client will act on; a fresh request without the cookie sees
	// no session.
	_ = ok
	st2, _ := storeWith(w.Result().Cookies())
	got, ok := m.Current(st2)
	assert.False(t, ok)
	assert.Nil(t, got)
	assert.False(t, m.IsAuthenticated(st2))
}

func TestRefreshPreservesTokenAndExpiry(t *testing.T) {
	m := newManager()
	expireAt := time.Now().Add(time.Hour).Truncate(time.Second)
	st, w := storeWith(establish(t, m, validRecord(expireAt)))

	err := m.Refresh(st, func(rec *session.Record) {
		rec.FullName = "Amina H."
		rec.IsEmailConfirmed = true
		rec.Token = "must-not-stick"
		rec.ExpireAt = time.Now().Add(100 * time.Hour)
	})
	require.NoError(t, err)

	st2, _ := storeWith(w.Result().Cookies())
	got, ok := m.Current(st2)
	require.True(t, ok)
	assert.Equal(t, "Amina H.", got.FullName)
	assert.Equal(t, "opaque-bearer-token", got.Token)
	assert.True(t, expireAt.Equal(got.ExpireAt))
}

func TestRefreshWithoutSession(t *testing.T) {
	m := newManager()
	st, _ := storeWith(nil)

	err := m.Refresh(st, func(rec *session.Record) { rec.FullName = "x" })
	assert.ErrorIs(t, err, session.ErrNoSession)
}

// assertCleared checks that the response expires the session cookie and the
// auxiliary cart/preferences cookies.
func assertCleared(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()

	cleared := map[string]bool{}
	for _, c := range w.Result().Cookies() {
		if c.MaxAge < 0 && c.Value == "" {
			cleared[c.Name] = true
		}
	}
	for _, name := range []string{session.CookieName, session.CartCookieName, session.PrefsCookieName} {
		assert.True(t, cleared[name], "expected %s to be cleared", name)
	}
}
