// internal/pkg/session/manager.go
package session

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Manager is the single source of truth for "who is logged in, with what
// capabilities, until when". Every query deserializes the record fresh from
// the store; no in-memory copy is assumed to stay valid between requests.
//
// Read paths (Current, IsAuthenticated, HasRole, DashboardPath) never fail:
// corrupt or expired records are torn down as a side effect and reported as
// "no session". Only Establish can return an error, because silently failing
// to persist a session would leave the client believing it is logged in.
type Manager struct {
	logger *zap.Logger
	now    func() time.Time
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger, now: time.Now}
}

// Current returns the active record, or nil/false when there is none. A blob
// that fails to parse, a partially populated record, or a record whose expiry
// has passed all trigger a full teardown before reporting "no session";
// invalid sessions must not linger in storage.
func (m *Manager) Current(st Store) (*Record, bool) {
	raw, ok := st.Read()
	if !ok {
		return nil, false
	}

	rec, err := decodeRecord(raw)
	if err != nil || !rec.complete() {
		m.logger.Debug("discarding corrupt session record", zap.Error(err))
		m.Destroy(st)
		return nil, false
	}

	if rec.Expired(m.now()) {
		m.Destroy(st)
		return nil, false
	}

	return rec, true
}

// IsAuthenticated reports whether a current session exists and carries a
// bearer token.
func (m *Manager) IsAuthenticated(st Store) bool {
	rec, ok := m.Current(st)
	return ok && rec.Token != ""
}

// HasRole reports whether the current session carries the named role. It
// resolves to false on an absent session, never an error.
func (m *Manager) HasRole(st Store, role string) bool {
	rec, ok := m.Current(st)
	return ok && rec.Roles.Has(role)
}

// DashboardPath computes the role-appropriate landing route. The priority
// order admin > charity > user is total: a session holding both admin and
// charity always lands on the admin dashboard. Without a session the target
// is the login route.
func (m *Manager) DashboardPath(st Store) string {
	rec, ok := m.Current(st)
	if !ok {
		return PathLogin
	}
	return DashboardFor(rec.Roles)
}

// DashboardFor maps a role set to its landing route, admin first, charity
// second, user as the default for anything else.
func DashboardFor(roles RoleList) string {
	switch {
	case roles.Has(RoleAdmin):
		return PathAdminDashboard
	case roles.Has(RoleCharity):
		return PathCharityDashboard
	default:
		return PathUserDashboard
	}
}

// Establish persists rec as the current session. A record without an expiry
// is rejected with ErrMissingExpiry unless one can be recovered from the
// bearer token's exp claim; the token itself stays opaque and unverified
// here, verification is the backend's job. Persist failures propagate as
// ErrSessionPersist so the login flow can surface them.
func (m *Manager) Establish(st Store, rec *Record) error {
	if rec == nil || rec.UserName == "" {
		return ErrNoSession
	}
	if rec.ExpireAt.IsZero() {
		rec.ExpireAt = expiryFromToken(rec.Token)
	}
	if rec.ExpireAt.IsZero() {
		return ErrMissingExpiry
	}

	return st.Write(encodeRecord(rec), rec.ExpireAt)
}

// Refresh re-reads the current record, applies the given mutation, and
// persists the result. Token and expiry are preserved so a profile edit can
// refresh display fields without re-authenticating.
func (m *Manager) Refresh(st Store, apply func(*Record)) error {
	rec, ok := m.Current(st)
	if !ok {
		return ErrNoSession
	}

	token, expireAt := rec.Token, rec.ExpireAt
	apply(rec)
	rec.Token = token
	rec.ExpireAt = expireAt

	return m.Establish(st, rec)
}

// Destroy removes the session entry and the auxiliary client entries. After
// Destroy the only way back to an authenticated state is a fresh Establish.
func (m *Manager) Destroy(st Store) {
	st.Clear()
}

func encodeRecord(rec *Record) string {
	data, _ := json.Marshal(rec)
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeRecord(raw string) (*Record, error) {
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// expiryFromToken peeks at the exp claim of a JWT-shaped bearer token without
// verifying its signature. Returns the zero time when the token is not a JWT
// or carries no exp.
func expiryFromToken(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
