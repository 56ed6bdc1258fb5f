// internal/pkg/session/types.go
package session

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// Role names recognized by the platform.
const (
	RoleUser    = "user"
	RoleCharity = "charity"
	RoleAdmin   = "admin"
)

// Landing routes computed after authentication.
const (
	PathLogin            = "/login"
	PathRoot             = "/"
	PathUserDashboard    = "/user-dashboard"
	PathCharityDashboard = "/charity-dashboard"
	PathAdminDashboard   = "/admin-dashboard"
)

var (
	// ErrSessionPersist is returned when the session entry cannot be written.
	ErrSessionPersist = errors.New("session: persist failed")

	// ErrMissingExpiry is returned by Establish when the record carries no
	// usable expiry and none can be recovered from the bearer token.
	ErrMissingExpiry = errors.New("session: record has no expiry")

	// ErrNoSession is returned by Refresh when there is nothing to refresh.
	ErrNoSession = errors.New("session: no active session")
)

// RoleList holds the normalized role names of a session. The backend is
// inconsistent about the wire shape of roles: some paths return a plain
// string ("admin"), some a comma-joined string ("admin,charity"), some a
// JSON array. All three normalize into an ordered list at the parse boundary.
type RoleList []string

func (r *RoleList) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*r = normalizeRoles(many)
		return nil
	}

	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*r = normalizeRoles(strings.Split(one, ","))
	return nil
}

// Has reports whether any entry contains name, case-insensitively.
// Containment rather than equality is carried over from the source system,
// which tolerates combined role strings at the cost of matching roles whose
// names overlap.
func (r RoleList) Has(name string) bool {
	if name == "" {
		return false
	}
	needle := strings.ToLower(name)
	for _, role := range r {
		if strings.Contains(strings.ToLower(role), needle) {
			return true
		}
	}
	return false
}

func normalizeRoles(in []string) RoleList {
	out := make(RoleList, 0, len(in))
	for _, role := range in {
		role = strings.TrimSpace(role)
		if role != "" {
			out = append(out, role)
		}
	}
	return out
}

// Record is the client-held representation of a logged-in identity. It is
// either absent or fully populated; a partially populated record is treated
// as corrupt and discarded on read.
type Record struct {
	UserName         string    `json:"userName"`
	Email            string    `json:"email"`
	FullName         string    `json:"fullName"`
	Roles            RoleList  `json:"roles"`
	Token            string    `json:"token"`
	ExpireAt         time.Time `json:"expireAt"`
	IsEmailConfirmed bool      `json:"isEmailConfirmed"`
}

// Expired reports whether the record's expiry has passed. ExpireAt is
// authoritative for session validity; there is no silent refresh.
func (r *Record) Expired(now time.Time) bool {
	return !r.ExpireAt.After(now)
}

// complete reports whether the record carries the fields every valid session
// must have. The token is checked separately by IsAuthenticated so that a
// tokenless record degrades to "not authenticated" rather than "corrupt".
func (r *Record) complete() bool {
	return r.UserName != "" && !r.ExpireAt.IsZero()
}
