// internal/pkg/session/cookie_store.go
package session

import (
	"fmt"
	"net/http"
	"time"
)

const (
	// CookieName is the single named entry holding the serialized record.
	CookieName = "hg_session"

	// Auxiliary client-side entries cleared alongside the session on logout.
	CartCookieName  = "hg_cart"
	PrefsCookieName = "hg_prefs"

	// Browsers silently drop cookies beyond 4KiB, so an oversized write is a
	// hard persist failure rather than a quiet truncation.
	maxCookieSize = 4096
)

// Store abstracts the persisted session entry. The manager is the only
// component allowed to write through it; reads elsewhere go via the manager.
type Store interface {
	// Read returns the raw persisted value and whether one is present.
	Read() (string, bool)
	// Write persists the raw value with the given absolute expiry.
	Write(value string, expires time.Time) error
	// Clear removes the session entry and the auxiliary client entries.
	Clear()
}

// CookieStore persists the session record in a cookie scoped to the site
// root. The cookie expiry mirrors the record's expireAt, and the Secure flag
// is set opportunistically when the current request already arrived over TLS.
type CookieStore struct {
	w http.ResponseWriter
	r *http.Request
}

func NewCookieStore(w http.ResponseWriter, r *http.Request) *CookieStore {
	return &CookieStore{w: w, r: r}
}

func (s *CookieStore) Read() (string, bool) {
	c, err := s.r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

func (s *CookieStore) Write(value string, expires time.Time) error {
	if len(value) > maxCookieSize {
		return fmt.Errorf("%w: encoded record is %d bytes, cookie limit is %d",
			ErrSessionPersist, len(value), maxCookieSize)
	}

	http.SetCookie(s.w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     PathRoot,
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secure(),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (s *CookieStore) Clear() {
	for _, name := range []string{CookieName, CartCookieName, PrefsCookieName} {
		http.SetCookie(s.w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     PathRoot,
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   s.secure(),
			SameSite: http.SameSiteLaxMode,
		})
	}
}

func (s *CookieStore) secure() bool {
	return s.r.TLS != nil
}
