// internal/service/auth/auth.go
package auth

import (
	"context"

	"go.uber.org/zap"

	"hopegivers-web/internal/apiclient"
	"hopegivers-web/internal/domain/account"
	"hopegivers-web/internal/pkg/session"
	"hopegivers-web/internal/service/prefs"
	"hopegivers-web/internal/sessionevents"
)

// Service ties backend authentication to the local session: a successful
// login or registration establishes a session record, logout destroys it and
// clears the user's server-side leftovers.
type Service struct {
	api      *apiclient.Client
	sessions *session.Manager
	prefs    *prefs.Store
	hub      *sessionevents.Hub
	logger   *zap.Logger
}

func NewService(api *apiclient.Client, sessions *session.Manager, prefs *prefs.Store, hub *sessionevents.Hub, logger *zap.Logger) *Service {
	return &Service{api: api, sessions: sessions, prefs: prefs, hub: hub, logger: logger}
}

// Login authenticates against the backend and establishes the session. The
// dashboard path is computed from the fresh record, not from the store, since
// the just-written cookie is only on the response.
func (s *Service) Login(ctx context.Context, st session.Store, req *account.LoginRequest) (*account.LoginResult, error) {
	user, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.establish(st, user)
}

// Register creates a donor account; the backend signs the new account in, so
// registration establishes a session too.
func (s *Service) Register(ctx context.Context, st session.Store, req *account.RegisterRequest) (*account.LoginResult, error) {
	user, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.establish(st, user)
}

func (s *Service) establish(st session.Store, user *account.AuthUser) (*account.LoginResult, error) {
	rec := &session.Record{
		UserName:         user.UserName,
		Email:            user.Email,
		FullName:         user.FullName,
		Roles:            user.Roles,
		Token:            user.Token,
		ExpireAt:         user.ExpireAt,
		IsEmailConfirmed: user.IsEmailConfirmed,
	}
	if err := s.sessions.Establish(st, rec); err != nil {
		return nil, err
	}

	s.logger.Info("session established",
		zap.String("user", rec.UserName),
		zap.Time("expireAt", rec.ExpireAt),
	)

	return &account.LoginResult{
		User:          user,
		DashboardPath: session.DashboardFor(rec.Roles),
	}, nil
}

// Logout tears the session down and returns where to send the browser. The
// server-side cart/preference entries go too; a failure there is logged but
// does not keep the user signed in.
func (s *Service) Logout(ctx context.Context, st session.Store) string {
	rec, ok := s.sessions.Current(st)
	s.sessions.Destroy(st)

	if ok {
		if err := s.prefs.ClearUser(ctx, rec.UserName); err != nil {
			s.logger.Warn("failed to clear stored preferences on logout",
				zap.String("user", rec.UserName),
				zap.Error(err),
			)
		}
		s.hub.NotifySessionRevoked(rec.UserName, "logout")
		s.logger.Info("session destroyed", zap.String("user", rec.UserName))
	}

	return session.PathRoot
}

// UpdateProfile pushes the edit to the backend, then refreshes the cached
// display fields in the session record and pings the user's other tabs.
func (s *Service) UpdateProfile(ctx context.Context, st session.Store, token string, req *account.UpdateProfileRequest) (*account.Profile, error) {
	profile, err := s.api.UpdateProfile(ctx, token, req)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Refresh(st, func(rec *session.Record) {
		rec.FullName = profile.FullName
		rec.Email = profile.Email
		rec.IsEmailConfirmed = profile.IsEmailConfirmed
	}); err != nil {
		s.logger.Warn("profile updated but session refresh failed", zap.Error(err))
	} else {
		s.hub.NotifyProfileUpdated(profile.UserName)
	}

	return profile, nil
}

// RefreshProfile re-reads the authoritative profile and syncs the session
// record without changing anything on the backend.
func (s *Service) RefreshProfile(ctx context.Context, st session.Store, token string) (*account.Profile, error) {
	profile, err := s.api.Me(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Refresh(st, func(rec *session.Record) {
		rec.FullName = profile.FullName
		rec.Email = profile.Email
		rec.IsEmailConfirmed = profile.IsEmailConfirmed
	}); err != nil {
		return nil, err
	}
	return profile, nil
}

// ChangePassword forwards the rotation; the token stays valid so the session
// is left alone.
func (s *Service) ChangePassword(ctx context.Context, token string, req *account.ChangePasswordRequest) error {
	return s.api.ChangePassword(ctx, token, req)
}

// ConfirmEmail redeems a confirmation token and, when the caller has a live
// session, flips the cached flag.
func (s *Service) ConfirmEmail(ctx context.Context, st session.Store, token string) error {
	if err := s.api.ConfirmEmail(ctx, token); err != nil {
		return err
	}
	// Best effort; the visitor may be confirming from a logged-out browser.
	_ = s.sessions.Refresh(st, func(rec *session.Record) {
		rec.IsEmailConfirmed = true
	})
	return nil
}
