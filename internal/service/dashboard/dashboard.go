// internal/service/dashboard/dashboard.go
package dashboard

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hopegivers-web/internal/apiclient"
	"hopegivers-web/internal/domain/account"
	"hopegivers-web/internal/domain/admin"
	"hopegivers-web/internal/domain/charity"
	"hopegivers-web/internal/domain/donation"
	"hopegivers-web/internal/domain/help"
	"hopegivers-web/internal/domain/post"
)

// Service assembles each role's landing page from several independent
// backend fetches. The fetches run concurrently and share a context, so the
// first failure cancels the rest.
type Service struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewService(api *apiclient.Client, logger *zap.Logger) *Service {
	return &Service{api: api, logger: logger}
}

// User builds the donor dashboard: profile, own donations, own help requests.
func (s *Service) User(ctx context.Context, token string) (*account.UserDashboard, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		profile   *account.Profile
		donations []donation.Donation
		requests  []help.Request
	)

	g.Go(func() error {
		var err error
		profile, err = s.api.Me(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		donations, err = s.api.ListMyDonations(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.api.ListMyHelpRequests(ctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &account.UserDashboard{
		Profile:      profile,
		Donations:    donations,
		HelpRequests: requests,
	}, nil
}

// Charity builds the charity dashboard. The charity itself is fetched first
// because the remaining fetches key off its ID.
func (s *Service) Charity(ctx context.Context, token string) (*charity.Dashboard, error) {
	ch, err := s.api.MyCharity(ctx, token)
	if err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)

	var (
		branches []charity.Branch
		goods    []donation.GoodsDonation
		posts    []post.Post
	)

	g.Go(func() error {
		var err error
		branches, err = s.api.ListBranches(ctx, ch.ID)
		return err
	})
	g.Go(func() error {
		var err error
		goods, err = s.api.ListCharityGoodsDonations(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		posts, err = s.api.ListPosts(ctx, ch.ID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &charity.Dashboard{
		Charity:        ch,
		Branches:       branches,
		GoodsDonations: goods,
		Posts:          posts,
	}, nil
}

// Admin builds the moderation dashboard: pending charities, open reports,
// platform stats.
func (s *Service) Admin(ctx context.Context, token string) (*admin.Dashboard, error) {
	g, ctx := errgroup.WithContext(ctx)

	var (
		pending []charity.Charity
		reports []admin.Report
		stats   *admin.PlatformStats
	)

	g.Go(func() error {
		var err error
		pending, err = s.api.ListPendingCharities(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		reports, err = s.api.ListReports(ctx, token)
		return err
	})
	g.Go(func() error {
		var err error
		stats, err = s.api.PlatformStats(ctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &admin.Dashboard{
		PendingCharities: pending,
		OpenReports:      reports,
		Stats:            stats,
	}, nil
}
