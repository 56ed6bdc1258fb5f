// internal/apiclient/admin.go
package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"hopegivers-web/internal/domain/admin"
	"hopegivers-web/internal/domain/charity"
)

// ListUsers returns platform accounts for moderation.
func (c *Client) ListUsers(ctx context.Context, token, search string) ([]admin.User, error) {
	query := url.Values{}
	if search != "" {
		query.Set("q", search)
	}

	var users []admin.User
	if err := c.get(ctx, token, "/admin/users", query, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// BlockUser blocks an account.
func (c *Client) BlockUser(ctx context.Context, token, userName string) error {
	return c.putJSON(ctx, token, "/admin/users/"+url.PathEscape(userName)+"/block", nil, nil)
}

// UnblockUser lifts a block.
func (c *Client) UnblockUser(ctx context.Context, token, userName string) error {
	return c.putJSON(ctx, token, "/admin/users/"+url.PathEscape(userName)+"/unblock", nil, nil)
}

// ListPendingCharities returns charity applications awaiting review.
func (c *Client) ListPendingCharities(ctx context.Context, token string) ([]charity.Charity, error) {
	var charities []charity.Charity
	if err := c.get(ctx, token, "/admin/charities/pending", nil, &charities); err != nil {
		return nil, err
	}
	return charities, nil
}

// ApproveCharity approves a pending charity application.
func (c *Client) ApproveCharity(ctx context.Context, token string, id int64) error {
	return c.putJSON(ctx, token, "/admin/charities/"+strconv.FormatInt(id, 10)+"/approve", nil, nil)
}

// RejectCharity rejects a pending charity application with a reason.
func (c *Client) RejectCharity(ctx context.Context, token string, id int64, req *admin.RejectCharityRequest) error {
	return c.putJSON(ctx, token, "/admin/charities/"+strconv.FormatInt(id, 10)+"/reject", req, nil)
}

// ListReports returns open content reports.
func (c *Client) ListReports(ctx context.Context, token string) ([]admin.Report, error) {
	var reports []admin.Report
	if err := c.get(ctx, token, "/admin/reports", nil, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// ResolveReport dismisses a report or removes the reported content.
func (c *Client) ResolveReport(ctx context.Context, token string, id int64, req *admin.ResolveReportRequest) error {
	return c.putJSON(ctx, token, "/admin/reports/"+strconv.FormatInt(id, 10)+"/resolve", req, nil)
}

// PlatformStats returns headline numbers for the admin dashboard.
func (c *Client) PlatformStats(ctx context.Context, token string) (*admin.PlatformStats, error) {
	var stats admin.PlatformStats
	if err := c.get(ctx, token, "/admin/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
