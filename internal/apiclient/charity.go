// internal/apiclient/charity.go
package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"hopegivers-web/internal/domain/charity"
)

// ListCharities browses approved charities. Public endpoint.
func (c *Client) ListCharities(ctx context.Context, filter charity.ListFilter) ([]charity.Charity, error) {
	query := url.Values{}
	if filter.Query != "" {
		query.Set("q", filter.Query)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(filter.PageSize))
	}

	var charities []charity.Charity
	if err := c.get(ctx, "", "/charities", query, &charities); err != nil {
		return nil, err
	}
	return charities, nil
}

// GetCharity fetches a single charity. Public endpoint.
func (c *Client) GetCharity(ctx context.Context, id int64) (*charity.Charity, error) {
	var ch charity.Charity
	if err := c.get(ctx, "", "/charities/"+strconv.FormatInt(id, 10), nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// RegisterCharity submits a charity application with verification documents.
// The new charity stays in pending state until an admin approves it.
func (c *Client) RegisterCharity(ctx context.Context, req *charity.RegisterRequest, documents []FilePart) (*charity.Charity, error) {
	fields := map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"email":       req.Email,
		"password":    req.Password,
		"phone":       req.Phone,
		"address":     req.Address,
		"website":     req.Website,
	}

	var ch charity.Charity
	if err := c.postMultipart(ctx, "", "/charities/register", fields, documents, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// MyCharity returns the charity owned by the bearer of token.
func (c *Client) MyCharity(ctx context.Context, token string) (*charity.Charity, error) {
	var ch charity.Charity
	if err := c.get(ctx, token, "/charities/mine", nil, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// ListBranches lists a charity's branches. Public endpoint.
func (c *Client) ListBranches(ctx context.Context, charityID int64) ([]charity.Branch, error) {
	var branches []charity.Branch
	path := "/charities/" + strconv.FormatInt(charityID, 10) + "/branches"
	if err := c.get(ctx, "", path, nil, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// CreateBranch adds a branch to the caller's charity.
func (c *Client) CreateBranch(ctx context.Context, token string, req *charity.BranchRequest) (*charity.Branch, error) {
	var branch charity.Branch
	if err := c.postJSON(ctx, token, "/branches", req, &branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

// UpdateBranch edits a branch of the caller's charity.
func (c *Client) UpdateBranch(ctx context.Context, token string, id int64, req *charity.BranchRequest) (*charity.Branch, error) {
	var branch charity.Branch
	if err := c.putJSON(ctx, token, "/branches/"+strconv.FormatInt(id, 10), req, &branch); err != nil {
		return nil, err
	}
	return &branch, nil
}

// DeleteBranch removes a branch of the caller's charity.
func (c *Client) DeleteBranch(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, token, "/branches/"+strconv.FormatInt(id, 10))
}
