// internal/apiclient/help.go
package apiclient

import (
	"context"
	"strconv"

	"hopegivers-web/internal/domain/help"
)

// CreateHelpRequest files a help request with a charity.
func (c *Client) CreateHelpRequest(ctx context.Context, token string, req *help.CreateRequest) (*help.Request, error) {
	var hr help.Request
	if err := c.postJSON(ctx, token, "/help-requests", req, &hr); err != nil {
		return nil, err
	}
	return &hr, nil
}

// ListMyHelpRequests returns the caller's help requests.
func (c *Client) ListMyHelpRequests(ctx context.Context, token string) ([]help.Request, error) {
	var requests []help.Request
	if err := c.get(ctx, token, "/help-requests/mine", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// ListCharityHelpRequests returns help requests addressed to the caller's
// charity.
func (c *Client) ListCharityHelpRequests(ctx context.Context, token string) ([]help.Request, error) {
	var requests []help.Request
	if err := c.get(ctx, token, "/help-requests/incoming", nil, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// CloseHelpRequest marks a help request handled.
func (c *Client) CloseHelpRequest(ctx context.Context, token string, id int64) error {
	return c.putJSON(ctx, token, "/help-requests/"+strconv.FormatInt(id, 10)+"/close", nil, nil)
}
