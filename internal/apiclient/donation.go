// internal/apiclient/donation.go
package apiclient

import (
	"context"
	"strconv"

	"hopegivers-web/internal/domain/donation"
)

// DonateMoney starts a monetary donation. The backend returns the payment
// gateway URL the donor must be redirected to; no payment logic lives here.
func (c *Client) DonateMoney(ctx context.Context, token string, req *donation.MoneyRequest) (*donation.PaymentRedirect, error) {
	var redirect donation.PaymentRedirect
	if err := c.postJSON(ctx, token, "/donations/money", req, &redirect); err != nil {
		return nil, err
	}
	return &redirect, nil
}

// DonateGoods submits an in-kind donation with photos.
func (c *Client) DonateGoods(ctx context.Context, token string, req *donation.GoodsRequest, photos []FilePart) (*donation.GoodsDonation, error) {
	fields := map[string]string{
		"charityId":   strconv.FormatInt(req.CharityID, 10),
		"branchId":    strconv.FormatInt(req.BranchID, 10),
		"category":    req.Category,
		"description": req.Description,
		"quantity":    strconv.Itoa(req.Quantity),
	}

	var goods donation.GoodsDonation
	if err := c.postMultipart(ctx, token, "/donations/goods", fields, photos, &goods); err != nil {
		return nil, err
	}
	return &goods, nil
}

// ListMyDonations returns the caller's monetary donations.
func (c *Client) ListMyDonations(ctx context.Context, token string) ([]donation.Donation, error) {
	var donations []donation.Donation
	if err := c.get(ctx, token, "/donations/mine", nil, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// ListCharityGoodsDonations returns goods donations addressed to the
// caller's charity.
func (c *Client) ListCharityGoodsDonations(ctx context.Context, token string) ([]donation.GoodsDonation, error) {
	var goods []donation.GoodsDonation
	if err := c.get(ctx, token, "/donations/goods/incoming", nil, &goods); err != nil {
		return nil, err
	}
	return goods, nil
}
