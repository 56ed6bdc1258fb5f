// internal/handlers/donation/donation_handler.go
package donation

import (
	"net/http"

	"hopegivers-web/internal/apiclient"
	donationDomain "hopegivers-web/internal/domain/donation"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DonationHandler struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewDonationHandler(api *apiclient.Client, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{
		api:    api,
		logger: logger,
	}
}

// DonateMoney starts a monetary donation and returns the payment gateway
// redirect (requires auth)
func (h *DonationHandler) DonateMoney(c *gin.Context) {
	var req donationDomain.MoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	redirect, err := h.api.DonateMoney(c.Request.Context(), middleware.GetToken(c), &req)
	if err != nil {
		h.logger.Error("money donation failed",
			zap.String("user", middleware.GetUserName(c)),
			zap.Int64("charity_id", req.CharityID),
			zap.Error(err),
		)
		response.Error(c, apiclient.HTTPStatus(err), "donation failed", err)
		return
	}

	response.Success(c, http.StatusOK, "redirect to payment gateway", redirect)
}

// DonateGoods submits an in-kind donation with photos (requires auth,
// multipart)
func (h *DonationHandler) DonateGoods(c *gin.Context) {
	var req donationDomain.GoodsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	photos, closeFiles, err := apiclient.OpenFormFiles(form, "photos")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "unreadable photo upload", err)
		return
	}
	defer closeFiles()

	goods, err := h.api.DonateGoods(c.Request.Context(), middleware.GetToken(c), &req, photos)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "goods donation failed", err)
		return
	}

	response.Success(c, http.StatusCreated, "goods donation submitted", goods)
}

// ListMyDonations returns the caller's donations (requires auth)
func (h *DonationHandler) ListMyDonations(c *gin.Context) {
	donations, err := h.api.ListMyDonations(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list donations", err)
		return
	}

	response.Success(c, http.StatusOK, "donations retrieved", donations)
}

// ListIncomingGoods returns goods donations addressed to the caller's
// charity (requires charity role)
func (h *DonationHandler) ListIncomingGoods(c *gin.Context) {
	goods, err := h.api.ListCharityGoodsDonations(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list goods donations", err)
		return
	}

	response.Success(c, http.StatusOK, "goods donations retrieved", goods)
}
