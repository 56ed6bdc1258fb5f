// internal/handlers/admin/admin_handler.go
package admin

import (
	"net/http"
	"strconv"

	"hopegivers-web/internal/apiclient"
	adminDomain "hopegivers-web/internal/domain/admin"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewAdminHandler(api *apiclient.Client, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		api:    api,
		logger: logger,
	}
}

// ========== Users ==========

// ListUsers returns platform accounts, optionally filtered by ?q
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.api.ListUsers(c.Request.Context(), middleware.GetToken(c), c.Query("q"))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list users", err)
		return
	}

	response.Success(c, http.StatusOK, "users retrieved", users)
}

// BlockUser blocks an account
func (h *AdminHandler) BlockUser(c *gin.Context) {
	userName := c.Param("user_name")
	if err := h.api.BlockUser(c.Request.Context(), middleware.GetToken(c), userName); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to block user", err)
		return
	}

	h.logger.Info("user blocked",
		zap.String("user", userName),
		zap.String("admin", middleware.GetUserName(c)),
	)
	response.Success(c, http.StatusOK, "user blocked", nil)
}

// UnblockUser lifts a block
func (h *AdminHandler) UnblockUser(c *gin.Context) {
	userName := c.Param("user_name")
	if err := h.api.UnblockUser(c.Request.Context(), middleware.GetToken(c), userName); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to unblock user", err)
		return
	}

	response.Success(c, http.StatusOK, "user unblocked", nil)
}

// ========== Charity Review ==========

// ListPendingCharities returns applications awaiting review
func (h *AdminHandler) ListPendingCharities(c *gin.Context) {
	charities, err := h.api.ListPendingCharities(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list pending charities", err)
		return
	}

	response.Success(c, http.StatusOK, "pending charities retrieved", charities)
}

// ApproveCharity approves an application
func (h *AdminHandler) ApproveCharity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid charity id", err)
		return
	}

	if err := h.api.ApproveCharity(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to approve charity", err)
		return
	}

	h.logger.Info("charity approved",
		zap.Int64("charity_id", id),
		zap.String("admin", middleware.GetUserName(c)),
	)
	response.Success(c, http.StatusOK, "charity approved", nil)
}

// RejectCharity rejects an application with a reason
func (h *AdminHandler) RejectCharity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid charity id", err)
		return
	}

	var req adminDomain.RejectCharityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.api.RejectCharity(c.Request.Context(), middleware.GetToken(c), id, &req); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to reject charity", err)
		return
	}

	response.Success(c, http.StatusOK, "charity rejected", nil)
}

// ========== Reports ==========

// ListReports returns open content reports
func (h *AdminHandler) ListReports(c *gin.Context) {
	reports, err := h.api.ListReports(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list reports", err)
		return
	}

	response.Success(c, http.StatusOK, "reports retrieved", reports)
}

// ResolveReport dismisses a report or removes the reported content
func (h *AdminHandler) ResolveReport(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid report id", err)
		return
	}

	var req adminDomain.ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	if err := h.api.ResolveReport(c.Request.Context(), middleware.GetToken(c), id, &req); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to resolve report", err)
		return
	}

	response.Success(c, http.StatusOK, "report resolved", nil)
}

// GetStats returns headline platform numbers
func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.api.PlatformStats(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to load stats", err)
		return
	}

	response.Success(c, http.StatusOK, "stats retrieved", stats)
}
