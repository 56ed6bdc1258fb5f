// internal/handlers/help/help_handler.go
package help

import (
	"net/http"
	"strconv"

	"hopegivers-web/internal/apiclient"
	helpDomain "hopegivers-web/internal/domain/help"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HelpHandler struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewHelpHandler(api *apiclient.Client, logger *zap.Logger) *HelpHandler {
	return &HelpHandler{
		api:    api,
		logger: logger,
	}
}

// CreateRequest files a help request with a charity (requires auth)
func (h *HelpHandler) CreateRequest(c *gin.Context) {
	var req helpDomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	hr, err := h.api.CreateHelpRequest(c.Request.Context(), middleware.GetToken(c), &req)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to create help request", err)
		return
	}

	response.Success(c, http.StatusCreated, "help request created", hr)
}

// ListMine returns the caller's help requests (requires auth)
func (h *HelpHandler) ListMine(c *gin.Context) {
	requests, err := h.api.ListMyHelpRequests(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list help requests", err)
		return
	}

	response.Success(c, http.StatusOK, "help requests retrieved", requests)
}

// ListIncoming returns help requests addressed to the caller's charity
// (requires charity role)
func (h *HelpHandler) ListIncoming(c *gin.Context) {
	requests, err := h.api.ListCharityHelpRequests(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list help requests", err)
		return
	}

	response.Success(c, http.StatusOK, "help requests retrieved", requests)
}

// CloseRequest marks a help request handled (requires charity role)
func (h *HelpHandler) CloseRequest(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid help request id", err)
		return
	}

	if err := h.api.CloseHelpRequest(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to close help request", err)
		return
	}

	response.Success(c, http.StatusOK, "help request closed", nil)
}
