// internal/handlers/charity/charity_handler.go
package charity

import (
	"net/http"
	"strconv"

	"hopegivers-web/internal/apiclient"
	charityDomain "hopegivers-web/internal/domain/charity"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/response"
	"hopegivers-web/internal/service/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CharityHandler struct {
	catalog *catalog.Service
	api     *apiclient.Client
	logger  *zap.Logger
}

func NewCharityHandler(catalog *catalog.Service, api *apiclient.Client, logger *zap.Logger) *CharityHandler {
	return &CharityHandler{
		catalog: catalog,
		api:     api,
		logger:  logger,
	}
}

// ========== Browsing ==========

// ListCharities returns approved charities (public endpoint)
func (h *CharityHandler) ListCharities(c *gin.Context) {
	filter := charityDomain.ListFilter{
		Query:    c.Query("q"),
		Page:     atoi(c.Query("page")),
		PageSize: atoi(c.Query("pageSize")),
	}

	charities, err := h.catalog.Charities(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list charities", err)
		return
	}

	response.Success(c, http.StatusOK, "charities retrieved", charities)
}

// GetCharity returns one charity (public endpoint)
func (h *CharityHandler) GetCharity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid charity id", err)
		return
	}

	ch, err := h.catalog.Charity(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to load charity", err)
		return
	}

	response.Success(c, http.StatusOK, "charity retrieved", ch)
}

// ========== Registration ==========

// Register submits a charity application with verification documents
// (public endpoint, multipart)
func (h *CharityHandler) Register(c *gin.Context) {
	var req charityDomain.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	documents, closeFiles, err := apiclient.OpenFormFiles(form, "documents")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "unreadable document upload", err)
		return
	}
	defer closeFiles()

	ch, err := h.api.RegisterCharity(c.Request.Context(), &req, documents)
	if err != nil {
		h.logger.Error("charity registration failed",
			zap.String("name", req.Name),
			zap.Error(err),
		)
		response.Error(c, apiclient.HTTPStatus(err), "charity registration failed", err)
		return
	}

	response.Success(c, http.StatusCreated, "charity application submitted", ch)
}

// MyCharity returns the caller's charity (requires charity role)
func (h *CharityHandler) MyCharity(c *gin.Context) {
	ch, err := h.api.MyCharity(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to load charity", err)
		return
	}

	response.Success(c, http.StatusOK, "charity retrieved", ch)
}

// ========== Branches ==========

// ListBranches returns a charity's branches (public endpoint)
func (h *CharityHandler) ListBranches(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid charity id", err)
		return
	}

	branches, err := h.api.ListBranches(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list branches", err)
		return
	}

	response.Success(c, http.StatusOK, "branches retrieved", branches)
}

// CreateBranch adds a branch (requires charity role)
func (h *CharityHandler) CreateBranch(c *gin.Context) {
	var req charityDomain.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	branch, err := h.api.CreateBranch(c.Request.Context(), middleware.GetToken(c), &req)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to create branch", err)
		return
	}

	response.Success(c, http.StatusCreated, "branch created", branch)
}

// UpdateBranch edits a branch (requires charity role)
func (h *CharityHandler) UpdateBranch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid branch id", err)
		return
	}

	var req charityDomain.BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	branch, err := h.api.UpdateBranch(c.Request.Context(), middleware.GetToken(c), id, &req)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to update branch", err)
		return
	}

	response.Success(c, http.StatusOK, "branch updated", branch)
}

// DeleteBranch removes a branch (requires charity role)
func (h *CharityHandler) DeleteBranch(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid branch id", err)
		return
	}

	if err := h.api.DeleteBranch(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to delete branch", err)
		return
	}

	response.Success(c, http.StatusOK, "branch deleted", nil)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
