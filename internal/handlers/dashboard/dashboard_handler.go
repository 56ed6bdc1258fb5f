// internal/handlers/dashboard/dashboard_handler.go
package dashboard

import (
	"net/http"

	"hopegivers-web/internal/apiclient"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/response"
	"hopegivers-web/internal/pkg/session"
	dashboardUsecase "hopegivers-web/internal/service/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboards *dashboardUsecase.Service
	sessions   *session.Manager
	logger     *zap.Logger
}

func NewDashboardHandler(dashboards *dashboardUsecase.Service, sessions *session.Manager, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboards: dashboards,
		sessions:   sessions,
		logger:     logger,
	}
}

// Resolve redirects the browser to its role's dashboard, or to /login when
// no session is live (public endpoint). Highest role wins.
func (h *DashboardHandler) Resolve(c *gin.Context) {
	st := session.NewCookieStore(c.Writer, c.Request)
	c.Redirect(http.StatusSeeOther, h.sessions.DashboardPath(st))
}

// User returns the donor dashboard (requires auth)
func (h *DashboardHandler) User(c *gin.Context) {
	dash, err := h.dashboards.User(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to build dashboard", err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard retrieved", dash)
}

// Charity returns the charity dashboard (requires charity role)
func (h *DashboardHandler) Charity(c *gin.Context) {
	dash, err := h.dashboards.Charity(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to build dashboard", err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard retrieved", dash)
}

// Admin returns the moderation dashboard (requires admin role)
func (h *DashboardHandler) Admin(c *gin.Context) {
	dash, err := h.dashboards.Admin(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to build dashboard", err)
		return
	}

	response.Success(c, http.StatusOK, "dashboard retrieved", dash)
}
