// internal/app/router.go
package app

import (
	adminHandler "hopegivers-web/internal/handlers/admin"
	authHandler "hopegivers-web/internal/handlers/auth"
	charityHandler "hopegivers-web/internal/handlers/charity"
	dashboardHandler "hopegivers-web/internal/handlers/dashboard"
	donationHandler "hopegivers-web/internal/handlers/donation"
	eventsHandler "hopegivers-web/internal/handlers/events"
	helpHandler "hopegivers-web/internal/handlers/help"
	postHandler "hopegivers-web/internal/handlers/post"
	prefsHandler "hopegivers-web/internal/handlers/prefs"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	AuthHandler      *authHandler.AuthHandler
	CharityHandler   *charityHandler.CharityHandler
	DonationHandler  *donationHandler.DonationHandler
	PostHandler      *postHandler.PostHandler
	HelpHandler      *helpHandler.HelpHandler
	AdminHandler     *adminHandler.AdminHandler
	DashboardHandler *dashboardHandler.DashboardHandler
	PrefsHandler     *prefsHandler.PrefsHandler
	WSHandler        *eventsHandler.WSHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

func SetupRouter(r *gin.Engine, logger *zap.Logger, h *Handlers) {
	api := r.Group("/api/v1")

	// ==================== Health Check ====================
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "version": "1.0.0"})
	})

	// ==================== WebSocket ====================
	r.GET("/ws", h.AuthMiddleware.RequireSession(), h.WSHandler.HandleConnection)

	// ==================== Dashboard Redirect ====================
	r.GET("/dashboard", h.DashboardHandler.Resolve)

	// ==================== Public Auth Routes ====================
	authPublic := api.Group("/auth")
	{
		authPublic.POST("/register", h.AuthHandler.Register)
		authPublic.POST("/login", h.AuthHandler.Login)
		authPublic.POST("/logout", h.AuthHandler.Logout)
		authPublic.GET("/session", h.AuthHandler.Session)
		authPublic.POST("/confirm-email", h.AuthHandler.ConfirmEmail)
	}

	// ==================== Authenticated Auth Routes ====================
	authProtected := api.Group("/auth")
	authProtected.Use(h.AuthMiddleware.RequireSession())
	{
		authProtected.GET("/me", h.AuthHandler.GetMe)
		authProtected.PUT("/profile", h.AuthHandler.UpdateProfile)
		authProtected.PUT("/change-password", h.AuthHandler.ChangePassword)
	}

	// ==================== Charities ====================
	charities := api.Group("/charities")
	{
		// Public endpoints - no auth required
		charities.GET("", h.CharityHandler.ListCharities)
		charities.POST("/register", h.CharityHandler.Register)

		// Charity-owner endpoints; registered before /:id so gin does not
		// swallow "mine" as an id.
		charities.GET("/mine", h.AuthMiddleware.RequireSession(), h.AuthMiddleware.RequireRole(session.RoleCharity), h.CharityHandler.MyCharity)

		charities.GET("/:id", h.CharityHandler.GetCharity)
		charities.GET("/:id/branches", h.CharityHandler.ListBranches)
	}

	branches := api.Group("/branches")
	branches.Use(h.AuthMiddleware.RequireSession(), h.AuthMiddleware.RequireRole(session.RoleCharity))
	{
		branches.POST("", h.CharityHandler.CreateBranch)
		branches.PUT("/:id", h.CharityHandler.UpdateBranch)
		branches.DELETE("/:id", h.CharityHandler.DeleteBranch)
	}

	// ==================== Donations ====================
	donations := api.Group("/donations")
	donations.Use(h.AuthMiddleware.RequireSession())
	{
		donations.POST("/money", h.DonationHandler.DonateMoney)
		donations.POST("/goods", h.DonationHandler.DonateGoods)
		donations.GET("/mine", h.DonationHandler.ListMyDonations)
		donations.GET("/goods/incoming", h.AuthMiddleware.RequireRole(session.RoleCharity), h.DonationHandler.ListIncomingGoods)
	}

	// ==================== Posts ====================
	posts := api.Group("/posts")
	{
		// Public endpoints - no auth required
		posts.GET("", h.PostHandler.ListPosts)
		posts.GET("/:id", h.PostHandler.GetPost)
		posts.GET("/:id/comments", h.PostHandler.ListComments)

		// Authenticated endpoints
		postsAuth := posts.Group("")
		postsAuth.Use(h.AuthMiddleware.RequireSession())
		{
			postsAuth.POST("", h.AuthMiddleware.RequireRole(session.RoleCharity), h.PostHandler.CreatePost)
			postsAuth.DELETE("/:id", h.AuthMiddleware.RequireRole(session.RoleCharity), h.PostHandler.DeletePost)
			postsAuth.POST("/:id/comments", h.PostHandler.AddComment)
			postsAuth.DELETE("/:id/comments/:comment_id", h.PostHandler.DeleteComment)
		}
	}

	// ==================== Help Requests ====================
	helpRequests := api.Group("/help-requests")
	helpRequests.Use(h.AuthMiddleware.RequireSession())
	{
		helpRequests.POST("", h.HelpHandler.CreateRequest)
		helpRequests.GET("/mine", h.HelpHandler.ListMine)
		helpRequests.GET("/incoming", h.AuthMiddleware.RequireRole(session.RoleCharity), h.HelpHandler.ListIncoming)
		helpRequests.PUT("/:id/close", h.AuthMiddleware.RequireRole(session.RoleCharity), h.HelpHandler.CloseRequest)
	}

	// ==================== Dashboards ====================
	dashboards := api.Group("/dashboards")
	dashboards.Use(h.AuthMiddleware.RequireSession())
	{
		dashboards.GET("/user", h.DashboardHandler.User)
		dashboards.GET("/charity", h.AuthMiddleware.RequireRole(session.RoleCharity), h.DashboardHandler.Charity)
		dashboards.GET("/admin", h.AuthMiddleware.RequireRole(session.RoleAdmin), h.DashboardHandler.Admin)
	}

	// ==================== Cart & Preferences ====================
	me := api.Group("/me")
	me.Use(h.AuthMiddleware.RequireSession())
	{
		me.GET("/cart", h.PrefsHandler.GetCart)
		me.PUT("/cart", h.PrefsHandler.PutCart)
		me.GET("/preferences", h.PrefsHandler.GetPreferences)
		me.PUT("/preferences", h.PrefsHandler.PutPreferences)
	}

	// ==================== Admin ====================
	admin := api.Group("/admin")
	admin.Use(h.AuthMiddleware.RequireSession(), h.AuthMiddleware.RequireRole(session.RoleAdmin))
	{
		admin.GET("/users", h.AdminHandler.ListUsers)
		admin.PUT("/users/:user_name/block", h.AdminHandler.BlockUser)
		admin.PUT("/users/:user_name/unblock", h.AdminHandler.UnblockUser)

		admin.GET("/charities/pending", h.AdminHandler.ListPendingCharities)
		admin.PUT("/charities/:id/approve", h.AdminHandler.ApproveCharity)
		admin.PUT("/charities/:id/reject", h.AdminHandler.RejectCharity)

		admin.GET("/reports", h.AdminHandler.ListReports)
		admin.PUT("/reports/:id/resolve", h.AdminHandler.ResolveReport)

		admin.GET("/stats", h.AdminHandler.GetStats)
	}
}
