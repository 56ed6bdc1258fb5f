// internal/domain/account/dto.go
package account

import (
	"time"

	"hopegivers-web/internal/domain/donation"
	"hopegivers-web/internal/domain/help"
	"hopegivers-web/internal/pkg/session"
)

// LoginRequest for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest for donor registration
type RegisterRequest struct {
	UserName string `json:"userName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
}

// AuthUser is the backend's login/registration payload. Roles arrive in
// whatever shape the backend picked for that code path; session.RoleList
// absorbs all of them.
type AuthUser struct {
	UserName         string           `json:"userName"`
	Email            string           `json:"email"`
	FullName         string           `json:"fullName"`
	Roles            session.RoleList `json:"roles"`
	Token            string           `json:"token"`
	ExpireAt         time.Time        `json:"expireAt"`
	IsEmailConfirmed bool             `json:"isEmailConfirmed"`
}

// Profile is the backend's view of an account.
type Profile struct {
	UserName         string `json:"userName"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
	PhotoURL         string `json:"photoUrl"`
	IsEmailConfirmed bool   `json:"isEmailConfirmed"`
}

// UpdateProfileRequest for profile edits
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	PhotoURL string `json:"photoUrl"`
}

// ChangePasswordRequest for password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// LoginResult is what the gateway hands back after establishing a session.
type LoginResult struct {
	User          *AuthUser `json:"user"`
	DashboardPath string    `json:"dashboardPath"`
}

// UserDashboard aggregates the donor landing page.
type UserDashboard struct {
	Profile      *Donor              `json:"profile"`
	Donations    []donation.Donation `json:"donations"`
	HelpRequests []help.Request      `json:"helpRequests"`
}

// Donor is an alias-shaped view used on dashboards.
type Donor = Profile
