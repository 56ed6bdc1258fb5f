// internal/domain/admin/dto.go
package admin

import (
	"time"

	"hopegivers-web/internal/domain/charity"
	"hopegivers-web/internal/pkg/session"
)

type User struct {
	UserName  string           `json:"userName"`
	Email     string           `json:"email"`
	FullName  string           `json:"fullName"`
	Roles     session.RoleList `json:"roles"`
	IsBlocked bool             `json:"isBlocked"`
	CreatedAt time.Time        `json:"createdAt"`
}

type Report struct {
	ID         int64     `json:"id"`
	TargetType string    `json:"targetType"` // post, comment, charity
	TargetID   int64     `json:"targetId"`
	Reason     string    `json:"reason"`
	ReportedBy string    `json:"reportedBy"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type ResolveReportRequest struct {
	Action string `json:"action" binding:"required,oneof=dismiss remove"`
}

type RejectCharityRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PlatformStats struct {
	Users            int64   `json:"users"`
	Charities        int64   `json:"charities"`
	PendingCharities int64   `json:"pendingCharities"`
	Donations        int64   `json:"donations"`
	TotalAmount      float64 `json:"totalAmount"`
	OpenReports      int64   `json:"openReports"`
}

// Dashboard aggregates the admin landing page.
type Dashboard struct {
	PendingCharities []charity.Charity `json:"pendingCharities"`
	OpenReports      []Report          `json:"openReports"`
	Stats            *PlatformStats    `json:"stats"`
}
