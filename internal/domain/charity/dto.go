// internal/domain/charity/dto.go
package charity

import (
	"time"

	"hopegivers-web/internal/domain/donation"
	"hopegivers-web/internal/domain/post"
)

// Charity approval states as the backend reports them.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type Charity struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	Website     string    `json:"website"`
	LogoURL     string    `json:"logoUrl"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RegisterRequest carries the text fields of the multipart charity
// registration form; verification documents travel as file parts.
type RegisterRequest struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
	Email       string `form:"email" binding:"required,email"`
	Password    string `form:"password" binding:"required,min=8"`
	Phone       string `form:"phone"`
	Address     string `form:"address"`
	Website     string `form:"website"`
}

type Branch struct {
	ID        int64  `json:"id"`
	CharityID int64  `json:"charityId"`
	Name      string `json:"name"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
}

type BranchRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

// ListFilter narrows charity browsing.
type ListFilter struct {
	Query    string
	Page     int
	PageSize int
}

// Dashboard aggregates the charity landing page.
type Dashboard struct {
	Charity        *Charity                 `json:"charity"`
	Branches       []Branch                 `json:"branches"`
	GoodsDonations []donation.GoodsDonation `json:"goodsDonations"`
	Posts          []post.Post              `json:"posts"`
}
