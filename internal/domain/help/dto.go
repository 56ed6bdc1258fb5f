// internal/domain/help/dto.go
package help

import "time"

// Help request states as the backend reports them.
const (
	StatusOpen   = "open"
	StatusClosed = "closed"
)

type Request struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"userName"`
	CharityID int64     `json:"charityId"`
	Subject   string    `json:"subject"`
	Details   string    `json:"details"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateRequest struct {
	CharityID int64  `json:"charityId" binding:"required"`
	Subject   string `json:"subject" binding:"required"`
	Details   string `json:"details" binding:"required"`
}
