// internal/domain/donation/dto.go
package donation

import "time"

// MoneyRequest starts a monetary donation; the backend answers with a
// payment-gateway redirect.
type MoneyRequest struct {
	CharityID int64   `json:"charityId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency"`
	Message   string  `json:"message"`
	Anonymous bool    `json:"anonymous"`
}

// PaymentRedirect is where the client must send the donor to complete payment.
type PaymentRedirect struct {
	PaymentURL string `json:"paymentUrl"`
	Reference  string `json:"reference"`
}

type Donation struct {
	ID          int64     `json:"id"`
	CharityID   int64     `json:"charityId"`
	CharityName string    `json:"charityName"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Reference   string    `json:"reference"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GoodsRequest carries the text fields of the multipart goods-donation form;
// photos travel as file parts.
type GoodsRequest struct {
	CharityID   int64  `form:"charityId" binding:"required"`
	BranchID    int64  `form:"branchId"`
	Category    string `form:"category" binding:"required"`
	Description string `form:"description" binding:"required"`
	Quantity    int    `form:"quantity" binding:"required,gt=0"`
}

type GoodsDonation struct {
	ID          int64     `json:"id"`
	CharityID   int64     `json:"charityId"`
	BranchID    int64     `json:"branchId"`
	DonorName   string    `json:"donorName"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	PhotoURLs   []string  `json:"photoUrls"`
	Reference   string    `json:"reference"`
	CreatedAt   time.Time `json:"createdAt"`
}
