// internal/domain/post/dto.go
package post

import "time"

type Post struct {
	ID           int64     `json:"id"`
	CharityID    int64     `json:"charityId"`
	CharityName  string    `json:"charityName"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	ImageURL     string    `json:"imageUrl"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateRequest struct {
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	ImageURL string `json:"imageUrl"`
}

type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"postId"`
	UserName  string    `json:"userName"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}
