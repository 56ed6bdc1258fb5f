// internal/apiclient/post.go
package apiclient

import (
	"context"
	"net/url"
	"strconv"

	"hopegivers-web/internal/domain/post"
)

// ListPosts returns the public feed, optionally filtered to one charity.
func (c *Client) ListPosts(ctx context.Context, charityID int64) ([]post.Post, error) {
	query := url.Values{}
	if charityID > 0 {
		query.Set("charityId", strconv.FormatInt(charityID, 10))
	}

	var posts []post.Post
	if err := c.get(ctx, "", "/posts", query, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost fetches a single post. Public endpoint.
func (c *Client) GetPost(ctx context.Context, id int64) (*post.Post, error) {
	var p post.Post
	if err := c.get(ctx, "", "/posts/"+strconv.FormatInt(id, 10), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePost publishes a post on behalf of the caller's charity.
func (c *Client) CreatePost(ctx context.Context, token string, req *post.CreateRequest) (*post.Post, error) {
	var p post.Post
	if err := c.postJSON(ctx, token, "/posts", req, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePost removes a post owned by the caller's charity.
func (c *Client) DeletePost(ctx context.Context, token string, id int64) error {
	return c.delete(ctx, token, "/posts/"+strconv.FormatInt(id, 10))
}

// ListComments returns a post's comments. Public endpoint.
func (c *Client) ListComments(ctx context.Context, postID int64) ([]post.Comment, error) {
	var comments []post.Comment
	path := "/posts/" + strconv.FormatInt(postID, 10) + "/comments"
	if err := c.get(ctx, "", path, nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment attaches a comment to a post.
func (c *Client) AddComment(ctx context.Context, token string, postID int64, req *post.CommentRequest) (*post.Comment, error) {
	var comment post.Comment
	path := "/posts/" + strconv.FormatInt(postID, 10) + "/comments"
	if err := c.postJSON(ctx, token, path, req, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment removes the caller's comment.
func (c *Client) DeleteComment(ctx context.Context, token string, postID, commentID int64) error {
	path := "/posts/" + strconv.FormatInt(postID, 10) + "/comments/" + strconv.FormatInt(commentID, 10)
	return c.delete(ctx, token, path)
}
