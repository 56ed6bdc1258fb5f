// internal/handlers/post/post_handler.go
package post

import (
	"net/http"
	"strconv"

	"hopegivers-web/internal/apiclient"
	postDomain "hopegivers-web/internal/domain/post"
	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PostHandler struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func NewPostHandler(api *apiclient.Client, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		api:    api,
		logger: logger,
	}
}

// ListPosts returns the public feed, optionally filtered by ?charityId
// (public endpoint)
func (h *PostHandler) ListPosts(c *gin.Context) {
	charityID, _ := strconv.ParseInt(c.Query("charityId"), 10, 64)

	posts, err := h.api.ListPosts(c.Request.Context(), charityID)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list posts", err)
		return
	}

	response.Success(c, http.StatusOK, "posts retrieved", posts)
}

// GetPost returns one post (public endpoint)
func (h *PostHandler) GetPost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", err)
		return
	}

	p, err := h.api.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to load post", err)
		return
	}

	response.Success(c, http.StatusOK, "post retrieved", p)
}

// CreatePost publishes a post (requires charity role)
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req postDomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	p, err := h.api.CreatePost(c.Request.Context(), middleware.GetToken(c), &req)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to create post", err)
		return
	}

	response.Success(c, http.StatusCreated, "post created", p)
}

// DeletePost removes a post (requires charity role)
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", err)
		return
	}

	if err := h.api.DeletePost(c.Request.Context(), middleware.GetToken(c), id); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to delete post", err)
		return
	}

	response.Success(c, http.StatusOK, "post deleted", nil)
}

// ListComments returns a post's comments (public endpoint)
func (h *PostHandler) ListComments(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", err)
		return
	}

	comments, err := h.api.ListComments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to list comments", err)
		return
	}

	response.Success(c, http.StatusOK, "comments retrieved", comments)
}

// AddComment attaches a comment to a post (requires auth)
func (h *PostHandler) AddComment(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", err)
		return
	}

	var req postDomain.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	comment, err := h.api.AddComment(c.Request.Context(), middleware.GetToken(c), id, &req)
	if err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to add comment", err)
		return
	}

	response.Success(c, http.StatusCreated, "comment added", comment)
}

// DeleteComment removes the caller's comment (requires auth)
func (h *PostHandler) DeleteComment(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid post id", err)
		return
	}
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid comment id", err)
		return
	}

	if err := h.api.DeleteComment(c.Request.Context(), middleware.GetToken(c), postID, commentID); err != nil {
		response.Error(c, apiclient.HTTPStatus(err), "failed to delete comment", err)
		return
	}

	response.Success(c, http.StatusOK, "comment deleted", nil)
}
