// internal/handlers/prefs/prefs_handler.go
package prefs

import (
	"encoding/json"
	"io"
	"net/http"

	"hopegivers-web/internal/middleware"
	"hopegivers-web/internal/pkg/response"
	prefsUsecase "hopegivers-web/internal/service/prefs"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxBlobSize = 64 * 1024

type PrefsHandler struct {
	store  *prefsUsecase.Store
	logger *zap.Logger
}

func NewPrefsHandler(store *prefsUsecase.Store, logger *zap.Logger) *PrefsHandler {
	return &PrefsHandler{
		store:  store,
		logger: logger,
	}
}

// GetCart returns the caller's saved cart (requires auth)
func (h *PrefsHandler) GetCart(c *gin.Context) {
	data, err := h.store.GetCart(c.Request.Context(), middleware.GetUserName(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load cart", err)
		return
	}

	response.Success(c, http.StatusOK, "cart retrieved", orEmpty(data))
}

// PutCart replaces the caller's saved cart (requires auth)
func (h *PrefsHandler) PutCart(c *gin.Context) {
	data, ok := h.readBlob(c)
	if !ok {
		return
	}

	if err := h.store.SetCart(c.Request.Context(), middleware.GetUserName(c), data); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save cart", err)
		return
	}

	response.Success(c, http.StatusOK, "cart saved", nil)
}

// GetPreferences returns the caller's saved preferences (requires auth)
func (h *PrefsHandler) GetPreferences(c *gin.Context) {
	data, err := h.store.GetPreferences(c.Request.Context(), middleware.GetUserName(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to load preferences", err)
		return
	}

	response.Success(c, http.StatusOK, "preferences retrieved", orEmpty(data))
}

// PutPreferences replaces the caller's saved preferences (requires auth)
func (h *PrefsHandler) PutPreferences(c *gin.Context) {
	data, ok := h.readBlob(c)
	if !ok {
		return
	}

	if err := h.store.SetPreferences(c.Request.Context(), middleware.GetUserName(c), data); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save preferences", err)
		return
	}

	response.Success(c, http.StatusOK, "preferences saved", nil)
}

func (h *PrefsHandler) readBlob(c *gin.Context) (json.RawMessage, bool) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBlobSize+1))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "unreadable request body", err)
		return nil, false
	}
	if len(data) > maxBlobSize {
		response.Error(c, http.StatusRequestEntityTooLarge, "blob too large", nil)
		return nil, false
	}
	if !json.Valid(data) {
		response.Error(c, http.StatusBadRequest, "body must be valid JSON", nil)
		return nil, false
	}
	return data, true
}

func orEmpty(data json.RawMessage) json.RawMessage {
	if len(data) == 0 {
		return json.RawMessage("{}")
	}
	return data
}
