package handlers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/justconnect/justconnect-api/internal/httperr"
	"github.com/justconnect/justconnect-api/internal/media"
	"github.com/justconnect/justconnect-api/internal/middleware"
	"github.com/justconnect/justconnect-api/internal/models"
)

const maxPhotoBytes = 5 << 20 // 5 MiB

// PhotoUploader stores a processed photo and returns its public URL.
type PhotoUploader interface {
	UploadProfilePhoto(ctx context.Context, userID uint, data []byte) (string, error)
}

type UploadHandler struct {
	db       *gorm.DB
	uploader PhotoUploader
}

func NewUploadHandler(db *gorm.DB, uploader PhotoUploader) *UploadHandler {
	return &UploadHandler{db: db, uploader: uploader}
}

// ProfilePhoto handles POST /upload/profile-photo. The multipart field is
// named "photo"; the stored URL is saved on the caller's account.
func (h *UploadHandler) ProfilePhoto(c *gin.Context) {
	id := c.MustGet(middleware.ContextIdentity).(middleware.Identity)

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "multipart field \"photo\" is required")
		return
	}
	if file.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo must be at most 5 MB")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, err, "failed to read photo")
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(io.LimitReader(f, maxPhotoBytes))
	if err != nil {
		httperr.Internal(c, err, "failed to read photo")
		return
	}

	processed, err := media.NormalizeProfilePhoto(raw)
	if err != nil {
		httperr.BadRequest(c, "photo must be a valid JPEG or PNG image")
		return
	}

	url, err := h.uploader.UploadProfilePhoto(c.Request.Context(), id.ID, processed)
	if err != nil {
		httperr.Internal(c, err, "failed to store photo")
		return
	}

	if err := h.db.Model(&models.User{}).
		Where("id = ?", id.ID).
		Update("photo_url", url).Error; err != nil {
		httperr.Internal(c, err, "failed to save photo url")
		return
	}

	c.JSON(200, gin.H{
		"success":  true,
		"message":  "profile photo updated",
		"imageUrl": url,
	})
}
