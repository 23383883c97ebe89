package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadBytes caps the size of one uploaded image
const MaxUploadBytes = 5 << 20

// ObjectStore stores a public object and returns its URL
type ObjectStore interface {
	PutPublicObject(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// UploadHandler accepts cover images and dish photos
type UploadHandler struct {
	store ObjectStore
	log   *zap.Logger
}

func NewUploadHandler(store ObjectStore, log *zap.Logger) *UploadHandler {
	return &UploadHandler{store: store, log: log}
}

type uploadResponse struct {
	URL string `json:"url"`
}

// Upload stores the multipart "file" field and answers with its public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadBytes+1<<10)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file is too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	if header.Size > MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file is too large"})
		return
	}

	sniff := make([]byte, 512)
	n, err := io.ReadFull(file, sniff)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}
	contentType := http.DetectContentType(sniff[:n])
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "only images can be uploaded"})
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file"})
		return
	}

	key := "uploads/" + uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	url, err := h.store.PutPublicObject(c.Request.Context(), key, contentType, file)
	if err != nil {
		h.log.Error("failed to upload file", zap.String("key", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not upload file"})
		return
	}

	c.JSON(http.StatusOK, uploadResponse{URL: url})
}
