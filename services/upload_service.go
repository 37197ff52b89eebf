// File: /services/upload_service.go
package services

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize caps image uploads at 5MB.
const MaxUploadSize = 5 * 1024 * 1024

// UploadService stores image uploads in a local directory served at /uploads.
type UploadService struct {
	dir string
}

func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &UploadService{dir: dir}, nil
}

// Dir returns the directory uploads are written to.
func (us *UploadService) Dir() string {
	return us.dir
}

// SaveImage validates and stores an uploaded image, returning its public
// /uploads path.
func (us *UploadService) SaveImage(c *gin.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("file exceeds %d byte limit", MaxUploadSize)
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("only image files are allowed")
	}

	filename := fmt.Sprintf("%s-%d-%d%s",
		strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename)),
		time.Now().UnixMilli(),
		rand.Intn(1_000_000_000),
		filepath.Ext(file.Filename),
	)

	if err := c.SaveUploadedFile(file, filepath.Join(us.dir, filename)); err != nil {
		return "", err
	}

	return "/uploads/" + filename, nil
}
