package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/workhive/workhive-backend/internal/models"
)

// Uploader pushes staged files to the media host and deletes them by
// public id. Entities store only the returned (url, publicId) pair.
type Uploader interface {
	Upload(ctx context.Context, filePath string) (models.Image, error)
	Destroy(ctx context.Context, publicID string) error
}

// CloudinaryUploader is the production Uploader.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cloudinaryURL string) (*CloudinaryUploader, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{cld: cld}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, filePath string) (models.Image, error) {
	res, err := u.cld.Upload.Upload(ctx, filePath, uploader.UploadParams{ResourceType: "image"})
	if err != nil {
		return models.Image{}, fmt.Errorf("cloudinary upload: %w", err)
	}
	return models.Image{URL: res.SecureURL, PublicID: res.PublicID}, nil
}

func (u *CloudinaryUploader) Destroy(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	if _, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	return nil
}

// Stage writes a multipart upload to the staging directory and returns
// its path. Callers remove the file once it has been pushed upstream.
func Stage(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	dst := filepath.Join(dir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("stage upload: %w", err)
	}
	return dst, nil
}

// Discard removes a staged file, ignoring errors from already-gone files.
func Discard(path string) {
	_ = os.Remove(path)
}
