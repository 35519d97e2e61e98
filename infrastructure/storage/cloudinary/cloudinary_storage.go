// infrastructure/storage/cloudinary/cloudinary_storage.go
package cloudinary

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/vinachat/chat-api/domain/service"
)

// CloudinaryConfig holds the credentials for the Cloudinary account.
type CloudinaryConfig struct {
	CloudName    string
	APIKey       string
	APISecret    string
	UploadFolder string
}

type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	config *CloudinaryConfig
}

// NewCloudinaryStorage creates a FileStorageService backed by Cloudinary.
func NewCloudinaryStorage(config *CloudinaryConfig) (service.FileStorageService, error) {
	cld, err := cloudinary.NewFromParams(config.CloudName, config.APIKey, config.APISecret)
	if err != nil {
		return nil, err
	}
	return &cloudinaryStorage{cld: cld, config: config}, nil
}

func boolPtr(b bool) *bool { return &b }

func (c *cloudinaryStorage) UploadImage(file *multipart.FileHeader, folder string) (*service.FileUploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	if c.config.UploadFolder != "" {
		folder = c.config.UploadFolder + "/" + folder
	}

	params := uploader.UploadParams{
		Folder:         folder,
		UseFilename:    boolPtr(true),
		UniqueFilename: boolPtr(true),
		ResourceType:   "image",
		Transformation: "q_auto:good",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := c.cld.Upload.Upload(ctx, src, params)
	if err != nil {
		return nil, err
	}

	return &service.FileUploadResult{
		URL:  result.SecureURL,
		Path: result.PublicID,
		Size: int(result.Bytes),
	}, nil
}
