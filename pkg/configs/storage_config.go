// pkg/configs/storage_config.go
package configs

import "os"

const (
	StorageLocal      = "local"
	StorageCloudinary = "cloudinary"
)

// StorageConfig selects and configures the upload backend.
type StorageConfig struct {
	Type string

	// local
	LocalBaseDir  string
	PublicBaseURL string

	// cloudinary
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string
}

func loadStorageConfig() StorageConfig {
	return StorageConfig{
		Type:                envOr("STORAGE_TYPE", StorageLocal),
		LocalBaseDir:        envOr("STORAGE_LOCAL_DIR", "./static/uploads"),
		PublicBaseURL:       envOr("STORAGE_PUBLIC_URL", "/uploads"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    envOr("CLOUDINARY_FOLDER", "chat-uploads"),
	}
}
