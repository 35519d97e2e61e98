// infrastructure/storage/local/local_storage.go
package local

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vinachat/chat-api/domain/service"
)

// LocalConfig points uploads at a directory served under PublicBaseURL.
type LocalConfig struct {
	BaseDir       string
	PublicBaseURL string
}

type localStorage struct {
	config *LocalConfig
}

// NewLocalStorage stores uploads on the local filesystem. Suitable for single
// node deployments and development.
func NewLocalStorage(config *LocalConfig) (service.FileStorageService, error) {
	if config.BaseDir == "" {
		config.BaseDir = "./static/uploads"
	}
	if config.PublicBaseURL == "" {
		config.PublicBaseURL = "/uploads"
	}
	if err := os.MkdirAll(config.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &localStorage{config: config}, nil
}

func (s *localStorage) UploadImage(file *multipart.FileHeader, folder string) (*service.FileUploadResult, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dir := s.config.BaseDir
	if folder != "" {
		dir = filepath.Join(dir, folder)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	filename := safeFilename(file.Filename)
	path := filepath.Join(dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return nil, err
	}

	url := s.config.PublicBaseURL
	if folder != "" {
		url += "/" + folder
	}
	url += "/" + filename

	return &service.FileUploadResult{
		URL:  url,
		Path: path,
		Size: int(size),
	}, nil
}

// safeFilename prefixes a random id and strips path separators so uploads
// cannot escape the base directory or collide.
func safeFilename(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "_")
	return uuid.NewString() + "_" + base
}
