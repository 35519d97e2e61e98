// domain/service/file_storage_service.go
package service

import "mime/multipart"

// FileUploadResult describes a stored file.
type FileUploadResult struct {
	URL  string
	Path string
	Size int
}

// FileStorageService stores uploaded images. Backends are selected by
// configuration (local disk or Cloudinary).
type FileStorageService interface {
	UploadImage(file *multipart.FileHeader, folder string) (*FileUploadResult, error)
}
