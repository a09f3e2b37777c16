// pkg/utils/validation/image.go
package validation

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"
)

var (
	ErrFileSize     = errors.New("file size exceeds limit of 10MB")
	ErrFileType     = errors.New("invalid file type. Allowed types: JPG, PNG, WEBP")
	ErrFileRequired = errors.New("no file provided")
	ErrFileEmpty    = errors.New("file is empty")
)

const MaxImageSize = 10 * 1024 * 1024 // 10MB

var AllowedImageTypes = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

func ValidateImage(file *multipart.FileHeader) error {
	if file == nil {
		return ErrFileRequired
	}
	return ValidateImageFile(file.Filename, file.Size)
}

// ValidateImageFile checks name and size before the upload is decoded.
func ValidateImageFile(filename string, size int64) error {
	// Boyut kontrolü
	if size <= 0 {
		return ErrFileEmpty
	}
	if size > MaxImageSize {
		return ErrFileSize
	}

	// Tip kontrolü
	ext := strings.ToLower(filepath.Ext(filename))
	if !AllowedImageTypes[ext] {
		return ErrFileType
	}

	return nil
}
