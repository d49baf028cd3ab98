package utils

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

const uploadDir = "uploads"

// EnsureUploadDir creates the local uploads directory if it doesn't exist.
func EnsureUploadDir() error {
	return os.MkdirAll(uploadDir, os.ModePerm)
}

// SaveUpload writes an uploaded file into the uploads directory under name
// and returns the URL path it is served from.
func SaveUpload(fileHeader *multipart.FileHeader, name string) (string, error) {
	destPath := filepath.Join(uploadDir, name)
	if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
		return "", err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	dst, err := os.Create(destPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(destPath), nil
}
