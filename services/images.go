package services

import (
	"mime/multipart"
	"path/filepath"

	"esports-platform/utils"

	"github.com/google/uuid"
)

// storeImage persists an uploaded image under a fresh key and returns its
// public URL. Goes to R2 when configured, local uploads/ otherwise.
func storeImage(fileHeader *multipart.FileHeader, prefix string) (string, error) {
	ext := filepath.Ext(fileHeader.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	key := prefix + "/" + uuid.NewString() + ext
	if utils.R2Enabled() {
		return utils.UploadImageToR2(fileHeader, key)
	}
	return utils.SaveUpload(fileHeader, key)
}
