// Package service holds domain logic that sits between handlers and repositories.
package service

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"rare/internal/models"
)

const (
	AvatarMaxUploadSizeMB = 5
	HeaderMaxUploadSizeMB = 10
)

// MediaService validates base64 image payloads and renders the data URL
// that gets persisted into the image column.
type MediaService struct {
	maxUploadSizeMB int
	maxUploadBytes  int64
}

// NewAvatarService returns a MediaService sized for profile pictures.
func NewAvatarService() *MediaService {
	return newMediaService(AvatarMaxUploadSizeMB)
}

// NewHeaderService returns a MediaService sized for post header images.
func NewHeaderService() *MediaService {
	return newMediaService(HeaderMaxUploadSizeMB)
}

func newMediaService(maxUploadSizeMB int) *MediaService {
	return &MediaService{
		maxUploadSizeMB: maxUploadSizeMB,
		maxUploadBytes:  int64(maxUploadSizeMB) * 1024 * 1024,
	}
}

// ValidateAndStore checks encoding, size and signature of the payload and
// returns the data URL to persist. The declared content type is advisory:
// the magic-byte check runs against the decoded bytes regardless.
func (s *MediaService) ValidateAndStore(imageData, fileName, contentType string) (string, error) {
	payload := stripDataURLPrefix(imageData)

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", models.NewInvalidEncodingError()
	}

	if int64(len(decoded)) > s.maxUploadBytes {
		return "", models.NewPayloadTooLargeError(s.maxUploadSizeMB)
	}

	if !hasAllowedSignature(decoded) {
		return "", models.NewUnsupportedFormatError()
	}

	mimeType := resolveMimeType(contentType, fileName)
	return fmt.Sprintf("data:%s;base64,%s", mimeType, payload), nil
}

// stripDataURLPrefix removes a leading "data:...;base64," header if present;
// bare base64 passes through untouched.
func stripDataURLPrefix(imageData string) string {
	if !strings.HasPrefix(imageData, "data:") {
		return imageData
	}
	if idx := strings.Index(imageData, ";base64,"); idx >= 0 {
		return imageData[idx+len(";base64,"):]
	}
	return imageData
}

// hasAllowedSignature checks the decoded bytes against the JPEG, PNG, GIF
// and WebP magic numbers.
func hasAllowedSignature(data []byte) bool {
	switch {
	case len(data) >= 3 && bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return true // JPEG
	case len(data) >= 4 && bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}):
		return true // PNG
	case len(data) >= 3 && bytes.HasPrefix(data, []byte{0x47, 0x49, 0x46}):
		return true // GIF
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return true
	default:
		return false
	}
}

// resolveMimeType prefers the declared content type, falls back to the file
// extension, and defaults to image/jpeg.
func resolveMimeType(contentType, fileName string) string {
	if normalized := normalizeContentType(contentType); normalized != "" {
		return normalized
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}

func normalizeContentType(contentType string) string {
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return strings.ToLower(strings.TrimSpace(mediaType))
}
