package service

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"rare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	pngBytes  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	gifBytes  = []byte("GIF89a\x01\x00")
	webpBytes = append([]byte("RIFF\x24\x00\x00\x00"), []byte("WEBPVP8 ")...)
)

func b64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func appErrCode(t *testing.T, err error) string {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func TestMediaService_ValidateAndStore_Signatures(t *testing.T) {
	svc := NewAvatarService()

	tests := []struct {
		name         string
		data         []byte
		expectedCode string
	}{
		{"JPEG accepted", jpegBytes, ""},
		{"PNG accepted", pngBytes, ""},
		{"GIF accepted", gifBytes, ""},
		{"WebP accepted", webpBytes, ""},
		{"BMP rejected", []byte("BM\x3E\x00\x00\x00"), "UNSUPPORTED_FORMAT"},
		{"Plain text rejected", []byte("hello world, not an image"), "UNSUPPORTED_FORMAT"},
		{"Truncated header rejected", []byte{0xFF}, "UNSUPPORTED_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := svc.ValidateAndStore(b64(tt.data), "pic.png", "image/png")
			if tt.expectedCode == "" {
				assert.NoError(t, err)
				assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.expectedCode, appErrCode(t, err))
				assert.Empty(t, url)
			}
		})
	}
}

func TestMediaService_ValidateAndStore_InvalidBase64(t *testing.T) {
	svc := NewAvatarService()

	_, err := svc.ValidateAndStore("not base64!!!", "pic.jpg", "image/jpeg")
	require.Error(t, err)
	assert.Equal(t, "INVALID_ENCODING", appErrCode(t, err))

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid base64 image data", appErr.Message)
}

func TestMediaService_ValidateAndStore_SizeCeiling(t *testing.T) {
	t.Run("Avatar over 5MB rejected", func(t *testing.T) {
		svc := NewAvatarService()
		oversized := append(append([]byte{}, jpegBytes...), bytes.Repeat([]byte{0x00}, 5*1024*1024)...)

		_, err := svc.ValidateAndStore(b64(oversized), "big.jpg", "image/jpeg")
		require.Error(t, err)
		assert.Equal(t, "PAYLOAD_TOO_LARGE", appErrCode(t, err))

		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "Image size cannot exceed 5MB", appErr.Message)
	})

	t.Run("Header service accepts what the avatar service rejects", func(t *testing.T) {
		payload := append(append([]byte{}, jpegBytes...), bytes.Repeat([]byte{0x00}, 6*1024*1024)...)

		_, err := NewAvatarService().ValidateAndStore(b64(payload), "big.jpg", "")
		require.Error(t, err)

		url, err := NewHeaderService().ValidateAndStore(b64(payload), "big.jpg", "")
		assert.NoError(t, err)
		assert.NotEmpty(t, url)
	})
}

func TestMediaService_ValidateAndStore_DataURLPrefix(t *testing.T) {
	svc := NewAvatarService()
	payload := b64(pngBytes)

	withPrefix, err := svc.ValidateAndStore("data:image/png;base64,"+payload, "pic.png", "image/png")
	require.NoError(t, err)

	bare, err := svc.ValidateAndStore(payload, "pic.png", "image/png")
	require.NoError(t, err)

	assert.Equal(t, bare, withPrefix)
	assert.Equal(t, "data:image/png;base64,"+payload, withPrefix)
}

func TestMediaService_ValidateAndStore_MimeResolution(t *testing.T) {
	svc := NewAvatarService()
	payload := b64(jpegBytes)

	tests := []struct {
		name         string
		contentType  string
		fileName     string
		expectedMime string
	}{
		{"Declared type wins", "image/png", "pic.jpg", "image/png"},
		{"Declared type with parameters", "image/webp; charset=binary", "pic.jpg", "image/webp"},
		{"Extension fallback", "", "holiday.GIF", "image/gif"},
		{"Extension fallback png", "", "avatar.png", "image/png"},
		{"Default jpeg", "", "mystery.bin", "image/jpeg"},
		{"No name no type", "", "", "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := svc.ValidateAndStore(payload, tt.fileName, tt.contentType)
			require.NoError(t, err)
			assert.Equal(t, "data:"+tt.expectedMime+";base64,"+payload, url)
		})
	}
}

func TestMediaService_SignatureCheckedRegardlessOfDeclaredType(t *testing.T) {
	svc := NewAvatarService()

	// A correct declared type does not rescue a payload with a bad signature.
	_, err := svc.ValidateAndStore(b64([]byte("definitely-not-an-image")), "pic.jpg", "image/jpeg")
	require.Error(t, err)
	assert.Equal(t, "UNSUPPORTED_FORMAT", appErrCode(t, err))

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Invalid image format. Only JPEG, PNG, GIF, and WebP are supported", appErr.Message)
}
