package models

// UploadImageRequest is the body for profile picture and post image uploads.
// ImageData may carry a data: URL prefix or bare base64; ContentType is the
// client's declared MIME type and may be empty.
type UploadImageRequest struct {
	ImageData   string `json:"image_data"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
}

// UploadImageResponse returns the persisted data URL.
type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}
