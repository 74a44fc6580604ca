package dto

// UploadAttachmentResponse represents the response for a receipt upload.
type UploadAttachmentResponse struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}
