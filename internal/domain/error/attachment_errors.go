package error

import "errors"

// Attachment domain errors.
var (
	// ErrAttachmentTooLarge is returned when an uploaded receipt exceeds the size limit.
	ErrAttachmentTooLarge = errors.New("attachment exceeds maximum size")

	// ErrAttachmentTypeNotAllowed is returned when the uploaded file type is not accepted.
	ErrAttachmentTypeNotAllowed = errors.New("attachment type not allowed")

	// ErrAttachmentUploadFailed is returned when the blob store rejects the upload.
	ErrAttachmentUploadFailed = errors.New("attachment upload failed")
)

// AttachmentErrorCode defines error codes for attachment errors.
// Format: ATT-XXYYYY where XX is category and YYYY is specific error.
type AttachmentErrorCode string

const (
	ErrCodeAttachmentTooLarge       AttachmentErrorCode = "ATT-010001"
	ErrCodeAttachmentTypeNotAllowed AttachmentErrorCode = "ATT-010002"
	ErrCodeAttachmentUploadFailed   AttachmentErrorCode = "ATT-020001"
)

// AttachmentError represents an attachment error with code and message.
type AttachmentError struct {
	Code    AttachmentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AttachmentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AttachmentError) Unwrap() error {
	return e.Err
}

// NewAttachmentError creates a new AttachmentError with the given code and message.
func NewAttachmentError(code AttachmentErrorCode, message string, err error) *AttachmentError {
	return &AttachmentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
