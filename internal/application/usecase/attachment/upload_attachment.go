// Package attachment contains receipt upload use cases.
package attachment

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bytebank/backend/internal/application/adapter"
	domainerror "github.com/bytebank/backend/internal/domain/error"
)

// MaxAttachmentSize is the maximum accepted receipt size in bytes.
const MaxAttachmentSize = 10 << 20 // 10 MiB

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

// UploadAttachmentInput represents the input for a receipt upload.
type UploadAttachmentInput struct {
	UserID      uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// UploadAttachmentOutput represents the output of a receipt upload.
type UploadAttachmentOutput struct {
	Path string
	URL  string
}

// UploadAttachmentUseCase handles receipt uploads to blob storage.
type UploadAttachmentUseCase struct {
	fileStorage adapter.FileStorage
}

// NewUploadAttachmentUseCase creates a new UploadAttachmentUseCase instance.
func NewUploadAttachmentUseCase(fileStorage adapter.FileStorage) *UploadAttachmentUseCase {
	return &UploadAttachmentUseCase{
		fileStorage: fileStorage,
	}
}

// Execute stores the receipt under receipts/{userID}/{timestamp}_{name}.
// The timestamp prefix keeps repeated uploads of the same file name from
// overwriting each other.
func (uc *UploadAttachmentUseCase) Execute(ctx context.Context, input UploadAttachmentInput) (*UploadAttachmentOutput, error) {
	if input.Size > MaxAttachmentSize {
		return nil, domainerror.NewAttachmentError(
			domainerror.ErrCodeAttachmentTooLarge,
			fmt.Sprintf("attachment must not exceed %d bytes", MaxAttachmentSize),
			domainerror.ErrAttachmentTooLarge,
		)
	}

	if !allowedContentTypes[input.ContentType] {
		return nil, domainerror.NewAttachmentError(
			domainerror.ErrCodeAttachmentTypeNotAllowed,
			"attachment must be a JPEG, PNG, WebP or PDF file",
			domainerror.ErrAttachmentTypeNotAllowed,
		)
	}

	name := sanitizeFileName(input.FileName)
	path := fmt.Sprintf("receipts/%s/%d_%s", input.UserID, time.Now().UnixMilli(), name)

	stored, err := uc.fileStorage.Upload(ctx, path, input.ContentType, input.Content)
	if err != nil {
		return nil, domainerror.NewAttachmentError(
			domainerror.ErrCodeAttachmentUploadFailed,
			"failed to store attachment",
			err,
		)
	}

	return &UploadAttachmentOutput{
		Path: stored.Path,
		URL:  stored.URL,
	}, nil
}

// sanitizeFileName strips any directory components and path separators from
// a client-supplied file name.
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" || name == "." || name == ".." {
		name = "receipt"
	}
	return name
}
