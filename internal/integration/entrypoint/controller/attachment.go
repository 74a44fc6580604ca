package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bytebank/backend/internal/application/usecase/attachment"
	domainerror "github.com/bytebank/backend/internal/domain/error"
	"github.com/bytebank/backend/internal/integration/entrypoint/dto"
	"github.com/bytebank/backend/internal/integration/entrypoint/middleware"
)

// AttachmentController handles receipt upload endpoints.
type AttachmentController struct {
	uploadUseCase *attachment.UploadAttachmentUseCase
}

// NewAttachmentController creates a new attachment controller instance.
func NewAttachmentController(uploadUseCase *attachment.UploadAttachmentUseCase) *AttachmentController {
	return &AttachmentController{
		uploadUseCase: uploadUseCase,
	}
}

// Upload handles POST /attachments requests with a multipart "file" field.
func (c *AttachmentController) Upload(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A 'file' form field is required",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	output, err := c.uploadUseCase.Execute(ctx.Request.Context(), attachment.UploadAttachmentInput{
		UserID:      userID,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Content:     file,
	})
	if err != nil {
		c.handleAttachmentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.UploadAttachmentResponse{
		Path: output.Path,
		URL:  output.URL,
	})
}

// handleAttachmentError maps attachment domain errors to HTTP responses.
func (c *AttachmentController) handleAttachmentError(ctx *gin.Context, err error) {
	var attErr *domainerror.AttachmentError
	if errors.As(err, &attErr) {
		statusCode := http.StatusInternalServerError
		switch attErr.Code {
		case domainerror.ErrCodeAttachmentTooLarge:
			statusCode = http.StatusRequestEntityTooLarge
		case domainerror.ErrCodeAttachmentTypeNotAllowed:
			statusCode = http.StatusUnsupportedMediaType
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: attErr.Message,
			Code:  string(attErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
