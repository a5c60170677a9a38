package dto

import (
	"fmt"
	"mime/multipart"
	"strings"
)

// ExtractTextRequest carries OCR text that was read elsewhere.
type ExtractTextRequest struct {
	Text        string `json:"text" binding:"required"`
	WarningDays *int   `json:"warning_days" binding:"omitempty,min=0"`
}

type LotRequest struct {
	Text string `json:"text" binding:"required"`
}

// ValidateRequest classifies an ISO YYYY-MM-DD date.
type ValidateRequest struct {
	Date        string `json:"date" binding:"required"`
	WarningDays *int   `json:"warning_days" binding:"omitempty,min=0"`
}

// ManualEntryRequest classifies a date typed by the user as DD/MM/YYYY.
type ManualEntryRequest struct {
	Date        string `json:"date" binding:"required"`
	WarningDays *int   `json:"warning_days" binding:"omitempty,min=0"`
}

// UploadRequest is one label photo or document posted as multipart form data.
type UploadRequest struct {
	File      *multipart.FileHeader
	ProductID string
	Password  string
}

// Validate checks the upload against the size limit and the accepted types.
// PDFs are only accepted when allowPDF is set.
func (r *UploadRequest) Validate(maxSize int64, allowPDF bool) error {
	if r.File == nil {
		return fmt.Errorf("%w: image is required", ErrUnsupportedFileType)
	}
	if r.File.Size > maxSize {
		return fmt.Errorf("%w: %d bytes, limit %d", ErrFileTooLarge, r.File.Size, maxSize)
	}
	if strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") && !allowPDF {
		return fmt.Errorf("%w: PDF not accepted here", ErrUnsupportedFileType)
	}
	return nil
}
