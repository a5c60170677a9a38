package dto

import (
	"errors"

	"github.com/Aashish23092/expiry-ocr/utils/expiry"
)

// Custom errors
var (
	ErrNoText              = errors.New("no readable text in upload")
	ErrInvalidManualDate   = errors.New("date must be a real calendar date in DD/MM/YYYY form")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds the maximum upload size")
	ErrNoBarcode           = errors.New("no barcode found in image")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ExpiryResponse is the result of scanning one label.
// ExpiryDate, DisplayDate and LotNumber are null when nothing was found.
type ExpiryResponse struct {
	ScanID          string                  `json:"scan_id"`
	Success         bool                    `json:"success"`
	ProductID       string                  `json:"product_id,omitempty"`
	ExtractedText   string                  `json:"extracted_text"`
	ExpiryDate      *string                 `json:"expiry_date"`
	DisplayDate     *string                 `json:"display_date"`
	LotNumber       *string                 `json:"lot_number"`
	Confidence      int                     `json:"confidence"`
	DetectedFormats []string                `json:"detected_formats"`
	AllDatesFound   []expiry.DateCandidate  `json:"all_dates_found"`
	Validation      expiry.ValidationResult `json:"validation"`
	OCRSource       string                  `json:"ocr_source,omitempty"`
	ProcessedAt     string                  `json:"processed_at"`
}

// ValidationResponse classifies a date the caller already has.
type ValidationResponse struct {
	Date        string                  `json:"date"`
	DisplayDate string                  `json:"display_date"`
	Validation  expiry.ValidationResult `json:"validation"`
}

type LotResponse struct {
	Success       bool    `json:"success"`
	LotNumber     *string `json:"lot_number"`
	ExtractedText string  `json:"extracted_text,omitempty"`
	OCRSource     string  `json:"ocr_source,omitempty"`
}

// BarcodeResponse carries what a GS1 barcode states about the product.
type BarcodeResponse struct {
	ScanID      string                  `json:"scan_id"`
	Success     bool                    `json:"success"`
	Format      string                  `json:"format"`
	Raw         string                  `json:"raw"`
	GTIN        string                  `json:"gtin,omitempty"`
	ExpiryDate  *string                 `json:"expiry_date"`
	DisplayDate *string                 `json:"display_date"`
	LotNumber   *string                 `json:"lot_number"`
	Serial      string                  `json:"serial,omitempty"`
	Validation  expiry.ValidationResult `json:"validation"`
}

type HealthResponse struct {
	Status           string `json:"status"`
	Service          string `json:"service"`
	TesseractVersion string `json:"tesseract_version,omitempty"`
	VisionBackend    bool   `json:"vision_backend"`
	Time             string `json:"time"`
}
