package handler

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/expiry-ocr/dto"
	"github.com/Aashish23092/expiry-ocr/service"
)

// VisionHandler serves scans of uploaded label photos and documents.
type VisionHandler struct {
	visionService  *service.VisionService
	barcodeService *service.BarcodeService
	maxFileSize    int64
}

func NewVisionHandler(visionService *service.VisionService, barcodeService *service.BarcodeService, maxFileSize int64) *VisionHandler {
	return &VisionHandler{
		visionService:  visionService,
		barcodeService: barcodeService,
		maxFileSize:    maxFileSize,
	}
}

// ExtractExpiryDate handles the POST /vision/expiry-date endpoint
func (h *VisionHandler) ExtractExpiryDate(c *gin.Context) {
	log.Println("Received expiry date scan request")

	input, ok := h.readUpload(c, true)
	if !ok {
		return
	}

	response, err := h.visionService.ScanExpiry(c.Request.Context(), input)
	if err != nil {
		sendError(c, statusFor(err), "SCAN_FAILED", "Failed to read expiry date", err)
		return
	}

	log.Printf("Expiry scan %s completed via %s (success=%t)", response.ScanID, response.OCRSource, response.Success)
	c.JSON(http.StatusOK, response)
}

// ExtractLotNumber handles the POST /vision/lot-number endpoint
func (h *VisionHandler) ExtractLotNumber(c *gin.Context) {
	log.Println("Received lot number scan request")

	input, ok := h.readUpload(c, false)
	if !ok {
		return
	}

	response, err := h.visionService.ScanLot(c.Request.Context(), input)
	if err != nil {
		sendError(c, statusFor(err), "SCAN_FAILED", "Failed to read lot number", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// DecodeBarcode handles the POST /vision/barcode endpoint
func (h *VisionHandler) DecodeBarcode(c *gin.Context) {
	log.Println("Received barcode scan request")

	input, ok := h.readUpload(c, false)
	if !ok {
		return
	}

	response, err := h.barcodeService.Scan(c.Request.Context(), input.Data, input.WarningDays)
	if err != nil {
		sendError(c, statusFor(err), "SCAN_FAILED", "Failed to decode barcode", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Health handles the GET /vision/health endpoint
func (h *VisionHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.visionService.Health())
}

// readUpload validates and reads the "image" form file. It writes the
// error response itself and reports false when the request is unusable.
func (h *VisionHandler) readUpload(c *gin.Context, allowPDF bool) (service.ScanInput, bool) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "image file is required", err)
		return service.ScanInput{}, false
	}

	request := &dto.UploadRequest{
		File:      fileHeader,
		ProductID: c.PostForm("product_id"),
		Password:  c.PostForm("password"),
	}
	if err := request.Validate(h.maxFileSize, allowPDF); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), err)
		return service.ScanInput{}, false
	}

	var warningDays *int
	if raw := c.PostForm("warning_days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			sendError(c, http.StatusBadRequest, "INVALID_REQUEST",
				"warning_days must be a non-negative integer", fmt.Errorf("warning_days %q", raw))
			return service.ScanInput{}, false
		}
		warningDays = &n
	}

	file, err := fileHeader.Open()
	if err != nil {
		sendError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to open uploaded file", err)
		return service.ScanInput{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxFileSize+1))
	if err != nil {
		sendError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to read uploaded file", err)
		return service.ScanInput{}, false
	}
	if int64(len(data)) > h.maxFileSize {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "file too large", dto.ErrFileTooLarge)
		return service.ScanInput{}, false
	}

	return service.ScanInput{
		Data:        data,
		ProductID:   request.ProductID,
		Password:    request.Password,
		WarningDays: warningDays,
		AllowPDF:    allowPDF,
	}, true
}
