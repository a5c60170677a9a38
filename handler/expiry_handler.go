package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/expiry-ocr/dto"
	"github.com/Aashish23092/expiry-ocr/service"
)

// ExpiryHandler serves date and lot extraction over text the caller
// already has.
type ExpiryHandler struct {
	expiryService *service.ExpiryService
}

func NewExpiryHandler(expiryService *service.ExpiryService) *ExpiryHandler {
	return &ExpiryHandler{
		expiryService: expiryService,
	}
}

// ExtractFromText handles the POST /expiry/extract endpoint
func (h *ExpiryHandler) ExtractFromText(c *gin.Context) {
	var req dto.ExtractTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required", err)
		return
	}

	log.Printf("Received expiry extraction request (%d characters)", len(req.Text))
	c.JSON(http.StatusOK, h.expiryService.AnalyzeText(req.Text, req.WarningDays))
}

// ExtractLot handles the POST /expiry/lot endpoint
func (h *ExpiryHandler) ExtractLot(c *gin.Context) {
	var req dto.LotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "text is required", err)
		return
	}

	c.JSON(http.StatusOK, h.expiryService.ExtractLot(req.Text))
}

// Validate handles the POST /expiry/validate endpoint
func (h *ExpiryHandler) Validate(c *gin.Context) {
	var req dto.ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "date is required", err)
		return
	}

	c.JSON(http.StatusOK, h.expiryService.ValidateISO(req.Date, req.WarningDays))
}

// ValidateManual handles the POST /expiry/manual endpoint
func (h *ExpiryHandler) ValidateManual(c *gin.Context) {
	var req dto.ManualEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "INVALID_REQUEST", "date is required", err)
		return
	}

	response, err := h.expiryService.ValidateManual(req.Date, req.WarningDays)
	if err != nil {
		sendError(c, statusFor(err), "INVALID_DATE", "Date must be DD/MM/YYYY", err)
		return
	}
	c.JSON(http.StatusOK, response)
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dto.ErrInvalidManualDate),
		errors.Is(err, dto.ErrUnsupportedFileType),
		errors.Is(err, dto.ErrFileTooLarge):
		return http.StatusBadRequest
	case service.IsUnprocessable(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// sendError sends a structured error response
func sendError(c *gin.Context, statusCode int, code, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   code,
		Message: errorMsg,
		Code:    statusCode,
	})
}
