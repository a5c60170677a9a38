package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with every route mounted.
func NewRouter(expiryHandler *ExpiryHandler, visionHandler *VisionHandler, maxFileSize int64) *gin.Engine {
	router := gin.Default()

	// Configure max multipart memory
	router.MaxMultipartMemory = maxFileSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Expiry OCR",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		expiry := api.Group("/expiry")
		{
			expiry.POST("/extract", expiryHandler.ExtractFromText)
			expiry.POST("/lot", expiryHandler.ExtractLot)
			expiry.POST("/validate", expiryHandler.Validate)
			expiry.POST("/manual", expiryHandler.ValidateManual)
		}

		vision := api.Group("/vision")
		{
			vision.POST("/expiry-date", visionHandler.ExtractExpiryDate)
			vision.POST("/lot-number", visionHandler.ExtractLotNumber)
			vision.POST("/barcode", visionHandler.DecodeBarcode)
			vision.GET("/health", visionHandler.Health)
		}
	}

	return router
}
