package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Aashish23092/expiry-ocr/client"
	"github.com/Aashish23092/expiry-ocr/config"
	"github.com/Aashish23092/expiry-ocr/handler"
	"github.com/Aashish23092/expiry-ocr/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// Initialize OCR clients
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.TesseractLanguage)
	defer tesseractClient.Close()
	log.Printf("Tesseract %s, tessdata at %s", tesseractClient.Version(), cfg.TesseractDataPath)

	var visionClient service.OCRClient
	if cfg.VisionAPIURL != "" {
		visionClient = client.NewVisionClient(cfg.VisionAPIURL, cfg.VisionAPITimeout)
		log.Printf("Remote vision backend enabled at %s", cfg.VisionAPIURL)
	}

	// Initialize service layer
	expiryService := service.NewExpiryService(service.RealClock{}, location, cfg.WarningDays)
	visionService := service.NewVisionService(visionClient, tesseractClient, service.NewPDFProcessor(), expiryService)
	barcodeService := service.NewBarcodeService(expiryService)

	// Initialize handler layer
	router := handler.NewRouter(
		handler.NewExpiryHandler(expiryService),
		handler.NewVisionHandler(visionService, barcodeService, cfg.MaxFileSize),
		cfg.MaxFileSize,
	)

	// Start server
	log.Printf("Starting Expiry OCR Service on port %s (today is %s in %s)",
		cfg.ServerPort, expiryService.Today(), location)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
