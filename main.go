package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/slipsense/slip-ocr-service/client"
	"github.com/slipsense/slip-ocr-service/config"
	"github.com/slipsense/slip-ocr-service/handler"
	"github.com/slipsense/slip-ocr-service/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize Tesseract client (Thai + English slip text)
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath, cfg.OCRLanguages)
	defer tesseractClient.Close()

	// Initialize PDF processor for e-slip attachments
	pdfProcessor := service.NewPDFProcessor()

	// Google Sheets logging is optional: without credentials parsing still
	// works, records just are not persisted.
	var sheetsClient *client.SheetsClient
	if cfg.SheetsCredentialsFile != "" {
		var err error
		sheetsClient, err = client.NewSheetsClient(context.Background(),
			cfg.SheetsCredentialsFile, cfg.SpreadsheetID, cfg.SheetRange)
		if err != nil {
			log.Printf("Warning: Google Sheets client initialization failed: %v. Slips will not be logged.", err)
			sheetsClient = nil
		}
	} else {
		log.Println("GOOGLE_SHEETS_CREDENTIALS not set, slip logging disabled")
	}

	// Initialize service layer
	slipService := service.NewSlipService(tesseractClient, pdfProcessor, sheetsClient, cfg.MinTextLength)

	// Initialize handler layer
	slipHandler := handler.NewSlipHandler(slipService)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Slip OCR Service",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		slip := api.Group("/slip")
		{
			slip.POST("/parse", slipHandler.ParseSlip)
			slip.POST("/parse-text", slipHandler.ParseSlipText)
		}
	}

	// Start server
	log.Printf("Starting Slip OCR Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
