package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	// OCRLanguages are the Tesseract language codes, e.g. ["tha", "eng"].
	OCRLanguages []string
	// MinTextLength below which OCR output is treated as unreadable.
	MinTextLength int
	MaxFileSize   int64

	// Google Sheets logging. Disabled when CredentialsFile is empty.
	SheetsCredentialsFile string
	SpreadsheetID         string
	SheetRange            string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata/")
	viper.SetDefault("OCR_LANGUAGES", "tha+eng")
	viper.SetDefault("MIN_TEXT_LENGTH", 3)
	viper.SetDefault("MAX_FILE_SIZE", 10*1024*1024)
	viper.SetDefault("SHEET_RANGE", "Slips!A:H")

	return &Config{
		ServerPort:            viper.GetString("SERVER_PORT"),
		TesseractDataPath:     viper.GetString("TESSDATA_PREFIX"),
		OCRLanguages:          strings.Split(viper.GetString("OCR_LANGUAGES"), "+"),
		MinTextLength:         viper.GetInt("MIN_TEXT_LENGTH"),
		MaxFileSize:           viper.GetInt64("MAX_FILE_SIZE"),
		SheetsCredentialsFile: viper.GetString("GOOGLE_SHEETS_CREDENTIALS"),
		SpreadsheetID:         viper.GetString("GOOGLE_SPREADSHEET_ID"),
		SheetRange:            viper.GetString("SHEET_RANGE"),
	}
}
