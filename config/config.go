package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort        string
	GinMode           string
	TesseractDataPath string
	TesseractLanguage string
	MaxFileSize       int64

	// VisionAPIURL is the remote OCR backend. Empty disables it and every
	// scan goes straight to Tesseract.
	VisionAPIURL     string
	VisionAPITimeout time.Duration

	WarningDays int
	// TimeZone decides which calendar day counts as "today".
	TimeZone string
}

func LoadConfig() *Config {
	return &Config{
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		GinMode:           getEnv("GIN_MODE", "release"),
		TesseractDataPath: getEnv("TESSDATA_PREFIX", "/usr/share/tesseract-ocr/5/tessdata"),
		TesseractLanguage: getEnv("TESSERACT_LANG", "eng"),
		MaxFileSize:       getEnvAsInt64("MAX_FILE_SIZE", 10*1024*1024), // 10 MB
		VisionAPIURL:      getEnv("VISION_API_URL", ""),
		VisionAPITimeout:  getEnvAsDuration("VISION_API_TIMEOUT", 30*time.Second),
		WarningDays:       getEnvAsInt("WARNING_DAYS", 7),
		TimeZone:          getEnv("TIMEZONE", "Local"),
	}
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if c.ServerPort == "" {
		return errors.New("SERVER_PORT must not be empty")
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("MAX_FILE_SIZE must be positive, got %d", c.MaxFileSize)
	}
	if c.WarningDays < 0 {
		return fmt.Errorf("WARNING_DAYS must not be negative, got %d", c.WarningDays)
	}
	if c.VisionAPIURL != "" && c.VisionAPITimeout <= 0 {
		return fmt.Errorf("VISION_API_TIMEOUT must be positive, got %s", c.VisionAPITimeout)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves TimeZone. "Local" and "" both mean the host zone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" || c.TimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("TIMEZONE %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
