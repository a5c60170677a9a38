package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "GIN_MODE", "TESSDATA_PREFIX", "TESSERACT_LANG", "MAX_FILE_SIZE",
		"VISION_API_URL", "VISION_API_TIMEOUT", "WARNING_DAYS", "TIMEZONE",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "eng", cfg.TesseractLanguage)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxFileSize)
	assert.Empty(t, cfg.VisionAPIURL)
	assert.Equal(t, 30*time.Second, cfg.VisionAPITimeout)
	assert.Equal(t, 7, cfg.WarningDays)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("VISION_API_URL", "http://vision:5000/ocr")
	t.Setenv("VISION_API_TIMEOUT", "5s")
	t.Setenv("WARNING_DAYS", "14")
	t.Setenv("TIMEZONE", "UTC")

	cfg := LoadConfig()
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int64(2048), cfg.MaxFileSize)
	assert.Equal(t, "http://vision:5000/ocr", cfg.VisionAPIURL)
	assert.Equal(t, 5*time.Second, cfg.VisionAPITimeout)
	assert.Equal(t, 14, cfg.WarningDays)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadConfig_BadNumbersFallBack(t *testing.T) {
	t.Setenv("WARNING_DAYS", "soon")
	t.Setenv("VISION_API_TIMEOUT", "forever")

	cfg := LoadConfig()
	assert.Equal(t, 7, cfg.WarningDays)
	assert.Equal(t, 30*time.Second, cfg.VisionAPITimeout)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{ServerPort: "8080", MaxFileSize: 1, WarningDays: 7, TimeZone: "Local"}
	}

	cfg := base()
	cfg.WarningDays = -1
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.MaxFileSize = 0
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.TimeZone = "Mars/Olympus_Mons"
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.VisionAPIURL = "http://vision"
	assert.Error(t, cfg.Validate())

	assert.NoError(t, base().Validate())
}
