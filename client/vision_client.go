package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrVisionEmpty is returned when the backend answered but read no text.
var ErrVisionEmpty = errors.New("vision backend extracted no text")

// VisionClient calls a remote OCR backend that accepts base64 images and
// answers with recognised lines, PaddleOCR-serving style:
//
//	request:  {"images": ["<base64>"]}
//	response: {"results": [[{"text": "...", "confidence": 0.98}, ...]]}
type VisionClient struct {
	apiURL     string
	httpClient *http.Client
}

func NewVisionClient(apiURL string, timeout time.Duration) *VisionClient {
	return &VisionClient{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (v *VisionClient) Name() string {
	return "vision"
}

// ExtractText posts one image and joins the returned lines.
func (v *VisionClient) ExtractText(ctx context.Context, imageData []byte) (string, error) {
	payload := map[string]interface{}{
		"images": []string{base64.StdEncoding.EncodeToString(imageData)},
	}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.apiURL, bytes.NewReader(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("failed to build vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call vision API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("vision API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Results [][]struct {
			Text       string  `json:"text"`
			Confidence float64 `json:"confidence"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode vision response: %w", err)
	}

	var lines []string
	for _, block := range result.Results {
		for _, line := range block {
			lines = append(lines, line.Text)
		}
	}

	text := mergeLines(lines)
	if text == "" {
		return "", ErrVisionEmpty
	}

	log.Printf("Vision API extracted %d characters", len(text))
	return text, nil
}

// mergeLines joins recognised lines, dropping blanks and repeats. Repeats
// are compared case-insensitively and the first spelling is kept.
func mergeLines(lines []string) string {
	seen := make(map[string]bool)
	var result []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		normalized := strings.ToLower(line)
		if !seen[normalized] {
			seen[normalized] = true
			result = append(result, line)
		}
	}

	return strings.Join(result, "\n")
}
