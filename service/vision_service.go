package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Aashish23092/expiry-ocr/dto"
	"github.com/Aashish23092/expiry-ocr/utils/ocrtext"
)

// minMeaningfulChars is the shortest OCR output treated as a real read.
const minMeaningfulChars = 3

// OCRClient reads text from one encoded image.
type OCRClient interface {
	Name() string
	ExtractText(ctx context.Context, imageData []byte) (string, error)
}

// versioner is implemented by OCR engines that can report their version.
type versioner interface {
	Version() string
}

// ScanInput is one uploaded label photo or document.
type ScanInput struct {
	Data        []byte
	ProductID   string
	Password    string
	WarningDays *int
	AllowPDF    bool
}

// VisionService reads text from uploads and hands it to the expiry engine.
// The remote backend is tried first when configured; Tesseract covers
// failures and empty reads.
type VisionService struct {
	primary  OCRClient
	fallback OCRClient
	pdf      PDFProcessor
	expiry   *ExpiryService
}

// NewVisionService wires the OCR chain. primary may be nil.
func NewVisionService(primary, fallback OCRClient, pdf PDFProcessor, expiry *ExpiryService) *VisionService {
	return &VisionService{
		primary:  primary,
		fallback: fallback,
		pdf:      pdf,
		expiry:   expiry,
	}
}

// ScanExpiry reads the upload and extracts its expiry date and lot.
func (s *VisionService) ScanExpiry(ctx context.Context, in ScanInput) (*dto.ExpiryResponse, error) {
	text, source, err := s.ReadText(ctx, in.Data, in.Password, in.AllowPDF)
	if err != nil {
		return nil, err
	}

	response := s.expiry.AnalyzeText(text, in.WarningDays)
	response.ProductID = in.ProductID
	response.OCRSource = source
	return response, nil
}

// ScanLot reads the upload and extracts only the lot number.
func (s *VisionService) ScanLot(ctx context.Context, in ScanInput) (*dto.LotResponse, error) {
	text, source, err := s.ReadText(ctx, in.Data, in.Password, in.AllowPDF)
	if err != nil {
		return nil, err
	}

	response := s.expiry.ExtractLot(text)
	response.ExtractedText = ocrtext.Normalize(text)
	response.OCRSource = source
	return response, nil
}

// ReadText returns the text of an image or PDF and the name of the source
// that produced it.
func (s *VisionService) ReadText(ctx context.Context, data []byte, password string, allowPDF bool) (string, string, error) {
	mtype := mimetype.Detect(data)
	switch {
	case mtype.Is("application/pdf"):
		if !allowPDF {
			return "", "", fmt.Errorf("%w: PDF not accepted here", dto.ErrUnsupportedFileType)
		}
		return s.readPDF(ctx, data, password)
	case strings.HasPrefix(mtype.String(), "image/"):
		return s.readImage(ctx, data)
	default:
		return "", "", fmt.Errorf("%w: %s", dto.ErrUnsupportedFileType, mtype.String())
	}
}

func (s *VisionService) readImage(ctx context.Context, data []byte) (string, string, error) {
	if s.primary != nil {
		text, err := s.primary.ExtractText(ctx, data)
		switch {
		case err != nil:
			log.Printf("OCR via %s failed, falling back: %v", s.primary.Name(), err)
		case ocrtext.MeaningfulLength(text) < minMeaningfulChars:
			log.Printf("OCR via %s returned too little text, falling back", s.primary.Name())
		default:
			return text, s.primary.Name(), nil
		}
	}

	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	text, err := s.fallback.ExtractText(ctx, data)
	if err != nil {
		return "", "", fmt.Errorf("OCR via %s failed: %w", s.fallback.Name(), err)
	}
	if ocrtext.MeaningfulLength(text) < minMeaningfulChars {
		return "", "", dto.ErrNoText
	}
	return text, s.fallback.Name(), nil
}

func (s *VisionService) readPDF(ctx context.Context, data []byte, password string) (string, string, error) {
	text, err := s.pdf.ExtractText(data, password)
	if err != nil {
		log.Printf("PDF text layer unreadable: %v", err)
	}
	if ocrtext.MeaningfulLength(text) >= minMeaningfulChars {
		return text, "pdf-text", nil
	}

	images, err := s.pdf.ExtractImages(data, password)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract pdf images: %w", err)
	}
	log.Printf("PDF has no text layer, running OCR over %d images", len(images))

	var pages []string
	source := ""
	for i, img := range images {
		encoded, err := encodePNG(img)
		if err != nil {
			log.Printf("Skipping pdf image %d: %v", i, err)
			continue
		}
		pageText, pageSource, err := s.readImage(ctx, encoded)
		if err != nil {
			if ctx.Err() != nil {
				return "", "", ctx.Err()
			}
			log.Printf("No text in pdf image %d: %v", i, err)
			continue
		}
		if source == "" {
			source = pageSource
		}
		pages = append(pages, pageText)
	}

	if len(pages) == 0 {
		return "", "", dto.ErrNoText
	}
	return strings.Join(pages, "\n"), "pdf-" + source, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Health reports which OCR engines are available.
func (s *VisionService) Health() *dto.HealthResponse {
	response := &dto.HealthResponse{
		Status:        "healthy",
		Service:       "Expiry OCR",
		VisionBackend: s.primary != nil,
		Time:          s.expiry.clock.Now().Format(time.RFC3339),
	}
	if v, ok := s.fallback.(versioner); ok {
		response.TesseractVersion = v.Version()
	}
	return response
}

// IsUnprocessable reports whether err means the upload held nothing to read.
func IsUnprocessable(err error) bool {
	return errors.Is(err, dto.ErrNoText) || errors.Is(err, dto.ErrNoBarcode)
}
