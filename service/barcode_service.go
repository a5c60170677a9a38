package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/datamatrix"
	"github.com/makiuchi-d/gozxing/oned"
	"github.com/makiuchi-d/gozxing/qrcode"
	_ "golang.org/x/image/webp"

	"github.com/Aashish23092/expiry-ocr/dto"
	"github.com/Aashish23092/expiry-ocr/utils/expiry"
	"github.com/Aashish23092/expiry-ocr/utils/gs1"
)

// BarcodeService reads GS1 DataMatrix, QR and GS1-128 codes off labels.
type BarcodeService struct {
	expiry *ExpiryService
}

func NewBarcodeService(expiry *ExpiryService) *BarcodeService {
	return &BarcodeService{expiry: expiry}
}

// Scan decodes the first barcode found in the image.
func (s *BarcodeService) Scan(ctx context.Context, imageData []byte, warningDays *int) (*dto.BarcodeResponse, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrUnsupportedFileType, err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to create bitmap: %w", err)
	}

	hints := map[gozxing.DecodeHintType]interface{}{
		gozxing.DecodeHintType_TRY_HARDER: true,
		gozxing.DecodeHintType_ASSUME_GS1: true,
	}
	readers := []gozxing.Reader{
		datamatrix.NewDataMatrixReader(),
		oned.NewCode128Reader(),
		qrcode.NewQRCodeReader(),
		oned.NewEAN13Reader(),
	}

	for _, reader := range readers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := reader.Decode(bmp, hints)
		if err != nil {
			continue
		}
		format := result.GetBarcodeFormat().String()
		log.Printf("Decoded %s barcode", format)
		return s.FromCode(result.GetText(), format, warningDays)
	}

	return nil, dto.ErrNoBarcode
}

// FromCode interprets decoded barcode text as GS1 data. Expiry (17) wins
// over best-before (15) for classification.
func (s *BarcodeService) FromCode(code, format string, warningDays *int) (*dto.BarcodeResponse, error) {
	parsed, err := gs1.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrNoBarcode, err)
	}

	response := &dto.BarcodeResponse{
		ScanID:     uuid.NewString(),
		Success:    true,
		Format:     format,
		Raw:        code,
		GTIN:       parsed.GTIN,
		Serial:     parsed.Serial,
		Validation: expiry.InvalidResult(),
	}
	if parsed.Lot != "" {
		response.LotNumber = stringPtr(strings.ToUpper(parsed.Lot))
	}
	if date, ok := parsed.BestExpiry(); ok {
		response.ExpiryDate = stringPtr(date.String())
		response.DisplayDate = stringPtr(expiry.FormatForDisplay(date))
		response.Validation = s.expiry.Classify(date, warningDays)
	}
	return response, nil
}
