package service

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Aashish23092/expiry-ocr/dto"
	"github.com/Aashish23092/expiry-ocr/utils/expiry"
	"github.com/Aashish23092/expiry-ocr/utils/ocrtext"
)

// ExpiryService turns OCR text into expiry results and classifies dates
// against today in the configured time zone.
type ExpiryService struct {
	clock       Clock
	location    *time.Location
	warningDays int
}

func NewExpiryService(clock Clock, location *time.Location, warningDays int) *ExpiryService {
	if clock == nil {
		clock = RealClock{}
	}
	if location == nil {
		location = time.Local
	}
	return &ExpiryService{
		clock:       clock,
		location:    location,
		warningDays: warningDays,
	}
}

// Today is the current calendar date in the service's time zone.
func (s *ExpiryService) Today() expiry.CalendarDate {
	return expiry.DateOf(s.clock.Now().In(s.location))
}

func (s *ExpiryService) window(override *int) int {
	if override != nil {
		return *override
	}
	return s.warningDays
}

// Classify validates date against today. warningDays overrides the
// configured window when set.
func (s *ExpiryService) Classify(date expiry.CalendarDate, warningDays *int) expiry.ValidationResult {
	return expiry.ValidateExpiry(date, s.Today(), s.window(warningDays))
}

// AnalyzeText extracts every date candidate and the lot from OCR text and
// classifies the best candidate. Success is false when no date was found.
func (s *ExpiryService) AnalyzeText(text string, warningDays *int) *dto.ExpiryResponse {
	normalized := ocrtext.Normalize(text)
	candidates := expiry.ExtractDates(normalized)
	if candidates == nil {
		candidates = []expiry.DateCandidate{}
	}

	response := &dto.ExpiryResponse{
		ScanID:          uuid.NewString(),
		ExtractedText:   normalized,
		DetectedFormats: expiry.DetectedFormats(candidates),
		AllDatesFound:   candidates,
		Validation:      expiry.InvalidResult(),
		ProcessedAt:     s.clock.Now().In(s.location).Format(time.RFC3339),
	}

	if lot, ok := expiry.ExtractLot(normalized); ok {
		response.LotNumber = &lot
	}

	best, ok := expiry.Best(candidates)
	if !ok {
		log.Printf("No expiry date found in %d characters of text", len(normalized))
		return response
	}

	response.Success = true
	response.ExpiryDate = stringPtr(best.Date.String())
	response.DisplayDate = stringPtr(expiry.FormatForDisplay(best.Date))
	response.Confidence = best.Confidence
	response.Validation = s.Classify(best.Date, warningDays)

	log.Printf("Found %d date candidates, best %s (%s, confidence %d)",
		len(candidates), best.Date, best.Pattern, best.Confidence)
	return response
}

// ExtractLot reads only the lot number.
func (s *ExpiryService) ExtractLot(text string) *dto.LotResponse {
	response := &dto.LotResponse{}
	if lot, ok := expiry.ExtractLot(ocrtext.Normalize(text)); ok {
		response.Success = true
		response.LotNumber = &lot
	}
	return response
}

// ValidateISO classifies a YYYY-MM-DD date. An unreadable date yields the
// invalid result rather than an error.
func (s *ExpiryService) ValidateISO(date string, warningDays *int) *dto.ValidationResponse {
	parsed, err := expiry.ParseISOLocal(date)
	if err != nil {
		log.Printf("Date %q not usable: %v", date, err)
		return &dto.ValidationResponse{Validation: expiry.InvalidResult()}
	}
	return &dto.ValidationResponse{
		Date:        parsed.String(),
		DisplayDate: expiry.FormatForDisplay(parsed),
		Validation:  s.Classify(parsed, warningDays),
	}
}

// ValidateManual classifies a DD/MM/YYYY date typed by a user.
func (s *ExpiryService) ValidateManual(date string, warningDays *int) (*dto.ValidationResponse, error) {
	iso, err := ManualDateToISO(date)
	if err != nil {
		return nil, err
	}
	return s.ValidateISO(iso, warningDays), nil
}

func stringPtr(s string) *string {
	return &s
}
