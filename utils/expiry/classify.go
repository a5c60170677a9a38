package expiry

// ExpiryStatus is the freshness of a product relative to today.
type ExpiryStatus string

const (
	StatusInvalid ExpiryStatus = "invalid"
	StatusExpired ExpiryStatus = "expired"
	StatusWarning ExpiryStatus = "warning"
	StatusValid   ExpiryStatus = "valid"
)

// ColorTag tells the UI how to paint a result.
type ColorTag string

const (
	ColorError   ColorTag = "error"
	ColorWarning ColorTag = "warning"
	ColorSuccess ColorTag = "success"
)

// DefaultWarningDays is the window before expiry in which products are flagged.
const DefaultWarningDays = 7

// ValidationResult is the classification of one expiry date.
// DaysRemaining is negative once the date has passed.
type ValidationResult struct {
	Status        ExpiryStatus `json:"status"`
	Message       string       `json:"message"`
	DaysRemaining int          `json:"days_remaining"`
	Color         ColorTag     `json:"color"`
}

// ValidateExpiry classifies expiry against today. A negative warningDays
// is treated as 0.
func ValidateExpiry(expiry, today CalendarDate, warningDays int) ValidationResult {
	if warningDays < 0 {
		warningDays = 0
	}

	days := today.DaysUntil(expiry)
	switch {
	case days < 0:
		return ValidationResult{
			Status:        StatusExpired,
			Message:       message(msgExpired, -days),
			DaysRemaining: days,
			Color:         ColorError,
		}
	case days <= warningDays:
		return ValidationResult{
			Status:        StatusWarning,
			Message:       message(msgWarning, days),
			DaysRemaining: days,
			Color:         ColorWarning,
		}
	default:
		return ValidationResult{
			Status:        StatusValid,
			Message:       message(msgValid, days),
			DaysRemaining: days,
			Color:         ColorSuccess,
		}
	}
}

// InvalidResult is what callers report when no expiry date is available.
func InvalidResult() ValidationResult {
	return ValidationResult{
		Status:        StatusInvalid,
		Message:       message(msgInvalid, 0),
		DaysRemaining: 0,
		Color:         ColorError,
	}
}
