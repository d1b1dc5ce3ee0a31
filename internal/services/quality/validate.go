package quality

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"CardPulse/internal/domain/models"
	"CardPulse/pkg/util"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// FieldError describes one offending field of a price record.
type FieldError struct {
	Code    string `json:"code"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates the failed fields of a record. Invalid
// records always fail loudly; they are never silently coerced.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Message)
	}
	return "invalid price record: " + strings.Join(parts, "; ")
}

// ValidationResult is the non-throwing variant's outcome, for batch and
// UX flows that need to render partial failures.
type ValidationResult struct {
	Success bool               `json:"success"`
	Data    *models.PricePoint `json:"data,omitempty"`
	Errors  []FieldError       `json:"errors,omitempty"`
}

// ValidatePrice checks a raw record and returns the parsed price point.
// A record is valid iff value > 0, the currency is in the supported set,
// and the date parses as a timestamp.
func ValidatePrice(rec models.PriceRecord) (models.PricePoint, error) {
	var fields []FieldError

	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields = append(fields, fieldError(fe))
			}
		} else {
			fields = append(fields, FieldError{Code: "ERR_UNKNOWN", Message: err.Error()})
		}
	}

	date, ok := util.ParseTime(rec.Date)
	if rec.Date != "" && !ok {
		fields = append(fields, FieldError{
			Code:    "ERR_DATE",
			Field:   "date",
			Message: fmt.Sprintf("date %q is not a valid timestamp", rec.Date),
		})
	}

	if len(fields) > 0 {
		return models.PricePoint{}, &ValidationError{Fields: fields}
	}
	return models.PricePoint{Date: date, Value: rec.Value}, nil
}

// SafeValidatePrice is the non-throwing variant of ValidatePrice.
func SafeValidatePrice(rec models.PriceRecord) ValidationResult {
	point, err := ValidatePrice(rec)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return ValidationResult{Success: false, Errors: verr.Fields}
		}
		return ValidationResult{Success: false, Errors: []FieldError{{Code: "ERR_UNKNOWN", Message: err.Error()}}}
	}
	return ValidationResult{Success: true, Data: &point}
}

func fieldError(fe validator.FieldError) FieldError {
	field := strings.ToLower(fe.Field())
	code := "ERR_" + strings.ToUpper(fe.Tag())
	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "gt":
		msg = fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		msg = fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
	return FieldError{Code: code, Field: field, Message: msg}
}
