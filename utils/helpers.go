package utils

import (
	"strings"
	"time"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// ValidateDate checks that value is empty or a YYYY-MM-DD date
func ValidateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return NewValidationError(field, "must be a date in YYYY-MM-DD format")
	}
	return nil
}

// ValidateDateRange checks that both dates parse and end is not before start
func ValidateDateRange(start, end string) error {
	if err := ValidateDate("startDate", start); err != nil {
		return err
	}
	if err := ValidateDate("endDate", end); err != nil {
		return err
	}
	if start != "" && end != "" && end < start {
		return NewValidationError("endDate", "must not be before startDate")
	}
	return nil
}

// RequireText returns a ValidationError when value is blank
func RequireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "is required")
	}
	return nil
}

// Changes collects patch fields into a column map, skipping nil pointers
type Changes map[string]interface{}

// Set records column when value is non-nil and returns c for chaining
func (c Changes) Set(column string, value interface{}) Changes {
	switch v := value.(type) {
	case *string:
		if v != nil {
			c[column] = *v
		}
	case *int:
		if v != nil {
			c[column] = *v
		}
	case *int64:
		if v != nil {
			c[column] = *v
		}
	case *float64:
		if v != nil {
			c[column] = *v
		}
	case *bool:
		if v != nil {
			c[column] = *v
		}
	case *time.Time:
		if v != nil {
			c[column] = *v
		}
	case nil:
	default:
		c[column] = v
	}
	return c
}
