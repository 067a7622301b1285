package utils

import (
	"regexp"
	"strings"
	"time"
)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidDate checks the YYYY-MM-DD format used by appointments and visits.
func ValidDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// ValidTime checks the 24h HH:MM format used by appointments.
func ValidTime(clock string) bool {
	_, err := time.Parse("15:04", clock)
	return err == nil
}
