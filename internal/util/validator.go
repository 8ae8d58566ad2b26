package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Signup bounds.
const (
	MinAge = 18
	MaxAge = 150
)

// ParseAmountCent converts a decimal amount (e.g. "120.50") to cents.
// The amount must be strictly positive and below the sanity ceiling.
func ParseAmountCent(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("amount must be positive, got %s", amount)
	}
	if amount.GreaterThanOrEqual(decimal.NewFromInt(10_000_000)) {
		return 0, fmt.Errorf("amount too large, got %s", amount)
	}
	return amount.Round(2).Shift(2).IntPart(), nil
}

// FormatCent renders cents back as a plain decimal string, two places.
func FormatCent(cent int64) string {
	return decimal.New(cent, -2).StringFixed(2)
}

// CentToFloat converts cents to the float form used in JSON payloads.
func CentToFloat(cent int64) float64 {
	f, _ := decimal.New(cent, -2).Float64()
	return f
}

// ValidateAge checks the signup age bounds.
func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return fmt.Errorf("age must be between %d and %d", MinAge, MaxAge)
	}
	return nil
}

// ValidatePhone checks that phone is exactly 10 ASCII digits.
func ValidatePhone(phone string) error {
	if len(phone) != 10 {
		return fmt.Errorf("phone number must be 10 digits")
	}
	for _, ch := range phone {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("phone number must be numeric")
		}
	}
	return nil
}
