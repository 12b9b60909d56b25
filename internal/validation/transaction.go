package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/lunchbox/internal/month"
)

// ParseTransactionID parses a positive transaction id from user input.
func ParseTransactionID(s string) (int64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid transaction ID '%s': must be a number", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid transaction ID %d: must be positive", id)
	}
	return id, nil
}

// ParseTransactionIDs parses every argument, reporting the first bad one.
func ParseTransactionIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	seen := make(map[int64]bool, len(args))
	for _, arg := range args {
		id, err := ParseTransactionID(arg)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// ValidateMonth is a prompt validator for YYYY-MM input.
func ValidateMonth(val string) error {
	if strings.TrimSpace(val) == "" {
		return nil
	}
	_, err := month.Parse(val)
	return err
}

// ValidateToken is a prompt validator for the API access token.
func ValidateToken(val string) error {
	val = strings.TrimSpace(val)
	if val == "" {
		return fmt.Errorf("access token can't be empty")
	}
	if strings.ContainsAny(val, " \t\n") {
		return fmt.Errorf("access token must not contain whitespace")
	}
	return nil
}

// ValidateCurrency validates a currency code format.
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(strings.ToUpper(currency))

	if currency == "" {
		return nil // Empty is allowed (will use default)
	}

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}
