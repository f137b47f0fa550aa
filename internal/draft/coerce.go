package draft

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vasco-fernandes21/starsoftflow/internal/domain"
)

const dateLayout = "2006-01-02"

// ParseDate canonicalizes a date-like string into an optional time. The empty
// string means "not set". Accepts YYYY-MM-DD and RFC 3339.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.UTC()
		return &t, nil
	}
	return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
}

// ParseDecimal canonicalizes a decimal string into an optional decimal,
// preserving full precision. The empty string means "not set". A decimal
// comma is accepted alongside the decimal point.
func ParseDecimal(s string) (*decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return nil, fmt.Errorf("invalid decimal %q", s)
	}
	return &d, nil
}

// OptionalText normalizes free-text input: trimmed, with the empty string
// collapsing to nil rather than an empty value.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func validateMonth(m int) error {
	if m < 1 || m > 12 {
		return fmt.Errorf("month %d out of range 1-12", m)
	}
	return nil
}

func validateQuantity(q int) error {
	if q < 0 {
		return fmt.Errorf("quantity %d must not be negative", q)
	}
	return nil
}

func parseCategory(s string) (domain.ExpenseCategory, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidExpenseCategories[s] {
		return "", fmt.Errorf("unknown expense category %q", s)
	}
	return domain.ExpenseCategory(s), nil
}
