package aggregate

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
)

// NotAvailable stands in for any missing display value.
const NotAvailable = "N/A"

// Layouts used across pages.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04"
)

// Thousands renders an amount in thousands with one decimal place, e.g. 1234 becomes "1.2k".
func Thousands(amount float64) string {
	return fmt.Sprintf("%.1fk", amount/1000)
}

// Rupees renders an amount as a two decimal rupee figure.
func Rupees(amount float64) string {
	return fmt.Sprintf("₹%.2f", amount)
}

// Minutes converts a duration in seconds to minutes with one decimal place.
func Minutes(seconds int) string {
	return fmt.Sprintf("%.1f", float64(seconds)/60)
}

// CaseType turns a snake_case case type into title case words ("upi_fraud" is "Upi Fraud").
func CaseType(s string) string {
	if s == "" || s == NotAvailable {
		return NotAvailable
	}

	runes := []rune(strings.ReplaceAll(s, "_", " "))
	for i, r := range runes {
		if i == 0 || !isWordRune(runes[i-1]) {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return string(runes)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Upper renders an identifier kind such as "bank_account" as "BANK ACCOUNT".
func Upper(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, "_", " "))
}

// OrNA returns the first non-empty value, or N/A.
func OrNA(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return NotAvailable
}

// Date formats t as a calendar date, or N/A when unset.
func Date(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.Format(DateLayout)
}

// DateTime formats t to the minute, or N/A when unset.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}
	return t.Format(DateTimeLayout)
}

// PendingDays is the number of started days between created and now.
func PendingDays(created, now time.Time) int {
	if created.IsZero() {
		return 0
	}
	d := now.Sub(created)
	if d < 0 {
		d = -d
	}
	return int(math.Ceil(d.Hours() / 24))
}

// EscalationDays is how long a request may stay pending before it is flagged.
const EscalationDays = 7

// NeedsEscalation reports whether a pending request has waited too long.
func NeedsEscalation(status string, days int) bool {
	return status == "pending" && days > EscalationDays
}
