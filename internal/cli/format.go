// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/lifeos/internal/model"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the configured code is unknown.
const DefaultCurrency = "IDR"

// FormatMoney formats an amount in the given ISO currency.
// e.g., 150000 IDR -> "Rp150.000,00", 12.5 USD -> "$12.50"
func FormatMoney(amount decimal.Decimal, currency string) string {
	cur := money.GetCurrency(strings.ToUpper(currency))
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// FormatSigned formats a transaction amount with a leading + or -.
func FormatSigned(t model.Transaction, currency string) string {
	if t.Kind == model.KindIncome {
		return "+" + FormatMoney(t.Amount, currency)
	}
	return "-" + FormatMoney(t.Amount, currency)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 progress value.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p)
}

// FormatDate renders a calendar date for display, or "-" when unset.
func FormatDate(d model.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.Time(time.UTC).Format("Mon, 02 Jan 2006")
}

// FormatCheck renders a completion marker.
func FormatCheck(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
