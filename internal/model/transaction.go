package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are stored as plain JSON numbers, as older backups have them.
	decimal.MarshalJSONWithoutQuotes = true
}

// Kind tells whether a transaction adds to or takes from the balance.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// ParseKind validates k.
func ParseKind(k string) (Kind, error) {
	switch Kind(k) {
	case KindIncome, KindExpense:
		return Kind(k), nil
	}
	return "", Invalid("kind", fmt.Sprintf("%q is not income or expense", k))
}

// Transaction is one ledger entry. Amount is always positive; the sign is
// carried by Kind. Timestamp is the authoritative instant; legacy records
// may lack it, so it is kept as raw text.
type Transaction struct {
	ID          int64           `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"desc"`
	Kind        Kind            `json:"type"`
	DisplayDate string          `json:"date,omitempty"`
	Timestamp   string          `json:"rawDate,omitempty"`
}

// Time parses Timestamp. ok is false when it is missing or malformed.
func (t Transaction) Time() (at time.Time, ok bool) {
	if t.Timestamp == "" {
		return time.Time{}, false
	}
	at, err := time.Parse(time.RFC3339Nano, t.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return at, true
}

// Signed returns Amount with the sign implied by Kind.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == KindIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}
