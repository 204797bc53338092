// Package finance implements the ledger store: income and expense
// transactions, the running balance and monthly views over them.
package finance

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/theirongolddev/lifeos/internal/logging"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/store"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// isoMillis matches the instant format of older records.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Store owns the persisted transaction list, newest first. Call Initialize
// before use.
type Store struct {
	gw  store.Gateway
	log *zap.Logger
	now func() time.Time

	txs []model.Transaction
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = logging.OrNop(l) }
}

// WithClock overrides time.Now, which stamps new transactions.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New returns a store persisting through gw.
func New(gw store.Gateway, opts ...Option) *Store {
	s := &Store{gw: gw, log: zap.NewNop(), now: time.Now, txs: []model.Transaction{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize loads the ledger. A missing or corrupt ledger starts empty.
func (s *Store) Initialize() error {
	var loaded []model.Transaction
	found, err := store.LoadJSON(s.gw, store.KeyFinance, &loaded)
	var fe *model.FormatError
	switch {
	case errors.As(err, &fe):
		s.log.Warn("ledger unreadable, starting empty", zap.Error(err))
		found = false
	case err != nil:
		return err
	}
	if !found || loaded == nil {
		loaded = []model.Transaction{}
	}
	for _, tx := range loaded {
		if _, ok := tx.Time(); !ok {
			s.log.Debug("transaction without timestamp", zap.Int64("id", tx.ID))
		}
	}
	s.txs = loaded
	return nil
}

// ParseAmount parses user input into an amount.
func ParseAmount(in string) (decimal.Decimal, error) {
	in = strings.ReplaceAll(strings.TrimSpace(in), "_", "")
	if in == "" {
		return decimal.Zero, model.Invalid("amount", "must not be empty")
	}
	d, err := decimal.NewFromString(in)
	if err != nil {
		return decimal.Zero, model.Invalid("amount", fmt.Sprintf("%q is not a number", in))
	}
	return d, nil
}

// Add validates and prepends a new transaction stamped with the current
// instant.
func (s *Store) Add(amount decimal.Decimal, description string, kind model.Kind) (model.Transaction, error) {
	if !amount.IsPositive() {
		return model.Transaction{}, model.Invalid("amount", "must be greater than zero")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return model.Transaction{}, model.Invalid("description", "must not be empty")
	}
	if _, err := model.ParseKind(string(kind)); err != nil {
		return model.Transaction{}, err
	}

	now := s.now()
	tx := model.Transaction{
		ID:          model.NextID(now, s.ids()),
		Amount:      amount,
		Description: description,
		Kind:        kind,
		DisplayDate: DisplayDate(now),
		Timestamp:   now.UTC().Format(isoMillis),
	}
	next := append([]model.Transaction{tx}, s.txs...)
	if err := s.commit(next); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// Remove deletes transaction id. Unknown ids are ignored.
func (s *Store) Remove(id int64) error {
	next := make([]model.Transaction, 0, len(s.txs))
	for _, tx := range s.txs {
		if tx.ID != id {
			next = append(next, tx)
		}
	}
	return s.commit(next)
}

// List returns every transaction in insertion order, newest added first.
// Unlike FilterByMonth it does not re-sort by timestamp.
func (s *Store) List() []model.Transaction {
	return append([]model.Transaction{}, s.txs...)
}

// Recent returns up to n transactions in insertion order.
func (s *Store) Recent(n int) []model.Transaction {
	if n > len(s.txs) || n < 0 {
		n = len(s.txs)
	}
	return append([]model.Transaction{}, s.txs[:n]...)
}

// Balance folds the whole ledger: income adds, expense subtracts.
func (s *Store) Balance() decimal.Decimal {
	bal := decimal.Zero
	for _, tx := range s.txs {
		bal = bal.Add(tx.Signed())
	}
	return bal
}

// FilterByMonth returns the transactions of one calendar month, newest
// timestamp first. Records without a readable timestamp are treated as
// happening now, so they always show up in the current month.
func (s *Store) FilterByMonth(month time.Month, year int) []model.Transaction {
	now := s.now()

	type dated struct {
		tx model.Transaction
		at time.Time
	}
	var matched []dated
	for _, tx := range s.txs {
		at, ok := tx.Time()
		if !ok {
			at = now
		}
		at = at.In(now.Location())
		if at.Month() == month && at.Year() == year {
			matched = append(matched, dated{tx: tx, at: at})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].at.Equal(matched[j].at) {
			return matched[i].at.After(matched[j].at)
		}
		return matched[i].tx.ID > matched[j].tx.ID
	})

	out := make([]model.Transaction, len(matched))
	for i, m := range matched {
		out[i] = m.tx
	}
	return out
}

// MonthlyTotals sums income and expense over FilterByMonth.
func (s *Store) MonthlyTotals(month time.Month, year int) model.MonthlyTotals {
	totals := model.MonthlyTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, tx := range s.FilterByMonth(month, year) {
		switch tx.Kind {
		case model.KindIncome:
			totals.Income = totals.Income.Add(tx.Amount)
		case model.KindExpense:
			totals.Expense = totals.Expense.Add(tx.Amount)
		}
	}
	return totals
}

// DisplayDate formats t the way the ledger shows it: day/month/year without
// padding.
func DisplayDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

func (s *Store) commit(next []model.Transaction) error {
	if err := store.SaveJSON(s.gw, store.KeyFinance, next); err != nil {
		return err
	}
	s.txs = next
	return nil
}

func (s *Store) ids() []int64 {
	ids := make([]int64, len(s.txs))
	for i, tx := range s.txs {
		ids[i] = tx.ID
	}
	return ids
}
