package finance

import (
	"testing"
	"time"

	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/store"
	"github.com/theirongolddev/lifeos/internal/store/storetest"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newStore(t *testing.T, gw *storetest.Memory, c *clock) *Store {
	t.Helper()
	s := New(gw, WithLogger(zaptest.NewLogger(t)), WithClock(c.now))
	require.NoError(t, s.Initialize())
	return s
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(t, want).Equal(got), "got %s, want %s", got, want)
}

func TestBalance_LunchAndSalary(t *testing.T) {
	c := &clock{time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)}
	s := newStore(t, storetest.NewMemory(), c)

	_, err := s.Add(decimal.NewFromInt(50000), "Lunch", model.KindExpense)
	require.NoError(t, err)
	_, err = s.Add(decimal.NewFromInt(200000), "Salary", model.KindIncome)
	require.NoError(t, err)

	assertDecimal(t, "150000", s.Balance())
}

func TestBalance_Empty(t *testing.T) {
	s := newStore(t, storetest.NewMemory(), &clock{time.Now()})
	assert.True(t, s.Balance().IsZero())
}

func TestBalance_EqualsIncomeMinusExpense(t *testing.T) {
	c := &clock{time.Date(2026, 1, 1, 8, 0, 0, 0, time.Local)}
	s := newStore(t, storetest.NewMemory(), c)

	income, expense := decimal.Zero, decimal.Zero
	amounts := []string{"10.5", "3", "999999.99", "0.01", "42"}
	for i, a := range amounts {
		kind := model.KindExpense
		if i%2 == 0 {
			kind = model.KindIncome
			income = income.Add(dec(t, a))
		} else {
			expense = expense.Add(dec(t, a))
		}
		_, err := s.Add(dec(t, a), "entry", kind)
		require.NoError(t, err)
		c.t = c.t.Add(time.Minute)
	}

	assertDecimal(t, income.Sub(expense).String(), s.Balance())
}

func TestAdd_Validation(t *testing.T) {
	gw := storetest.NewMemory()
	s := newStore(t, gw, &clock{time.Now()})

	for _, tc := range []struct {
		name   string
		amount decimal.Decimal
		desc   string
		kind   model.Kind
	}{
		{"zero amount", decimal.Zero, "x", model.KindExpense},
		{"negative amount", decimal.NewFromInt(-5), "x", model.KindExpense},
		{"empty description", decimal.NewFromInt(5), "  ", model.KindIncome},
		{"unknown kind", decimal.NewFromInt(5), "x", model.Kind("refund")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Add(tc.amount, tc.desc, tc.kind)
			assert.True(t, model.IsValidation(err), "err = %v", err)
		})
	}
	assert.Empty(t, s.List())
	assert.Zero(t, gw.Saves)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount(" 50_000 ")
	require.NoError(t, err)
	assertDecimal(t, "50000", d)

	_, err = ParseAmount("fifty")
	assert.True(t, model.IsValidation(err))
	_, err = ParseAmount("")
	assert.True(t, model.IsValidation(err))
}

func TestAdd_StampsRecord(t *testing.T) {
	gw := storetest.NewMemory()
	c := &clock{time.Date(2026, 10, 5, 9, 7, 3, 0, time.UTC)}
	s := newStore(t, gw, c)

	tx, err := s.Add(decimal.NewFromInt(50000), "Lunch", model.KindExpense)
	require.NoError(t, err)

	assert.Equal(t, c.t.UnixMilli(), tx.ID)
	assert.Equal(t, "2026-10-05T09:07:03.000Z", tx.Timestamp)
	assert.Equal(t, DisplayDate(c.t), tx.DisplayDate)
	assert.Contains(t, gw.Values[store.KeyFinance], `"amount":50000`)
	assert.Contains(t, gw.Values[store.KeyFinance], `"type":"expense"`)
}

func TestFilterByMonth_SelectsAndSortsDescending(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyFinance] = `[
		{"id":5,"amount":10,"desc":"backdated","type":"expense","rawDate":"2026-10-01T10:00:00.000Z"},
		{"id":4,"amount":20,"desc":"september","type":"income","rawDate":"2026-09-30T10:00:00.000Z"},
		{"id":3,"amount":30,"desc":"mid","type":"income","rawDate":"2026-10-12T10:00:00.000Z"},
		{"id":2,"amount":40,"desc":"late","type":"expense","rawDate":"2026-10-20T10:00:00.000Z"},
		{"id":1,"amount":50,"desc":"last year","type":"expense","rawDate":"2025-10-20T10:00:00.000Z"}
	]`
	c := &clock{time.Date(2026, 10, 25, 12, 0, 0, 0, time.UTC)}
	s := newStore(t, gw, c)

	got := s.FilterByMonth(time.October, 2026)
	var ids []int64
	for _, tx := range got {
		ids = append(ids, tx.ID)
	}
	assert.Equal(t, []int64{2, 3, 5}, ids)

	// Insertion order is kept for the unfiltered list.
	recent := s.Recent(3)
	assert.Equal(t, int64(5), recent[0].ID)
	assert.Equal(t, int64(4), recent[1].ID)

	totals := s.MonthlyTotals(time.October, 2026)
	assertDecimal(t, "30", totals.Income)
	assertDecimal(t, "50", totals.Expense)
	assertDecimal(t, "-20", totals.Net())
}

func TestFilterByMonth_MissingTimestampFallsBackToNow(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyFinance] = `[
		{"id":1,"amount":1000,"desc":"legacy","type":"income","date":"3/1/2024"},
		{"id":2,"amount":500,"desc":"garbled","type":"expense","rawDate":"not a date"}
	]`
	c := &clock{time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)}
	s := newStore(t, gw, c)

	current := s.FilterByMonth(time.October, 2026)
	assert.Len(t, current, 2, "records without a timestamp belong to the current month")
	assert.Empty(t, s.FilterByMonth(time.January, 2024))

	// Next month the same records move along with "now".
	c.t = time.Date(2026, 11, 2, 12, 0, 0, 0, time.Local)
	assert.Empty(t, s.FilterByMonth(time.October, 2026))
	assert.Len(t, s.FilterByMonth(time.November, 2026), 2)

	assertDecimal(t, "500", s.Balance())
}

func TestFilterByMonth_TieBreaksOnID(t *testing.T) {
	c := &clock{time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)}
	s := newStore(t, storetest.NewMemory(), c)
	a, _ := s.Add(decimal.NewFromInt(1), "a", model.KindIncome)
	b, _ := s.Add(decimal.NewFromInt(2), "b", model.KindIncome)

	got := s.FilterByMonth(time.October, 2026)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
}

func TestRemove(t *testing.T) {
	gw := storetest.NewMemory()
	c := &clock{time.Now()}
	s := newStore(t, gw, c)
	tx, _ := s.Add(decimal.NewFromInt(10), "coffee", model.KindExpense)

	require.NoError(t, s.Remove(tx.ID))
	require.NoError(t, s.Remove(tx.ID))
	assert.Empty(t, s.List())

	reloaded := newStore(t, gw, c)
	assert.Empty(t, reloaded.List())
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "5/3/2026", DisplayDate(time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)))
}

func TestInitialize_CorruptStartsEmpty(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyFinance] = `[{"id":1,"amount":"lots"}]`
	s := newStore(t, gw, &clock{time.Now()})
	assert.Empty(t, s.List())
}
