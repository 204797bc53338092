package pipeline

import (
	"testing"
	"time"

	"github.com/theirongolddev/lifeos/internal/cyber"
	"github.com/theirongolddev/lifeos/internal/finance"
	"github.com/theirongolddev/lifeos/internal/gym"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/store/storetest"
	"github.com/theirongolddev/lifeos/internal/tasks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stores struct {
	gw      *storetest.Memory
	cyber   *cyber.Store
	gym     *gym.Store
	tasks   *tasks.Store
	finance *finance.Store
}

func (s stores) sources() Sources {
	return Sources{Missions: s.cyber, Schedule: s.gym, Tasks: s.tasks, Ledger: s.finance}
}

func newStores(t *testing.T, now time.Time) stores {
	t.Helper()
	clock := func() time.Time { return now }
	gw := storetest.NewMemory()
	s := stores{
		gw:      gw,
		cyber:   cyber.New(gw, cyber.WithClock(clock)),
		gym:     gym.New(gw),
		tasks:   tasks.New(gw, tasks.WithClock(clock)),
		finance: finance.New(gw, finance.WithClock(clock)),
	}
	require.NoError(t, s.cyber.Initialize())
	require.NoError(t, s.gym.Initialize())
	require.NoError(t, s.tasks.Initialize())
	require.NoError(t, s.finance.Initialize())
	return s
}

func TestSnapshot_Defaults(t *testing.T) {
	// Thursday morning.
	now := time.Date(2026, 10, 15, 8, 0, 0, 0, time.Local)
	s := newStores(t, now)

	d := Snapshot(s.sources(), now)
	assert.Equal(t, "Good morning", d.Greeting)
	assert.True(t, d.Balance.IsZero())
	assert.Equal(t, 0, d.Streak)
	assert.True(t, d.HasMission)
	assert.Equal(t, "Baca berita CyberSec terbaru", d.TodayMission)
	assert.Equal(t, "Kamis", d.Weekday)
	assert.Equal(t, "Legs (Kaki)", d.TodayWorkout)
	assert.Zero(t, d.PendingTasks)
}

func TestSnapshot_Populated(t *testing.T) {
	now := time.Date(2026, 10, 18, 20, 0, 0, 0, time.Local) // Sunday night
	s := newStores(t, now)

	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, s.cyber.ToggleMission(id))
	}
	_, err := s.finance.Add(decimal.NewFromInt(50000), "Lunch", model.KindExpense)
	require.NoError(t, err)
	_, err = s.finance.Add(decimal.NewFromInt(200000), "Salary", model.KindIncome)
	require.NoError(t, err)
	_, err = s.tasks.Add(tasks.Fields{Title: "Pay rent", Deadline: model.DateOf(now).AddDays(-1), Priority: "high"})
	require.NoError(t, err)
	_, err = s.tasks.Add(tasks.Fields{Title: "Plan trip"})
	require.NoError(t, err)
	require.NoError(t, s.gym.SetDay("Minggu", model.DaySchedule{Focus: "Long walk"}))

	saves := s.gw.Saves
	d := Snapshot(s.sources(), now)

	assert.Equal(t, "Good night", d.Greeting)
	assert.True(t, d.Balance.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, 1, d.Streak)
	assert.False(t, d.HasMission)
	assert.Equal(t, AllDoneMessage, d.TodayMission)
	assert.Equal(t, "Long walk", d.TodayWorkout)
	assert.True(t, d.Month.Income.Equal(decimal.NewFromInt(200000)))
	assert.True(t, d.Month.Expense.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 2, d.PendingTasks)
	assert.Equal(t, 1, d.OverdueTasks)
	assert.Equal(t, saves, s.gw.Saves, "Snapshot must not write")
}

func TestSnapshot_EmptyMissionList(t *testing.T) {
	now := time.Date(2026, 10, 15, 12, 0, 0, 0, time.Local)
	s := newStores(t, now)
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, s.cyber.RemoveMission(id))
	}

	d := Snapshot(s.sources(), now)
	assert.False(t, d.HasMission)
	assert.Equal(t, AllDoneMessage, d.TodayMission)
}

func TestGreeting(t *testing.T) {
	at := func(h int) time.Time { return time.Date(2026, 1, 1, h, 0, 0, 0, time.Local) }
	assert.Equal(t, "Good morning", Greeting(at(0)))
	assert.Equal(t, "Good morning", Greeting(at(10)))
	assert.Equal(t, "Good afternoon", Greeting(at(11)))
	assert.Equal(t, "Good evening", Greeting(at(15)))
	assert.Equal(t, "Good night", Greeting(at(19)))
}
