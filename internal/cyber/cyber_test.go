package cyber

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/notify"
	"github.com/theirongolddev/lifeos/internal/store"
	"github.com/theirongolddev/lifeos/internal/store/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fixture struct {
	gw     *storetest.Memory
	store  *Store
	now    time.Time
	events []notify.Event
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		gw:  storetest.NewMemory(),
		now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
	}
	f.store = New(f.gw,
		WithLogger(zaptest.NewLogger(t)),
		WithClock(func() time.Time { return f.now }),
		WithNotifier(notify.Func(func(e notify.Event) { f.events = append(f.events, e) })),
	)
	require.NoError(t, f.store.Initialize())
	return f
}

// emptyFixture starts from a stored state with no missions.
func emptyFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t)
	for _, m := range f.store.State().Missions {
		require.NoError(t, f.store.RemoveMission(m.ID))
	}
	return f
}

func assertProgressInvariant(t *testing.T, s model.CyberState) {
	t.Helper()
	want := 0.0
	if len(s.Missions) > 0 {
		want = 100 * float64(s.CompletedCount()) / float64(len(s.Missions))
	}
	assert.InDelta(t, want, s.Progress, 1e-9)
}

func TestInitialize_SeedsDefaults(t *testing.T) {
	f := newFixture(t)
	s := f.store.State()

	assert.Equal(t, DefaultGoal, s.Goal)
	assert.Equal(t, 0, s.Streak)
	assert.Nil(t, s.LastCompletionDate)
	require.Len(t, s.Missions, 3)
	for _, m := range s.Missions {
		assert.False(t, m.Completed)
	}
	assert.Zero(t, s.Progress)
}

func TestInitialize_CorruptFallsBackToDefaults(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyCyber] = `{"goal": "OSCP", "dailyTasks": [`
	s := New(gw, WithLogger(zaptest.NewLogger(t)))

	require.NoError(t, s.Initialize())
	assert.Equal(t, DefaultGoal, s.State().Goal)
}

func TestInitialize_RecomputesStoredProgress(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyCyber] = `{"goal":"OSCP","streak":4,"lastStudyDate":"Mon Mar 09 2026","progress":12,
		"dailyTasks":[{"id":1,"text":"a","completed":true},{"id":2,"text":"b","completed":false}]}`
	s := New(gw)

	require.NoError(t, s.Initialize())
	st := s.State()
	assert.Equal(t, "OSCP", st.Goal)
	assert.Equal(t, 4, st.Streak)
	require.NotNil(t, st.LastCompletionDate)
	assert.Equal(t, model.Date{Year: 2026, Month: time.March, Day: 9}, *st.LastCompletionDate)
	assert.InDelta(t, 50.0, st.Progress, 1e-9)
}

func TestInitialize_UnreadableStudyDateKeepsState(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyCyber] = `{"goal":"OSCP","streak":4,"lastStudyDate":"kemarin","progress":0,
		"dailyTasks":[{"id":1,"text":"a","completed":false}]}`
	s := New(gw, WithLogger(zaptest.NewLogger(t)))

	require.NoError(t, s.Initialize())
	st := s.State()
	assert.Equal(t, "OSCP", st.Goal)
	assert.Equal(t, 4, st.Streak)
	assert.Nil(t, st.LastCompletionDate)
	assert.Len(t, st.Missions, 1)
}

func TestAddThenToggle_EmptyStore(t *testing.T) {
	f := emptyFixture(t)
	assert.Zero(t, f.store.State().Progress)

	m, err := f.store.AddMission("Read news")
	require.NoError(t, err)
	st := f.store.State()
	assert.Zero(t, st.Progress)
	assert.Equal(t, 0, st.Streak)

	require.NoError(t, f.store.ToggleMission(m.ID))
	st = f.store.State()
	assert.InDelta(t, 100.0, st.Progress, 1e-9)
	assert.Equal(t, 1, st.Streak)
	require.NotNil(t, st.LastCompletionDate)
	assert.Equal(t, model.DateOf(f.now), *st.LastCompletionDate)
}

func TestToggle_StreakOncePerDay(t *testing.T) {
	f := newFixture(t)
	ids := []int64{1, 2, 3}

	for _, id := range ids {
		require.NoError(t, f.store.ToggleMission(id))
		assertProgressInvariant(t, f.store.State())
	}
	assert.Equal(t, 1, f.store.Streak())
	require.Len(t, f.events, 1)
	assert.Equal(t, notify.StreakMilestone, f.events[0].Kind)

	// Uncheck and recheck on the same day.
	require.NoError(t, f.store.ToggleMission(2))
	assert.Equal(t, 1, f.store.Streak())
	require.NoError(t, f.store.ToggleMission(2))
	assert.Equal(t, 1, f.store.Streak())
	assert.Len(t, f.events, 1)

	// Next day, all complete again.
	f.now = f.now.AddDate(0, 0, 1)
	require.NoError(t, f.store.ToggleMission(1))
	require.NoError(t, f.store.ToggleMission(1))
	assert.Equal(t, 2, f.store.Streak())
	assert.Len(t, f.events, 2)
	assert.Equal(t, 2, f.events[1].Streak)
}

func TestToggle_UnknownIDChangesNothing(t *testing.T) {
	f := newFixture(t)
	before := f.store.State()

	require.NoError(t, f.store.ToggleMission(999))
	assert.Equal(t, before, f.store.State())
}

func TestToggle_UnknownIDNextDayKeepsStreak(t *testing.T) {
	f := newFixture(t)
	for _, m := range f.store.State().Missions {
		require.NoError(t, f.store.ToggleMission(m.ID))
	}
	require.Equal(t, 1, f.store.Streak())
	require.Len(t, f.events, 1)

	f.now = f.now.AddDate(0, 0, 1)
	saves := f.gw.Saves
	before := f.store.State()

	require.NoError(t, f.store.ToggleMission(999))
	assert.Equal(t, before, f.store.State())
	assert.Equal(t, 1, f.store.Streak())
	assert.Len(t, f.events, 1)
	assert.Equal(t, saves, f.gw.Saves)
}

func TestSetGoal(t *testing.T) {
	f := newFixture(t)

	err := f.store.SetGoal("   ")
	assert.True(t, model.IsValidation(err))
	assert.Equal(t, DefaultGoal, f.store.State().Goal)

	require.NoError(t, f.store.SetGoal("  OSCP Certified "))
	assert.Equal(t, "OSCP Certified", f.store.State().Goal)
}

func TestAddMission_RejectsEmpty(t *testing.T) {
	f := newFixture(t)
	saves := f.gw.Saves

	_, err := f.store.AddMission("")
	assert.True(t, model.IsValidation(err))
	assert.Len(t, f.store.State().Missions, 3)
	assert.Equal(t, saves, f.gw.Saves, "rejected input must not persist")
}

func TestAddMission_UniqueIDsWithinSameInstant(t *testing.T) {
	f := newFixture(t)

	a, err := f.store.AddMission("a")
	require.NoError(t, err)
	b, err := f.store.AddMission("b")
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assertProgressInvariant(t, f.store.State())
}

func TestRemoveMission(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.ToggleMission(1))

	require.NoError(t, f.store.RemoveMission(2))
	st := f.store.State()
	assert.Len(t, st.Missions, 2)
	assertProgressInvariant(t, st)

	require.NoError(t, f.store.RemoveMission(42))
	assert.Len(t, f.store.State().Missions, 2)

	require.NoError(t, f.store.RemoveMission(1))
	require.NoError(t, f.store.RemoveMission(3))
	assert.Zero(t, f.store.State().Progress)
}

func TestRemoveMission_CompletesRemainingDoesNotBumpStreak(t *testing.T) {
	// Streak only moves on a toggle, as in the checklist UI.
	f := newFixture(t)
	require.NoError(t, f.store.ToggleMission(1))
	require.NoError(t, f.store.ToggleMission(2))

	require.NoError(t, f.store.RemoveMission(3))
	assert.Equal(t, 0, f.store.Streak())
	assert.InDelta(t, 100.0, f.store.State().Progress, 1e-9)
}

func TestResetDay(t *testing.T) {
	f := newFixture(t)
	for _, id := range []int64{1, 2, 3} {
		require.NoError(t, f.store.ToggleMission(id))
	}

	require.NoError(t, f.store.ResetDay())
	st := f.store.State()
	assert.Zero(t, st.Progress)
	assert.Equal(t, 1, st.Streak)
	text, ok := f.store.TodayMission()
	assert.True(t, ok)
	assert.Equal(t, st.Missions[0].Text, text)
}

func TestMutation_PersistsWholeState(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.store.ToggleMission(1))

	var persisted model.CyberState
	require.NoError(t, json.Unmarshal([]byte(f.gw.Values[store.KeyCyber]), &persisted))
	assert.Equal(t, f.store.State(), persisted)

	reloaded := New(f.gw)
	require.NoError(t, reloaded.Initialize())
	assert.Equal(t, f.store.State(), reloaded.State())
}

func TestMutation_SaveFailureKeepsState(t *testing.T) {
	f := newFixture(t)
	f.gw.FailSaves = true

	err := f.store.ToggleMission(1)
	assert.ErrorIs(t, err, storetest.ErrInjected)
	assert.False(t, f.store.State().Missions[0].Completed)
}

func TestState_IsACopy(t *testing.T) {
	f := newFixture(t)
	st := f.store.State()
	st.Missions[0].Text = "mutated"
	assert.NotEqual(t, "mutated", f.store.State().Missions[0].Text)
}
