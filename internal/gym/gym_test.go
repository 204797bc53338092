package gym

import (
	"testing"
	"time"

	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/store"
	"github.com/theirongolddev/lifeos/internal/store/storetest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newStore(t *testing.T, gw *storetest.Memory) *Store {
	t.Helper()
	s := New(gw, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, s.Initialize())
	return s
}

func TestWeekdayName(t *testing.T) {
	tests := []struct {
		wd   time.Weekday
		want string
	}{
		{time.Sunday, "Minggu"},
		{time.Monday, "Senin"},
		{time.Tuesday, "Selasa"},
		{time.Wednesday, "Rabu"},
		{time.Thursday, "Kamis"},
		{time.Friday, "Jumat"},
		{time.Saturday, "Sabtu"},
	}
	for _, tt := range tests {
		if got := WeekdayName(tt.wd); got != tt.want {
			t.Errorf("WeekdayName(%v) = %q, want %q", tt.wd, got, tt.want)
		}
	}
}

func TestDays_MondayFirst(t *testing.T) {
	want := []string{"Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu", "Minggu"}
	if diff := cmp.Diff(want, Days()); diff != "" {
		t.Errorf("Days() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDay(t *testing.T) {
	for in, want := range map[string]string{
		"senin":  "Senin",
		"Monday": "Senin",
		"sun":    "Minggu",
		" JUMAT": "Jumat",
	} {
		got, ok := ParseDay(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseDay("Funday")
	assert.False(t, ok)
}

func TestInitialize_SeedsAllSevenDays(t *testing.T) {
	s := newStore(t, storetest.NewMemory())
	week := s.Week()

	assert.Len(t, week, 7)
	for _, d := range Days() {
		_, ok := week[d]
		assert.True(t, ok, d)
	}
	assert.Equal(t, "Push (Dada/Tricep)", s.Day("Senin").Focus)
	assert.Empty(t, s.Day("Minggu").Exercises)
}

func TestInitialize_FillsMissingDays(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyGym] = `{"Senin":{"focus":"Chest","exercises":["Bench"]},"Someday":{"focus":"x","exercises":[]}}`
	s := newStore(t, gw)

	week := s.Week()
	assert.Len(t, week, 7)
	assert.Equal(t, "Chest", week["Senin"].Focus)
	assert.Equal(t, RestFocus, week["Selasa"].Focus)
	_, ok := week["Someday"]
	assert.False(t, ok)
}

func TestInitialize_CorruptSeedsDefaults(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyGym] = `["not","a","map"]`
	s := newStore(t, gw)
	assert.Equal(t, "Legs (Kaki)", s.Day("Kamis").Focus)
}

func TestDay_MissingKeyIsRest(t *testing.T) {
	s := newStore(t, storetest.NewMemory())
	got := s.Day("Holiday")
	assert.Equal(t, RestFocus, got.Focus)
	assert.NotNil(t, got.Exercises)
	assert.Empty(t, got.Exercises)
}

func TestSetDay(t *testing.T) {
	gw := storetest.NewMemory()
	s := newStore(t, gw)

	require.NoError(t, s.SetDay("Rabu", model.DaySchedule{Focus: "Swim", Exercises: []string{"Laps"}}))
	assert.Equal(t, "Swim", s.Day("Rabu").Focus)

	reloaded := newStore(t, gw)
	assert.Equal(t, s.Week(), reloaded.Week())

	err := s.SetDay("Caturday", model.DaySchedule{Focus: "Nap"})
	assert.True(t, model.IsValidation(err))

	saves := gw.Saves
	err = s.SetDay("Rabu", model.DaySchedule{Focus: "  "})
	assert.True(t, model.IsValidation(err))
	assert.Equal(t, "Swim", s.Day("Rabu").Focus)
	assert.Equal(t, saves, gw.Saves)
}

func TestEdit_BufferIsolatedUntilCommit(t *testing.T) {
	gw := storetest.NewMemory()
	s := newStore(t, gw)
	before := s.Day("Senin")
	saves := gw.Saves

	e, err := s.Edit("Senin")
	require.NoError(t, err)
	assert.True(t, model.IsValidation(e.SetFocus("   ")))
	require.NoError(t, e.SetFocus(" Push Day "))
	require.NoError(t, e.AddExercise("Incline Press 3x10"))
	e.RemoveExercise(0)
	e.RemoveExercise(10)
	assert.True(t, model.IsValidation(e.AddExercise("  ")))

	assert.Equal(t, before, s.Day("Senin"), "committed state changed before Commit")
	assert.Equal(t, saves, gw.Saves)
	assert.Equal(t, []string{"Tricep Dip 3x12", "Incline Press 3x10"}, e.Draft().Exercises)

	require.NoError(t, e.Commit())
	got := s.Day("Senin")
	assert.Equal(t, "Push Day", got.Focus)
	assert.Equal(t, []string{"Tricep Dip 3x12", "Incline Press 3x10"}, got.Exercises)
}

func TestEdit_DiscardLeavesStateAlone(t *testing.T) {
	s := newStore(t, storetest.NewMemory())
	before := s.Week()

	e, err := s.Edit("Sabtu")
	require.NoError(t, err)
	require.NoError(t, e.AddExercise("Stretching"))

	assert.Equal(t, before, s.Week())
}

func TestEdit_UnknownDay(t *testing.T) {
	s := newStore(t, storetest.NewMemory())
	_, err := s.Edit("Someday")
	assert.True(t, model.IsValidation(err))
}

func TestDay_ReturnsCopy(t *testing.T) {
	s := newStore(t, storetest.NewMemory())
	d := s.Day("Senin")
	d.Exercises[0] = "changed"
	assert.NotEqual(t, "changed", s.Day("Senin").Exercises[0])
}
