package backup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/theirongolddev/lifeos/internal/cyber"
	"github.com/theirongolddev/lifeos/internal/finance"
	"github.com/theirongolddev/lifeos/internal/gym"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/store"
	"github.com/theirongolddev/lifeos/internal/store/storetest"
	"github.com/theirongolddev/lifeos/internal/tasks"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var now = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func openDB(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "lifeos.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// populate writes one mutation into every store.
func populate(t *testing.T, gw store.Gateway) {
	t.Helper()
	clock := func() time.Time { return now }

	c := cyber.New(gw, cyber.WithClock(clock))
	require.NoError(t, c.Initialize())
	require.NoError(t, c.ToggleMission(1))

	g := gym.New(gw)
	require.NoError(t, g.Initialize())
	require.NoError(t, g.SetDay("Rabu", model.DaySchedule{Focus: "Swim"}))

	ts := tasks.New(gw, tasks.WithClock(clock))
	require.NoError(t, ts.Initialize())
	_, err := ts.Add(tasks.Fields{Title: "Pay rent", Priority: "high"})
	require.NoError(t, err)

	f := finance.New(gw, finance.WithClock(clock))
	require.NoError(t, f.Initialize())
	_, err = f.Add(decimal.NewFromInt(50000), "Lunch", model.KindExpense)
	require.NoError(t, err)
}

func snapshot(t *testing.T, db *store.DB) map[string]string {
	t.Helper()
	out := make(map[string]string)
	for _, k := range store.DomainKeys {
		v, ok, err := db.Load(k)
		require.NoError(t, err)
		if ok {
			out[k] = string(v)
		}
	}
	return out
}

func TestRoundTrip_ByteIdentical(t *testing.T) {
	db := openDB(t)
	populate(t, db)
	before := snapshot(t, db)
	require.Len(t, before, 4)

	codec := New(db, zaptest.NewLogger(t))
	env, err := codec.Export(now)
	require.NoError(t, err)
	data, err := Marshal(env)
	require.NoError(t, err)

	require.NoError(t, codec.ResetAll())
	assert.Empty(t, snapshot(t, db))

	restored, err := codec.Import(data)
	require.NoError(t, err)
	assert.ElementsMatch(t, store.DomainKeys, restored)

	if diff := cmp.Diff(before, snapshot(t, db)); diff != "" {
		t.Errorf("restored state differs (-before +after):\n%s", diff)
	}
}

func TestExport_Format(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyTasks] = `[{"id":1,"title":"x"}]`

	env, err := New(gw, nil).Export(now)
	require.NoError(t, err)
	data, err := Marshal(env)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Nil(t, raw[store.KeyGym])
	assert.Nil(t, raw[store.KeyCyber])
	assert.Nil(t, raw[store.KeyFinance])
	assert.Equal(t, `[{"id":1,"title":"x"}]`, raw[store.KeyTasks], "store text is double-encoded verbatim")
	assert.Equal(t, "2026-10-15T09:30:00.000Z", raw["backup_date"])
	assert.Contains(t, string(data), "\n  \"lifeos_gym\": null")
}

func TestImport_PartialLeavesOthersUntouched(t *testing.T) {
	db := openDB(t)
	populate(t, db)
	before := snapshot(t, db)

	envelope := `{"lifeos_tasks": "[]", "backup_date": "2026-01-01T00:00:00.000Z"}`
	restored, err := New(db, nil).Import([]byte(envelope))
	require.NoError(t, err)
	assert.Equal(t, []string{store.KeyTasks}, restored)

	after := snapshot(t, db)
	assert.Equal(t, "[]", after[store.KeyTasks])
	for _, k := range []string{store.KeyGym, store.KeyCyber, store.KeyFinance} {
		assert.Equal(t, before[k], after[k], k)
	}
}

func TestImport_NullAndEmptyAreSkipped(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyGym] = `{"keep":true}`

	restored, err := New(gw, nil).Import([]byte(`{"lifeos_gym": null, "lifeos_cyber": ""}`))
	require.NoError(t, err)
	assert.Empty(t, restored)
	assert.Equal(t, `{"keep":true}`, gw.Values[store.KeyGym])
	assert.Zero(t, gw.Saves)
}

func TestImport_MalformedWritesNothing(t *testing.T) {
	gw := storetest.NewMemory()
	gw.Values[store.KeyCyber] = `{"goal":"keep"}`

	for _, in := range []string{`{"lifeos_tasks": "[]"`, `not json`, `["lifeos_tasks"]`, `{"lifeos_tasks": 5}`} {
		_, err := New(gw, nil).Import([]byte(in))
		assert.True(t, model.IsFormat(err), "input %q: err = %v", in, err)
	}
	assert.Zero(t, gw.Saves)
	assert.Equal(t, `{"goal":"keep"}`, gw.Values[store.KeyCyber])
}

func TestImport_InnerValuesNotValidated(t *testing.T) {
	db := openDB(t)
	_, err := New(db, nil).Import([]byte(`{"lifeos_cyber": "{broken"}`))
	require.NoError(t, err)

	// The store's own Initialize is the safety net.
	c := cyber.New(db)
	require.NoError(t, c.Initialize())
	assert.Equal(t, cyber.DefaultGoal, c.State().Goal)
}

func TestImport_SaveFailureIsAllOrNothing(t *testing.T) {
	gw := storetest.NewMemory()
	gw.FailSaves = true
	_, err := New(gw, nil).Import([]byte(`{"lifeos_tasks":"[]","lifeos_gym":"{}"}`))
	assert.ErrorIs(t, err, storetest.ErrInjected)
	assert.Empty(t, gw.Values)
}

func TestResetAll(t *testing.T) {
	db := openDB(t)
	populate(t, db)
	require.NoError(t, db.Save("lifeos_other", []byte(`1`)))

	require.NoError(t, New(db, nil).ResetAll())
	keys, err := db.Keys()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestFiles(t *testing.T) {
	db := openDB(t)
	populate(t, db)
	before := snapshot(t, db)
	codec := New(db, nil)

	path := filepath.Join(t.TempDir(), FileName(now))
	assert.Equal(t, "lifeos_backup_2026-10-15.json", filepath.Base(path))
	require.NoError(t, codec.ExportFile(path, now))

	require.NoError(t, codec.ResetAll())
	_, err := codec.ImportFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, snapshot(t, db))

	_, err = codec.ImportFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
