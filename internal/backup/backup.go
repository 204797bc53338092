// Package backup exports and restores the whole persisted state as one JSON
// envelope.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/theirongolddev/lifeos/internal/logging"
	"github.com/theirongolddev/lifeos/internal/model"
	"github.com/theirongolddev/lifeos/internal/store"

	"go.uber.org/zap"
)

// Gateway is the storage surface the codec needs.
type Gateway interface {
	store.Gateway
	SaveAll(values map[string][]byte) error
	Clear() error
}

// Envelope is the backup file. Each domain field holds the raw stored text
// of that store, or null when it was never written.
type Envelope struct {
	Gym        *string `json:"lifeos_gym"`
	Cyber      *string `json:"lifeos_cyber"`
	Finance    *string `json:"lifeos_finance"`
	Tasks      *string `json:"lifeos_tasks"`
	BackupDate string  `json:"backup_date"`
}

func (e *Envelope) field(key string) **string {
	switch key {
	case store.KeyGym:
		return &e.Gym
	case store.KeyCyber:
		return &e.Cyber
	case store.KeyFinance:
		return &e.Finance
	case store.KeyTasks:
		return &e.Tasks
	}
	return nil
}

// Codec reads and writes envelopes against a gateway.
type Codec struct {
	gw  Gateway
	log *zap.Logger
}

// New returns a codec over gw.
func New(gw Gateway, log *zap.Logger) *Codec {
	return &Codec{gw: gw, log: logging.OrNop(log)}
}

// Export gathers every stored blob verbatim, without decoding it.
func (c *Codec) Export(now time.Time) (Envelope, error) {
	env := Envelope{BackupDate: now.UTC().Format("2006-01-02T15:04:05.000Z07:00")}
	for _, key := range store.DomainKeys {
		raw, ok, err := c.gw.Load(key)
		if err != nil {
			return Envelope{}, err
		}
		if !ok {
			continue
		}
		s := string(raw)
		*env.field(key) = &s
	}
	return env, nil
}

// Marshal renders env as indented JSON.
func Marshal(env Envelope) ([]byte, error) {
	return json.MarshalIndent(env, "", "  ")
}

// Import restores every domain key present and non-empty in data, leaving
// the others untouched. Inner values are written verbatim; the stores
// validate them on their next Initialize. A malformed envelope writes
// nothing. It returns the keys that were restored.
func (c *Codec) Import(data []byte) ([]string, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &model.FormatError{Err: err}
	}

	values := make(map[string][]byte)
	var restored []string
	for _, key := range store.DomainKeys {
		v := *env.field(key)
		if v == nil || *v == "" {
			continue
		}
		values[key] = []byte(*v)
		restored = append(restored, key)
	}
	if len(values) == 0 {
		return nil, nil
	}
	if err := c.gw.SaveAll(values); err != nil {
		return nil, fmt.Errorf("restoring backup: %w", err)
	}
	c.log.Info("backup restored", zap.Strings("keys", restored), zap.String("backup_date", env.BackupDate))
	return restored, nil
}

// ResetAll deletes every persisted key at once. It cannot be undone; the
// caller is responsible for confirming with the user first.
func (c *Codec) ResetAll() error {
	if err := c.gw.Clear(); err != nil {
		return fmt.Errorf("clearing data: %w", err)
	}
	c.log.Warn("all data cleared")
	return nil
}

// FileName is the default backup file name for a given day.
func FileName(now time.Time) string {
	return fmt.Sprintf("lifeos_backup_%s.json", now.Format("2006-01-02"))
}

// ExportFile writes a backup to path.
func (c *Codec) ExportFile(path string, now time.Time) error {
	env, err := c.Export(now)
	if err != nil {
		return err
	}
	data, err := Marshal(env)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing backup: %w", err)
	}
	return nil
}

// ImportFile restores a backup from path.
func (c *Codec) ImportFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		return nil, fmt.Errorf("reading backup: %w", err)
	}
	return c.Import(data)
}
