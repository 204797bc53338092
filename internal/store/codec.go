package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/lifeos/internal/model"
)

// LoadJSON decodes the value under key into v. found is false when the key
// was never written or holds JSON null. A value that fails to decode is
// reported as a *model.FormatError and v must then be discarded.
func LoadJSON(gw Gateway, key string, v any) (found bool, err error) {
	raw, ok, err := gw.Load(key)
	if err != nil {
		return false, err
	}
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return false, &model.FormatError{Key: key, Err: err}
	}
	return true, nil
}

// SaveJSON serializes v and replaces the value under key.
func SaveJSON(gw Gateway, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return gw.Save(key, raw)
}
