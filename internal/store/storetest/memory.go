// Package storetest provides in-memory gateways for store tests.
package storetest

import (
	"errors"
	"sort"
)

// ErrInjected is returned by a Memory gateway whose FailSaves is set.
var ErrInjected = errors.New("injected save failure")

// Memory is a map-backed gateway.
type Memory struct {
	Values    map[string]string
	Saves     int
	FailSaves bool
}

// NewMemory returns an empty Memory gateway.
func NewMemory() *Memory {
	return &Memory{Values: make(map[string]string)}
}

// Load returns the value under key.
func (m *Memory) Load(key string) ([]byte, bool, error) {
	v, ok := m.Values[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

// Save stores value under key unless FailSaves is set.
func (m *Memory) Save(key string, value []byte) error {
	if m.FailSaves {
		return ErrInjected
	}
	m.Saves++
	m.Values[key] = string(value)
	return nil
}

// SaveAll stores every value, or nothing when FailSaves is set.
func (m *Memory) SaveAll(values map[string][]byte) error {
	if m.FailSaves {
		return ErrInjected
	}
	for k, v := range values {
		m.Saves++
		m.Values[k] = string(v)
	}
	return nil
}

// Clear removes every key.
func (m *Memory) Clear() error {
	m.Values = make(map[string]string)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.Values))
	for k := range m.Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
