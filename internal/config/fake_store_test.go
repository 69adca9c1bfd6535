package config

import (
	"encoding/json"
	"errors"
)

// mapStore is an in-memory Seeder for tests.
type mapStore struct {
	values  map[string]json.RawMessage
	saves   int
	saveErr error
}

func newMapStore(doc string) *mapStore {
	s := &mapStore{values: map[string]json.RawMessage{}}
	if doc != "" {
		if err := json.Unmarshal([]byte(doc), &s.values); err != nil {
			panic(err)
		}
	}
	return s
}

func (s *mapStore) Get(key string) (json.RawMessage, bool) {
	v, ok := s.values[key]
	return v, ok
}

func (s *mapStore) Set(key string, value any) error {
	if value == nil {
		return errors.New("nil value")
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.values[key] = b
	return nil
}

func (s *mapStore) Save() error {
	s.saves++
	return s.saveErr
}
