package config

import (
	"fmt"

	"baseproject/pkg/logging"
)

// Seeder is the read/write side of the document store used for seeding.
type Seeder interface {
	Source
	Set(key string, value any) error
	Save() error
}

// Initialize seeds every absent section with its schema default and saves
// once. Existing sections are never touched, whatever they contain. When
// nothing is missing no save happens. The seeded keys are returned even if
// the save fails, because the in-memory document is complete either way.
func Initialize(s Seeder, r Reporter) ([]Key, error) {
	r = ReporterOrLog(r, "Initializer")

	var seeded []Key
	for _, key := range Keys() {
		if _, ok := s.Get(string(key)); ok {
			continue
		}
		def, _ := Default(key)
		if err := s.Set(string(key), def); err != nil {
			return seeded, fmt.Errorf("seed %s: %w", key, err)
		}
		seeded = append(seeded, key)
		r.Report(NewEvent(ReasonSectionSeeded, key, "", nil))
	}

	if len(seeded) == 0 {
		logging.Debug("Initializer", "All %d sections present, nothing to seed", len(Keys()))
		return nil, nil
	}

	if err := s.Save(); err != nil {
		return seeded, err
	}
	logging.Info("Initializer", "Seeded %d section(s) with defaults", len(seeded))
	return seeded, nil
}
