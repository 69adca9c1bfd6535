package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_EmptyDocument(t *testing.T) {
	s := newMapStore("")
	rec := NewRecorder()

	seeded, err := Initialize(s, rec)
	require.NoError(t, err)
	assert.Equal(t, Keys(), seeded)
	assert.Equal(t, 1, s.saves)

	doc, err := LoadDocument(s, Strict, rec)
	require.NoError(t, err)
	assert.Equal(t, DefaultDocument(), doc)

	for _, e := range rec.Events() {
		assert.Equal(t, ReasonSectionSeeded, e.Reason)
		assert.Equal(t, EventTypeNormal, e.Type)
	}
	assert.Len(t, rec.Events(), 3)
}

func TestInitialize_CompleteDocumentIsNotSaved(t *testing.T) {
	s := newMapStore("")
	_, err := Initialize(s, NewRecorder())
	require.NoError(t, err)

	seeded, err := Initialize(s, NewRecorder())
	require.NoError(t, err)
	assert.Empty(t, seeded)
	assert.Equal(t, 1, s.saves)
}

func TestInitialize_KeepsExistingSections(t *testing.T) {
	s := newMapStore(`{"window_state": {"width": "not a number"}, "project_config": {"name": "keep"}}`)

	seeded, err := Initialize(s, NewRecorder())
	require.NoError(t, err)
	assert.Equal(t, []Key{KeyWindowConfig}, seeded)

	raw, _ := s.Get(string(KeyWindowState))
	assert.JSONEq(t, `{"width": "not a number"}`, string(raw))
	raw, _ = s.Get(string(KeyProjectConfig))
	assert.JSONEq(t, `{"name": "keep"}`, string(raw))
}

func TestInitialize_SaveFailure(t *testing.T) {
	s := newMapStore("")
	s.saveErr = &WriteError{Path: "/x", Err: errors.New("disk full")}

	seeded, err := Initialize(s, NewRecorder())
	require.Error(t, err)
	assert.True(t, IsWrite(err))
	assert.Equal(t, Keys(), seeded)

	_, ok := s.Get(string(KeyWindowState))
	assert.True(t, ok, "in-memory document is complete even when saving fails")
}
