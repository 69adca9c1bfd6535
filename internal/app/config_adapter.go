package app

import (
	"encoding/json"
	"fmt"

	"baseproject/internal/config"
)

// Document returns the typed view of all sections.
func (a *Application) Document() config.Document {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc
}

// Project returns the project_config section.
func (a *Application) Project() config.ProjectSection {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc.ProjectConfig
}

// WindowConfig returns the window template.
func (a *Application) WindowConfig() config.WindowConfigSection {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc.WindowConfig
}

// WindowState returns the last stored window state.
func (a *Application) WindowState() config.WindowStateSection {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.doc.WindowState
}

// UpdateWindowState applies fn to a copy of the window state, stores the
// result and schedules a save. It is what the host calls on resize, move,
// fullscreen toggle and theme change.
func (a *Application) UpdateWindowState(fn func(*config.WindowStateSection)) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ws := a.doc.WindowState
	fn(&ws)
	if !ws.Theme.Valid() {
		return fmt.Errorf("window state: invalid theme %q", ws.Theme)
	}
	if err := a.setLocked(config.KeyWindowState, ws); err != nil {
		return err
	}
	a.doc.WindowState = ws
	return nil
}

// SetProject replaces the project_config section and schedules a save.
func (a *Application) SetProject(p config.ProjectSection) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.setLocked(config.KeyProjectConfig, p); err != nil {
		return err
	}
	a.doc.ProjectConfig = p
	return nil
}

// Reset restores keys to their defaults, or every section when keys is empty,
// and schedules a save.
func (a *Application) Reset(keys ...config.Key) error {
	if len(keys) == 0 {
		keys = config.Keys()
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for _, key := range keys {
		def, ok := config.Default(key)
		if !ok {
			return fmt.Errorf("%w: %q", config.ErrUnknownSection, key)
		}
		if err := a.setLocked(key, def); err != nil {
			return err
		}
		switch v := def.(type) {
		case config.ProjectSection:
			a.doc.ProjectConfig = v
		case config.WindowConfigSection:
			a.doc.WindowConfig = v
		case config.WindowStateSection:
			a.doc.WindowState = v
		}
	}
	return nil
}

// SetField replaces one field of a section, or the whole section when path
// is empty. The resulting section must be complete and well-formed; otherwise
// the store is left unchanged and a *config.DeserializationError is returned.
// The section is stored in canonical form, so fields it does not define are
// dropped.
func (a *Application) SetField(key config.Key, path string, value json.RawMessage) error {
	if !key.Known() {
		return fmt.Errorf("%w: %q", config.ErrUnknownSection, key)
	}
	if a.config.ReadOnly {
		return ErrReadOnly
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	st := a.services.Store
	previous, existed := st.Get(string(key))

	var err error
	if path == "" {
		err = st.Set(string(key), value)
	} else {
		err = st.SetPath(string(key), path, value)
	}
	if err != nil {
		return err
	}

	raw, _ := st.Get(string(key))
	if err := config.ValidateSection(key, raw); err != nil {
		if existed {
			_ = st.Set(string(key), previous)
		} else {
			_ = st.Delete(string(key))
		}
		return err
	}

	// Storing the typed value writes the canonical form, e.g. a lowercase theme.
	switch key {
	case config.KeyProjectConfig:
		var p config.ProjectSection
		if p, err = config.LoadProject(st, config.Strict, a.reporter); err == nil {
			if err = st.Set(string(key), p); err == nil {
				a.doc.ProjectConfig = p
			}
		}
	case config.KeyWindowConfig:
		var wc config.WindowConfigSection
		if wc, err = config.LoadWindowConfig(st, config.Strict, a.reporter); err == nil {
			if err = st.Set(string(key), wc); err == nil {
				a.doc.WindowConfig = wc
			}
		}
	case config.KeyWindowState:
		var ws config.WindowStateSection
		if ws, err = config.LoadWindowState(st, config.Strict, a.reporter); err == nil {
			if err = st.Set(string(key), ws); err == nil {
				a.doc.WindowState = ws
			}
		}
	}
	if err != nil {
		return err
	}
	a.services.Saver.Request()
	return nil
}

// setLocked writes value into the store and requests a save. a.mu must be held.
func (a *Application) setLocked(key config.Key, value any) error {
	if a.config.ReadOnly {
		return ErrReadOnly
	}
	if err := a.services.Store.Set(string(key), value); err != nil {
		return err
	}
	a.services.Saver.Request()
	return nil
}
