package config

// SchemaVersion identifies the section layout defined in this file. It is not
// written into the document.
const SchemaVersion = 1

// DefaultTitle is the window title seeded on first run.
const DefaultTitle = "BaseProject"

// Key names one top-level section of the configuration document.
type Key string

const (
	// KeyProjectConfig holds metadata of the active project.
	KeyProjectConfig Key = "project_config"
	// KeyWindowConfig holds the window template applied at creation.
	KeyWindowConfig Key = "window_config"
	// KeyWindowState holds the last observed window geometry and theme.
	KeyWindowState Key = "window_state"
)

// Keys returns every known section key in document order.
func Keys() []Key {
	return []Key{KeyProjectConfig, KeyWindowConfig, KeyWindowState}
}

// Known reports whether key is one of the sections defined by this package.
func (k Key) Known() bool {
	switch k {
	case KeyProjectConfig, KeyWindowConfig, KeyWindowState:
		return true
	}
	return false
}

func (k Key) String() string {
	return string(k)
}

// ParseKey converts a string to a known Key.
func ParseKey(s string) (Key, bool) {
	k := Key(s)
	return k, k.Known()
}

// ProjectSection is the metadata of the currently active project.
type ProjectSection struct {
	Name     string `json:"name" yaml:"name"`
	Filepath string `json:"filepath" yaml:"filepath"`
	Remarks  string `json:"remarks" yaml:"remarks"`
}

// WindowConfigSection is the template applied once when the main window is created.
type WindowConfigSection struct {
	Title     string `json:"title" yaml:"title"`
	MinWidth  uint32 `json:"min_width" yaml:"min_width"`
	MinHeight uint32 `json:"min_height" yaml:"min_height"`
	MaxWidth  uint32 `json:"max_width" yaml:"max_width"`
	MaxHeight uint32 `json:"max_height" yaml:"max_height"`
}

// Layout holds relative panel split weights. Weights are proportional and
// are not required to sum to anything in particular.
type Layout struct {
	Horizontal [3]float64 `json:"horizontal" yaml:"horizontal,flow"`
	Vertical   [2]float64 `json:"vertical" yaml:"vertical,flow"`
}

// WindowStateSection is the last observed window geometry, theme and layout.
type WindowStateSection struct {
	Width      float64 `json:"width" yaml:"width"`
	Height     float64 `json:"height" yaml:"height"`
	X          int     `json:"x" yaml:"x"`
	Y          int     `json:"y" yaml:"y"`
	Fullscreen bool    `json:"fullscreen" yaml:"fullscreen"`
	Theme      Theme   `json:"theme" yaml:"theme"`
	Layout     Layout  `json:"main_panel_layout" yaml:"main_panel_layout"`
}

// Document is the typed view of the whole configuration document.
type Document struct {
	ProjectConfig ProjectSection      `json:"project_config" yaml:"project_config"`
	WindowConfig  WindowConfigSection `json:"window_config" yaml:"window_config"`
	WindowState   WindowStateSection  `json:"window_state" yaml:"window_state"`
}

// DefaultProject returns the seeded project section.
func DefaultProject() ProjectSection {
	return ProjectSection{}
}

// DefaultWindowConfig returns the seeded window template.
func DefaultWindowConfig() WindowConfigSection {
	return WindowConfigSection{
		Title:     DefaultTitle,
		MinWidth:  800,
		MinHeight: 600,
		MaxWidth:  1920,
		MaxHeight: 1080,
	}
}

// DefaultLayout returns the seeded main panel layout.
func DefaultLayout() Layout {
	return Layout{
		Horizontal: [3]float64{15, 70, 15},
		Vertical:   [2]float64{85, 15},
	}
}

// DefaultWindowState returns the seeded window state.
func DefaultWindowState() WindowStateSection {
	return WindowStateSection{
		Width:      1200,
		Height:     800,
		X:          100,
		Y:          100,
		Fullscreen: false,
		Theme:      ThemeAuto,
		Layout:     DefaultLayout(),
	}
}

// DefaultDocument returns the document written on a fresh install.
func DefaultDocument() Document {
	return Document{
		ProjectConfig: DefaultProject(),
		WindowConfig:  DefaultWindowConfig(),
		WindowState:   DefaultWindowState(),
	}
}

// Default returns the schema default for key as its section type.
func Default(key Key) (any, bool) {
	switch key {
	case KeyProjectConfig:
		return DefaultProject(), true
	case KeyWindowConfig:
		return DefaultWindowConfig(), true
	case KeyWindowState:
		return DefaultWindowState(), true
	}
	return nil, false
}
