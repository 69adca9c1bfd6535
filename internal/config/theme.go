package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Theme is the symbolic theme preference stored in window_state.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

// ParseTheme accepts the stored spellings case-insensitively ("Light",
// "DARK", "auto").
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	case "auto":
		return ThemeAuto, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light, dark or auto)", s)
}

func (t Theme) String() string {
	return string(t)
}

// Valid reports whether t is one of the canonical values.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark || t == ThemeAuto
}

func (t Theme) MarshalJSON() ([]byte, error) {
	parsed, err := ParseTheme(string(t))
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(parsed))
}

func (t *Theme) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("theme must be a string: %w", err)
	}
	parsed, err := ParseTheme(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (t Theme) MarshalYAML() (interface{}, error) {
	parsed, err := ParseTheme(string(t))
	if err != nil {
		return nil, err
	}
	return string(parsed), nil
}
