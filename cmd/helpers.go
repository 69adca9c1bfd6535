package cmd

import (
	"fmt"
	"strings"

	"baseproject/internal/config"
)

func sectionNames() []string {
	keys := config.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return names
}

func parseSection(name string) (config.Key, error) {
	key, ok := config.ParseKey(name)
	if !ok {
		return "", fmt.Errorf("%w: %q (want one of %s)", config.ErrUnknownSection, name, strings.Join(sectionNames(), ", "))
	}
	return key, nil
}

// splitFieldPath splits "window_state.main_panel_layout.vertical" into the
// section key and the path inside it.
func splitFieldPath(arg string) (config.Key, string, error) {
	section, path, _ := strings.Cut(arg, ".")
	key, err := parseSection(section)
	if err != nil {
		return "", "", err
	}
	return key, path, nil
}
