//go:build linux

package theme

import (
	"context"
	"strings"
)

const gnomeInterfaceSchema = "org.gnome.desktop.interface"

func (e probeEnv) detect(ctx context.Context) (Hint, error) {
	if v := strings.TrimSpace(e.getenv("GTK_THEME")); v != "" {
		if hint := parseGtkTheme(v); hint != HintUnknown {
			return hint, nil
		}
	}

	out, err := e.run(ctx, "gsettings", "get", gnomeInterfaceSchema, "color-scheme")
	if err == nil {
		if hint := parseColorScheme(string(out)); hint != HintUnknown {
			return hint, nil
		}
	}

	out, gtkErr := e.run(ctx, "gsettings", "get", gnomeInterfaceSchema, "gtk-theme")
	if gtkErr != nil {
		if err != nil {
			return HintUnknown, err
		}
		return HintUnknown, gtkErr
	}
	return parseGtkTheme(string(out)), nil
}
