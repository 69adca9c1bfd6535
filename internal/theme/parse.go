package theme

import "strings"

// parseAppleInterfaceStyle interprets `defaults read -g AppleInterfaceStyle`.
// The key only exists in dark mode.
func parseAppleInterfaceStyle(out string) Hint {
	if strings.EqualFold(strings.TrimSpace(out), "dark") {
		return HintDark
	}
	return HintLight
}

// parseColorScheme interprets org.gnome.desktop.interface color-scheme.
// "default" carries no preference.
func parseColorScheme(out string) Hint {
	switch unquote(out) {
	case "prefer-dark":
		return HintDark
	case "prefer-light":
		return HintLight
	}
	return HintUnknown
}

// parseGtkTheme guesses from a GTK theme name such as "Adwaita-dark" or
// "Adwaita:dark".
func parseGtkTheme(name string) Hint {
	name = strings.ToLower(unquote(name))
	if name == "" {
		return HintUnknown
	}
	if strings.Contains(name, "dark") {
		return HintDark
	}
	return HintLight
}

// parseAppsUseLightTheme interprets the Windows registry DWORD.
func parseAppsUseLightTheme(v uint64) Hint {
	if v == 0 {
		return HintDark
	}
	return HintLight
}

func unquote(s string) string {
	return strings.Trim(strings.TrimSpace(s), `'"`)
}
