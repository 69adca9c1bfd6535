package theme

import (
	"context"
	"errors"

	"baseproject/internal/config"
	"baseproject/pkg/logging"
)

// Concrete is a theme that can be applied to a window.
type Concrete string

const (
	Light Concrete = "light"
	Dark  Concrete = "dark"
)

// Fallback is applied when the setting is auto and the OS gives no usable answer.
const Fallback = Dark

func (c Concrete) String() string {
	return string(c)
}

// Hint is the OS preference as reported by a HintProvider.
type Hint int

const (
	HintUnknown Hint = iota
	HintLight
	HintDark
)

func (h Hint) String() string {
	switch h {
	case HintLight:
		return "light"
	case HintDark:
		return "dark"
	default:
		return "unknown"
	}
}

// ErrUnavailable is returned by providers that have no way to query the OS.
var ErrUnavailable = errors.New("theme hint unavailable")

// HintProvider queries the operating system for its light/dark preference.
type HintProvider interface {
	Detect(ctx context.Context) (Hint, error)
}

// ProviderFunc adapts a function to HintProvider.
type ProviderFunc func(ctx context.Context) (Hint, error)

func (f ProviderFunc) Detect(ctx context.Context) (Hint, error) { return f(ctx) }

// Resolve maps the stored setting to a concrete theme. Light and dark are
// returned as is without consulting p. Auto asks p and falls back to Fallback
// when p is nil, fails or has no opinion. Any other setting is treated as auto.
func Resolve(ctx context.Context, setting config.Theme, p HintProvider) Concrete {
	switch setting {
	case config.ThemeLight:
		return Light
	case config.ThemeDark:
		return Dark
	}

	if p == nil {
		return Fallback
	}
	hint, err := p.Detect(ctx)
	if err != nil {
		logging.Debug("Theme", "OS theme hint failed, using %s: %v", Fallback, err)
		return Fallback
	}
	switch hint {
	case HintLight:
		return Light
	case HintDark:
		return Dark
	}
	logging.Debug("Theme", "OS theme hint unknown, using %s", Fallback)
	return Fallback
}
