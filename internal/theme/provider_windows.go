//go:build windows

package theme

import (
	"context"

	"golang.org/x/sys/windows/registry"
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

func (e probeEnv) detect(ctx context.Context) (Hint, error) {
	if err := ctx.Err(); err != nil {
		return HintUnknown, err
	}
	k, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return HintUnknown, err
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return HintUnknown, err
	}
	return parseAppsUseLightTheme(v), nil
}
