//go:build darwin

package theme

import (
	"context"
	"errors"
	"os/exec"
)

func (e probeEnv) detect(ctx context.Context) (Hint, error) {
	out, err := e.run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		// The key is absent in light mode and `defaults` exits non-zero.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return HintLight, nil
		}
		return HintUnknown, err
	}
	return parseAppleInterfaceStyle(string(out)), nil
}
