//go:build !darwin && !linux && !windows

package theme

import "context"

func (e probeEnv) detect(ctx context.Context) (Hint, error) {
	return HintUnknown, ErrUnavailable
}
