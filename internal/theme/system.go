package theme

import (
	"context"
	"os"
	"os/exec"
	"time"

	"golang.org/x/sync/singleflight"

	"baseproject/pkg/logging"
)

// DefaultProbeTimeout bounds one OS query.
const DefaultProbeTimeout = 2 * time.Second

// commandRunner runs an external command and returns its stdout.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// SystemProvider asks the running operating system for its theme preference.
// Concurrent Detect calls share one query.
type SystemProvider struct {
	group   singleflight.Group
	timeout time.Duration
	probe   func(ctx context.Context) (Hint, error)
}

// NewSystemProvider returns a provider for the current platform.
func NewSystemProvider() *SystemProvider {
	env := probeEnv{run: execRunner, getenv: os.Getenv}
	return newSystemProvider(env.detect)
}

func newSystemProvider(probe func(ctx context.Context) (Hint, error)) *SystemProvider {
	return &SystemProvider{
		timeout: DefaultProbeTimeout,
		probe:   probe,
	}
}

// Detect implements HintProvider. The query is not cancelled when one of the
// waiting callers gives up; it is bounded by DefaultProbeTimeout instead.
func (p *SystemProvider) Detect(ctx context.Context) (Hint, error) {
	ch := p.group.DoChan("detect", func() (interface{}, error) {
		probeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
		defer cancel()
		hint, err := p.probe(probeCtx)
		if err == nil {
			logging.Debug("Theme", "OS theme hint: %s", hint)
		}
		return hint, err
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return HintUnknown, res.Err
		}
		return res.Val.(Hint), nil
	case <-ctx.Done():
		return HintUnknown, ctx.Err()
	}
}

// probeEnv holds the process hooks the platform probes need.
type probeEnv struct {
	run    commandRunner
	getenv func(string) string
}
