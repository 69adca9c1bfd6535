//go:build linux

package theme

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(env map[string]string, outputs map[string]string) probeEnv {
	return probeEnv{
		getenv: func(k string) string { return env[k] },
		run: func(_ context.Context, name string, args ...string) ([]byte, error) {
			key := name + " " + strings.Join(args, " ")
			out, ok := outputs[key]
			if !ok {
				return nil, errors.New("exec: not found")
			}
			return []byte(out), nil
		},
	}
}

func TestLinuxProbe(t *testing.T) {
	const (
		colorScheme = "gsettings get org.gnome.desktop.interface color-scheme"
		gtkTheme    = "gsettings get org.gnome.desktop.interface gtk-theme"
	)

	tests := []struct {
		name    string
		env     map[string]string
		outputs map[string]string
		want    Hint
		wantErr bool
	}{
		{
			name: "GTK_THEME wins",
			env:  map[string]string{"GTK_THEME": "Adwaita:dark"},
			outputs: map[string]string{
				colorScheme: "'prefer-light'",
			},
			want: HintDark,
		},
		{
			name:    "color scheme",
			outputs: map[string]string{colorScheme: "'prefer-dark'\n"},
			want:    HintDark,
		},
		{
			name: "default color scheme falls through to gtk theme",
			outputs: map[string]string{
				colorScheme: "'default'\n",
				gtkTheme:    "'Adwaita'\n",
			},
			want: HintLight,
		},
		{
			name:    "no gsettings",
			want:    HintUnknown,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fakeEnv(tt.env, tt.outputs).detect(context.Background())
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
