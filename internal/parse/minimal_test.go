package parse

import (
	"testing"

	"github.com/nexuslink/nlink/internal/status"
	"github.com/stretchr/testify/require"
)

func TestParseMinimal(t *testing.T) {
	tests := []struct {
		input string
		want  Minimal
	}{
		{"core", Minimal{Component: "core"}},
		{"logger@1.2.3", Minimal{Component: "logger", Version: "1.2.3"}},
		{"logger:log", Minimal{Component: "logger", Function: "log"}},
		{"logger@1.2.3:log", Minimal{Component: "logger", Version: "1.2.3", Function: "log"}},
		{"logger@1.2.3:log=hello world", Minimal{Component: "logger", Version: "1.2.3", Function: "log", Args: "hello world"}},
		{"logger=a=b", Minimal{Component: "logger", Args: "a=b"}},
		{"logger@:log", Minimal{Component: "logger", Function: "log"}},
		{"logger@1.0=x", Minimal{Component: "logger", Version: "1.0", Args: "x"}},
		{"  core  ", Minimal{Component: "core"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMinimal(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseMinimal_NoComponent(t *testing.T) {
	for _, in := range []string{"", "@1.0", ":log", "=x"} {
		_, err := ParseMinimal(in)
		require.ErrorIs(t, err, status.ErrInvalidParameter, in)
	}
}

func TestMinimal_String(t *testing.T) {
	m := Minimal{Component: "logger", Version: "1.2.3", Function: "log", Args: "x"}
	require.Equal(t, "logger@1.2.3:log=x", m.String())
	require.Equal(t, "core", Minimal{Component: "core"}.String())
}
