package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		lines   []string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty input",
			lines: []string{},
			want:  map[string]string{},
		},
		{
			name:  "comments and blanks",
			lines: []string{"# nlink", "", "  # indented", "history=true"},
			want:  map[string]string{"history": "true"},
		},
		{
			name:  "trims whitespace",
			lines: []string{"  log_level  =  debug  "},
			want:  map[string]string{"log_level": "debug"},
		},
		{
			name:  "quoted value",
			lines: []string{`prompt="nexus> "`},
			want:  map[string]string{"prompt": "nexus> "},
		},
		{
			name:  "equals in value",
			lines: []string{"history_ignore=a=b,c"},
			want:  map[string]string{"history_ignore": "a=b,c"},
		},
		{
			name:  "last one wins",
			lines: []string{"history=true", "history=false"},
			want:  map[string]string{"history": "false"},
		},
		{
			name:  "bom stripped",
			lines: []string{"\uFEFFenable_log=true"},
			want:  map[string]string{"enable_log": "true"},
		},
		{
			name:    "missing equals",
			lines:   []string{"history"},
			wantErr: true,
		},
		{
			name:    "empty key",
			lines:   []string{"=true"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.lines)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSetAndUnset(t *testing.T) {
	lines := []string{"# header", "history=true", "log_level=warn"}

	lines, replaced := Set(lines, "log_level", "debug")
	require.True(t, replaced)
	require.Equal(t, "log_level=debug", lines[2])

	lines, replaced = Set(lines, "prompt", "nl> ")
	require.False(t, replaced)
	require.Equal(t, `prompt="nl> "`, lines[3])

	lines, removed := Unset(lines, "history")
	require.True(t, removed)
	require.Equal(t, []string{"# header", "log_level=debug", `prompt="nl> "`}, lines)

	_, removed = Unset(lines, "missing")
	require.False(t, removed)
}

func TestReadLines_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nlinkrc")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.NotEmpty(t, lines)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(content), "history=true")
	require.Contains(t, string(content), `prompt="nexus> "`)
	require.Contains(t, string(content), "# color_success=")

	cfg, err := Parse(lines)
	require.NoError(t, err)
	require.Equal(t, "nexus> ", cfg["prompt"])
}

func TestProvider(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".nlinkrc")
	require.NoError(t, os.WriteFile(path, []byte("log_level=debug\n"), 0600))

	p := NewProvider(path)
	require.Equal(t, path, p.Path())

	v, ok := p.Get("log_level")
	require.True(t, ok)
	require.Equal(t, "debug", v)

	v, ok = p.Get("history")
	require.True(t, ok)
	require.Equal(t, "true", v)

	_, ok = p.Get("no_such_key")
	require.False(t, ok)

	require.NoError(t, p.Set("minimal_mode", "true"))
	require.True(t, Bool(p, "minimal_mode"))

	all, err := p.GetAll()
	require.NoError(t, err)
	require.Equal(t, "debug", all["log_level"])
	require.Equal(t, "true", all["minimal_mode"])

	require.NoError(t, p.Unset("minimal_mode"))
	require.False(t, Bool(p, "minimal_mode"))

	_, err = os.Stat(path + ".lock")
	require.True(t, os.IsNotExist(err))
}

func TestStaticAndHelpers(t *testing.T) {
	s := Static{"history_ignore": " help* , ,exit ", "history": "yes"}

	require.Equal(t, []string{"help*", "exit"}, List(s, "history_ignore"))
	require.False(t, Bool(s, "history"))
	require.False(t, Bool(nil, "history"))
	require.Nil(t, List(nil, "history_ignore"))

	v, ok := s.Get("prompt")
	require.True(t, ok)
	require.Equal(t, "nexus> ", v)

	require.NoError(t, s.Set("history", "true"))
	require.True(t, Bool(s, "history"))
}

func TestDefaults_CoverAllKeys(t *testing.T) {
	lines := initializeDefaults()
	joined := strings.Join(lines, "\n")
	for key := range Defaults {
		require.Contains(t, joined, key)
	}
}
