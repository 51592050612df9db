package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nexuslink/nlink/internal/domain"
	"github.com/nexuslink/nlink/internal/status"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nlink.db")

	s, err := New(path)
	require.NoError(t, err)
	require.Equal(t, path, s.Path())
	require.NoError(t, s.RecordLoad(domain.LoadEvent{SessionID: "a", Component: "core", Version: "1.0.0"}))
	require.NoError(t, s.Close())

	s, err = New(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	events, distinct, err := s.LoadStats()
	require.NoError(t, err)
	require.Equal(t, 1, events)
	require.Equal(t, 1, distinct)
}

func TestStore_CloseNil(t *testing.T) {
	var s *Store
	require.NoError(t, s.Close())
}

func TestListComponents(t *testing.T) {
	s := newTestStore(t)

	all, err := s.ListComponents("")
	require.NoError(t, err)
	require.Len(t, all, 7)
	require.Equal(t, "cli", all[0].Name)

	diag, err := s.ListComponents("DIAGNOSTICS")
	require.NoError(t, err)
	require.Len(t, diag, 2)
	require.Equal(t, "0.9.1", diag[0].Version)
	require.Equal(t, "1.2.3", diag[1].Version)

	none, err := s.ListComponents("nothing")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestFindComponent(t *testing.T) {
	s := newTestStore(t)

	c, err := s.FindComponent("logger", "")
	require.NoError(t, err)
	require.Equal(t, "1.2.3", c.Version)

	c, err = s.FindComponent("logger", "0.9.1")
	require.NoError(t, err)
	require.Equal(t, "0.9.1", c.Version)

	_, err = s.FindComponent("logger", "9.9.9")
	require.ErrorIs(t, err, status.ErrNotFound)

	_, err = s.FindComponent("nonexistent", "")
	require.ErrorIs(t, err, status.ErrNotFound)
}

func TestFindComponent_NumericVersionOrder(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.AddComponent(domain.Component{Name: "codec", Version: "9.0.0"}))
	require.NoError(t, s.AddComponent(domain.Component{Name: "codec", Version: "10.0.0"}))

	c, err := s.FindComponent("codec", "")
	require.NoError(t, err)
	require.Equal(t, "10.0.0", c.Version)
	require.Equal(t, "core", c.Category)
}

func TestAddComponent_Validation(t *testing.T) {
	s := newTestStore(t)
	require.ErrorIs(t, s.AddComponent(domain.Component{Name: "x"}), status.ErrInvalidParameter)
}

func TestHasComponent(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.HasComponent("core")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = s.HasComponent("nonexistent")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestLoadEvents(t *testing.T) {
	s := newTestStore(t)
	ts := time.Date(2025, 6, 14, 12, 0, 0, 0, time.UTC)

	require.NoError(t, s.RecordLoad(domain.LoadEvent{SessionID: "s1", Component: "core", Version: "1.0.0", Timestamp: ts}))
	require.NoError(t, s.RecordLoad(domain.LoadEvent{SessionID: "s1", Component: "logger", Version: "1.2.3", Function: "log"}))
	require.NoError(t, s.RecordLoad(domain.LoadEvent{SessionID: "s2", Component: "core", Version: "1.0.0"}))

	events, distinct, err := s.LoadStats()
	require.NoError(t, err)
	require.Equal(t, 3, events)
	require.Equal(t, 2, distinct)

	loads, err := s.ListLoads("s1")
	require.NoError(t, err)
	require.Len(t, loads, 2)
	require.True(t, ts.Equal(loads[0].Timestamp))
	require.Empty(t, loads[0].Function)
	require.Equal(t, "log", loads[1].Function)

	all, err := s.ListLoads("")
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestHistory(t *testing.T) {
	s := newTestStore(t)

	for _, line := range []string{"version", "load core", "list"} {
		require.NoError(t, s.AddHistory(domain.HistoryEntry{SessionID: "s", Line: line, Success: true}))
	}
	require.NoError(t, s.AddHistory(domain.HistoryEntry{SessionID: "s", Line: "bogus"}))

	n, err := s.CountHistory()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	recent, err := s.ListHistory(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "list", recent[0].Line)
	require.Equal(t, "bogus", recent[1].Line)
	require.False(t, recent[1].Success)

	all, err := s.ListHistory(0)
	require.NoError(t, err)
	require.Len(t, all, 4)
	require.Equal(t, "version", all[0].Line)
}

func TestPipelines(t *testing.T) {
	s := newTestStore(t)

	p, err := s.CreatePipeline("build")
	require.NoError(t, err)
	require.Equal(t, "build", p.Name)
	require.Empty(t, p.Stages)

	_, err = s.CreatePipeline("build")
	require.ErrorIs(t, err, status.ErrInvalidParameter)

	_, err = s.AddStage("build", "lint")
	require.NoError(t, err)
	_, err = s.AddStage("build", "test")
	require.NoError(t, err)
	p, err = s.AddStage("build", "lint")
	require.NoError(t, err)
	require.Equal(t, []string{"lint", "test", "lint"}, p.Stages)

	p, err = s.RemoveStage("build", "lint")
	require.NoError(t, err)
	require.Equal(t, []string{"test", "lint"}, p.Stages)

	_, err = s.RemoveStage("build", "deploy")
	require.ErrorIs(t, err, status.ErrNotFound)

	n, err := s.CountPipelines()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, s.DeletePipeline("build"))
	_, err = s.GetPipeline("build")
	require.ErrorIs(t, err, status.ErrNotFound)
	require.ErrorIs(t, s.DeletePipeline("build"), status.ErrNotFound)

	var stages int
	require.NoError(t, s.DB().QueryRow("SELECT COUNT(*) FROM pipeline_stages").Scan(&stages))
	require.Zero(t, stages)
}

func TestPipelines_Validation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePipeline("")
	require.ErrorIs(t, err, status.ErrInvalidParameter)

	_, err = s.AddStage("missing", "lint")
	require.ErrorIs(t, err, status.ErrNotFound)

	_, err = s.CreatePipeline("p")
	require.NoError(t, err)
	_, err = s.AddStage("p", "")
	require.ErrorIs(t, err, status.ErrInvalidParameter)
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.2.3", "0.9.1", 1},
		{"9.0", "10.0", -1},
		{"1.0", "1.0.1", -1},
		{"1.0.1", "1.0", 1},
		{"1.0-beta", "1.0-alpha", 1},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, compareVersions(tt.a, tt.b), "%s vs %s", tt.a, tt.b)
	}
}
