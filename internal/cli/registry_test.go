package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexuslink/nlink/internal/router"
	"github.com/nexuslink/nlink/internal/status"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(router.Command{Name: "help", ShortName: "h"}))
	require.NoError(t, r.Add(router.Command{Name: "list", ShortName: "ls"}))
	require.NoError(t, r.Add(router.Command{Name: "stats"}))

	require.Equal(t, []string{"help", "list", "stats"}, r.Names())
	require.Equal(t, 3, r.Len())

	cmd, ok := r.Lookup("ls")
	require.True(t, ok)
	require.Equal(t, "list", cmd.Name)

	_, ok = r.Lookup("nope")
	require.False(t, ok)

	require.ErrorIs(t, r.Add(router.Command{}), status.ErrInvalidParameter)
	require.ErrorIs(t, r.Add(router.Command{Name: "help"}), status.ErrInvalidParameter)
	require.ErrorIs(t, r.Add(router.Command{Name: "hist", ShortName: "h"}), status.ErrInvalidParameter)

	cmds := r.Commands()
	cmds[0].Name = "mutated"
	require.Equal(t, "help", r.Names()[0])
}

func TestRegistry_Nil(t *testing.T) {
	var r *Registry
	require.ErrorIs(t, r.Add(router.Command{Name: "x"}), status.ErrNotInitialized)
	_, ok := r.Lookup("x")
	require.False(t, ok)
	require.Nil(t, r.Commands())
	require.Zero(t, r.Len())
}
