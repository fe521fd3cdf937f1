package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnviron_AppendsSorted(t *testing.T) {
	t.Setenv("MKVTK_INHERITED", "yes")

	opts := &Options{Env: map[string]string{"B_VAR": "2", "A_VAR": "1"}}
	env := opts.Environ()

	require.Contains(t, env, "MKVTK_INHERITED=yes")
	require.Equal(t, []string{"A_VAR=1", "B_VAR=2"}, env[len(env)-2:])
}

func TestEnviron_NoExtras(t *testing.T) {
	opts := &Options{}
	require.Equal(t, os.Environ(), opts.Environ())
}
