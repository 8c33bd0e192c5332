package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCommandFlags(t *testing.T) {
	cleanEnv(t)
	cmd := NewRootCommand()
	showCmd, _, err := cmd.Find([]string{"show"})
	require.NoError(t, err)

	for _, name := range []string{"re", "im"} {
		flag := showCmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, "0", flag.DefValue)
	}
}

func TestShow_Modes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"tuple", []string{"show", "--re", "5", "--im", "2"}, "(5, 2)\n"},
		{"rect", []string{"show", "--re", "5", "--im", "2", "--mode", "rect"}, "5 + 2 i\n"},
		{"angle", []string{"show", "--re", "3", "--im", "4", "--mode", "angle"}, "5 L 0.927295 rad\n"},
		{"angle degrees", []string{"show", "--re", "0", "--im", "2", "--mode", "angle", "--degrees"}, "2 L 90 deg\n"},
		{"cart", []string{"show", "--re", "3", "--im", "4", "--mode", "cart"}, "|z| = 5\ntheta = arg(z) = 0.927295 rad\n"},
		{"zero default", []string{"show"}, "(0, 0)\n"},
		{"german locale", []string{"show", "--re", "5.385164807134504", "--im", "-2.5", "--locale", "de"}, "(5,38516, -2,5)\n"},
		{"english locale scientific", []string{"show", "--re", "1234567", "--im", "0.5", "--locale", "en"}, "(1.23457e+06, 0.5)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanEnv(t)
			out, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestShow_ModeFromEnv(t *testing.T) {
	cleanEnv(t)
	t.Setenv("CPLX_DISPLAY_MODE", "rect")
	out, _, err := execute(t, "show", "--re", "1", "--im", "-1")
	require.NoError(t, err)
	assert.Equal(t, "1 + -1 i\n", out)
}
