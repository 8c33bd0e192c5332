package cli

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// To regenerate golden files, run:
//
//	go test ./internal/cli -run TestDemo -update
func TestDemo_Golden(t *testing.T) {
	tests := []struct {
		golden string
		args   []string
	}{
		{"demo", []string{"demo"}},
		{"demo_exp", []string{"demo", "--mode", "exp"}},
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	for _, tt := range tests {
		t.Run(tt.golden, func(t *testing.T) {
			cleanEnv(t)
			out, errOut, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Empty(t, errOut)
			g.Assert(t, tt.golden, []byte(out))
		})
	}
}

func TestDemo_FirstLinesIgnoreMode(t *testing.T) {
	cleanEnv(t)
	out, _, err := execute(t, "demo", "--mode", "cart")
	require.NoError(t, err)
	assert.Contains(t, out, "(5, 2)\n10.3942 L 11.0937 deg\n")
}

func TestDemo_RejectsArgs(t *testing.T) {
	cleanEnv(t)
	_, _, err := execute(t, "demo", "extra")
	assert.Error(t, err)
}
