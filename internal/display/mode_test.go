package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"tuple", Tuple},
		{"RECT", Rect},
		{" angle ", Angle},
		{"Polar", Polar},
		{"exp", Exp},
		{"cart", Cart},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseMode_Unknown(t *testing.T) {
	_, err := ParseMode("spiral")
	require.ErrorIs(t, err, ErrInvalidMode)
	assert.Contains(t, err.Error(), `"spiral"`)
}

func TestMode_StringRoundTrip(t *testing.T) {
	for _, m := range Modes() {
		assert.True(t, m.Valid())
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestMode_Invalid(t *testing.T) {
	assert.False(t, Mode(6).Valid())
	assert.Equal(t, "Mode(6)", Mode(6).String())
}

func TestModeNames(t *testing.T) {
	assert.Equal(t, []string{"tuple", "rect", "angle", "polar", "exp", "cart"}, ModeNames())
}
