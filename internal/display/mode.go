package display

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned for a mode outside the known set.
var ErrInvalidMode = errors.New("invalid display mode")

// Mode selects how a complex value is rendered.
type Mode int

const (
	Tuple Mode = iota
	Rect
	Angle
	Polar
	Exp
	Cart
)

var modeNames = map[Mode]string{
	Tuple: "tuple",
	Rect:  "rect",
	Angle: "angle",
	Polar: "polar",
	Exp:   "exp",
	Cart:  "cart",
}

// Modes returns every valid mode in declaration order.
func Modes() []Mode {
	return []Mode{Tuple, Rect, Angle, Polar, Exp, Cart}
}

// ModeNames returns the flag/config name of every valid mode.
func ModeNames() []string {
	names := make([]string, 0, len(modeNames))
	for _, m := range Modes() {
		names = append(names, modeNames[m])
	}
	return names
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	_, ok := modeNames[m]
	return ok
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode resolves a mode name, ignoring case and surrounding space.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, m := range Modes() {
		if modeNames[m] == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w %q: must be one of %v", ErrInvalidMode, name, ModeNames())
}
