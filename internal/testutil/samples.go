package testutil

// sampleTable is the fixed operand set used by property tests. It covers every
// quadrant, both axes, small and large magnitudes, and exact integers.
var sampleTable = []complex128{
	complex(5, 2),
	complex(4, 5),
	complex(3, 4),
	complex(-1.5, 0.25),
	complex(0.5, -7),
	complex(-3, -3),
	complex(0, 1),
	complex(1, 0),
	complex(-2, 0),
	complex(0, -0.75),
	complex(1e-3, 2e-3),
	complex(123.456, -78.9),
}

// Samples returns a copy of the fixed operand set.
func Samples() []complex128 {
	out := make([]complex128, len(sampleTable))
	copy(out, sampleTable)
	return out
}
