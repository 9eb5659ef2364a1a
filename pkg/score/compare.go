package score

// Epsilon is the tolerance AboutEqual uses.
const Epsilon float32 = 0.0001

// AboutEqual reports whether two scores differ by less than Epsilon.
func AboutEqual(a, b float32) bool {
	return AboutEqualWithin(a, b, Epsilon)
}

func AboutEqualWithin(a, b, maxDiff float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d < maxDiff
}
