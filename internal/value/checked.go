package value

import "golang.org/x/exp/constraints"

// Checked arithmetic over a fixed width [lo, hi]; ok is false when the
// mathematical result is out of range.

func addChecked[T constraints.Signed](a, b, lo, hi T) (r T, ok bool) {
	if (b > 0 && a > hi-b) || (b < 0 && a < lo-b) {
		return 0, false
	}
	return a + b, true
}

func subChecked[T constraints.Signed](a, b, lo, hi T) (r T, ok bool) {
	if (b > 0 && a < lo+b) || (b < 0 && a > hi+b) {
		return 0, false
	}
	return a - b, true
}

func mulChecked[T constraints.Signed](a, b, lo, hi T) (r T, ok bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == lo) || (b == -1 && a == lo) {
		return 0, false
	}
	r = a * b
	if r/b != a || r < lo || r > hi {
		return 0, false
	}
	return r, true
}

// divChecked expects b != 0.
func divChecked[T constraints.Signed](a, b, lo T) (r T, ok bool) {
	if a == lo && b == -1 {
		return 0, false
	}
	return a / b, true
}

func negChecked[T constraints.Signed](a, lo T) (r T, ok bool) {
	if a == lo {
		return 0, false
	}
	return -a, true
}
