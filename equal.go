// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Probe equality.
//
// Computations cannot be compared directly. Two computations are treated
// as equal when they agree on an explicit probe environment or state.
// A panic on either side, including from comparing incomparable dynamic
// values, counts as unequal.

// EqualReader reports whether a and b produce equal results for probe.
func EqualReader[E any, A comparable](probe E, a, b Reader[E, A]) bool {
	return EqualReaderFunc(probe, a, b, equal[A])
}

// EqualReaderFunc is [EqualReader] with a custom result comparison.
func EqualReaderFunc[E, A any](probe E, a, b Reader[E, A], eq func(A, A) bool) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return eq(a(probe), b(probe))
}

// EqualState reports whether a and b produce equal results and equal
// final states when run from probe.
func EqualState[S, A comparable](probe S, a, b State[S, A]) bool {
	return EqualStateFunc(probe, a, b, equal[A], equal[S])
}

// EqualStateFunc is [EqualState] with custom result and state comparisons.
func EqualStateFunc[S, A any](probe S, a, b State[S, A], eqA func(A, A) bool, eqS func(S, S) bool) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	ra, sa := a(probe)
	rb, sb := b(probe)
	return eqA(ra, rb) && eqS(sa, sb)
}

func equal[T comparable](x, y T) bool { return x == y }
