// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// State represents a stateful computation.
// State[S, A] takes the current state and returns a result of type A
// together with the next state.
//
// Sequencing with [BindState] composes transition functions left to
// right. There is no default state: the caller supplies the initial
// state to [State.Run].
type State[S, A any] func(s S) (A, S)

// NewState wraps fn as a State.
func NewState[S, A any](fn func(S) (A, S)) State[S, A] {
	return State[S, A](fn)
}

// ReturnState lifts a pure value into the state monad.
// The state passes through unchanged.
func ReturnState[S, A any](a A) State[S, A] {
	return func(s S) (A, S) {
		return a, s
	}
}

// getState is the static State computation returned by GetState.
func getState[S any](s S) (S, S) { return s, s }

// GetState returns the current state as the result.
func GetState[S any]() State[S, S] {
	return getState[S]
}

// PutState replaces the state with s, whatever it was before.
func PutState[S any](s S) State[S, Unit] {
	return func(S) (Unit, S) {
		return Unit{}, s
	}
}

// ModifyState applies f to the state and returns the new state.
func ModifyState[S any](f func(S) S) State[S, S] {
	return func(s S) (S, S) {
		next := f(s)
		return next, next
	}
}

// GetsState applies the projection f to the state.
// The state passes through unchanged.
func GetsState[S, A any](f func(S) A) State[S, A] {
	return func(s S) (A, S) {
		return f(s), s
	}
}

// Run runs the computation from the initial state s and returns the
// result and the final state.
func (m State[S, A]) Run(s S) (A, S) {
	return m(s)
}

// Pair runs the computation from s and returns the result and final
// state as a [Pair].
func (m State[S, A]) Pair(s S) Pair[A, S] {
	return MakePair(m(s))
}

// RunState runs a stateful computation and returns both the result and final state.
func RunState[S, A any](initial S, m State[S, A]) (A, S) {
	return m(initial)
}

// EvalState runs a stateful computation and returns only the result.
func EvalState[S, A any](initial S, m State[S, A]) A {
	a, _ := m(initial)
	return a
}

// ExecState runs a stateful computation and returns only the final state.
func ExecState[S, A any](initial S, m State[S, A]) S {
	_, s := m(initial)
	return s
}

// MapState applies a pure function to the result of m.
// State threading is untouched.
func MapState[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, next := m(s)
		return f(a), next
	}
}

// BindState sequences two stateful computations (monadic bind).
// It runs m, passes the result to f, and runs the returned computation
// from the state m left behind.
func BindState[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, next := m(s)
		return f(a)(next)
	}
}

// ThenState sequences two stateful computations, discarding the first result.
func ThenState[S, A, B any](m State[S, A], n State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		_, next := m(s)
		return n(next)
	}
}

// SequenceState runs ms left to right, threading the state through each,
// and collects their results in order.
func SequenceState[S, A any](ms []State[S, A]) State[S, []A] {
	return func(s S) ([]A, S) {
		results := make([]A, 0, len(ms))
		for _, m := range ms {
			var a A
			a, s = m(s)
			results = append(results, a)
		}
		return results, s
	}
}

// Pure implements [Monad]. The receiver is ignored.
func (State[S, A]) Pure(a A) State[S, A] {
	return ReturnState[S](a)
}

// Map implements [Functor].
func (m State[S, A]) Map(f func(A) A) State[S, A] {
	return MapState(m, f)
}

// Bind implements [Monad].
func (m State[S, A]) Bind(f func(A) State[S, A]) State[S, A] {
	return BindState(m, f)
}
