// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Reader represents a computation that reads a shared environment.
// Reader[E, A] computes a value of type A from an environment of type E.
//
// A Reader is just a function. Combinators never modify a Reader; they
// build a new one around it, and no work happens until [Reader.Run].
type Reader[E, A any] func(env E) A

// NewReader wraps fn as a Reader.
func NewReader[E, A any](fn func(E) A) Reader[E, A] {
	return Reader[E, A](fn)
}

// ReturnReader lifts a pure value into the reader monad.
// The resulting computation ignores its environment.
func ReturnReader[E, A any](a A) Reader[E, A] {
	return func(E) A {
		return a
	}
}

// PureReader is [ReturnReader] under its applicative name.
func PureReader[E, A any](a A) Reader[E, A] {
	return ReturnReader[E](a)
}

// Run runs the computation against env.
func (m Reader[E, A]) Run(env E) A {
	return m(env)
}

// Fn returns the wrapped function.
func (m Reader[E, A]) Fn() func(E) A {
	return m
}

// RunReader runs a computation with the given environment.
func RunReader[E, A any](env E, m Reader[E, A]) A {
	return m(env)
}

// MapReader applies a pure function to the result of a reader.
// The environment reaches m unchanged.
func MapReader[E, A, B any](m Reader[E, A], f func(A) B) Reader[E, B] {
	return func(env E) B {
		return f(m(env))
	}
}

// BindReader sequences two readers (monadic bind).
// It runs m, passes the result to f, and runs the returned reader
// against the same environment.
func BindReader[E, A, B any](m Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		return f(m(env))(env)
	}
}

// ThenReader sequences two readers, discarding the first result.
// Both see the same environment.
func ThenReader[E, A, B any](m Reader[E, A], n Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		m(env)
		return n(env)
	}
}

// ApplyReader runs mf and m against the same environment and applies the
// function produced by mf to the value produced by m.
func ApplyReader[E, A, B any](mf Reader[E, func(A) B], m Reader[E, A]) Reader[E, B] {
	return func(env E) B {
		return mf(env)(m(env))
	}
}

// Lift2Reader combines the results of two readers run against the same
// environment.
func Lift2Reader[E, A, B, C any](f func(A, B) C, ma Reader[E, A], mb Reader[E, B]) Reader[E, C] {
	return func(env E) C {
		return f(ma(env), mb(env))
	}
}

// Ask returns the environment as the result.
func Ask[E any]() Reader[E, E] {
	return identity[E]
}

// Asks applies the projection f to the environment.
// Asks(f) is equivalent to BindReader(Ask, func(e) ReturnReader(f(e)))
// but skips the intermediate reader.
func Asks[E, A any](f func(E) A) Reader[E, A] {
	return Reader[E, A](f)
}

// Local runs m against the environment transformed by f.
// Only m sees the transformed environment; computations sequenced
// around the result still see the original one.
func Local[E, A any](m Reader[E, A], f func(E) E) Reader[E, A] {
	return func(env E) A {
		return m(f(env))
	}
}

// WithReader is [Local] for a transformation that changes the
// environment type. It adapts a reader over E to run in a context of E2.
func WithReader[E2, E, A any](m Reader[E, A], f func(E2) E) Reader[E2, A] {
	return func(env E2) A {
		return m(f(env))
	}
}

// Local is the method form of [Local].
func (m Reader[E, A]) Local(f func(E) E) Reader[E, A] {
	return Local(m, f)
}

// Pure implements [Monad] and [Applicative]. The receiver is ignored.
func (Reader[E, A]) Pure(a A) Reader[E, A] {
	return ReturnReader[E](a)
}

// Map implements [Functor].
func (m Reader[E, A]) Map(f func(A) A) Reader[E, A] {
	return MapReader(m, f)
}

// Bind implements [Monad].
func (m Reader[E, A]) Bind(f func(A) Reader[E, A]) Reader[E, A] {
	return BindReader(m, f)
}

// Lift2 implements [Applicative].
func (m Reader[E, A]) Lift2(f func(A, A) A, other Reader[E, A]) Reader[E, A] {
	return Lift2Reader(f, m, other)
}
