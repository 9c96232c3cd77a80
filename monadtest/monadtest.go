// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monadtest checks the algebraic laws of computations built
// with package monad.
//
// Each check takes an equality function over the computation type.
// [ReaderEq] and [StateEq] build one from a probe, so tests can pick
// probes that actually distinguish the computations under test.
package monadtest

import "code.hybscloud.com/monad"

// Eq compares two computations.
type Eq[M any] func(a, b M) bool

// ReaderEq compares readers by running both on probe.
func ReaderEq[E any, A comparable](probe E) Eq[monad.Reader[E, A]] {
	return func(a, b monad.Reader[E, A]) bool {
		return monad.EqualReader(probe, a, b)
	}
}

// StateEq compares stateful computations by running both from probe.
func StateEq[S, A comparable](probe S) Eq[monad.State[S, A]] {
	return func(a, b monad.State[S, A]) bool {
		return monad.EqualState(probe, a, b)
	}
}

// LeftIdentity reports whether Pure(a).Bind(f) ≡ f(a).
func LeftIdentity[M monad.Monad[M, A], A any](eq Eq[M], a A, f func(A) M) bool {
	var unit M
	return eq(unit.Pure(a).Bind(f), f(a))
}

// RightIdentity reports whether m.Bind(Pure) ≡ m.
func RightIdentity[M monad.Monad[M, A], A any](eq Eq[M], m M) bool {
	var unit M
	return eq(m.Bind(unit.Pure), m)
}

// Associativity reports whether m.Bind(f).Bind(g) ≡ m.Bind(x => f(x).Bind(g)).
func Associativity[M monad.Monad[M, A], A any](eq Eq[M], m M, f, g func(A) M) bool {
	left := m.Bind(f).Bind(g)
	right := m.Bind(func(x A) M {
		return f(x).Bind(g)
	})
	return eq(left, right)
}

// FunctorIdentity reports whether m.Map(id) ≡ m.
func FunctorIdentity[F monad.Functor[F, A], A any](eq Eq[F], m F) bool {
	return eq(m.Map(monad.Identity[A]), m)
}

// FunctorComposition reports whether m.Map(f).Map(g) ≡ m.Map(g ∘ f).
func FunctorComposition[F monad.Functor[F, A], A any](eq Eq[F], m F, f, g func(A) A) bool {
	return eq(m.Map(f).Map(g), m.Map(monad.Compose(f, g)))
}

// ApplicativeIdentity reports whether m.Lift2(first, Pure(a)) ≡ m,
// where first returns its left argument.
func ApplicativeIdentity[F monad.Applicative[F, A], A any](eq Eq[F], m F, a A) bool {
	var unit F
	first := func(x, _ A) A { return x }
	return eq(m.Lift2(first, unit.Pure(a)), m)
}

// ApplicativeHomomorphism reports whether Pure(a).Lift2(f, Pure(b)) ≡ Pure(f(a, b)).
func ApplicativeHomomorphism[F monad.Applicative[F, A], A any](eq Eq[F], f func(A, A) A, a, b A) bool {
	var unit F
	return eq(unit.Pure(a).Lift2(f, unit.Pure(b)), unit.Pure(f(a, b)))
}
