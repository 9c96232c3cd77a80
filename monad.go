// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Algebraic interfaces.
//
// Go has no higher-kinded types, so each capability is an F-bounded
// interface: the first type parameter is the concrete computation type
// itself, which lets generic code return the same concrete type it was
// given. The methods are restricted to endomorphisms on the result type;
// transformations that change the result type are the generic free
// functions (MapReader, BindState, ...).
//
// Pure ignores its receiver. Generic code lifts a value with the zero
// value of the concrete type:
//
//	var unit M
//	m := unit.Pure(x)

// Functor is implemented by computations whose result can be transformed
// without altering how the context is consumed.
//
// Laws:
//
//	m.Map(id) ≡ m
//	m.Map(f).Map(g) ≡ m.Map(g ∘ f)
type Functor[F Functor[F, A], A any] interface {
	Map(f func(A) A) F
}

// Applicative is a [Functor] that can lift plain values and combine two
// independently built computations under a shared context.
//
// Lift2 is the binary form of apply: m.Lift2(f, n) runs m and n against
// the same context and combines their results with f.
type Applicative[F Applicative[F, A], A any] interface {
	Pure(a A) F
	Map(f func(A) A) F
	Lift2(f func(A, A) A, other F) F
}

// Monad is a [Functor] that can lift plain values and sequence dependent
// computations.
//
// Laws:
//
//	Pure(a).Bind(f) ≡ f(a)
//	m.Bind(Pure) ≡ m
//	m.Bind(f).Bind(g) ≡ m.Bind(func(x) { return f(x).Bind(g) })
type Monad[M Monad[M, A], A any] interface {
	Pure(a A) M
	Map(f func(A) A) M
	Bind(f func(A) M) M
}
