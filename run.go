// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// identity backs Ask. Named generic function produces a static function
// value per type instantiation, avoiding the heap allocation that an
// anonymous closure incurs.
func identity[A any](a A) A { return a }

// Identity returns its argument unchanged.
func Identity[A any](a A) A { return a }

// Compose returns the function that applies f, then g.
func Compose[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const returns a function that ignores its argument and yields a.
func Const[X, A any](a A) func(X) A {
	return func(X) A { return a }
}
