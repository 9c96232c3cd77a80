// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

// Unit is the result of computations that produce no meaningful value,
// such as [PutState].
type Unit = struct{}

// Pair holds two values.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair builds a Pair from a two-value return, so that
// MakePair(m.Run(s)) captures a State result and its final state.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Values returns both components.
func (p Pair[A, B]) Values() (A, B) {
	return p.Fst, p.Snd
}
