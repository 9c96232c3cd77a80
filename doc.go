// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package monad provides Reader and State computations in Go.
//
// A [Reader] is a function from a read-only environment to a value.
// A [State] is a function from a state to a result and the next state.
// Both are plain function types: combining them allocates closures, and
// nothing runs until the environment or initial state is supplied.
//
// # Algebraic Interfaces
//
// The capabilities are F-bounded interfaces (type T[F T[F, A], A any]),
// so generic code returns the concrete computation type it was given:
//
//   - [Functor]: Map
//   - [Applicative]: Pure, Map, Lift2
//   - [Monad]: Pure, Map, Bind
//
// The interface methods are endomorphisms on the result type. Generic
// free functions cover transformations that change it.
//
// # Reader
//
// Construction and execution:
//
//   - [NewReader]: Wrap a function of the environment
//   - [ReturnReader], [PureReader]: Lift a value, ignoring the environment
//   - [Reader.Run], [RunReader]: Supply the environment
//   - [Reader.Fn]: The wrapped function itself
//
// Combinators:
//
//   - [MapReader]: Transform the result
//   - [BindReader]: Sequence a dependent reader under the same environment
//   - [ThenReader]: Sequence, discarding the first result
//   - [ApplyReader], [Lift2Reader]: Combine independent readers
//
// Environment access:
//
//   - [Ask]: The environment itself
//   - [Asks]: A projection of the environment
//   - [Local], [Reader.Local]: Run under a transformed environment
//   - [WithReader]: Run under an environment of another type
//
// # State
//
//   - [NewState]: Wrap a transition function
//   - [ReturnState]: Lift a value, leaving the state unchanged
//   - [GetState], [PutState], [ModifyState], [GetsState]: State access
//   - [MapState], [BindState], [ThenState]: Combinators
//   - [SequenceState]: Run a list of computations left to right
//   - [State.Run], [RunState], [EvalState], [ExecState]: Supply the initial state
//
// [PutState] produces [Unit], the result with no meaningful value.
//
// # Partial Application
//
// Typed combinators require functions of the right shape; [Curry2] and
// [Curry3] convert multi-parameter functions. For dynamically shaped
// functions, [Partial] inspects the parameter count with reflect and
// binds leading arguments when too few are supplied. [MapReaderPartial]
// and [ApplyReaderPartial] use it so curried transformations can be
// chained one argument at a time.
//
// # Equality
//
// Computations are compared by running both on an explicit probe:
// [EqualReader], [EqualReaderFunc], [EqualState], [EqualStateFunc].
// Package monadtest builds law checks on top of them.
//
// # Errors
//
// The package recovers nothing during Run. A panic raised by a wrapped
// function reaches the caller unchanged. Misuse of [Partial] panics with
// a "monad:" message.
//
// # Example
//
//	type Config struct{ Host string; Port int }
//
//	addr := monad.Lift2Reader(
//		func(host string, port int) string { return fmt.Sprintf("%s:%d", host, port) },
//		monad.Asks(func(c Config) string { return c.Host }),
//		monad.Asks(func(c Config) int { return c.Port }),
//	)
//	addr.Run(Config{Host: "localhost", Port: 8080}) // "localhost:8080"
//
//	next := monad.BindState(monad.GetState[int](), func(n int) monad.State[int, int] {
//		return monad.ThenState(monad.PutState(n+1), monad.ReturnState[int](n))
//	})
//	next.Run(41) // 41, 42
package monad
