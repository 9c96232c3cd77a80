// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad

import (
	"fmt"
	"reflect"
)

// Partial applies f to args, or binds them if f takes more parameters.
//
// The parameter count of f is inspected before the call:
//   - fewer args than parameters: Partial returns a function of the
//     remaining parameters that calls f with args prepended;
//   - exactly enough args (for a variadic f, at least the fixed ones):
//     Partial calls f. No results yields Unit{}, one result yields that
//     value, more yield a []any.
//
// Partial panics if f is not a function, if too many args are given, or
// if an arg is not assignable to its parameter. A panic raised by f
// itself propagates unchanged.
func Partial(f any, args ...any) any {
	fv := reflect.ValueOf(f)
	if fv.Kind() != reflect.Func {
		panic(fmt.Sprintf("monad: Partial of non-function %T", f))
	}
	if fv.IsNil() {
		panic("monad: Partial of nil function")
	}
	ft := fv.Type()

	fixed := ft.NumIn()
	if ft.IsVariadic() {
		fixed--
	}
	if !ft.IsVariadic() && len(args) > fixed {
		panic(fmt.Sprintf("monad: %d arguments for %s", len(args), ft))
	}

	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = argValue(ft, i, arg)
	}

	if len(args) < fixed {
		return bind(fv, in).Interface()
	}
	return results(fv.Call(in))
}

// argValue converts the i-th argument of a call to ft.
func argValue(ft reflect.Type, i int, arg any) reflect.Value {
	var pt reflect.Type
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		pt = ft.In(ft.NumIn() - 1).Elem()
	} else {
		pt = ft.In(i)
	}
	if arg == nil {
		switch pt.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
			return reflect.Zero(pt)
		}
		panic(fmt.Sprintf("monad: argument %d: nil is not assignable to %s", i+1, pt))
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(pt) {
		panic(fmt.Sprintf("monad: argument %d: %s is not assignable to %s", i+1, v.Type(), pt))
	}
	return v
}

// bind returns fv with its leading parameters fixed to bound.
func bind(fv reflect.Value, bound []reflect.Value) reflect.Value {
	ft := fv.Type()
	rest := make([]reflect.Type, 0, ft.NumIn()-len(bound))
	for i := len(bound); i < ft.NumIn(); i++ {
		rest = append(rest, ft.In(i))
	}
	outs := make([]reflect.Type, ft.NumOut())
	for i := range outs {
		outs[i] = ft.Out(i)
	}
	pt := reflect.FuncOf(rest, outs, ft.IsVariadic())
	return reflect.MakeFunc(pt, func(args []reflect.Value) []reflect.Value {
		in := make([]reflect.Value, 0, len(bound)+len(args))
		in = append(in, bound...)
		in = append(in, args...)
		if ft.IsVariadic() {
			// MakeFunc delivers the variadic tail as a single slice.
			return fv.CallSlice(in)
		}
		return fv.Call(in)
	})
}

func results(out []reflect.Value) any {
	switch len(out) {
	case 0:
		return Unit{}
	case 1:
		return out[0].Interface()
	}
	vs := make([]any, len(out))
	for i, v := range out {
		vs[i] = v.Interface()
	}
	return vs
}

// MapReaderPartial is [MapReader] for functions of any arity.
// The result of m is applied to f with [Partial]: a unary f is called,
// while a multi-parameter f yields a function awaiting the rest of its
// arguments, so curried transformations can be chained with
// [ApplyReaderPartial].
func MapReaderPartial[E, A any](m Reader[E, A], f any) Reader[E, any] {
	return func(env E) any {
		return Partial(f, m(env))
	}
}

// ApplyReaderPartial is [ApplyReader] for readers producing functions of
// any arity. The function produced by mf receives the value produced by
// m through [Partial].
func ApplyReaderPartial[E, A any](mf Reader[E, any], m Reader[E, A]) Reader[E, any] {
	return func(env E) any {
		return Partial(mf(env), m(env))
	}
}

// Curry2 converts a binary function into a chain of unary functions.
func Curry2[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 converts a ternary function into a chain of unary functions.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry2 is the inverse of [Curry2].
func Uncurry2[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}
