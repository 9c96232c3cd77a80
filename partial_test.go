// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/monad"
)

func TestPartialExactArity(t *testing.T) {
	got := monad.Partial(func(a, b int) int { return a - b }, 10, 3)

	assert.Equal(t, 7, got)
}

func TestPartialUnderApplied(t *testing.T) {
	got := monad.Partial(func(a, b int) int { return a - b }, 10)

	f, ok := got.(func(int) int)
	require.True(t, ok, "got %T", got)
	assert.Equal(t, 7, f(3))
}

func TestPartialChain(t *testing.T) {
	join3 := func(a, b, c string) string { return a + b + c }

	f := monad.Partial(join3, "x")
	g := monad.Partial(f, "y")
	assert.Equal(t, "xyz", monad.Partial(g, "z"))
}

func TestPartialVariadic(t *testing.T) {
	join := func(sep string, parts ...string) string { return strings.Join(parts, sep) }

	assert.Equal(t, "a-b-c", monad.Partial(join, "-", "a", "b", "c"))
	assert.Equal(t, "", monad.Partial(join, "-"))

	f, ok := monad.Partial(func(n int, sep string, parts ...string) string {
		return fmt.Sprint(n) + sep + strings.Join(parts, sep)
	}, 3).(func(string, ...string) string)
	require.True(t, ok)
	assert.Equal(t, "3,a,b", f(",", "a", "b"))
}

func TestPartialResults(t *testing.T) {
	assert.Equal(t, monad.Unit{}, monad.Partial(func(int) {}, 1))
	assert.Equal(t, []any{1, "one"}, monad.Partial(func(x int) (int, string) { return x, "one" }, 1))
}

func TestPartialNilArgument(t *testing.T) {
	got := monad.Partial(func(err error) bool { return err == nil }, nil)

	assert.Equal(t, true, got)
	assert.PanicsWithValue(t, "monad: argument 1: nil is not assignable to int", func() {
		monad.Partial(func(int) int { return 0 }, nil)
	})
}

func TestPartialMisuse(t *testing.T) {
	assert.PanicsWithValue(t, "monad: Partial of non-function int", func() {
		monad.Partial(5, 1)
	})
	assert.PanicsWithValue(t, "monad: Partial of nil function", func() {
		var f func(int) int
		monad.Partial(f, 1)
	})
	assert.PanicsWithValue(t, "monad: 2 arguments for func(int) int", func() {
		monad.Partial(func(x int) int { return x }, 1, 2)
	})
	assert.PanicsWithValue(t, "monad: argument 1: string is not assignable to int", func() {
		monad.Partial(func(x int) int { return x }, "one")
	})
}

func TestPartialPanicPropagates(t *testing.T) {
	errBoom := errors.New("boom")

	assert.PanicsWithError(t, "boom", func() {
		monad.Partial(func(int) int { panic(errBoom) }, 1)
	})
}

func TestMapReaderPartialUnary(t *testing.T) {
	m := monad.MapReaderPartial(monad.Ask[int](), func(x int) int { return x + 1 })

	assert.Equal(t, 6, m.Run(5))
}

func TestMapReaderPartialCurried(t *testing.T) {
	mul := func(a, b int) int { return a * b }
	m := monad.MapReaderPartial(monad.ReturnReader[string](2), mul)

	f, ok := m.Run("env").(func(int) int)
	require.True(t, ok)
	assert.Equal(t, 10, f(5))

	applied := monad.ApplyReaderPartial(m, monad.ReturnReader[string](5))
	assert.Equal(t, 10, applied.Run("env"))
}

func TestApplyReaderPartialChained(t *testing.T) {
	volume := func(w, h, d int) int { return w * h * d }
	m := monad.ApplyReaderPartial(
		monad.ApplyReaderPartial(
			monad.MapReaderPartial(monad.Ask[int](), volume),
			monad.ReturnReader[int](3),
		),
		monad.NewReader(func(e int) int { return e + 1 }),
	)

	assert.Equal(t, 2*3*3, m.Run(2))
}

func TestMapReaderPartialTypeMismatch(t *testing.T) {
	m := monad.MapReaderPartial(monad.ReturnReader[int]("text"), func(x int) int { return x })

	assert.PanicsWithValue(t, "monad: argument 1: string is not assignable to int", func() { m.Run(0) })
}

func TestCurry(t *testing.T) {
	sub := func(a, b int) int { return a - b }

	assert.Equal(t, 7, monad.Curry2(sub)(10)(3))
	assert.Equal(t, 7, monad.Uncurry2(monad.Curry2(sub))(10, 3))
	assert.Equal(t, "abc", monad.Curry3(func(a, b, c string) string { return a + b + c })("a")("b")("c"))
}

func TestCompose(t *testing.T) {
	f := monad.Compose(func(x int) int { return x + 1 }, func(x int) string { return fmt.Sprint(x * 2) })

	assert.Equal(t, "6", f(2))
	assert.Equal(t, 3, monad.Identity(3))
	assert.Equal(t, "k", monad.Const[int]("k")(99))
}
