// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package monad_test

import (
	"code.hybscloud.com/monad"
	"testing"
)

func TestRunAllocations(t *testing.T) {
	reader := monad.MapReader(monad.Ask[int](), func(x int) int { return x + 1 })
	allocs := testing.AllocsPerRun(100, func() {
		_ = reader.Run(41)
	})
	if allocs > 0 {
		t.Errorf("Reader.Run(MapReader) allocs = %v; want 0", allocs)
	}

	state := monad.BindState(monad.GetState[int](), func(s int) monad.State[int, monad.Unit] {
		return monad.PutState(s + 1)
	})
	allocs2 := testing.AllocsPerRun(100, func() {
		_, _ = state.Run(41)
	})
	// PutState allocates its closure inside the bound function.
	if allocs2 > 1 {
		t.Errorf("State.Run(BindState) allocs = %v; want <= 1", allocs2)
	}
}
