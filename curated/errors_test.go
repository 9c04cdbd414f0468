// This file is part of pnokernels.
//
// pnokernels is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// pnokernels is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with pnokernels.  If not, see <https://www.gnu.org/licenses/>.

package curated_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/pnokernels/curated"
	"github.com/jetsetilly/pnokernels/test"
)

const testError = "test error: %s"
const wrapError = "wrapped: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectFailure(t, curated.Is(e, wrapError))
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectFailure(t, curated.IsAny(fmt.Errorf("plain")))
	test.ExpectFailure(t, curated.Is(nil, testError))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(wrapError, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))

	// wrapping with the standard library is also followed
	g := fmt.Errorf("kernel: %w", f)
	test.ExpectSuccess(t, curated.Has(g, testError))
	test.ExpectFailure(t, curated.Has(g, "unknown"))
}

func TestDuplicatePrefix(t *testing.T) {
	e := curated.Errorf("blit: %v", curated.Errorf("blit: bad pitch"))
	test.ExpectEquality(t, e.Error(), "blit: bad pitch")
}
