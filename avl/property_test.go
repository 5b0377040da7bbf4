// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package avl_test

import (
	"math"
	"math/rand/v2"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/keytree/avl"
)

// measure recomputes the height of n from its children alone and fails
// the test at the first node out of balance or out of order.
func measure(t *testing.T, n *avl.Node[int], lo, hi int) int {
	t.Helper()
	if n == nil {
		return 0
	}
	require.Greater(t, n.Key(), lo, "order below %d", n.Key())
	require.Less(t, n.Key(), hi, "order above %d", n.Key())

	lh := measure(t, n.Left(), lo, n.Key())
	rh := measure(t, n.Right(), n.Key(), hi)
	require.LessOrEqual(t, lh-rh, 1, "left heavy at %d", n.Key())
	require.GreaterOrEqual(t, lh-rh, -1, "right heavy at %d", n.Key())
	return 1 + max(lh, rh)
}

func TestRandomInsertsKeepInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 2025} {
		rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		tree := avl.New[int]()
		model := make(map[int]struct{})

		for i := 0; i < 2000; i++ {
			key := rng.IntN(1500)
			before := tree.Height()
			_, present := model[key]

			added := tree.Insert(key)
			model[key] = struct{}{}

			require.Equal(t, !present, added, "seed %d: Insert(%d)", seed, key)
			require.True(t, tree.Contains(key), "seed %d: Contains(%d) after insert", seed, key)

			after := tree.Height()
			require.GreaterOrEqual(t, after, before, "seed %d: height shrank", seed)
			require.LessOrEqual(t, after, before+1, "seed %d: height grew by more than one", seed)

			if i%97 == 0 {
				require.NoError(t, tree.Check(), "seed %d after %d inserts", seed, i+1)
				require.Equal(t, tree.Height(), measure(t, tree.Root(), math.MinInt, math.MaxInt))
			}
		}

		require.NoError(t, tree.Check())
		require.Equal(t, len(model), tree.Size())

		keys := make([]int, 0, len(model))
		for k := range model {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		assert.Equal(t, keys, tree.InOrder(), "seed %d", seed)

		// AVL height bound: h < 1.4405 log2(n + 2)
		bound := 1.4405 * math.Log2(float64(tree.Size()+2))
		assert.Less(t, float64(tree.Height()), bound, "seed %d", seed)
	}
}

func TestInsertFrameProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	tree := avl.New[int]()
	for i := 0; i < 300; i++ {
		tree.Insert(rng.IntN(1000))
	}

	for i := 0; i < 200; i++ {
		v := rng.IntN(1000)
		membership := make(map[int]bool, 1000)
		for x := 0; x < 1000; x++ {
			membership[x] = tree.Contains(x)
		}

		tree.Insert(v)

		require.True(t, tree.Contains(v))
		for x := 0; x < 1000; x++ {
			if x == v {
				continue
			}
			require.Equal(t, membership[x], tree.Contains(x), "inserting %d changed membership of %d", v, x)
		}
	}
}

func TestDuplicateInsertKeepsInOrder(t *testing.T) {
	rng := rand.New(rand.NewPCG(99, 100))
	tree := avl.New[int]()
	for i := 0; i < 500; i++ {
		tree.Insert(rng.IntN(5000))
	}

	for i := 0; i < 100; i++ {
		v := rng.IntN(5000)
		tree.Insert(v)
		once := slices.Clone(tree.InOrder())
		tree.Insert(v)
		require.Equal(t, once, tree.InOrder(), "second insert of %d", v)
	}
}

func TestSortedInputStaysLogarithmic(t *testing.T) {
	tests := []struct {
		name string
		keys func(n int) []int
	}{
		{"ascending", func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = i
			}
			return out
		}},
		{"descending", func(n int) []int {
			out := make([]int, n)
			for i := range out {
				out[i] = n - i
			}
			return out
		}},
		{"zig-zag", func(n int) []int {
			out := make([]int, 0, n)
			for lo, hi := 0, n-1; lo <= hi; lo, hi = lo+1, hi-1 {
				out = append(out, lo)
				if lo != hi {
					out = append(out, hi)
				}
			}
			return out
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := avl.New[int]()
			for _, k := range tc.keys(4095) {
				tree.Insert(k)
			}
			require.NoError(t, tree.Check())
			assert.Equal(t, 4095, tree.Size())
			// a perfectly balanced tree of 4095 keys has height 12
			assert.LessOrEqual(t, tree.Height(), 17)
			assert.GreaterOrEqual(t, tree.Height(), 12)
		})
	}
}
