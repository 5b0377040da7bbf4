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

package avl

import (
	"cmp"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaf(k int) *Node[int] {
	return newNode(nil, k, nil)
}

func keysOf(n *Node[int]) []int {
	return appendInOrder(nil, n)
}

func TestRotateWithoutPivotIsNoop(t *testing.T) {
	n := newNode(nil, 2, leaf(3))
	assert.Same(t, n, rotateRight(n))

	m := newNode(leaf(1), 2, nil)
	assert.Same(t, m, rotateLeft(m))

	assert.Nil(t, rotateLeft[int](nil))
	assert.Nil(t, rotateRight[int](nil))
}

func TestRotateRight(t *testing.T) {
	// 4(2(1,3),5)
	in := newNode(newNode(leaf(1), 2, leaf(3)), 4, leaf(5))
	out := rotateRight(in)

	assert.Equal(t, 2, out.key)
	assert.Equal(t, 1, out.left.key)
	assert.Equal(t, 4, out.right.key)
	assert.Equal(t, 3, out.right.left.key)
	assert.Equal(t, 5, out.right.right.key)
	assert.Equal(t, keysOf(in), keysOf(out))

	want := 1 + max(in.left.left.Height(), 1+max(in.left.right.Height(), in.right.Height()))
	assert.Equal(t, want, out.Height())
	assert.Equal(t, in.Size(), out.Size())

	_, _, err := check(out, cmp.Compare[int], nil, nil)
	assert.NoError(t, err)

	// the input is not modified
	assert.Equal(t, 4, in.key)
	assert.Equal(t, 2, in.left.key)
}

func TestRotateLeft(t *testing.T) {
	// 2(1,4(3,5))
	in := newNode(leaf(1), 2, newNode(leaf(3), 4, leaf(5)))
	out := rotateLeft(in)

	assert.Equal(t, 4, out.key)
	assert.Equal(t, 2, out.left.key)
	assert.Equal(t, 1, out.left.left.key)
	assert.Equal(t, 3, out.left.right.key)
	assert.Equal(t, 5, out.right.key)
	assert.Equal(t, keysOf(in), keysOf(out))

	want := 1 + max(in.right.right.Height(), 1+max(in.right.left.Height(), in.left.Height()))
	assert.Equal(t, want, out.Height())
}

func TestRebalanceCases(t *testing.T) {
	tests := []struct {
		name  string
		in    *Node[int]
		root  int
		left  int
		right int
	}{
		{"left-left", newNode(newNode(leaf(1), 2, nil), 3, nil), 2, 1, 3},
		{"left-right", newNode(newNode(nil, 1, leaf(2)), 3, nil), 2, 1, 3},
		{"right-right", newNode(nil, 1, newNode(nil, 2, leaf(3))), 2, 1, 3},
		{"right-left", newNode(nil, 1, newNode(leaf(2), 3, nil)), 2, 1, 3},
		{
			// left child balanced: single rotation is enough
			"left-left with even child",
			newNode(newNode(newNode(leaf(1), 2, leaf(3)), 4, newNode(leaf(5), 6, leaf(7))), 8, leaf(9)),
			4, 2, 8,
		},
		{
			"right-left deep",
			newNode(leaf(1), 2, newNode(newNode(leaf(5), 6, leaf(7)), 8, leaf(9))),
			6, 2, 8,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			before := keysOf(tc.in)
			out := rebalance(tc.in)

			assert.Equal(t, tc.root, out.key)
			assert.Equal(t, tc.left, out.left.key)
			assert.Equal(t, tc.right, out.right.key)
			assert.Equal(t, before, keysOf(out))

			_, _, err := check(out, cmp.Compare[int], nil, nil)
			require.NoError(t, err)
			assert.LessOrEqual(t, out.Height(), tc.in.Height())
			assert.GreaterOrEqual(t, out.Height(), tc.in.Height()-1)
		})
	}
}

func TestRebalanceWithinToleranceIsNoop(t *testing.T) {
	for _, n := range []*Node[int]{
		leaf(1),
		newNode(leaf(1), 2, nil),
		newNode(nil, 2, leaf(3)),
		newNode(leaf(1), 2, leaf(3)),
	} {
		assert.Same(t, n, rebalance(n))
	}
	assert.Nil(t, rebalance[int](nil))
}

func TestCheckDetectsCorruption(t *testing.T) {
	compare := cmp.Compare[int]

	unordered := newNode(leaf(5), 3, leaf(4))
	_, _, err := check(unordered, compare, nil, nil)
	assert.ErrorIs(t, err, ErrOrder)

	// 1 sits under 3's right subtree but is below the root
	deepUnordered := newNode(leaf(2), 3, newNode(leaf(1), 5, nil))
	_, _, err = check(deepUnordered, compare, nil, nil)
	assert.ErrorIs(t, err, ErrOrder)

	chain := &Node[int]{key: 1, height: 3, size: 3,
		right: &Node[int]{key: 2, height: 2, size: 2, right: leaf(3)}}
	_, _, err = check(chain, compare, nil, nil)
	assert.ErrorIs(t, err, ErrBalance)

	stale := newNode(leaf(1), 2, leaf(3))
	stale.size = 7
	_, _, err = check(stale, compare, nil, nil)
	assert.ErrorIs(t, err, ErrCache)
}

func TestSizeOverflowPanics(t *testing.T) {
	assert.Panics(t, func() {
		sizeOf(math.MaxInt, 0)
	})
	assert.Equal(t, 3, sizeOf(1, 1))
}
