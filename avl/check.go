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
	"errors"
	"fmt"
)

var (
	// ErrOrder reports a key on the wrong side of an ancestor.
	ErrOrder = errors.New("avl: keys out of order")
	// ErrBalance reports a node whose subtree heights differ by more than one.
	ErrBalance = errors.New("avl: node out of balance")
	// ErrCache reports a cached height or size that disagrees with the subtree.
	ErrCache = errors.New("avl: stale cached height or size")
)

// Check walks the whole tree and verifies key ordering, AVL balance and
// the cached height and size of every node. It returns nil for a valid
// tree, otherwise an error wrapping ErrOrder, ErrBalance or ErrCache.
func (tree *Tree[K]) Check() error {
	_, _, err := check(tree.root, tree.compare, nil, nil)
	return err
}

// check verifies the subtree at n, whose keys must lie strictly between
// lo and hi (nil meaning unbounded), and returns its measured height and
// size.
func check[K any](n *Node[K], compare func(a, b K) int, lo, hi *K) (int, int, error) {
	if n == nil {
		return 0, 0, nil
	}
	if lo != nil && compare(*lo, n.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not greater than ancestor %v", ErrOrder, n.key, *lo)
	}
	if hi != nil && compare(n.key, *hi) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not less than ancestor %v", ErrOrder, n.key, *hi)
	}

	lh, ls, err := check(n.left, compare, lo, &n.key)
	if err != nil {
		return 0, 0, err
	}
	rh, rs, err := check(n.right, compare, &n.key, hi)
	if err != nil {
		return 0, 0, err
	}

	if d := lh - rh; d > 1 || d < -1 {
		return 0, 0, fmt.Errorf("%w: at %v left height %d, right height %d", ErrBalance, n.key, lh, rh)
	}
	height := max(lh, rh) + 1
	size := ls + rs + 1
	if n.height != height || n.size != size {
		return 0, 0, fmt.Errorf("%w: at %v cached height %d size %d, measured %d and %d",
			ErrCache, n.key, n.height, n.size, height, size)
	}
	return height, size, nil
}
