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

import "math"

// Node is a single node of a Tree. A nil *Node is the empty tree and
// all accessors accept it.
type Node[K any] struct {
	left   *Node[K]
	right  *Node[K]
	key    K
	height int // 1 for a leaf
	size   int // nodes in this subtree, including this one
}

// newNode builds Node(left, key, right) with its height and size
// derived from the children.
func newNode[K any](left *Node[K], key K, right *Node[K]) *Node[K] {
	return &Node[K]{
		left:   left,
		right:  right,
		key:    key,
		height: max(left.Height(), right.Height()) + 1,
		size:   sizeOf(left.Size(), right.Size()),
	}
}

// sizeOf returns 1 + l + r. A wrapping counter means the tree is corrupt.
func sizeOf(l, r int) int {
	if l > math.MaxInt-1-r {
		panic("avl: subtree size overflows int")
	}
	return l + r + 1
}

// Key returns the key stored in the node, or the zero value for nil.
func (n *Node[K]) Key() K {
	if n == nil {
		var zero K
		return zero
	}
	return n.key
}

// Left returns the left subtree.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right subtree.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the number of nodes on the longest path down from n.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Size returns the number of keys in the subtree rooted at n.
func (n *Node[K]) Size() int {
	if n == nil {
		return 0
	}
	return n.size
}

// Balance returns height(left) - height(right).
func (n *Node[K]) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}
