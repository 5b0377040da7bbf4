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

import "cmp"

// Tree holds the root of an AVL tree and the comparator that orders its
// keys. Create one with New, NewFunc or Of; the zero value has no
// comparator and panics on Insert.
type Tree[K any] struct {
	root    *Node[K]
	compare func(a, b K) int
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{compare: cmp.Compare[K]}
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when they are equal and a positive
// number when a > b, and must describe a total order.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	if compare == nil {
		panic("avl: nil comparator")
	}
	return &Tree[K]{compare: compare}
}

// Of returns a tree holding keys, inserted in the order given.
func Of[K cmp.Ordered](keys ...K) *Tree[K] {
	tree := New[K]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

// Root returns the root node, nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// IsEmpty reports whether the tree holds no keys.
func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

// Size returns the number of keys in the tree.
func (tree *Tree[K]) Size() int {
	return tree.root.Size()
}

// Height returns the number of nodes on the longest root-to-leaf path:
// 0 for an empty tree, 1 for a single key.
func (tree *Tree[K]) Height() int {
	return tree.root.Height()
}
