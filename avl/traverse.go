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

import "iter"

// InOrder returns the keys in ascending order.
func (tree *Tree[K]) InOrder() []K {
	return appendInOrder(make([]K, 0, tree.Size()), tree.root)
}

// PreOrder returns the keys root first, then the left and right subtrees.
func (tree *Tree[K]) PreOrder() []K {
	return appendPreOrder(make([]K, 0, tree.Size()), tree.root)
}

// All yields the keys in ascending order. The tree must not be modified
// while the iteration is in progress.
func (tree *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		ascend(tree.root, yield)
	}
}

// Backward yields the keys in descending order.
func (tree *Tree[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		descend(tree.root, yield)
	}
}

func appendInOrder[K any](out []K, n *Node[K]) []K {
	if n == nil {
		return out
	}
	out = appendInOrder(out, n.left)
	out = append(out, n.key)
	return appendInOrder(out, n.right)
}

func appendPreOrder[K any](out []K, n *Node[K]) []K {
	if n == nil {
		return out
	}
	out = append(out, n.key)
	out = appendPreOrder(out, n.left)
	return appendPreOrder(out, n.right)
}

// ascend returns false once yield asks to stop
func ascend[K any](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return ascend(n.left, yield) && yield(n.key) && ascend(n.right, yield)
}

func descend[K any](n *Node[K], yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return descend(n.right, yield) && yield(n.key) && descend(n.left, yield)
}
