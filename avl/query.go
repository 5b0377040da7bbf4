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

// Find returns the stored key that compares equal to target.
func (tree *Tree[K]) Find(target K) (K, bool) {
	if n := search(tree.root, target, tree.compare); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Contains reports whether a key equal to target is stored.
func (tree *Tree[K]) Contains(target K) bool {
	return search(tree.root, target, tree.compare) != nil
}

// Minimum returns the smallest key, false when the tree is empty.
func (tree *Tree[K]) Minimum() (K, bool) {
	n := first(tree.root)
	return n.Key(), n != nil
}

// Maximum returns the largest key, false when the tree is empty.
func (tree *Tree[K]) Maximum() (K, bool) {
	n := last(tree.root)
	return n.Key(), n != nil
}

func search[K any](n *Node[K], target K, compare func(a, b K) int) *Node[K] {
	for n != nil {
		switch c := compare(target, n.key); {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return nil
}

// lowest node in a sub-tree
func first[K any](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func last[K any](n *Node[K]) *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
