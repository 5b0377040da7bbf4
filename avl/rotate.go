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

// rotateRight lifts the left child of t into the root position:
//
//	     t              x
//	    / \            / \
//	   x   c   =>     a   t
//	  / \                / \
//	 a   b              b   c
//
// A node without a left child is returned as it is.
func rotateRight[K any](t *Node[K]) *Node[K] {
	if t == nil || t.left == nil {
		return t
	}
	x := t.left
	return newNode(x.left, x.key, newNode(x.right, t.key, t.right))
}

// rotateLeft is the mirror of rotateRight, pivoting on the right child.
func rotateLeft[K any](t *Node[K]) *Node[K] {
	if t == nil || t.right == nil {
		return t
	}
	y := t.right
	return newNode(newNode(t.left, t.key, y.left), y.key, y.right)
}

// rebalance restores the AVL condition at t. Both children of t must
// already be balanced and their heights may differ by at most two, which
// is all a single insertion below t can cause.
func rebalance[K any](t *Node[K]) *Node[K] {
	if t == nil {
		return nil
	}

	switch bf := t.Balance(); {
	case bf > 1:
		// left-right: straighten the zig-zag first
		if t.left.right.Height() > t.left.left.Height() {
			t = newNode(rotateLeft(t.left), t.key, t.right)
		}
		return rotateRight(t)
	case bf < -1:
		// right-left
		if t.right.left.Height() > t.right.right.Height() {
			t = newNode(t.left, t.key, rotateRight(t.right))
		}
		return rotateLeft(t)
	}
	return t
}
