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

// Insert adds key to the tree and reports whether it was new. A key
// equal to one already stored leaves the tree unchanged.
func (tree *Tree[K]) Insert(key K) bool {
	if tree.compare == nil {
		panic("avl: Insert on a Tree without comparator, use New or NewFunc")
	}
	root, added := insert(tree.root, key, tree.compare)
	tree.root = root
	return added
}

// insert returns the tree n with key added, rebuilding every node on the
// path and rebalancing each on the way back up. When key is already
// present n itself is returned with added == false.
func insert[K any](n *Node[K], key K, compare func(a, b K) int) (*Node[K], bool) {
	if n == nil {
		return newNode(nil, key, nil), true
	}

	switch c := compare(key, n.key); {
	case c < 0:
		left, added := insert(n.left, key, compare)
		if !added {
			return n, false
		}
		return rebalance(newNode(left, n.key, n.right)), true
	case c > 0:
		right, added := insert(n.right, key, compare)
		if !added {
			return n, false
		}
		return rebalance(newNode(n.left, n.key, right)), true
	default:
		return n, false
	}
}
