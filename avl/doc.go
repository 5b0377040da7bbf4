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

// Package avl implements an AVL balanced binary search tree over any
// totally ordered key type.
//
// Every node caches its height and subtree size. Insertion descends by
// key, then rebuilds the nodes on the path back to the root, applying a
// single or double rotation wherever the two subtree heights differ by
// two. Subtrees off the insertion path are reused as they are.
//
// Inserting a key that compares equal to a stored key is a no-op: the
// stored key is kept. There is no deletion.
//
// A Tree is not safe for concurrent use. Access it from a single
// goroutine or guard it with a mutex.
package avl
