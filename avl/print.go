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
	"fmt"
	"io"
	"strings"
)

// which side of its parent a printed node hangs from
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Print writes an ASCII diagram of the tree to w, one key per line, the
// right subtree above its parent and the left subtree below. Every line
// shows the key, the node height and its balance factor. It returns the
// depth of the tree printed.
func (tree *Tree[K]) Print(w io.Writer) int {
	return printTree(w, tree.root, "", branchRoot)
}

// Sprint returns the diagram Print would write.
func (tree *Tree[K]) Sprint() string {
	var sb strings.Builder
	tree.Print(&sb)
	return sb.String()
}

func printTree[K any](w io.Writer, n *Node[K], prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		indent := "       "
		if br == branchLeft {
			indent = "|      "
		}
		rd = printTree(w, n.right, prefix+indent, branchRight)
	}

	switch br {
	case branchRoot:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case branchLeft:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case branchRight:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	fmt.Fprintf(w, "%v h=%d %+d\n", n.key, n.height, n.Balance())

	ld := 0
	if n.left != nil {
		indent := "       "
		if br == branchRight {
			indent = "|      "
		}
		ld = printTree(w, n.left, prefix+indent, branchLeft)
	}

	return 1 + max(rd, ld)
}
