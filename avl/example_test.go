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

package avl_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/cybrota/keytree/avl"
)

func ExampleTree() {
	tree := avl.New[string]()
	for _, cmd := range []string{"git status", "ls -la", "git status", "make test"} {
		tree.Insert(cmd)
	}

	fmt.Println(tree.Size(), tree.Height())
	fmt.Println(tree.Contains("ls -la"), tree.Contains("rm -rf /"))
	lo, _ := tree.Minimum()
	hi, _ := tree.Maximum()
	fmt.Println(lo, "..", hi)
	// Output:
	// 3 2
	// true false
	// git status .. make test
}

func ExampleNewFunc() {
	// case-insensitive keys, the first spelling wins
	tree := avl.NewFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	tree.Insert("Makefile")
	tree.Insert("makefile")
	tree.Insert("README")

	stored, ok := tree.Find("MAKEFILE")
	fmt.Println(stored, ok, tree.Size())
	// Output: Makefile true 2
}

func ExampleTree_Print() {
	tree := avl.Of(3, 1, 2)
	tree.Print(os.Stdout)
	// Output:
	//        /------+ 3 h=1 +0
	// |------+ 2 h=2 +0
	//        \------+ 1 h=1 +0
}

func ExampleTree_All() {
	tree := avl.Of(40, 10, 30, 20, 50)
	for key := range tree.All() {
		fmt.Print(key, " ")
	}
	fmt.Println()
	// Output: 10 20 30 40 50
}
