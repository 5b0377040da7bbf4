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

package main

import (
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **keytree %s**

Load keys from your shell history or from plain text files into an AVL balanced search tree,
then look them up, list them in order, or watch the tree rebalance as you insert.

Built with Go %s

# 1. Commands
* **keytree stats [files...]** size, height, smallest and largest key
* **keytree query key...** membership of each key, exit status 1 when any is missing
* **keytree list [--prefix p] [--reverse]** keys in order
* **keytree print [--force]** ASCII diagram of the tree
* **keytree explore** interactive explorer (the default)
* **keytree settings** show or create ~/.keytree.yaml

# 2. Key sources
* Files given as arguments, one key per line. Use '-' for stdin
* Without files: ~/.zsh_history or ~/.bash_history, detected from $SHELL

# 3. Explorer keys
* **enter** insert (or look up) the words typed, quote keys with spaces
* **f2** switch between insert and lookup mode
* **ctrl+y** copy the ordered keys to the clipboard
* **esc** quit

# Please be aware
* Duplicate keys are stored once
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel'

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
