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
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"

	"github.com/cybrota/keytree/avl"
)

// KeyIndex is an ordered set of string keys. The AVL tree holds the keys;
// a bloom filter in front of it answers most lookups of absent keys
// without descending the tree.
type KeyIndex struct {
	tree       *avl.Tree[string]
	filter     *bloom.BloomFilter
	duplicates int
	rejected   int // lookups settled by the bloom filter alone
	generation uint64
}

type IndexStats struct {
	Size        int
	Height      int
	HeightBound float64 // 1.44 log2(n+2), the AVL worst case
	Duplicates  int
	Rejected    int
	Min, Max    string
}

func NewKeyIndex(config IndexConfig) *KeyIndex {
	return &KeyIndex{
		tree:   avl.New[string](),
		filter: bloom.NewWithEstimates(config.ExpectedKeys, config.FalsePositiveRate),
	}
}

// Add inserts key and reports whether it was new.
func (ki *KeyIndex) Add(key string) bool {
	if !ki.tree.Insert(key) {
		ki.duplicates++
		return false
	}
	ki.filter.AddString(key)
	ki.generation++
	return true
}

func (ki *KeyIndex) Contains(key string) bool {
	if !ki.filter.TestString(key) {
		ki.rejected++
		return false
	}
	return ki.tree.Contains(key)
}

func (ki *KeyIndex) Find(key string) (string, bool) {
	if !ki.filter.TestString(key) {
		ki.rejected++
		return "", false
	}
	return ki.tree.Find(key)
}

func (ki *KeyIndex) Min() (string, bool) { return ki.tree.Minimum() }
func (ki *KeyIndex) Max() (string, bool) { return ki.tree.Maximum() }
func (ki *KeyIndex) Len() int            { return ki.tree.Size() }

// Keys returns every key in ascending order.
func (ki *KeyIndex) Keys() []string {
	return ki.tree.InOrder()
}

// Prefix returns the keys starting with prefix in ascending order, or in
// descending order when reverse is set.
func (ki *KeyIndex) Prefix(prefix string, reverse bool) []string {
	var matches []string
	if !reverse {
		for key := range ki.tree.All() {
			if key < prefix {
				continue
			}
			if !strings.HasPrefix(key, prefix) {
				break
			}
			matches = append(matches, key)
		}
		return matches
	}

	for key := range ki.tree.Backward() {
		if strings.HasPrefix(key, prefix) {
			matches = append(matches, key)
		} else if key < prefix {
			break
		}
	}
	return matches
}

// Tree exposes the underlying tree for printing.
func (ki *KeyIndex) Tree() *avl.Tree[string] {
	return ki.tree
}

// Generation changes every time a new key is stored.
func (ki *KeyIndex) Generation() uint64 {
	return ki.generation
}

func (ki *KeyIndex) Stats() IndexStats {
	stats := IndexStats{
		Size:        ki.tree.Size(),
		Height:      ki.tree.Height(),
		HeightBound: 1.44 * math.Log2(float64(ki.tree.Size()+2)),
		Duplicates:  ki.duplicates,
		Rejected:    ki.rejected,
	}
	stats.Min, _ = ki.tree.Minimum()
	stats.Max, _ = ki.tree.Maximum()
	return stats
}

// Populate adds every entry, drawing a progress bar on stderr when
// showProgress is set. It returns the number of new keys.
func (ki *KeyIndex) Populate(entries []KeyEntry, showProgress bool) int {
	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("🌳 Building tree..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
	}

	added := 0
	for _, entry := range entries {
		if ki.Add(entry.Key) {
			added++
		}
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	slog.Debug("populated key index", "entries", len(entries), "added", added, "height", ki.tree.Height())
	return added
}
