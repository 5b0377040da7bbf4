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
	"testing"
	"time"
)

func TestCacheRenderAndGetRender(t *testing.T) {
	c := NewRenderCache(time.Minute)
	diagram := "|------+ 1 h=1 +0\n"

	// Initially, GetRender should miss.
	if got, ok := GetRender(c, 3); ok {
		t.Errorf("GetRender(3) = %q; want a miss", got)
	}

	CacheRender(c, 3, diagram)

	if got, ok := GetRender(c, 3); !ok || got != diagram {
		t.Errorf("GetRender(3) = %q, %t; want %q, true", got, ok, diagram)
	}
	// other generations stay empty
	if _, ok := GetRender(c, 4); ok {
		t.Error("GetRender(4) hit; want a miss")
	}
}

func TestRenderCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewRenderCache(100 * time.Millisecond)
	CacheRender(c, 1, "soon gone")

	if got, ok := GetRender(c, 1); !ok || got != "soon gone" {
		t.Errorf("GetRender(1) = %q, %t; want cached diagram", got, ok)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got, ok := GetRender(c, 1); ok {
		t.Errorf("GetRender(1) after expiration = %q; want a miss", got)
	}
}

func TestGetOrRenderFollowsGeneration(t *testing.T) {
	c := NewRenderCache(time.Minute)
	index := newTestIndex("b", "a")

	first := GetOrRender(c, index)
	if first != index.Tree().Sprint() {
		t.Fatalf("GetOrRender = %q; want %q", first, index.Tree().Sprint())
	}
	if _, ok := GetRender(c, index.Generation()); !ok {
		t.Error("diagram was not cached under the current generation")
	}

	// a stale entry under the current generation wins until the tree changes
	CacheRender(c, index.Generation(), "stale")
	if got := GetOrRender(c, index); got != "stale" {
		t.Errorf("GetOrRender = %q; want the cached entry", got)
	}

	index.Add("c")
	if got := GetOrRender(c, index); got != index.Tree().Sprint() {
		t.Errorf("GetOrRender after Add = %q; want a fresh render", got)
	}
}
