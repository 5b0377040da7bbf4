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
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Clean up expired diagrams every 5 minutes
const renderCacheCleanup = 5 * time.Minute

// NewRenderCache creates a cache for rendered tree diagrams. Entries live
// for ttl; the explorer re-renders only after the tree changes or the
// entry expires.
func NewRenderCache(ttl time.Duration) *cache.Cache {
	return cache.New(ttl, renderCacheCleanup)
}

func renderCacheKey(generation uint64) string {
	return "tree:" + strconv.FormatUint(generation, 10)
}

func CacheRender(c *cache.Cache, generation uint64, diagram string) {
	c.Set(renderCacheKey(generation), diagram, cache.DefaultExpiration)
}

func GetRender(c *cache.Cache, generation uint64) (string, bool) {
	val, ok := c.Get(renderCacheKey(generation))
	if !ok {
		return "", false
	}
	return val.(string), true
}

// GetOrRender returns the cached diagram for the index's current
// generation, rendering and caching it on a miss.
func GetOrRender(c *cache.Cache, index *KeyIndex) string {
	generation := index.Generation()
	if diagram, ok := GetRender(c, generation); ok {
		return diagram
	}
	diagram := index.Tree().Sprint()
	CacheRender(c, generation, diagram)
	return diagram
}
