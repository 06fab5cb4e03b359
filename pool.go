// Copyright 2025 Agentic World, LLC (Sherin Thomas)
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

package htmlscout

import (
	"regexp"
	"strings"
	"sync"
)

var (
	javascriptURIRegex = regexp.MustCompile(`(?i)^javascript:`)
	relNofollowRegex   = regexp.MustCompile(`(?i)\bnofollow\b`)
	srcsetEntryRegex   = regexp.MustCompile(`\s*,\s*`)
)

// scratchPool hands out reusable strings.Builder instances for the
// dequote/unescape work done per tag. Acquire/release is scoped strictly
// to a single tag's processing; nothing is retained across Extract
// calls.
var scratchPool = sync.Pool{
	New: func() any { return &strings.Builder{} },
}

func acquireBuilder() *strings.Builder {
	b := scratchPool.Get().(*strings.Builder)
	b.Reset()
	return b
}

func releaseBuilder(b *strings.Builder) {
	scratchPool.Put(b)
}
