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

	hqurl "go.source.hueristiq.com/url"
)

// looksLikeURIRegex recognizes scheme-prefixed, protocol-relative, and
// path-like strings that are plausibly URIs. It is deliberately liberal:
// false positives are cheap downstream (the target simply fails to
// resolve or 404s), false negatives silently drop a real link.
var looksLikeURIRegex = hqurl.New().CompileRegex()

// bareNumericRegex rejects pure numeric/identifier runs that the
// extractor regex otherwise matches as a "relative URL" (e.g. phone
// numbers, ordinal ids) which are never worth queuing.
var bareNumericRegex = regexp.MustCompile(`^[0-9\-\s()]+$`)

// looksLikeURI decides whether an arbitrary attribute/script value is
// worth treating as a speculative link.
func looksLikeURI(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if bareNumericRegex.MatchString(s) {
		return false
	}
	return looksLikeURIRegex.MatchString(s)
}

// considerIfLikelyURI resolves s against base and appends a
// DiscoveredLink with the given hop if it looks like a URI and resolves
// cleanly. Failures are silently dropped (speculative extraction is
// opportunistic by design).
func considerIfLikelyURI(doc *Document, base, s, context string, hop Hop) {
	if !looksLikeURI(s) {
		return
	}
	target, err := resolveURI(base, s)
	if err != nil {
		return
	}
	doc.AppendOutlink(DiscoveredLink{Target: target, Hop: hop, Context: context, Source: doc.RequestURI})
}
