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

import "regexp"

// quotedStringRegex pulls single- or double-quoted string literals out
// of inline script bodies and event-handler attribute values. The
// reference extractor's JS/CSS sub-extractors are separate, replaceable
// components; this is the core's built-in default.
var quotedStringRegex = regexp.MustCompile(`"([^"\\]|\\.)*"|'([^'\\]|\\.)*'`)

// extractSpeculativeURIsFromScript scans js for quoted string literals
// that look like URIs and emits them as SPECULATIVE links relative to
// the document's current base.
func extractSpeculativeURIsFromScript(doc *Document, js string) {
	for _, m := range quotedStringRegex.FindAllString(js, -1) {
		s := m[1 : len(m)-1]
		considerIfLikelyURI(doc, doc.BaseURI(), s, "script", HopSpeculative)
	}
}
