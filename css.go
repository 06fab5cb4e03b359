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
)

// cssURLRegex matches CSS url(...) functional notation, with or without
// quotes, as used by background-image, @import, and similar properties.
var cssURLRegex = regexp.MustCompile(`(?i)url\(\s*['"]?([^'")]+)['"]?\s*\)`)

var cssImportRegex = regexp.MustCompile(`(?i)@import\s+["']([^"']+)["']`)

// extractURIsFromCSS parses inline <style> bodies and style="" attribute
// values for url(...) and @import references, resolving each against
// base and emitting an EMBED link.
func extractURIsFromCSS(doc *Document, base, css string) {
	for _, m := range cssURLRegex.FindAllStringSubmatch(css, -1) {
		emitCSSTarget(doc, base, m[1])
	}
	for _, m := range cssImportRegex.FindAllStringSubmatch(css, -1) {
		emitCSSTarget(doc, base, m[1])
	}
}

func emitCSSTarget(doc *Document, base, ref string) {
	ref = strings.TrimSpace(ref)
	if ref == "" || strings.HasPrefix(ref, "data:") {
		return
	}
	if abs, err := resolveURI(base, ref); err == nil {
		doc.AppendOutlink(DiscoveredLink{Target: abs, Hop: HopEmbed, Context: "style/@url", Source: doc.RequestURI})
	}
}
