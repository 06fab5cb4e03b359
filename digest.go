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

	"github.com/cespare/xxhash/v2"
)

var (
	digestCommentPattern   = regexp.MustCompile(`(?s)<!--.*?-->`)
	digestScriptPattern    = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	digestStylePattern     = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	digestWhitespacePattern = regexp.MustCompile(`\s+`)
)

// ContentDigest computes a fast fingerprint of a document's normalized
// body: comments, scripts, and style blocks stripped, whitespace
// collapsed, then hashed with xxhash. It is a diagnostic the crawler
// can use to decide whether two fetches produced materially the same
// page; actual deduplication policy belongs upstream of the extractor.
func ContentDigest(doc *Document) uint64 {
	content := doc.Content()
	content = digestCommentPattern.ReplaceAllString(content, "")
	content = digestScriptPattern.ReplaceAllString(content, "")
	content = digestStylePattern.ReplaceAllString(content, "")
	content = digestWhitespacePattern.ReplaceAllString(strings.TrimSpace(content), " ")
	return xxhash.Sum64String(content)
}
