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
	"context"
	"strings"

	"golang.org/x/net/html"
)

// TagKind classifies a scanned tag for dispatch by the tag handler.
type TagKind uint8

const (
	TagGeneric TagKind = iota
	TagScript
	TagStyle
	TagMeta
	TagComment
)

// TagMatch is one tuple produced by the tag scanner: a tag's kind, name,
// attributes (already parsed and ordered by the underlying tokenizer),
// and — for script/style — the raw inner body up to the matching close
// tag.
type TagMatch struct {
	Kind   TagKind
	Name   string
	Attrs  []html.Attribute
	Inner  string
	Offset int
}

// scanTags walks content with a streaming tokenizer and invokes visit
// for each relevant tag in document order, honoring max element-name
// length and cooperative cancellation via ctx. visit returns false to
// stop scanning early (a normal way to end, not an error).
//
// Self-closing bracketless tags with no attributes (<br>, <hr>) are
// never emitted, matching the reference scanner's relevant-tag pattern.
// Conditional comments ("<!--[if") and the empty comment form ("<!-->")
// are skipped.
func scanTags(ctx context.Context, content string, maxElementLen int, visit func(TagMatch) bool) {
	z := html.NewTokenizer(strings.NewReader(content))
	offset := 0

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		tt := z.Next()
		raw := z.Raw()
		tagOffset := offset
		offset += len(raw)

		switch tt {
		case html.ErrorToken:
			return

		case html.CommentToken:
			text := string(z.Text())
			if strings.HasPrefix(strings.TrimSpace(text), "[if") || string(raw) == "<!-->" {
				continue
			}
			if !visit(TagMatch{Kind: TagComment, Offset: tagOffset}) {
				return
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tagName := string(name)
			if maxElementLen > 0 && len(tagName) > maxElementLen {
				tagName = tagName[:maxElementLen]
			}

			var attrs []html.Attribute
			for hasAttr {
				var key, val []byte
				key, val, hasAttr = z.TagAttr()
				attrs = append(attrs, html.Attribute{Key: string(key), Val: string(val)})
			}

			switch tagName {
			case "script":
				inner, newOffset := consumeRawText(z, &offset, "script")
				if !visit(TagMatch{Kind: TagScript, Name: tagName, Attrs: attrs, Inner: inner, Offset: tagOffset}) {
					return
				}
				offset = newOffset
			case "style":
				inner, newOffset := consumeRawText(z, &offset, "style")
				if !visit(TagMatch{Kind: TagStyle, Name: tagName, Attrs: attrs, Inner: inner, Offset: tagOffset}) {
					return
				}
				offset = newOffset
			case "meta":
				if !visit(TagMatch{Kind: TagMeta, Name: tagName, Attrs: attrs, Offset: tagOffset}) {
					return
				}
			default:
				if len(attrs) == 0 {
					continue
				}
				if !visit(TagMatch{Kind: TagGeneric, Name: tagName, Attrs: attrs, Offset: tagOffset}) {
					return
				}
			}
		}
	}
}

// consumeRawText reads tokens until the matching end tag for element is
// seen (or EOF), returning the accumulated text content. The x/net/html
// tokenizer already treats script/style as raw-text elements, so the
// very next token (if any) is a single TextToken holding the whole
// body, followed by the EndTagToken; this still loops defensively in
// case of multiple text chunks.
func consumeRawText(z *html.Tokenizer, offset *int, element string) (string, int) {
	var body strings.Builder
	off := *offset
	for {
		tt := z.Next()
		raw := z.Raw()
		off += len(raw)
		switch tt {
		case html.TextToken:
			body.Write(z.Text())
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == element {
				return body.String(), off
			}
		case html.ErrorToken:
			return body.String(), off
		}
	}
}
