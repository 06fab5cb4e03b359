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
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

const charsetSniffPrefixLen = 1000

var (
	metaHTTPEquivRegex = regexp.MustCompile(`(?is)<meta[^>]+http-equiv\s*=\s*["']?content-type["']?[^>]*>`)
	metaCharsetAttr    = regexp.MustCompile(`(?is)charset\s*=\s*["']?([a-zA-Z0-9_\-]+)`)
	metaCharsetRegex   = regexp.MustCompile(`(?is)<meta[^>]+charset\s*=\s*["']?([a-zA-Z0-9_\-]+)`)
	xmlEncodingRegex   = regexp.MustCompile(`(?is)<\?xml[^>]+encoding\s*=\s*["']([a-zA-Z0-9_\-]+)["']`)
)

// sniffCharset implements the tiered declaration search of 4.B: HTML
// meta http-equiv content-type, then meta charset, then an XML
// processing-instruction encoding, then (only if none of those fired) a
// byte-statistical guess over the raw prefix.
func sniffCharset(doc *Document) (name string, declared bool) {
	return sniffCharsetText(doc.ContentPrefix(charsetSniffPrefixLen), doc.Annotate)
}

// sniffCharsetText runs the tiered declaration search against an
// already-materialized text prefix, independent of any Document. annotate,
// if non-nil, is called with the chardet-fallback annotation tag; passing
// nil suppresses that side effect, used by the reflexive re-check below
// where the fallback firing again is not itself noteworthy.
func sniffCharsetText(prefix string, annotate func(string)) (name string, declared bool) {
	if m := metaHTTPEquivRegex.FindString(prefix); m != "" {
		if am := metaCharsetAttr.FindStringSubmatch(m); am != nil {
			return normalizeCharsetName(am[1]), true
		}
	}
	if m := metaCharsetRegex.FindStringSubmatch(prefix); m != nil {
		return normalizeCharsetName(m[1]), true
	}
	if m := xmlEncodingRegex.FindStringSubmatch(prefix); m != nil {
		return normalizeCharsetName(m[1]), true
	}

	det := chardet.NewTextDetector()
	if res, err := det.DetectBest([]byte(prefix)); err == nil && res != nil && res.Charset != "" {
		if annotate != nil {
			annotate("detectedCharsetInHTML:" + res.Charset)
		}
		return normalizeCharsetName(res.Charset), false
	}
	return "", false
}

// decodeRawPrefixAs re-decodes doc's raw byte sequence as though name
// were its true charset, returning up to n bytes of decoded text.
// An error means name is not a charset golang.org/x/net/html/charset can
// build a decoder for.
func decodeRawPrefixAs(raw []byte, name string, n int) (string, error) {
	r, err := charset.NewReaderLabel(name, bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	buf := make([]byte, n)
	k, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	return string(buf[:k]), nil
}

func normalizeCharsetName(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// isKnownCharset reports whether name is a charset golang.org/x/net/html/charset
// (and therefore Go's encoding registry) can decode.
func isKnownCharset(name string) bool {
	_, _, ok := charset.Lookup(name)
	return ok
}

// ApplyCharsetSniff runs the declaration search, the reflexive re-check
// described in 4.B, and records annotations on doc. It returns the
// adopted charset name (possibly unchanged from the caller's original
// guess).
func ApplyCharsetSniff(doc *Document, originalCharset string) string {
	name, declared := sniffCharset(doc)
	if name == "" {
		return originalCharset
	}
	if declared && !isKnownCharset(name) {
		doc.Annotate("unsatisfiableCharsetInHTML:" + name)
		return "none"
	}
	if name == originalCharset {
		return originalCharset
	}

	// Reflexive re-check: actually re-decode the document's raw bytes as
	// though name were its true charset, then re-sniff that freshly
	// decoded prefix. A declaration that doesn't describe its own bytes
	// (e.g. a mislabeled multi-byte encoding) garbles the re-decoded
	// prefix enough that the second sniff disagrees with the first.
	decodedPrefix, err := decodeRawPrefixAs(doc.RawBytes(), name, charsetSniffPrefixLen)
	if err != nil {
		doc.Annotate("inconsistentCharsetInHTML:" + name)
		return originalCharset
	}
	second, _ := sniffCharsetText(decodedPrefix, nil)
	if second == name {
		doc.Annotate("usingCharsetInHTML:" + name)
		return name
	}
	doc.Annotate("inconsistentCharsetInHTML:" + name)
	return originalCharset
}
