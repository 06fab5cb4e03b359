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
	"errors"
	"fmt"
	htmlstd "html"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/gobwas/glob"
)

// ErrReadFailed is the one genuinely fatal Extract error: the content
// sequence could not be read at all.
var ErrReadFailed = errors.New("htmlscout: read failed")

var nonHTMLExtensionGlob = glob.MustCompile(
	"{gif,jpg,jpeg,png,tif,bmp,avi,mov,mpg,mpeg,mp3,mp4,swf,wav,au,aiff,mid}",
)

var linkRelEmbedKeywords = map[string]struct{}{
	"icon": {}, "stylesheet": {}, "modulepreload": {}, "prefetch": {}, "prerender": {},
}

var linkRelIgnoredKeywords = map[string]struct{}{
	"dns-prefetch": {}, "preconnect": {}, "": {},
}

// Extract is the extractor's entry point: given a Document already
// populated with its fetched content and a config, it runs the full
// tag-scan/attribute-scan/tag-handler pipeline described in the design,
// mutating doc in place. It returns false when extraction was skipped
// (HTML-expected gate) or aborted (meta-robots nofollow), and a non-nil
// error only for the genuinely fatal read-failure case.
func Extract(ctx context.Context, doc *Document, cfg *ExtractorConfig, policy RobotsPolicy) (bool, error) {
	if cfg == nil {
		cfg = NewDefaultExtractorConfig()
	}
	if policy == nil {
		policy = ObeyRobotsPolicy
	}
	if doc.Content() == "" && doc.RequestURI == "" {
		return false, fmt.Errorf("%w: empty document", ErrReadFailed)
	}

	if !shouldExtractHTML(doc, cfg) {
		doc.Annotate("skippedByUnexpectedHtmlGate")
		return false, nil
	}

	ApplyCharsetSniff(doc, "")

	h := &tagHandler{
		doc:    doc,
		cfg:    cfg,
		policy: policy,
	}

	aborted := false
	scanTags(ctx, doc.Content(), cfg.MaxElementLength, func(m TagMatch) bool {
		switch m.Kind {
		case TagMeta:
			if h.handleMeta(m) {
				aborted = true
				return false
			}
		case TagScript:
			h.handleScriptOrStyle(m, true)
		case TagStyle:
			h.handleScriptOrStyle(m, false)
		case TagGeneric:
			h.handleGenericTag(m)
		}
		if len(doc.Outlinks()) >= cfg.MaxOutlinks {
			return false
		}
		return true
	})

	runImpliedURIExtractor(doc, cfg)

	if cfg.ClassifyLinkPosition {
		classifyLinkPositions(doc)
	}

	if aborted {
		return false, nil
	}
	return true, nil
}

// shouldExtractHTML implements the HTML-expected gate of 4.F.7.
func shouldExtractHTML(doc *Document, cfg *ExtractorConfig) bool {
	if !cfg.IgnoreUnexpectedHTML {
		return true
	}
	if p := uriPath(doc.RequestURI); p != "" {
		ext := strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))
		if ext != "" && nonHTMLExtensionGlob.Match(ext) {
			return false
		}
	}

	ct := strings.ToLower(doc.ContentType)
	switch {
	case strings.HasPrefix(ct, "text/html"),
		strings.HasPrefix(ct, "application/xhtml"),
		strings.HasPrefix(ct, "text/vnd.wap.wml"),
		strings.HasPrefix(ct, "application/vnd.wap.wml"),
		strings.HasPrefix(ct, "application/vnd.wap.xhtml"):
		return true
	}

	prefix := strings.ToLower(doc.ContentPrefix(1000))
	return strings.Contains(prefix, "<html") || strings.Contains(prefix, "<!doctype html")
}

// tagHandler carries per-Extract-call locals; it is never shared across
// goroutines or reused across Extract invocations.
type tagHandler struct {
	doc    *Document
	cfg    *ExtractorConfig
	policy RobotsPolicy
}

func (h *tagHandler) emit(target string, hop Hop, context string) {
	h.doc.AppendOutlink(DiscoveredLink{Target: target, Hop: hop, Context: context, Source: h.doc.RequestURI})
}

// dequoteAttrValue truncates raw to at most max bytes using scratch as
// reusable scratch space, then HTML-unescapes the result. scratch is
// reset before use and carries no state across calls; callers acquire
// one scratch builder per tag and release it when the tag is done.
func dequoteAttrValue(scratch *strings.Builder, raw string, max int) string {
	scratch.Reset()
	if max > 0 && len(raw) > max {
		raw = raw[:max]
	}
	scratch.WriteString(raw)
	return htmlstd.UnescapeString(scratch.String())
}

// handleMeta implements 4.F.4. It returns true if the document should
// abort further extraction (meta-robots nofollow).
func (h *tagHandler) handleMeta(m TagMatch) bool {
	scratch := acquireBuilder()
	defer releaseBuilder(scratch)

	name, _ := attrValue(m.Attrs, "name")
	httpEquiv, _ := attrValue(m.Attrs, "http-equiv")
	rawContent, _ := attrValue(m.Attrs, "content")
	content := dequoteAttrValue(scratch, rawContent, h.cfg.MaxAttributeValueLength)

	switch {
	case strings.EqualFold(name, "robots"):
		h.doc.PutData("meta-robots", content)
		lc := strings.ToLower(content)
		if h.policy.ObeysMetaNofollow() && (strings.Contains(lc, "nofollow") || strings.Contains(lc, "none")) {
			return true
		}
	case strings.EqualFold(httpEquiv, "refresh"):
		if target := parseMetaRefresh(content); target != "" {
			if abs, err := resolveURI(h.doc.BaseURI(), target); err == nil {
				h.emit(abs, HopRefer, "meta")
			}
		}
		return false
	default:
		if content != "" {
			considerIfLikelyURI(h.doc, h.doc.BaseURI(), content, "meta", HopSpeculative)
		}
	}
	return false
}

// parseMetaRefresh extracts the URL portion of a content="N;url=X"
// refresh directive.
func parseMetaRefresh(content string) string {
	idx := strings.Index(strings.ToLower(content), "url=")
	if idx < 0 {
		return ""
	}
	target := strings.TrimSpace(content[idx+len("url="):])
	target = strings.Trim(target, `"'`)
	return target
}

// handleScriptOrStyle implements 4.F.3: run the generic pass on the
// open-tag attributes, then forward the body to the relevant
// sub-extractor.
func (h *tagHandler) handleScriptOrStyle(m TagMatch, isScript bool) {
	attrsOnly := TagMatch{Kind: TagGeneric, Name: m.Name, Attrs: m.Attrs, Offset: m.Offset}
	h.handleGenericTag(attrsOnly)

	if isScript {
		if !h.cfg.ExtractJavascript {
			return
		}
		extractSpeculativeURIsFromScript(h.doc, m.Inner)
	} else {
		extractURIsFromCSS(h.doc, h.doc.BaseURI(), m.Inner)
	}
}

// handleGenericTag implements the generic-tag branch of 4.F, including
// the bucket-by-bucket attribute walk and end-of-tag resolution.
func (h *tagHandler) handleGenericTag(m TagMatch) {
	if m.Name == "form" {
		h.doc.PutData("form-offsets", strconv.Itoa(m.Offset))
	}

	var (
		codebase     string
		haveCodebase bool
		resources    []string
		actionVal    string
		haveAction   bool
		methodVal    string
		valueVal     string
		haveValue    bool
		nameVal      string
		linkHref     string
		haveLinkHref bool
		linkRel      string
	)

	scratch := acquireBuilder()
	defer releaseBuilder(scratch)

	for _, a := range m.Attrs {
		name := truncate(a.Key, h.cfg.MaxAttributeNameLength)
		val := dequoteAttrValue(scratch, a.Val, h.cfg.MaxAttributeValueLength)
		bucket := classifyAttr(name)

		switch bucket {
		case BucketHrefCite:
			if javascriptURIRegex.MatchString(val) {
				h.handleJavascriptURI(val)
				continue
			}
			if m.Name == "a" {
				if remote, ok := attrValue(m.Attrs, "data-remote"); ok && remote == "true" {
					if abs, err := resolveURI(h.doc.BaseURI(), val); err == nil {
						h.emit(abs, HopEmbed, "a[data-remote='true']/@href")
					}
					continue
				}
				linkHref, haveLinkHref = val, true
				continue
			}
			if m.Name == "link" {
				linkHref, haveLinkHref = val, true
				continue
			}
			if m.Name == "base" {
				if abs, err := resolveURI(h.doc.BaseURI(), val); err == nil {
					h.doc.SetBaseURI(abs)
				}
				continue
			}
			if abs, err := resolveURI(h.doc.BaseURI(), val); err == nil {
				h.emit(abs, HopNavlink, m.Name+"/@"+strings.ToLower(name))
			}

		case BucketAction:
			if h.cfg.IgnoreFormActionURLs {
				continue
			}
			actionVal, haveAction = val, true

		case BucketOnEvent:
			if h.cfg.ExtractJavascript {
				extractSpeculativeURIsFromScript(h.doc, val)
			}

		case BucketSrcLike:
			if strings.HasPrefix(val, "data:") {
				continue
			}
			h.emitResourceAttr(m.Name, name, val)

		case BucketCodebase:
			codebase, haveCodebase = val, true
			if abs, err := resolveURI(h.doc.BaseURI(), val); err == nil {
				h.emit(abs, HopNavlink, m.Name+"/@codebase")
			}

		case BucketClassidData:
			resources = append(resources, val)

		case BucketArchive:
			resources = append(resources, strings.Fields(val)...)

		case BucketCode:
			v := val
			if strings.EqualFold(m.Name, "applet") && !strings.HasSuffix(v, ".class") {
				v += ".class"
			}
			resources = append(resources, v)

		case BucketValue:
			valueVal, haveValue = val, true

		case BucketStyle:
			extractURIsFromCSS(h.doc, h.doc.BaseURI(), val)

		case BucketMethod:
			methodVal = strings.ToUpper(val)

		case BucketOther:
			switch strings.ToLower(name) {
			case "name":
				nameVal = val
			case "rel":
				linkRel = val
			case "flashvars":
				h.handleFlashvars(val)
			default:
				if isDataLazyLoadAttr(name) {
					h.emitResourceAttr(m.Name, name, val)
				}
			}
		}
	}

	base := h.doc.BaseURI()
	if haveCodebase {
		if abs, err := resolveURI(base, codebase); err == nil {
			base = abs
		}
	}
	for _, r := range resources {
		if abs, err := resolveURI(base, r); err == nil {
			h.emit(abs, HopEmbed, m.Name)
		}
	}

	if haveLinkHref {
		h.finishLinkOrAnchor(m.Name, linkHref, linkRel)
	}

	if haveAction {
		if methodVal == "" || methodVal == "GET" || !h.cfg.ExtractOnlyFormGETs {
			if abs, err := resolveURI(h.doc.BaseURI(), actionVal); err == nil {
				h.emit(abs, HopNavlink, "form/@action")
			}
		}
	}

	if haveValue {
		if strings.EqualFold(m.Name, "param") && strings.EqualFold(nameVal, "flashvars") {
			h.handleFlashvars(valueVal)
		} else if h.cfg.ExtractValueAttributes {
			considerIfLikelyURI(h.doc, h.doc.BaseURI(), valueVal, m.Name+"/@value", HopNavlink)
		}
	}
}

// emitResourceAttr handles a single bucket-4/other src-like attribute,
// including the srcset multi-URI and frame/iframe embed-vs-navlink
// special cases.
func (h *tagHandler) emitResourceAttr(element, attrName, val string) {
	hop := HopEmbed
	if (strings.EqualFold(element, "frame") || strings.EqualFold(element, "iframe")) && !h.cfg.TreatFramesAsEmbedLinks {
		hop = HopNavlink
	}
	ctx := strings.ToLower(element) + "/@" + strings.ToLower(attrName)

	if strings.Contains(strings.ToLower(attrName), "srcset") {
		for _, u := range parseSrcset(val) {
			if abs, err := resolveURI(h.doc.BaseURI(), u); err == nil {
				h.emit(abs, hop, ctx)
			}
		}
		return
	}
	if abs, err := resolveURI(h.doc.BaseURI(), val); err == nil {
		h.emit(abs, hop, ctx)
	}
}

// finishLinkOrAnchor implements the LINK rel-type table (4.F.1) and the
// plain-anchor/rel=nofollow end-of-tag logic.
func (h *tagHandler) finishLinkOrAnchor(element, href, rel string) {
	ctx := element + "/@href"

	if element == "link" && rel != "" {
		emitNavlink := false
		for _, kw := range strings.Fields(strings.ToLower(rel)) {
			if _, embed := linkRelEmbedKeywords[kw]; embed {
				if abs, err := resolveURI(h.doc.BaseURI(), href); err == nil {
					h.emit(abs, HopEmbed, fmt.Sprintf("link[rel='%s']/@href", kw))
				}
				return
			}
			if kw == "pingback" {
				return
			}
			if _, ignored := linkRelIgnoredKeywords[kw]; !ignored {
				emitNavlink = true
			}
		}
		if emitNavlink {
			if abs, err := resolveURI(h.doc.BaseURI(), href); err == nil {
				h.emit(abs, HopNavlink, "link/@href")
			}
		}
		return
	}

	if rel != "" && h.cfg.ObeyRelNofollow && relNofollowRegex.MatchString(rel) {
		return
	}
	if abs, err := resolveURI(h.doc.BaseURI(), href); err == nil {
		h.emit(abs, HopNavlink, ctx)
	}
}

// handleJavascriptURI implements 4.F.2: strip the javascript: prefix and
// forward the remainder to the script extractor instead of emitting a
// link.
func (h *tagHandler) handleJavascriptURI(val string) {
	if !h.cfg.ExtractJavascript {
		return
	}
	rest := javascriptURIRegex.ReplaceAllString(val, "")
	extractSpeculativeURIsFromScript(h.doc, rest)
}

// handleFlashvars parses a PARAM flashvars value as a query string and
// treats each value as a speculative URI.
func (h *tagHandler) handleFlashvars(val string) {
	for _, pair := range strings.Split(val, "&") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			continue
		}
		if dec, err := url.QueryUnescape(kv[1]); err == nil {
			considerIfLikelyURI(h.doc, h.doc.BaseURI(), dec, "param/@value", HopSpeculative)
		}
	}
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
