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

import "sync"

// Document is the per-fetch mutable record the extractor operates on.
// It is owned by exactly one goroutine for the duration of Extract; the
// extractor never retains a reference to it past return.
type Document struct {
	RequestURI  string
	ContentType string

	baseURI string
	content string
	raw     []byte

	mu               sync.Mutex
	outlinks         []DiscoveredLink
	annotations      map[string]struct{}
	nonFatalFailures []error
	data             map[string][]string
	baseSet          bool
}

// NewDocument builds a Document for a freshly fetched page. content is
// the already-decoded body; requestURI becomes the initial base URI.
func NewDocument(requestURI, contentType, content string) *Document {
	return &Document{
		RequestURI:  requestURI,
		ContentType: contentType,
		baseURI:     requestURI,
		content:     content,
		raw:         []byte(content),
		annotations: make(map[string]struct{}),
		data:        make(map[string][]string),
	}
}

// RawBytes returns the document's original byte sequence, captured
// before any charset interpretation, for use by the reflexive
// charset-sniff re-check (see ApplyCharsetSniff).
func (d *Document) RawBytes() []byte {
	return d.raw
}

// BaseURI returns the document's current base URI.
func (d *Document) BaseURI() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.baseURI
}

// SetBaseURI installs a new base URI the first time it is called; later
// calls are no-ops, matching the single <base> rule.
func (d *Document) SetBaseURI(uri string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.baseSet {
		return
	}
	d.baseURI = uri
	d.baseSet = true
	d.data["html-base"] = []string{uri}
}

// Content returns the full decoded body. Large documents may wrap a
// replay/windowed store behind this same accessor; callers needing only
// a prefix should prefer ContentPrefix to avoid paying for the whole
// body when a cheaper read suffices.
func (d *Document) Content() string {
	return d.content
}

// SetContent replaces the decoded body, for callers that re-decode the
// document after a charset change; Extract itself does not call it.
func (d *Document) SetContent(s string) {
	d.content = s
}

// ContentPrefix returns up to n bytes from the start of the decoded
// body, safe to call before the whole body has been materialized by a
// replay-backed store.
func (d *Document) ContentPrefix(n int) string {
	if n >= len(d.content) {
		return d.content
	}
	// content is expected to be ASCII/UTF-8 text sniffed from HTML meta
	// tags; a byte-based cut is sufficient and matches the reference
	// sniffer's behavior of scanning raw bytes.
	return d.content[:n]
}

// AppendOutlink records a newly discovered link, subject to the caller's
// MaxOutlinks enforcement (done in the tag handler, not here, so that
// the cap is visible to tests as a single choke point).
func (d *Document) AppendOutlink(link DiscoveredLink) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.outlinks = append(d.outlinks, link)
}

// Outlinks returns the links discovered so far, in discovery order.
func (d *Document) Outlinks() []DiscoveredLink {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]DiscoveredLink, len(d.outlinks))
	copy(out, d.outlinks)
	return out
}

// RemoveOutlink deletes the first outlink equal to target, used by the
// implied-URI extractor's remove-trigger option.
func (d *Document) RemoveOutlink(target string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.outlinks {
		if l.Target == target {
			d.outlinks = append(d.outlinks[:i], d.outlinks[i+1:]...)
			return
		}
	}
}

// updatePositions sets Position on every recorded outlink whose target
// is present in positions, used by the supplemental link-position pass.
func (d *Document) updatePositions(positions map[string]Position) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.outlinks {
		if p, ok := positions[l.Target]; ok {
			d.outlinks[i].Position = p
		}
	}
}

// Annotate adds a short processing-anomaly tag, idempotently.
func (d *Document) Annotate(tag string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.annotations[tag] = struct{}{}
}

// Annotations returns the set of annotation tags recorded so far.
func (d *Document) Annotations() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.annotations))
	for t := range d.annotations {
		out = append(out, t)
	}
	return out
}

// AddNonFatalFailure records a recoverable error without aborting
// extraction.
func (d *Document) AddNonFatalFailure(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nonFatalFailures = append(d.nonFatalFailures, err)
}

// NonFatalFailures returns the recoverable errors recorded so far.
func (d *Document) NonFatalFailures() []error {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]error, len(d.nonFatalFailures))
	copy(out, d.nonFatalFailures)
	return out
}

// PutData stores a side-channel value under key, appending to any
// values already present (form-offsets accumulates; html-base does
// not, but SetBaseURI writes that key directly).
func (d *Document) PutData(key, value string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data[key] = append(d.data[key], value)
}

// DataList returns the accumulated values for key.
func (d *Document) DataList(key string) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	v := d.data[key]
	out := make([]string, len(v))
	copy(out, v)
	return out
}
