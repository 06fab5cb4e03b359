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
	"strings"
	"testing"
)

func TestSniffCharsetFromHTTPEquiv(t *testing.T) {
	doc := NewDocument("http://h/", "text/html", `<meta http-equiv="Content-Type" content="text/html; charset=ISO-8859-1">`)
	name, declared := sniffCharset(doc)
	if !declared || name != "iso-8859-1" {
		t.Fatalf("got name=%q declared=%v", name, declared)
	}
}

func TestSniffCharsetFromMetaCharset(t *testing.T) {
	doc := NewDocument("http://h/", "text/html", `<meta charset="utf-8">`)
	name, declared := sniffCharset(doc)
	if !declared || name != "utf-8" {
		t.Fatalf("got name=%q declared=%v", name, declared)
	}
}

func TestSniffCharsetFromXMLDeclaration(t *testing.T) {
	doc := NewDocument("http://h/", "application/xhtml+xml", `<?xml version="1.0" encoding="UTF-16"?><html></html>`)
	name, declared := sniffCharset(doc)
	if !declared || name != "utf-16" {
		t.Fatalf("got name=%q declared=%v", name, declared)
	}
}

func TestSniffCharsetNoneDeclaredFallsBackToDetector(t *testing.T) {
	doc := NewDocument("http://h/", "text/html", `<html><body>plain ascii text with no charset hints at all</body></html>`)
	_, declared := sniffCharset(doc)
	if declared {
		t.Fatalf("expected declared=false when no meta/xml hint present")
	}
}

func TestApplyCharsetSniffAnnotatesUnsatisfiable(t *testing.T) {
	doc := NewDocument("http://h/", "text/html", `<meta charset="not-a-real-charset">`)
	got := ApplyCharsetSniff(doc, "utf-8")
	if got != "none" {
		t.Fatalf("got %q, want none", got)
	}
	found := false
	for _, a := range doc.Annotations() {
		if a == "unsatisfiableCharsetInHTML:not-a-real-charset" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unsatisfiable annotation, got %v", doc.Annotations())
	}
}

func TestApplyCharsetSniffConfirmsSelfConsistentDeclaration(t *testing.T) {
	doc := NewDocument("http://h/", "text/html", `<meta charset="iso-8859-1">`)
	got := ApplyCharsetSniff(doc, "utf-8")
	if got != "iso-8859-1" {
		t.Fatalf("got %q, want iso-8859-1", got)
	}
	found := false
	for _, a := range doc.Annotations() {
		if a == "usingCharsetInHTML:iso-8859-1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected usingCharsetInHTML annotation, got %v", doc.Annotations())
	}
}

func TestApplyCharsetSniffDetectsGenuineInconsistency(t *testing.T) {
	// The bytes here are a plain ASCII/UTF-8 document, but the meta tag
	// mislabels them as utf-16le. Re-decoding the same bytes as UTF-16LE
	// scrambles pairs of bytes into unrelated characters, so the second
	// sniff over the re-decoded prefix cannot find the same declaration
	// again (this is only reachable if ApplyCharsetSniff genuinely
	// re-decodes raw bytes rather than re-scanning the same text twice).
	doc := NewDocument("http://h/", "text/html", `<html><head><meta charset="utf-16le"></head><body>hi</body></html>`)
	got := ApplyCharsetSniff(doc, "utf-8")
	if got != "utf-8" {
		t.Fatalf("got %q, want fallback to original utf-8", got)
	}
	found := false
	for _, a := range doc.Annotations() {
		if strings.HasPrefix(a, "inconsistentCharsetInHTML:") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected inconsistentCharsetInHTML annotation, got %v", doc.Annotations())
	}
}
