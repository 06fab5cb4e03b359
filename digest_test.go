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

import "testing"

func TestContentDigestStableAcrossWhitespaceAndComments(t *testing.T) {
	a := NewDocument("http://h/", "text/html", "<html><body>Hello \n\n  world</body></html>")
	b := NewDocument("http://h/", "text/html", "<html><!-- note --><body>Hello world</body></html>")

	if ContentDigest(a) != ContentDigest(b) {
		t.Fatalf("expected digests to match after normalization")
	}
}

func TestContentDigestIgnoresScriptAndStyleBodies(t *testing.T) {
	a := NewDocument("http://h/", "text/html", "<body>Hello</body>")
	b := NewDocument("http://h/", "text/html", "<script>var x = 1;</script><body>Hello</body><style>.a{color:red}</style>")

	if ContentDigest(a) != ContentDigest(b) {
		t.Fatalf("expected digests to match when only script/style differ")
	}
}

func TestContentDigestDiffersForDifferentContent(t *testing.T) {
	a := NewDocument("http://h/", "text/html", "<body>Hello</body>")
	b := NewDocument("http://h/", "text/html", "<body>Goodbye</body>")

	if ContentDigest(a) == ContentDigest(b) {
		t.Fatalf("expected different digests for different content")
	}
}
