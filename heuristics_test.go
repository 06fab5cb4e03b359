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

func TestLooksLikeURI(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"http://example.com/page", true},
		{"//cdn.example.com/x.js", true},
		{"/static/app.js", true},
		{"path/to/resource.json", true},
		{"12345", false},
		{"", false},
		{"(555) 123-4567", false},
	}

	for _, tt := range tests {
		if got := looksLikeURI(tt.in); got != tt.want {
			t.Errorf("looksLikeURI(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConsiderIfLikelyURIAppendsOnMatch(t *testing.T) {
	doc := NewDocument("http://h/", "text/html", "")
	considerIfLikelyURI(doc, "http://h/", "/found.json", "script", HopSpeculative)
	considerIfLikelyURI(doc, "http://h/", "42", "script", HopSpeculative)

	links := doc.Outlinks()
	if len(links) != 1 || links[0].Target != "http://h/found.json" || links[0].Hop != HopSpeculative {
		t.Fatalf("unexpected outlinks: %+v", links)
	}
}
