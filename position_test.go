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
	"testing"
)

func TestClassifyLinkPositionsNavAndContent(t *testing.T) {
	body := `
<nav><a href="/home">Home</a></nav>
<main><article><a href="/article-1">Read more</a></article></main>
<footer><a href="/contact">Contact</a></footer>`

	doc := NewDocument("http://h/", "text/html", body)
	if _, err := Extract(context.Background(), doc, NewDefaultExtractorConfig(), ObeyRobotsPolicy); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	byTarget := map[string]Position{}
	for _, l := range doc.Outlinks() {
		byTarget[l.Target] = l.Position
	}

	if byTarget["http://h/home"] != PositionNavigation {
		t.Errorf("home position = %v, want navigation", byTarget["http://h/home"])
	}
	if byTarget["http://h/article-1"] != PositionContent {
		t.Errorf("article-1 position = %v, want content", byTarget["http://h/article-1"])
	}
	if byTarget["http://h/contact"] != PositionFooter {
		t.Errorf("contact position = %v, want footer", byTarget["http://h/contact"])
	}
}

func TestIsBoilerplatePosition(t *testing.T) {
	for _, p := range []Position{PositionNavigation, PositionHeader, PositionFooter, PositionSidebar, PositionBreadcrumbs, PositionPagination} {
		if !isBoilerplatePosition(p) {
			t.Errorf("%v should be boilerplate", p)
		}
	}
	if isBoilerplatePosition(PositionContent) || isBoilerplatePosition(PositionUnknown) {
		t.Errorf("content/unknown should not be boilerplate")
	}
}
