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

	"github.com/PuerkitoBio/goquery"
)

// classifyLinkPositions runs the 4.I supplemental pass: parse doc's
// content as a DOM, classify the page region of every a[href],
// link[href] and img[src] element, and tag matching already-emitted
// outlinks by resolved target.
// Best effort only — a DOM parse failure just leaves Position unknown
// on every link.
func classifyLinkPositions(doc *Document) {
	gdoc, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Content()))
	if err != nil {
		return
	}

	positions := make(map[string]Position)
	base := doc.BaseURI()

	gdoc.Find("a[href], link[href], img[src]").Each(func(_ int, sel *goquery.Selection) {
		ref, ok := sel.Attr("href")
		if !ok {
			ref, ok = sel.Attr("src")
		}
		if !ok || ref == "" {
			return
		}
		abs, err := resolveURI(base, ref)
		if err != nil {
			return
		}
		if _, exists := positions[abs]; !exists {
			positions[abs] = classifyElementPosition(sel)
		}
	})

	doc.updatePositions(positions)
}

// classifyElementPosition walks sel's ancestor chain looking for
// semantic HTML5 elements, ARIA roles, and common id/class substrings,
// falling back to "unknown" when nothing matches.
func classifyElementPosition(sel *goquery.Selection) Position {
	current := sel.Parent()
	for current.Length() > 0 {
		nodeName := goquery.NodeName(current)
		role, _ := current.Attr("role")
		class, _ := current.Attr("class")
		id, _ := current.Attr("id")
		attrs := strings.ToLower(nodeName + " " + role + " " + class + " " + id)

		switch {
		case nodeName == "main" || nodeName == "article" || role == "main" || role == "article":
			return PositionContent
		case strings.Contains(attrs, "breadcrumb"):
			return PositionBreadcrumbs
		case strings.Contains(attrs, "pagination") || strings.Contains(attrs, "pager") || strings.Contains(attrs, "page-number"):
			return PositionPagination
		case nodeName == "nav" || role == "navigation" || strings.Contains(attrs, "nav") ||
			strings.Contains(attrs, "menu") || strings.Contains(attrs, "navbar") || strings.Contains(attrs, "megamenu"):
			return PositionNavigation
		case nodeName == "header" || role == "banner" || strings.Contains(attrs, "header") ||
			strings.Contains(attrs, "masthead") || strings.Contains(attrs, "topbar"):
			return PositionHeader
		case nodeName == "footer" || role == "contentinfo" || strings.Contains(attrs, "footer"):
			return PositionFooter
		case nodeName == "aside" || role == "complementary" || strings.Contains(attrs, "sidebar") || strings.Contains(attrs, "aside"):
			return PositionSidebar
		}
		current = current.Parent()
	}
	return PositionUnknown
}

// isBoilerplatePosition reports whether p is one of the non-content
// page regions, mirroring the reference classifier's boilerplate-link
// filter.
func isBoilerplatePosition(p Position) bool {
	switch p {
	case PositionNavigation, PositionHeader, PositionFooter, PositionSidebar, PositionBreadcrumbs, PositionPagination:
		return true
	default:
		return false
	}
}
