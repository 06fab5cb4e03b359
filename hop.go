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

// Hop describes how a link was discovered relative to the document it
// was found in. The single-letter String form matches the crawl log
// convention: E(mbed), L(ink/navigational), X(speculative), R(efer),
// I(nferred), P(rerequisite).
type Hop uint8

const (
	HopEmbed Hop = iota
	HopNavlink
	HopSpeculative
	HopRefer
	HopInferred
	HopPrereq
)

func (h Hop) String() string {
	switch h {
	case HopEmbed:
		return "E"
	case HopNavlink:
		return "L"
	case HopSpeculative:
		return "X"
	case HopRefer:
		return "R"
	case HopInferred:
		return "I"
	case HopPrereq:
		return "P"
	default:
		return "?"
	}
}

// Position is the coarse page-region a link was found in, computed by
// the supplemental link-position pass. Zero value is PositionUnknown.
type Position uint8

const (
	PositionUnknown Position = iota
	PositionContent
	PositionNavigation
	PositionHeader
	PositionFooter
	PositionSidebar
	PositionBreadcrumbs
	PositionPagination
)

func (p Position) String() string {
	switch p {
	case PositionContent:
		return "content"
	case PositionNavigation:
		return "navigation"
	case PositionHeader:
		return "header"
	case PositionFooter:
		return "footer"
	case PositionSidebar:
		return "sidebar"
	case PositionBreadcrumbs:
		return "breadcrumbs"
	case PositionPagination:
		return "pagination"
	default:
		return "unknown"
	}
}

// DiscoveredLink is an immutable record emitted for every outlink found
// during extraction. Source is the identity of the DUE the link was
// found in — the originating document's request URI.
type DiscoveredLink struct {
	Source   string
	Target   string
	Hop      Hop
	Context  string
	Position Position
}
