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

	"golang.org/x/net/html"
)

// AttrBucket is the numbered classification an attribute name falls
// into, in the priority order documented in 4.E: the first bucket whose
// membership test matches wins.
type AttrBucket uint8

const (
	BucketHrefCite AttrBucket = iota
	BucketAction
	BucketOnEvent
	BucketSrcLike
	BucketCodebase
	BucketClassidData
	BucketArchive
	BucketCode
	BucketValue
	BucketStyle
	BucketMethod
	BucketOther
)

var srcLikeAttrs = map[string]struct{}{
	"src": {}, "srcset": {}, "lowsrc": {}, "background": {}, "longdesc": {},
	"usemap": {}, "profile": {}, "datasrc": {}, "data-src": {}, "data-srcset": {},
	"data-original": {}, "data-original-set": {},
}

var classidDataAttrs = map[string]struct{}{
	"classid": {}, "data": {},
}

// classifyAttr maps a lowercase attribute name to its bucket.
func classifyAttr(name string) AttrBucket {
	n := strings.ToLower(name)
	switch {
	case n == "href" || n == "cite":
		return BucketHrefCite
	case n == "action":
		return BucketAction
	case strings.HasPrefix(n, "on"):
		return BucketOnEvent
	default:
	}
	if _, ok := srcLikeAttrs[n]; ok {
		return BucketSrcLike
	}
	switch n {
	case "codebase":
		return BucketCodebase
	case "archive":
		return BucketArchive
	case "code":
		return BucketCode
	case "value":
		return BucketValue
	case "style":
		return BucketStyle
	case "method":
		return BucketMethod
	}
	if _, ok := classidDataAttrs[n]; ok {
		return BucketClassidData
	}
	return BucketOther
}

// isDataLazyLoadAttr reports whether name is one of the recognized
// data-* lazy-load source variants handled under bucket "other".
func isDataLazyLoadAttr(name string) bool {
	switch strings.ToLower(name) {
	case "data-src", "data-src-small", "data-src-medium", "data-srcset",
		"data-original", "data-lazy", "data-lazy-srcset", "data-full-src":
		return true
	}
	return false
}

// attrValue returns the first value for name among attrs, and whether
// it was present.
func attrValue(attrs []html.Attribute, name string) (string, bool) {
	name = strings.ToLower(name)
	for _, a := range attrs {
		if strings.ToLower(a.Key) == name {
			return a.Val, true
		}
	}
	return "", false
}
