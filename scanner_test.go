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

func scanAll(content string) []TagMatch {
	var got []TagMatch
	scanTags(context.Background(), content, 64, func(m TagMatch) bool {
		got = append(got, m)
		return true
	})
	return got
}

func TestScanTagsGenericRequiresAttributes(t *testing.T) {
	matches := scanAll(`<br><hr><a href="/x">x</a>`)
	if len(matches) != 1 || matches[0].Name != "a" {
		t.Fatalf("expected only <a>, got %+v", matches)
	}
}

func TestScanTagsScriptBodyCaptured(t *testing.T) {
	matches := scanAll(`<script>var x = "<not a tag>";</script><a href="/y">y</a>`)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %+v", len(matches), matches)
	}
	if matches[0].Kind != TagScript || matches[0].Inner == "" {
		t.Fatalf("unexpected script match: %+v", matches[0])
	}
	if matches[1].Name != "a" {
		t.Fatalf("expected trailing <a> tag, got %+v", matches[1])
	}
}

func TestScanTagsSkipsConditionalComments(t *testing.T) {
	matches := scanAll(`<!--[if IE]><a href="/ie">x</a><![endif]--><a href="/real">real</a>`)
	for _, m := range matches {
		if m.Kind == TagComment {
			t.Fatalf("conditional comment should not be emitted: %+v", m)
		}
	}
}

func TestScanTagsHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var got []TagMatch
	scanTags(ctx, `<a href="/x">x</a><a href="/y">y</a>`, 64, func(m TagMatch) bool {
		got = append(got, m)
		return true
	})
	if len(got) != 0 {
		t.Fatalf("expected no matches after cancellation, got %+v", got)
	}
}

func TestScanTagsMaxElementLengthTruncates(t *testing.T) {
	long := "averyverylongelementnamethatexceedsthemaximumallowedlengthforatagname"
	matches := scanAll("<" + long + ` href="/x">x</` + long + `>`)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if len(matches[0].Name) > 64 {
		t.Fatalf("element name not truncated: %q (%d)", matches[0].Name, len(matches[0].Name))
	}
}
