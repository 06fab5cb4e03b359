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

import "regexp"

// runImpliedURIExtractor implements 4.G: for every already-emitted
// outlink whose target matches cfg.ImpliedURITrigger, build a derived
// URI via regexp.ReplaceAllString against cfg.ImpliedURIFormat, and — if
// it parses as an absolute URI — emit it with hop INFERRED. When
// ImpliedURIRemoveTrigger is set, the triggering link is removed.
func runImpliedURIExtractor(doc *Document, cfg *ExtractorConfig) {
	if cfg.ImpliedURITrigger == "" {
		return
	}
	trigger, err := regexp.Compile(cfg.ImpliedURITrigger)
	if err != nil {
		doc.AddNonFatalFailure(err)
		return
	}

	for _, link := range doc.Outlinks() {
		if !trigger.MatchString(link.Target) {
			continue
		}
		implied := trigger.ReplaceAllString(link.Target, cfg.ImpliedURIFormat)
		if abs, err := parseAbsoluteURI(implied); err == nil {
			doc.AppendOutlink(DiscoveredLink{Target: abs, Hop: HopInferred, Context: "inferred-misc", Source: doc.RequestURI})
		}
		if cfg.ImpliedURIRemoveTrigger {
			doc.RemoveOutlink(link.Target)
		}
	}
}
