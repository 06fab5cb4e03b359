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
	"fmt"

	"github.com/temoto/robotstxt"
)

// RobotsPolicy is the one thing the extractor needs to know about the
// crawl's robots handling: whether a meta-robots nofollow/none directive
// should abort link extraction for the current document. Fetching and
// parsing robots.txt itself remains the crawl server's job, not the
// extractor's; RobotsGroupPolicy below additionally wraps a parsed
// robots.txt that a caller can check a path against.
type RobotsPolicy interface {
	ObeysMetaNofollow() bool
}

type obeyMetaRobotsPolicy struct{}

func (obeyMetaRobotsPolicy) ObeysMetaNofollow() bool { return true }

type ignoreMetaRobotsPolicy struct{}

func (ignoreMetaRobotsPolicy) ObeysMetaNofollow() bool { return false }

// ObeyRobotsPolicy honors <meta name="robots" content="nofollow|none">.
var ObeyRobotsPolicy RobotsPolicy = obeyMetaRobotsPolicy{}

// IgnoreRobotsPolicy never aborts extraction on a meta-robots directive.
var IgnoreRobotsPolicy RobotsPolicy = ignoreMetaRobotsPolicy{}

// PolicyByName resolves the CLI --robots flag value ("obey" or
// "ignore") to a RobotsPolicy.
func PolicyByName(name string) (RobotsPolicy, error) {
	switch name {
	case "", "obey":
		return ObeyRobotsPolicy, nil
	case "ignore":
		return IgnoreRobotsPolicy, nil
	default:
		return nil, fmt.Errorf("unknown robots policy %q (want \"obey\" or \"ignore\")", name)
	}
}

// RobotsGroupPolicy wraps a parsed robots.txt so a caller can check
// whether a path is disallowed, independent of the extractor's own
// meta-nofollow check. Neither Extract nor the extract CLI uses it.
type RobotsGroupPolicy struct {
	data  *robotstxt.RobotsData
	agent string
	obey  bool
}

// NewRobotsGroupPolicy parses robotsTxt for agent and wraps it. obey
// controls ObeysMetaNofollow, matching the --robots flag.
func NewRobotsGroupPolicy(robotsTxt []byte, agent string, obey bool) (*RobotsGroupPolicy, error) {
	data, err := robotstxt.FromBytes(robotsTxt)
	if err != nil {
		return nil, fmt.Errorf("parse robots.txt: %w", err)
	}
	return &RobotsGroupPolicy{data: data, agent: agent, obey: obey}, nil
}

func (p *RobotsGroupPolicy) ObeysMetaNofollow() bool { return p.obey }

// TestAgent reports whether path is allowed for the wrapped robots.txt.
func (p *RobotsGroupPolicy) TestAgent(path string) bool {
	return p.data.TestAgent(path, p.agent)
}
