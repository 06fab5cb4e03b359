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
	"os"

	"gopkg.in/yaml.v3"
)

// ExtractorConfig holds every tunable named in the external-interfaces
// table. Zero value is not directly usable; build one with
// NewDefaultExtractorConfig and then apply ExtractorOptions, or load one
// from YAML with LoadConfig.
type ExtractorConfig struct {
	MaxElementLength        int    `yaml:"maxElementLength"`
	MaxAttributeNameLength  int    `yaml:"maxAttributeNameLength"`
	MaxAttributeValueLength int    `yaml:"maxAttributeValueLength"`
	TreatFramesAsEmbedLinks bool   `yaml:"treatFramesAsEmbedLinks"`
	IgnoreFormActionURLs    bool   `yaml:"ignoreFormActionUrls"`
	ExtractOnlyFormGETs     bool   `yaml:"extractOnlyFormGets"`
	ExtractJavascript       bool   `yaml:"extractJavascript"`
	ExtractValueAttributes  bool   `yaml:"extractValueAttributes"`
	IgnoreUnexpectedHTML    bool   `yaml:"ignoreUnexpectedHtml"`
	ObeyRelNofollow         bool   `yaml:"obeyRelNofollow"`
	MaxOutlinks             int    `yaml:"maxOutlinks"`
	ClassifyLinkPosition    bool   `yaml:"classifyLinkPosition"`
	ImpliedURITrigger       string `yaml:"impliedUriTrigger"`
	ImpliedURIFormat        string `yaml:"impliedUriFormat"`
	ImpliedURIRemoveTrigger bool   `yaml:"impliedUriRemoveTrigger"`
}

// NewDefaultExtractorConfig returns the defaults from the external
// interfaces table.
func NewDefaultExtractorConfig() *ExtractorConfig {
	return &ExtractorConfig{
		MaxElementLength:        64,
		MaxAttributeNameLength:  64,
		MaxAttributeValueLength: 2048,
		TreatFramesAsEmbedLinks: true,
		IgnoreFormActionURLs:    false,
		ExtractOnlyFormGETs:     true,
		ExtractJavascript:       true,
		ExtractValueAttributes:  true,
		IgnoreUnexpectedHTML:    true,
		ObeyRelNofollow:         false,
		MaxOutlinks:             25000,
		ClassifyLinkPosition:    true,
	}
}

// ExtractorOption mutates an ExtractorConfig, matching the reference
// crawler's With... functional-option pattern for CrawlerConfig.
type ExtractorOption func(*ExtractorConfig)

func WithMaxOutlinks(n int) ExtractorOption {
	return func(c *ExtractorConfig) { c.MaxOutlinks = n }
}

func WithTreatFramesAsEmbedLinks(v bool) ExtractorOption {
	return func(c *ExtractorConfig) { c.TreatFramesAsEmbedLinks = v }
}

func WithObeyRelNofollow(v bool) ExtractorOption {
	return func(c *ExtractorConfig) { c.ObeyRelNofollow = v }
}

func WithClassifyLinkPosition(v bool) ExtractorOption {
	return func(c *ExtractorConfig) { c.ClassifyLinkPosition = v }
}

func WithImpliedURI(trigger, format string, removeTrigger bool) ExtractorOption {
	return func(c *ExtractorConfig) {
		c.ImpliedURITrigger = trigger
		c.ImpliedURIFormat = format
		c.ImpliedURIRemoveTrigger = removeTrigger
	}
}

// NewExtractorConfig builds a config from defaults plus options.
func NewExtractorConfig(opts ...ExtractorOption) *ExtractorConfig {
	cfg := NewDefaultExtractorConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// LoadConfig reads a YAML file and merges it on top of the defaults,
// matching the reference crawler's config-file-over-struct-defaults
// layering.
func LoadConfig(path string) (*ExtractorConfig, error) {
	cfg := NewDefaultExtractorConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
