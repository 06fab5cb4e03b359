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

// extract is a diagnostic CLI around the htmlscout extractor: fetch one
// or more URLs, run link extraction on each, print each outlink one per
// line. Multiple URLs are fetched and extracted concurrently, bounded
// by --concurrency.
//
// Usage:
//
//	extract [--robots POLICY] [--config FILE] [--concurrency N] URL...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/agentberlin/htmlscout"
	"github.com/kennygrant/sanitize"
)

func main() {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	robotsPolicy := fs.String("robots", "obey", `robots handling: "obey" or "ignore"`)
	configPath := fs.String("config", "", "path to a YAML extractor config")
	timeout := fs.Duration("timeout", 20*time.Second, "fetch timeout")
	saveDir := fs.String("save", "", "if set, write each fetched body under this directory using a sanitized file name")
	concurrency := fs.Int("concurrency", 4, "max concurrent fetch+extract operations across the given URLs")
	fs.Parse(os.Args[1:])

	args := fs.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: extract [--robots obey|ignore] [--config FILE] [--save DIR] [--concurrency N] URL...")
		os.Exit(1)
	}

	if err := run(args, *robotsPolicy, *configPath, *saveDir, *timeout, *concurrency); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// sanitizedFileName derives a safe on-disk file name from a fetched
// URL's final path segment, falling back to "index" for an empty one.
func sanitizedFileName(target string) string {
	base := target
	if idx := strings.LastIndexAny(base, "/\\"); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.SplitN(base, "?", 2)[0]
	if base == "" {
		base = "index"
	}
	ext := filepath.Ext(base)
	cleanExt := sanitize.BaseName(ext)
	if cleanExt == "" {
		return sanitize.BaseName(base) + ".html"
	}
	return strings.Replace(fmt.Sprintf(
		"%s.%s",
		sanitize.BaseName(base[:len(base)-len(ext)]),
		strings.TrimPrefix(cleanExt, "."),
	), "-", "_", -1)
}

// run fetches and extracts every target, fanning the work out across a
// htmlscout.WorkerPool so concurrent fetches never exceed concurrency
// in flight at once. Results are printed as each target finishes;
// printMu keeps one target's lines from interleaving with another's.
func run(targets []string, robotsPolicyName, configPath, saveDir string, timeout time.Duration, concurrency int) error {
	policy, err := htmlscout.PolicyByName(robotsPolicyName)
	if err != nil {
		return err
	}

	cfg := htmlscout.NewDefaultExtractorConfig()
	if configPath != "" {
		cfg, err = htmlscout.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	pool := htmlscout.NewWorkerPool(ctx, concurrency, len(targets))

	var (
		wg       sync.WaitGroup
		printMu  sync.Mutex
		errMu    sync.Mutex
		firstErr error
	)

	for _, target := range targets {
		target := target
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			if err := extractOne(ctx, target, cfg, policy, saveDir, &printMu); err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMu.Unlock()
				fmt.Fprintf(os.Stderr, "Error: %s: %v\n", target, err)
			}
		})
		if submitErr != nil {
			wg.Done()
			return fmt.Errorf("submit %s: %w", target, submitErr)
		}
	}

	wg.Wait()
	pool.Close()
	return firstErr
}

// extractOne fetches a single target, optionally saves its body, runs
// extraction, and prints the resulting outlinks and annotations.
func extractOne(ctx context.Context, target string, cfg *htmlscout.ExtractorConfig, policy htmlscout.RobotsPolicy, saveDir string, printMu *sync.Mutex) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if saveDir != "" {
		if err := os.MkdirAll(saveDir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", saveDir, err)
		}
		dest := filepath.Join(saveDir, sanitizedFileName(target))
		if err := os.WriteFile(dest, body, 0o644); err != nil {
			return fmt.Errorf("save %s: %w", dest, err)
		}
		printMu.Lock()
		fmt.Fprintf(os.Stderr, "saved %s\n", dest)
		printMu.Unlock()
	}

	doc := htmlscout.NewDocument(target, resp.Header.Get("Content-Type"), string(body))
	completed, err := htmlscout.Extract(ctx, doc, cfg, policy)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	printMu.Lock()
	defer printMu.Unlock()
	if !completed {
		fmt.Fprintf(os.Stderr, "%s: extraction skipped or aborted (see annotations)\n", target)
	}
	for _, link := range doc.Outlinks() {
		fmt.Printf("%s %s %s\n", link.Target, link.Hop, link.Context)
	}
	for _, a := range doc.Annotations() {
		fmt.Fprintf(os.Stderr, "%s: annotation: %s\n", target, a)
	}
	return nil
}
