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
	"errors"
	"fmt"

	whatwgurl "github.com/nlnwa/whatwg-url/url"
)

// ErrBadURI is returned when a string cannot be parsed or resolved as a
// URI. Callers should treat it as non-fatal: drop the one link, keep
// extracting.
var ErrBadURI = errors.New("bad uri")

var uriParser = whatwgurl.NewParser()

// parseAbsoluteURI validates and normalizes an absolute URI string.
func parseAbsoluteURI(raw string) (string, error) {
	u, err := uriParser.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrBadURI, raw, err)
	}
	return u.Href(false), nil
}

// resolveURI resolves ref against base, returning an absolute URI
// string. Both javascript: and mailto: schemed refs parse successfully
// here; callers are responsible for special-casing javascript: before
// calling resolveURI (see handleJavascriptURI).
func resolveURI(base, ref string) (string, error) {
	baseURL, err := uriParser.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: base=%q: %v", ErrBadURI, base, err)
	}
	u, err := uriParser.ParseRef(baseURL, ref)
	if err != nil {
		return "", fmt.Errorf("%w: base=%q ref=%q: %v", ErrBadURI, base, ref, err)
	}
	return u.Href(false), nil
}

// uriScheme returns the lowercase scheme of an absolute URI followed by
// its colon (e.g. "http:"), or "" if it cannot be parsed.
func uriScheme(raw string) string {
	u, err := uriParser.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Protocol()
}

// uriAuthorityMinusUserinfo returns the host[:port] authority component
// of raw with any userinfo (username/password) subcomponent stripped,
// or "" if raw cannot be parsed.
func uriAuthorityMinusUserinfo(raw string) string {
	u, err := uriParser.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host()
}

// uriPath returns the path ("pathname") component of raw, or "" if raw
// cannot be parsed.
func uriPath(raw string) string {
	u, err := uriParser.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Pathname()
}
