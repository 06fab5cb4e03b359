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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveURI(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "relative path", base: "http://h/p/q", ref: "/x", want: "http://h/x"},
		{name: "same dir relative", base: "http://h/p/q", ref: "r", want: "http://h/p/r"},
		{name: "already absolute", base: "http://h/p/q", ref: "http://other/z", want: "http://other/z"},
		{name: "protocol relative", base: "https://h/p", ref: "//cdn.example/x.js", want: "https://cdn.example/x.js"},
		{name: "malformed base", base: "::::", ref: "/x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveURI(tt.base, tt.ref)
			if tt.wantErr {
				assert.Error(t, err, "expected error for base %q ref %q", tt.base, tt.ref)
				return
			}
			require.NoError(t, err, "unexpected error for base %q ref %q", tt.base, tt.ref)
			assert.Equal(t, tt.want, got, "resolveURI(%q, %q) mismatch", tt.base, tt.ref)
		})
	}
}

func TestParseAbsoluteURI(t *testing.T) {
	_, err := parseAbsoluteURI("/just/a/path")
	assert.Error(t, err, "expected error for relative-only input")

	got, err := parseAbsoluteURI("http://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/a", got)
}

func TestURIScheme(t *testing.T) {
	assert.Equal(t, "http:", uriScheme("http://h/p"))
	assert.Equal(t, "https:", uriScheme("https://h/p"))
	assert.Equal(t, "", uriScheme("::::"))
}

func TestURIAuthorityMinusUserinfo(t *testing.T) {
	assert.Equal(t, "h", uriAuthorityMinusUserinfo("http://user:pass@h/p"))
	assert.Equal(t, "h:8080", uriAuthorityMinusUserinfo("http://user:pass@h:8080/p"))
	assert.Equal(t, "", uriAuthorityMinusUserinfo("::::"))
}

func TestURIPath(t *testing.T) {
	assert.Equal(t, "/p/q", uriPath("http://h/p/q"))
	assert.Equal(t, "/photo.jpg", uriPath("http://h/photo.jpg?x=1"))
	assert.Equal(t, "", uriPath("::::"))
}
