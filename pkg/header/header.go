// Copyright (c) 2025, The crumb Authors. All rights reserved.
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

package header

import (
	"fmt"
	"time"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
)

// APIVersion is the schema version of every crumb document.
const APIVersion = "crumb.dev/v1"

// Kind represents the type of a crumb document.
type Kind string

const (
	KindRecipeRequest  Kind = "RecipeRequest"
	KindRecipe         Kind = "Recipe"
	KindPrefermentList Kind = "PrefermentList"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindRecipeRequest, KindRecipe, KindPrefermentList:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the Header.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a Header with the provided functional options.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header identifies a crumb document. Documents embed it inline so that
// kind, apiVersion and metadata sit at the top level of their JSON and YAML.
type Header struct {
	Kind       Kind              `json:"kind,omitempty" yaml:"kind,omitempty"`
	APIVersion string            `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Metadata keys set by Init.
const (
	MetadataTimestamp = "timestamp"
	MetadataVersion   = "version"
)

// Init stamps the Header with kind, apiVersion, the current UTC time and,
// when not empty, the version of the tool that produced the document.
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	h.Metadata[MetadataTimestamp] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata[MetadataVersion] = version
	}
}

// Version returns the producing tool version, if recorded.
func (h *Header) Version() string {
	return h.Metadata[MetadataVersion]
}

// Timestamp returns the time the document was produced.
func (h *Header) Timestamp() (time.Time, bool) {
	s, ok := h.Metadata[MetadataTimestamp]
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Check verifies that a decoded document is of the expected kind.
// Documents without kind and apiVersion are accepted as is.
func (h *Header) Check(expected Kind) error {
	if h.Kind == "" && h.APIVersion == "" {
		return nil
	}
	if h.Kind != expected {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unexpected document kind %q, want %q", h.Kind, expected),
			map[string]any{"kind": h.Kind.String(), "expected": expected.String()})
	}
	if h.APIVersion != "" && h.APIVersion != APIVersion {
		return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("unsupported apiVersion %q, want %q", h.APIVersion, APIVersion),
			map[string]any{"apiVersion": h.APIVersion, "supported": APIVersion})
	}
	return nil
}
