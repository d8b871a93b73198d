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

package recipe

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/crumbworks/crumb/pkg/defaults"
	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/header"
	"github.com/crumbworks/crumb/pkg/ingredient"
	"github.com/crumbworks/crumb/pkg/measure"
	"github.com/crumbworks/crumb/pkg/serializer"
)

// Request describes the recipe to calculate.
//
// Mass is the total flour of the recipe, preferment flour included. Nil
// fields take the values in pkg/defaults once ApplyDefaults runs; a mass that
// is present but zero is rejected by Validate.
type Request struct {
	header.Header `json:",inline" yaml:",inline"`

	Mass        *measure.Gram                     `json:"mass,omitempty" yaml:"mass,omitempty"`
	Hydration   *ingredient.DoughHydrationPercent `json:"hydration,omitempty" yaml:"hydration,omitempty"`
	Flours      []string                          `json:"flours,omitempty" yaml:"flours,omitempty"`
	Salt        *ingredient.SaltPercent           `json:"salt,omitempty" yaml:"salt,omitempty"`
	Preferments []string                          `json:"preferments,omitempty" yaml:"preferments,omitempty"`
	Enrichments []string                          `json:"enrichments,omitempty" yaml:"enrichments,omitempty"`
}

// NewRequest returns a request populated with the default recipe.
func NewRequest() *Request {
	r := &Request{}
	r.ApplyDefaults()
	return r
}

// ApplyDefaults fills every unset field from pkg/defaults.
func (r *Request) ApplyDefaults() {
	if r.Mass == nil {
		m := measure.MustGram(defaults.RecipeMass)
		r.Mass = &m
	}
	if r.Hydration == nil {
		h := measure.MustPercent[ingredient.DoughHydrationBounds](defaults.RecipeHydration)
		r.Hydration = &h
	}
	if len(r.Flours) == 0 {
		r.Flours = []string{defaults.RecipeFlour}
	}
	if r.Salt == nil {
		s := measure.MustPercent[ingredient.SaltBounds](defaults.RecipeSalt)
		r.Salt = &s
	}
}

// Validate checks the request shape. Descriptor contents are validated
// when the recipe is built.
func (r *Request) Validate() error {
	if r == nil {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "recipe request cannot be nil")
	}
	if r.Mass != nil && r.Mass.IsZero() {
		return cerrors.New(cerrors.ErrCodeInvalidRequest, "flour mass must be greater than zero")
	}
	if r.Mass == nil || r.Hydration == nil || r.Salt == nil || len(r.Flours) == 0 {
		return cerrors.New(cerrors.ErrCodeInvalidRequest,
			"mass, hydration, salt and flours are required, apply defaults first")
	}
	for field, list := range map[string][]string{
		"flours":      r.Flours,
		"preferments": r.Preferments,
		"enrichments": r.Enrichments,
	} {
		for i, d := range list {
			if strings.TrimSpace(d) == "" {
				return cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
					fmt.Sprintf("%s[%d] is empty", field, i),
					map[string]any{"field": field, "index": i})
			}
		}
	}
	return nil
}

// LoadRequest reads a request from a YAML or JSON file or an http(s) URL
// and applies the defaults.
func LoadRequest(ctx context.Context, path string) (*Request, error) {
	req, err := serializer.FromFileWithContext[Request](ctx, path)
	if err != nil {
		return nil, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRequest,
			"failed to load recipe request", err, map[string]any{"path": path})
	}
	if err := req.Check(header.KindRecipeRequest); err != nil {
		return nil, err
	}
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req, nil
}

// ParseRequestFromValues builds a request from URL query parameters:
// mass, hydration, salt, and the repeatable flour, preferment and enrichment.
// Repeated values may also be comma separated.
func ParseRequestFromValues(values url.Values) (*Request, error) {
	r := &Request{}

	if s := values.Get("mass"); s != "" {
		m := measure.ParseGram(s)
		if m.IsZero() {
			return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid flour mass %q", s), map[string]any{"mass": s})
		}
		r.Mass = &m
	}

	if s := values.Get("hydration"); s != "" {
		h, err := measure.ParsePercent[ingredient.DoughHydrationBounds](s)
		if err != nil {
			return nil, err
		}
		r.Hydration = &h
	}

	if s := values.Get("salt"); s != "" {
		p, err := measure.ParsePercent[ingredient.SaltBounds](s)
		if err != nil {
			return nil, err
		}
		r.Salt = &p
	}

	r.Flours = listParam(values, "flour")
	r.Preferments = listParam(values, "preferment")
	r.Enrichments = listParam(values, "enrichment")

	r.ApplyDefaults()
	return r, nil
}

// ParseRequestFromBody decodes a JSON or YAML request body according to
// the content type. Unknown content types are decoded as JSON.
func ParseRequestFromBody(body io.Reader, contentType string) (*Request, error) {
	if body == nil {
		return nil, cerrors.New(cerrors.ErrCodeInvalidRequest, "request body cannot be nil")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, cerrors.WrapWithContext(cerrors.ErrCodePayloadTooLarge,
				"request body is too large", err, map[string]any{"limit": tooLarge.Limit})
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidRequest, "request body is empty")
	}

	format := serializer.FormatJSON
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		format = serializer.FormatYAML
	}

	reader, err := serializer.NewReader(format, bytes.NewReader(data))
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to create request reader", err)
	}

	var r Request
	if err := reader.Deserialize(&r); err != nil {
		// a negative mass in a body is malformed input, not an impossible recipe
		if code := cerrors.CodeOf(err); code != "" && code != cerrors.ErrCodeNegativeMass {
			return nil, err
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidRequest,
			fmt.Sprintf("failed to parse %s body", format), err)
	}
	if err := r.Check(header.KindRecipeRequest); err != nil {
		return nil, err
	}
	r.ApplyDefaults()
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func listParam(values url.Values, key string) []string {
	var out []string
	for _, v := range values[key] {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
