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
	"context"
	"fmt"
	"log/slog"
	"time"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/header"
	"github.com/crumbworks/crumb/pkg/ingredient"
	"github.com/crumbworks/crumb/pkg/report"
)

// Option is a functional option for configuring Builder.
type Option func(*Builder)

// WithVersion sets the version stamped on every built recipe.
func WithVersion(version string) Option {
	return func(b *Builder) {
		b.Version = version
	}
}

// WithPrefermentRegistry sets the registry used to resolve preferment descriptors.
func WithPrefermentRegistry(r *ingredient.Registry) Option {
	return func(b *Builder) {
		if r != nil {
			b.registry = r
		}
	}
}

// Builder calculates recipes. It is safe for concurrent use.
type Builder struct {
	Version  string
	registry *ingredient.Registry
}

// NewBuilder creates a Builder using the default preferment registry
// unless another one is supplied.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		registry: ingredient.DefaultRegistry(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Registry returns the preferment registry the builder resolves against.
func (b *Builder) Registry() *ingredient.Registry {
	return b.registry
}

// Build calculates the recipe described by req.
//
// The flour mix must total 100% before preferments are built. Each
// preferment then takes its flour from the mix in order, and water, salt
// and enrichments are derived from the total flour.
func (b *Builder) Build(ctx context.Context, req *Request) (*Recipe, error) {
	start := time.Now()
	rec, err := b.build(ctx, req)
	recipeBuildDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		code := cerrors.CodeOf(err)
		if code == "" {
			code = cerrors.ErrCodeInternal
		}
		recipeBuildFailures.WithLabelValues(string(code)).Inc()
		return nil, err
	}
	return rec, nil
}

func (b *Builder) build(ctx context.Context, req *Request) (*Recipe, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	total := *req.Mass
	mix := ingredient.NewFlourMix(total)
	for _, desc := range req.Flours {
		var err error
		if mix, err = mix.AddFlourDescriptor(desc); err != nil {
			return nil, err
		}
	}
	if _, err := mix.TotalRatio(); err != nil {
		return nil, err
	}

	preferments := make([]ingredient.Ingredient, 0, len(req.Preferments))
	for _, desc := range req.Preferments {
		if err := ctx.Err(); err != nil {
			return nil, cerrors.Wrap(cerrors.ErrCodeTimeout, "recipe build canceled", err)
		}
		p, err := b.registry.Build(desc, total)
		if err != nil {
			return nil, err
		}
		if mix, err = mix.Repurpose(p); err != nil {
			return nil, err
		}
		recipePreferments.WithLabelValues(p.Name()).Inc()
		preferments = append(preferments, p)
	}

	water := ingredient.NewWater(total, *req.Hydration, preferments...)
	if !water.Excess().IsZero() {
		slog.Warn("preferments exceed dough hydration, no water added",
			"target", water.Target().String(),
			"excess", water.Excess().String())
	}

	salt := ingredient.NewSalt(total, *req.Salt)

	enrichments := make([]ingredient.Ingredient, 0, len(req.Enrichments))
	for _, desc := range req.Enrichments {
		e, err := ingredient.ParseEnrichment(desc, total)
		if err != nil {
			return nil, err
		}
		enrichments = append(enrichments, e)
	}

	ings := make([]ingredient.Ingredient, 0, 3+len(enrichments)+len(preferments))
	ings = append(ings, mix, water, salt)
	ings = append(ings, enrichments...)
	ings = append(ings, preferments...)

	totals := ingredient.Tally(ings...)
	if !totals.Flour.Equal(total) {
		return nil, cerrors.NewWithContext(cerrors.ErrCodeInternal,
			fmt.Sprintf("flour is not conserved: requested %s, allocated %s", total, totals.Flour),
			map[string]any{"requested": total.String(), "allocated": totals.Flour.String()})
	}

	rep := report.New(total)
	for _, it := range ings {
		it.Describe(rep, totals.Total)
	}

	summary := Summary{
		TotalWeight:     totals.Total,
		Flour:           totals.Flour,
		Water:           totals.Water,
		Salt:            totals.Salt,
		Other:           totals.Other,
		PrefermentFlour: totals.PrefermentFlour,
		PrefermentWater: totals.PrefermentWater,
		Hydration:       totals.Hydration(),
	}
	if excess := water.Excess(); !excess.IsZero() {
		summary.WaterExcess = &excess
	}

	slog.Debug("recipe built",
		"flour", totals.Flour.String(),
		"water", totals.Water.String(),
		"total", totals.Total.String(),
		"preferments", len(preferments))

	rec := &Recipe{
		Request:     req,
		Summary:     summary,
		Report:      rep,
		ingredients: ings,
	}
	rec.Init(header.KindRecipe, header.APIVersion, b.Version)
	return rec, nil
}
