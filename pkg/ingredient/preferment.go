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

package ingredient

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/measure"
	"github.com/crumbworks/crumb/pkg/report"
)

// PrefermentKind names a preferment technique.
type PrefermentKind string

const (
	// PrefermentStarter is a sourdough starter (levain).
	PrefermentStarter PrefermentKind = "starter"
	// PrefermentTangzhong is a cooked flour and water roux.
	PrefermentTangzhong PrefermentKind = "tangzhong"
	// PrefermentPoolish is a yeasted, usually equal parts, sponge.
	PrefermentPoolish PrefermentKind = "poolish"
)

var one = decimal.NewFromInt(1)

// Preferment is a portion of the dough's flour and water prepared ahead of
// the final mix. Values are immutable; Reset returns a new one.
type Preferment struct {
	noFacets
	kind  PrefermentKind
	flour measure.Gram
	water measure.Gram
	yeast measure.Gram
}

// NewStarter splits a starter of the given total weight into flour and water.
func NewStarter(weight measure.Gram, hydration HydrationPercent) (Preferment, error) {
	if err := validHydration(hydration); err != nil {
		return Preferment{}, err
	}
	return byWeight(PrefermentStarter, weight, hydration)
}

// NewPoolish splits a poolish of the given flour and water weight into flour
// and water. Yeast is added on top at 1% of the water.
func NewPoolish(weight measure.Gram, hydration PoolishHydrationPercent) (Preferment, error) {
	if err := validHydration(hydration); err != nil {
		return Preferment{}, err
	}
	return byWeight(PrefermentPoolish, weight, hydration)
}

// NewTangzhong creates a tangzhong from its flour at the default 200% hydration.
func NewTangzhong(flour measure.Gram) Preferment {
	return NewTangzhongWithHydration(flour, DefaultTangzhongHydration)
}

// NewTangzhongWithHydration creates a tangzhong from its flour and hydration.
func NewTangzhongWithHydration(flour measure.Gram, hydration TangzhongHydrationPercent) Preferment {
	return byFlour(PrefermentTangzhong, flour, hydration)
}

// StarterFromPortion creates a starter holding portion of the total flour.
func StarterFromPortion(totalFlour measure.Gram, portion PortionPercent, hydration HydrationPercent) Preferment {
	return byFlour(PrefermentStarter, portion.Of(totalFlour), hydration)
}

// PoolishFromPortion creates a poolish holding portion of the total flour.
func PoolishFromPortion(totalFlour measure.Gram, portion PortionPercent, hydration PoolishHydrationPercent) Preferment {
	return byFlour(PrefermentPoolish, portion.Of(totalFlour), hydration)
}

// TangzhongFromPortion creates a tangzhong holding portion of the total flour.
func TangzhongFromPortion(totalFlour measure.Gram, portion PortionPercent, hydration TangzhongHydrationPercent) Preferment {
	return byFlour(PrefermentTangzhong, portion.Of(totalFlour), hydration)
}

// byWeight derives flour and water from the combined weight:
// flour = W / (1 + H), water = W - flour.
func byWeight(kind PrefermentKind, weight measure.Gram, hydration measure.Fractional) (Preferment, error) {
	flour, err := weight.DivScalar(hydration.AsDecimal().Add(one))
	if err != nil {
		return Preferment{}, err
	}
	water, err := weight.Sub(flour)
	if err != nil {
		return Preferment{}, err
	}
	return newPreferment(kind, flour, water), nil
}

func byFlour(kind PrefermentKind, flour measure.Gram, hydration measure.Fractional) Preferment {
	return newPreferment(kind, flour, flour.MulRatio(hydration))
}

func newPreferment(kind PrefermentKind, flour, water measure.Gram) Preferment {
	p := Preferment{kind: kind, flour: flour, water: water}
	if kind == PrefermentPoolish {
		p.yeast = PoolishYeast.Of(water)
	}
	return p
}

// Reset returns a preferment of the same kind recomputed for a new flour and
// water weight and hydration. The hydration is checked against the kind's range.
func (p Preferment) Reset(weight measure.Gram, hydration measure.Ratio) (Preferment, error) {
	h, err := hydrationFor(p.kind, hydration.Encoded())
	if err != nil {
		return Preferment{}, err
	}
	return byWeight(p.kind, weight, h)
}

func hydrationFor(kind PrefermentKind, whole uint64) (measure.Fractional, error) {
	switch kind {
	case PrefermentStarter:
		return percentOf[HydrationBounds](whole)
	case PrefermentPoolish:
		return percentOf[PoolishHydrationBounds](whole)
	case PrefermentTangzhong:
		return percentOf[TangzhongHydrationBounds](whole)
	default:
		return nil, cerrors.New(cerrors.ErrCodeUnknownPreferment,
			fmt.Sprintf("unknown preferment: %s", kind))
	}
}

func percentOf[B measure.Bounds](whole uint64) (measure.Fractional, error) {
	p, err := measure.PercentOf[B](whole)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func validHydration[B measure.Bounds](h measure.Percent[B]) error {
	_, err := measure.NewPercent[B](h.Encoded())
	return err
}

// PrefermentKind returns the preferment technique.
func (p Preferment) PrefermentKind() PrefermentKind { return p.kind }

// Kind implements Ingredient.
func (p Preferment) Kind() Kind { return KindPreferment }

// Name implements Ingredient.
func (p Preferment) Name() string { return string(p.kind) }

// Flour implements Ingredient.
func (p Preferment) Flour() measure.Gram { return p.flour }

// Water implements Ingredient.
func (p Preferment) Water() measure.Gram { return p.water }

// Other implements Ingredient. Only a poolish carries yeast.
func (p Preferment) Other() measure.Gram { return p.yeast }

// Total implements Ingredient.
func (p Preferment) Total() measure.Gram { return facetTotal(p) }

// Hydration is recomputed from the current flour and water.
func (p Preferment) Hydration() measure.Ratio {
	return p.water.RatioOf(p.flour)
}

// Describe implements Ingredient.
func (p Preferment) Describe(r *report.Report, recipeTotal measure.Gram) {
	comment := fmt.Sprintf("%s hydration", p.Hydration())
	if share := r.FlourShare(p.flour); share != nil {
		comment += fmt.Sprintf(", %s of total flour", share)
	}

	r.Add(
		report.Row{
			Name:    strings.ToUpper(p.Name()),
			Mass:    p.Total(),
			OfTotal: p.Total().RatioOf(recipeTotal),
			Comment: comment,
		},
		report.Row{
			Component: "flour",
			Mass:      p.flour,
			OfFlour:   r.FlourShare(p.flour),
			OfTotal:   p.flour.RatioOf(recipeTotal),
		},
		report.Row{
			Component: "water",
			Mass:      p.water,
			OfFlour:   r.FlourShare(p.water),
			OfTotal:   p.water.RatioOf(recipeTotal),
		},
	)
	if !p.yeast.IsZero() {
		r.Add(report.Row{
			Component: "yeast",
			Mass:      p.yeast,
			OfFlour:   r.FlourShare(p.yeast),
			OfTotal:   p.yeast.RatioOf(recipeTotal),
		})
	}
}

// ParsePrefermentArgs parses "<portion>:<hydration>", both whole percents.
func ParsePrefermentArgs(args string) (portion, hydration uint64, err error) {
	parts := strings.Split(args, ":")
	if len(parts) != 2 {
		return 0, 0, invalidArgs(args, nil)
	}
	portion, err = strconv.ParseUint(strings.TrimSpace(parts[0]), 10, 64)
	if err != nil {
		return 0, 0, invalidArgs(args, err)
	}
	hydration, err = strconv.ParseUint(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, 0, invalidArgs(args, err)
	}
	return portion, hydration, nil
}

func invalidArgs(args string, cause error) error {
	msg := fmt.Sprintf("invalid preferment arguments %q, expected <portion>:<hydration>", args)
	ctx := map[string]any{"args": args}
	if cause != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeInvalidPrefermentArgs, msg, cause, ctx)
	}
	return cerrors.NewWithContext(cerrors.ErrCodeInvalidPrefermentArgs, msg, ctx)
}
