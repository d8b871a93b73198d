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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/measure"
	"github.com/crumbworks/crumb/pkg/report"
)

var hundredPercent = measure.MustPercent[measure.RatioBounds](100)

// FlourFraction is one named flour of a mix, sized as a share of total flour.
type FlourFraction struct {
	name       string
	ratio      FlourPercent
	repurposed measure.Gram
	total      measure.Gram
}

// Name returns the capitalized flour name.
func (f FlourFraction) Name() string { return f.name }

// Ratio returns the fraction's share of total flour.
func (f FlourFraction) Ratio() FlourPercent { return f.ratio }

// Repurposed returns the flour taken from this fraction by preferments.
func (f FlourFraction) Repurposed() measure.Gram { return f.repurposed }

// Gross returns the fraction's full share of total flour.
func (f FlourFraction) Gross() measure.Gram {
	return f.ratio.Of(f.total)
}

// Flour returns the flour still to be added: Gross minus Repurposed.
func (f FlourFraction) Flour() measure.Gram {
	added, err := f.Gross().Sub(f.repurposed)
	if err != nil {
		// Repurpose never takes more than the added flour.
		panic(err)
	}
	return added
}

// FlourMix is the ordered set of flour fractions of a recipe.
//
// A FlourMix is a persistent value: AddFlour and Repurpose return a new mix
// and leave the receiver untouched, so a mix can be shared freely.
type FlourMix struct {
	noFacets
	total     measure.Gram
	fractions []FlourFraction
}

// NewFlourMix creates an empty mix for the given total flour.
func NewFlourMix(totalFlour measure.Gram) FlourMix {
	return FlourMix{total: totalFlour}
}

// TotalFlour returns the recipe's total flour, preferment flour included.
func (m FlourMix) TotalFlour() measure.Gram { return m.total }

// Len returns the number of fractions.
func (m FlourMix) Len() int { return len(m.fractions) }

// Fractions returns a copy of the fractions in insertion order.
func (m FlourMix) Fractions() []FlourFraction {
	out := make([]FlourFraction, len(m.fractions))
	copy(out, m.fractions)
	return out
}

// Fraction returns the i-th fraction.
func (m FlourMix) Fraction(i int) FlourFraction { return m.fractions[i] }

// GrossFlour returns the full share of the i-th fraction.
func (m FlourMix) GrossFlour(i int) measure.Gram { return m.fractions[i].Gross() }

// FractionFlour returns the flour still to be added for the i-th fraction.
func (m FlourMix) FractionFlour(i int) measure.Gram { return m.fractions[i].Flour() }

// AddFlour returns a new mix with the named fraction appended.
// A zero or out of range ratio and a cumulative sum above 100% are rejected.
func (m FlourMix) AddFlour(name string, ratio FlourPercent) (FlourMix, error) {
	if _, ok := measure.ValidPercent[FlourBounds](ratio.Encoded()); !ok {
		lo, hi := measure.Range[FlourBounds]()
		return m, cerrors.NewWithContext(cerrors.ErrCodeInvalidRatio,
			fmt.Sprintf("flour ratio %s must be between %d%% and %d%% inclusive", ratio, lo, hi),
			map[string]any{"name": name, "value": ratio.String(), "min": lo, "max": hi})
	}

	sum := m.ratioSum().Add(ratio.Value())
	if sum.GreaterThan(hundredPercent.Value()) {
		return m, cerrors.NewWithContext(cerrors.ErrCodeInvalidFlourRatios,
			fmt.Sprintf("flour ratios must not exceed 100%%, adding %s %s gives %s%%", name, ratio, sum),
			map[string]any{"name": name, "ratio": ratio.String(), "sum": sum.String()})
	}

	fractions := make([]FlourFraction, len(m.fractions), len(m.fractions)+1)
	copy(fractions, m.fractions)
	fractions = append(fractions, FlourFraction{
		name:  capitalize(name),
		ratio: ratio,
		total: m.total,
	})
	return FlourMix{total: m.total, fractions: fractions}, nil
}

// AddFlourDescriptor parses "<name>:<percent>" and adds the fraction.
func (m FlourMix) AddFlourDescriptor(desc string) (FlourMix, error) {
	name, ratio, err := ParseFlourDescriptor(desc)
	if err != nil {
		return m, err
	}
	return m.AddFlour(name, ratio)
}

// ParseFlourDescriptor parses "<name>:<integer percent>", e.g. "white:80".
func ParseFlourDescriptor(desc string) (string, FlourPercent, error) {
	name, pct, ok := strings.Cut(desc, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", FlourPercent{}, invalidFlourDescriptor(desc, nil)
	}
	whole, err := strconv.ParseUint(strings.TrimSpace(pct), 10, 64)
	if err != nil {
		return "", FlourPercent{}, invalidFlourDescriptor(desc, err)
	}
	ratio, err := measure.PercentOf[FlourBounds](whole)
	if err != nil {
		return "", FlourPercent{}, err
	}
	return name, ratio, nil
}

// TotalRatio returns the sum of all fraction ratios. It fails with
// INSUFFICIENT_FLOUR_RATIOS, carrying the actual sum, unless the sum is
// exactly 100%.
func (m FlourMix) TotalRatio() (measure.Ratio, error) {
	sum := m.ratioSum()
	if !sum.Equal(hundredPercent.Value()) {
		return measure.Ratio{}, cerrors.NewWithContext(cerrors.ErrCodeInsufficientFlourRatios,
			fmt.Sprintf("flour ratios must total exactly 100%%, got %s%%", sum),
			map[string]any{"actual": sum.String()})
	}
	return hundredPercent, nil
}

func (m FlourMix) ratioSum() decimal.Decimal {
	ratios := make([]FlourPercent, len(m.fractions))
	for i, f := range m.fractions {
		ratios[i] = f.ratio
	}
	return measure.SumPercents(ratios...)
}

// Repurpose returns a new mix with the flour of ing taken from the
// fractions in insertion order. The mix must be complete. When the mix
// cannot cover the demand, INSUFFICIENT_FLOUR is returned along with the
// unchanged receiver.
func (m FlourMix) Repurpose(ing Ingredient) (FlourMix, error) {
	if _, err := m.TotalRatio(); err != nil {
		return m, err
	}

	requested := ing.Flour()
	demand := requested
	fractions := m.Fractions()
	for i := range fractions {
		if demand.IsZero() {
			break
		}
		used := measure.MinGram(fractions[i].Flour(), demand)
		demand = mustSub(demand, used)
		fractions[i].repurposed = fractions[i].repurposed.Add(used)
	}

	if !demand.IsZero() {
		available := m.Flour()
		return m, cerrors.NewWithContext(cerrors.ErrCodeInsufficientFlour,
			fmt.Sprintf("insufficient flour: available %s, requested %s", available, requested),
			map[string]any{
				"available":  available.String(),
				"requested":  requested.String(),
				"ingredient": ing.Name(),
			})
	}
	return FlourMix{total: m.total, fractions: fractions}, nil
}

// RepurposeAll applies Repurpose for each ingredient in order.
// On failure the receiver is returned unchanged.
func (m FlourMix) RepurposeAll(ings ...Ingredient) (FlourMix, error) {
	out := m
	for _, ing := range ings {
		next, err := out.Repurpose(ing)
		if err != nil {
			return m, err
		}
		out = next
	}
	return out, nil
}

// Kind implements Ingredient.
func (m FlourMix) Kind() Kind { return KindFlour }

// Name implements Ingredient.
func (m FlourMix) Name() string { return "flour" }

// Flour implements Ingredient. It is the flour still to be added across
// all fractions.
func (m FlourMix) Flour() measure.Gram {
	total := measure.Zero
	for _, f := range m.fractions {
		total = total.Add(f.Flour())
	}
	return total
}

// Total implements Ingredient.
func (m FlourMix) Total() measure.Gram { return facetTotal(m) }

// Describe implements Ingredient.
func (m FlourMix) Describe(r *report.Report, recipeTotal measure.Gram) {
	flour := m.Flour()
	r.Add(report.Row{
		Name:    "FLOUR",
		Mass:    flour,
		OfFlour: r.FlourShare(flour),
		OfTotal: flour.RatioOf(recipeTotal),
		Comment: fmt.Sprintf("%s total flour", m.total),
	})
	for _, f := range m.fractions {
		comment := fmt.Sprintf("%s of flour", f.ratio)
		if !f.repurposed.IsZero() {
			comment += fmt.Sprintf(", %s in preferments", f.repurposed)
		}
		r.Add(report.Row{
			Component: f.name,
			Mass:      f.Flour(),
			OfFlour:   r.FlourShare(f.Flour()),
			OfTotal:   f.Flour().RatioOf(recipeTotal),
			Comment:   comment,
		})
	}
}

func capitalize(name string) string {
	return cases.Title(language.Und).String(strings.TrimSpace(name))
}

func mustSub(a, b measure.Gram) measure.Gram {
	diff, err := a.Sub(b)
	if err != nil {
		panic(err)
	}
	return diff
}

func invalidFlourDescriptor(desc string, cause error) error {
	msg := fmt.Sprintf("invalid flour descriptor %q, expected <name>:<percent>", desc)
	ctx := map[string]any{"descriptor": desc}
	if cause != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeInvalidFlourDescriptor, msg, cause, ctx)
	}
	return cerrors.NewWithContext(cerrors.ErrCodeInvalidFlourDescriptor, msg, ctx)
}
