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
	"strings"

	"github.com/shopspring/decimal"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/measure"
	"github.com/crumbworks/crumb/pkg/report"
)

// Enrichment is any addition beyond flour, water and salt: oil, butter,
// sugar, seeds. Its mass counts as Other.
type Enrichment struct {
	noFacets
	name  string
	mass  measure.Gram
	ratio *EnrichmentPercent
}

// NewEnrichment sizes an enrichment as a share of total flour.
func NewEnrichment(name string, totalFlour measure.Gram, ratio EnrichmentPercent) Enrichment {
	return Enrichment{name: capitalize(name), mass: ratio.Of(totalFlour), ratio: &ratio}
}

// NewEnrichmentByMass creates an enrichment with a fixed mass.
func NewEnrichmentByMass(name string, mass measure.Gram) Enrichment {
	return Enrichment{name: capitalize(name), mass: mass}
}

// ParseEnrichment parses "<name>%<ratio>" (share of total flour, one
// fraction digit) or "<name>:<mass>" (grams).
func ParseEnrichment(desc string, totalFlour measure.Gram) (Enrichment, error) {
	if name, pct, ok := strings.Cut(desc, "%"); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			return Enrichment{}, invalidEnrichment(desc, nil)
		}
		ratio, err := measure.ParsePercent[EnrichmentBounds](pct)
		if err != nil {
			if cerrors.IsCode(err, cerrors.ErrCodeInvalidRatio) && !isNumber(pct) {
				return Enrichment{}, invalidEnrichment(desc, err)
			}
			return Enrichment{}, err
		}
		return NewEnrichment(name, totalFlour, ratio), nil
	}

	if name, text, ok := strings.Cut(desc, ":"); ok {
		name = strings.TrimSpace(name)
		d, err := decimal.NewFromString(strings.TrimSpace(text))
		if name == "" || err != nil {
			return Enrichment{}, invalidEnrichment(desc, err)
		}
		mass, err := measure.NewGram(d)
		if err != nil {
			return Enrichment{}, invalidEnrichment(desc, err)
		}
		return NewEnrichmentByMass(name, mass), nil
	}

	return Enrichment{}, invalidEnrichment(desc, nil)
}

func isNumber(s string) bool {
	_, err := decimal.NewFromString(strings.TrimSpace(s))
	return err == nil
}

// Kind implements Ingredient.
func (e Enrichment) Kind() Kind { return KindEnrichment }

// Name implements Ingredient.
func (e Enrichment) Name() string { return e.name }

// Other implements Ingredient.
func (e Enrichment) Other() measure.Gram { return e.mass }

// Total implements Ingredient.
func (e Enrichment) Total() measure.Gram { return facetTotal(e) }

// Ratio returns the share of total flour when the enrichment was sized by
// ratio, and false when it was given by mass.
func (e Enrichment) Ratio() (EnrichmentPercent, bool) {
	if e.ratio == nil {
		return EnrichmentPercent{}, false
	}
	return *e.ratio, true
}

// Describe implements Ingredient.
func (e Enrichment) Describe(r *report.Report, recipeTotal measure.Gram) {
	comment := "by mass"
	if ratio, ok := e.Ratio(); ok {
		comment = fmt.Sprintf("%s of total flour", ratio)
	}
	r.Add(report.Row{
		Name:    strings.ToUpper(e.name),
		Mass:    e.mass,
		OfFlour: r.FlourShare(e.mass),
		OfTotal: e.mass.RatioOf(recipeTotal),
		Comment: comment,
	})
}

func invalidEnrichment(desc string, cause error) error {
	msg := fmt.Sprintf("invalid enrichment descriptor %q, expected <name>%%<ratio> or <name>:<mass>", desc)
	ctx := map[string]any{"descriptor": desc}
	if cause != nil {
		return cerrors.WrapWithContext(cerrors.ErrCodeInvalidEnrichmentDescriptor, msg, cause, ctx)
	}
	return cerrors.NewWithContext(cerrors.ErrCodeInvalidEnrichmentDescriptor, msg, ctx)
}
