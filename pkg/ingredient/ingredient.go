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

	"github.com/crumbworks/crumb/pkg/measure"
	"github.com/crumbworks/crumb/pkg/report"
)

// Kind identifies one of the closed set of ingredient kinds.
type Kind string

const (
	KindWater      Kind = "water"
	KindFlour      Kind = "flour"
	KindSalt       Kind = "salt"
	KindEnrichment Kind = "enrichment"
	KindPreferment Kind = "preferment"
)

// Kinds returns every ingredient kind in report order.
func Kinds() []Kind {
	return []Kind{KindFlour, KindWater, KindSalt, KindEnrichment, KindPreferment}
}

// Ingredient is the mass accounting contract shared by every ingredient.
//
// Facets an ingredient does not contribute report zero mass. Total is the
// sum of Water, Flour and Other. The interface is sealed: only the kinds in
// this package implement it.
type Ingredient interface {
	Kind() Kind
	Name() string
	Water() measure.Gram
	Flour() measure.Gram
	Other() measure.Gram
	Total() measure.Gram

	// Describe appends the ingredient's rows to r. recipeTotal is the mass
	// of the whole recipe, used for percent-of-total columns.
	Describe(r *report.Report, recipeTotal measure.Gram)

	sealed()
}

// noFacets supplies zero mass for every facet and seals the interface.
type noFacets struct{}

func (noFacets) Water() measure.Gram { return measure.Zero }
func (noFacets) Flour() measure.Gram { return measure.Zero }
func (noFacets) Other() measure.Gram { return measure.Zero }
func (noFacets) sealed()             {}

type facets interface {
	Water() measure.Gram
	Flour() measure.Gram
	Other() measure.Gram
}

func facetTotal(f facets) measure.Gram {
	return measure.SumGrams(f.Water(), f.Flour(), f.Other())
}

// Totals is the combined mass accounting of a set of ingredients.
type Totals struct {
	Flour measure.Gram `json:"flour" yaml:"flour"`
	Water measure.Gram `json:"water" yaml:"water"`
	Other measure.Gram `json:"other" yaml:"other"`
	Total measure.Gram `json:"total" yaml:"total"`

	// PrefermentFlour is the part of Flour held by preferments.
	PrefermentFlour measure.Gram `json:"prefermentFlour" yaml:"prefermentFlour"`
	// PrefermentWater is the part of Water held by preferments.
	PrefermentWater measure.Gram `json:"prefermentWater" yaml:"prefermentWater"`
	Salt            measure.Gram `json:"salt" yaml:"salt"`
}

// Hydration returns the overall water to flour ratio.
func (t Totals) Hydration() measure.Ratio {
	return t.Water.RatioOf(t.Flour)
}

// Tally adds up the facets of the given ingredients.
func Tally(items ...Ingredient) Totals {
	var t Totals
	for _, it := range items {
		t.Flour = t.Flour.Add(it.Flour())
		t.Water = t.Water.Add(it.Water())
		t.Other = t.Other.Add(it.Other())
		t.Total = t.Total.Add(it.Total())

		switch v := it.(type) {
		case Preferment:
			t.PrefermentFlour = t.PrefermentFlour.Add(v.Flour())
			t.PrefermentWater = t.PrefermentWater.Add(v.Water())
		case Salt:
			t.Salt = t.Salt.Add(v.Other())
		case FlourMix, Water, Enrichment:
		default:
			panic(fmt.Sprintf("unknown ingredient kind %q", it.Kind()))
		}
	}
	return t
}
