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

// DefaultSalt is the usual salt share of total flour.
var DefaultSalt = measure.MustPercent[SaltBounds](2)

// Salt is sized as a share of total flour.
type Salt struct {
	noFacets
	mass  measure.Gram
	ratio SaltPercent
}

// NewSalt computes totalFlour * ratio of salt.
func NewSalt(totalFlour measure.Gram, ratio SaltPercent) Salt {
	return Salt{mass: ratio.Of(totalFlour), ratio: ratio}
}

// Kind implements Ingredient.
func (s Salt) Kind() Kind { return KindSalt }

// Name implements Ingredient.
func (s Salt) Name() string { return "salt" }

// Other implements Ingredient.
func (s Salt) Other() measure.Gram { return s.mass }

// Total implements Ingredient.
func (s Salt) Total() measure.Gram { return facetTotal(s) }

// Ratio returns the salt's share of total flour.
func (s Salt) Ratio() SaltPercent { return s.ratio }

// Describe implements Ingredient.
func (s Salt) Describe(r *report.Report, recipeTotal measure.Gram) {
	r.Add(report.Row{
		Name:    "SALT",
		Mass:    s.mass,
		OfFlour: r.FlourShare(s.mass),
		OfTotal: s.mass.RatioOf(recipeTotal),
		Comment: fmt.Sprintf("%s of total flour", s.ratio),
	})
}
