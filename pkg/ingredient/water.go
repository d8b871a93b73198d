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

// Water is the water still to be added to reach the dough hydration once the
// water held by preferments is accounted for.
type Water struct {
	noFacets
	mass      measure.Gram
	target    measure.Gram
	excess    measure.Gram
	hydration DoughHydrationPercent
}

// NewWater computes the water to add so that the recipe's total water equals
// totalFlour * hydration. When the preferments already hold more water than
// that, no water is added and the surplus is reported by Excess.
func NewWater(totalFlour measure.Gram, hydration DoughHydrationPercent, preferments ...Ingredient) Water {
	target := hydration.Of(totalFlour)
	held := measure.Zero
	for _, p := range preferments {
		held = held.Add(p.Water())
	}

	w := Water{target: target, hydration: hydration}
	if held.GreaterThan(target) {
		w.excess = mustSub(held, target)
		return w
	}
	w.mass = mustSub(target, held)
	return w
}

// Kind implements Ingredient.
func (w Water) Kind() Kind { return KindWater }

// Name implements Ingredient.
func (w Water) Name() string { return "water" }

// Water implements Ingredient.
func (w Water) Water() measure.Gram { return w.mass }

// Total implements Ingredient.
func (w Water) Total() measure.Gram { return facetTotal(w) }

// Target returns the recipe's total water, preferment water included.
func (w Water) Target() measure.Gram { return w.target }

// Excess returns how much the preferments' water overshoots Target.
func (w Water) Excess() measure.Gram { return w.excess }

// Hydration returns the dough hydration the water was computed for.
func (w Water) Hydration() DoughHydrationPercent { return w.hydration }

// Describe implements Ingredient.
func (w Water) Describe(r *report.Report, recipeTotal measure.Gram) {
	comment := fmt.Sprintf("%s hydration", w.hydration)
	if !w.excess.IsZero() {
		comment += fmt.Sprintf(", preferments exceed it by %s", w.excess)
	}
	r.Add(report.Row{
		Name:    "WATER",
		Mass:    w.mass,
		OfFlour: r.FlourShare(w.mass),
		OfTotal: w.mass.RatioOf(recipeTotal),
		Comment: comment,
	})
}
