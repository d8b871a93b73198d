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
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/crumbworks/crumb/pkg/header"
	"github.com/crumbworks/crumb/pkg/ingredient"
	"github.com/crumbworks/crumb/pkg/measure"
	"github.com/crumbworks/crumb/pkg/report"
)

// Summary holds the recipe level totals.
type Summary struct {
	TotalWeight     measure.Gram  `json:"totalWeight" yaml:"totalWeight"`
	Flour           measure.Gram  `json:"flour" yaml:"flour"`
	Water           measure.Gram  `json:"water" yaml:"water"`
	Salt            measure.Gram  `json:"salt" yaml:"salt"`
	Other           measure.Gram  `json:"other" yaml:"other"`
	PrefermentFlour measure.Gram  `json:"prefermentFlour" yaml:"prefermentFlour"`
	PrefermentWater measure.Gram  `json:"prefermentWater" yaml:"prefermentWater"`
	Hydration       measure.Ratio `json:"hydration" yaml:"hydration"`

	// WaterExcess is set when the preferments alone hold more water than
	// the dough hydration allows.
	WaterExcess *measure.Gram `json:"waterExcess,omitempty" yaml:"waterExcess,omitempty"`
}

// Recipe is a calculated recipe.
type Recipe struct {
	header.Header `json:",inline" yaml:",inline"`

	Request *Request       `json:"request" yaml:"request"`
	Summary Summary        `json:"summary" yaml:"summary"`
	Report  *report.Report `json:"report" yaml:"report"`

	ingredients []ingredient.Ingredient
}

// Ingredients returns the ingredients the recipe was built from, in report order.
func (r *Recipe) Ingredients() []ingredient.Ingredient {
	out := make([]ingredient.Ingredient, len(r.ingredients))
	copy(out, r.ingredients)
	return out
}

// WriteTable renders the summary followed by the ingredient report.
func (r *Recipe) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SUMMARY\t")
	fmt.Fprintf(tw, "Total weight\t%s\n", r.Summary.TotalWeight)
	fmt.Fprintf(tw, "Flour\t%s\n", r.Summary.Flour)
	fmt.Fprintf(tw, "Water (%s)\t%s\n", r.Summary.Hydration, r.Summary.Water)
	fmt.Fprintf(tw, "Salt\t%s\n", r.Summary.Salt)
	if !r.Summary.Other.Equal(r.Summary.Salt) {
		fmt.Fprintf(tw, "Other\t%s\n", r.Summary.Other)
	}
	if r.Summary.WaterExcess != nil {
		fmt.Fprintf(tw, "Water excess\t%s\n", *r.Summary.WaterExcess)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush summary table: %w", err)
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return r.Report.WriteTable(w)
}
