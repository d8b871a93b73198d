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

// Package recipe calculates complete bread recipes from a Request.
//
// # Overview
//
// A Request names the total flour mass, the dough hydration, the flour mix,
// the salt percentage and any preferments or enrichments. Builder turns it
// into a Recipe: a Summary of the totals plus a report.Report with one row per
// ingredient and component.
//
// # Usage
//
//	req := recipe.NewRequest()
//	mass := measure.MustGram(1000)
//	req.Mass = &mass
//	req.Flours = []string{"White:60", "Rye:40"}
//	req.Preferments = []string{"starter:10:100"}
//
//	rec, err := recipe.NewBuilder(recipe.WithVersion(version)).Build(ctx, req)
//	if err != nil {
//	    return err
//	}
//
// Requests can also be loaded from YAML or JSON with LoadRequest, parsed from
// URL query parameters with ParseRequestFromValues, or from an HTTP body with
// ParseRequestFromBody.
//
// # Calculation
//
//  1. Flour descriptors are added to a FlourMix, which must total 100%.
//  2. Preferments are built from "<id>:<args>" descriptors and take their
//     flour from the mix, first fraction first.
//  3. Water brings the recipe to the dough hydration after the preferment
//     water is deducted. If the preferments already exceed it, no water is
//     added and a warning is logged.
//  4. Salt and percentage based enrichments scale with the total flour.
//
// # HTTP
//
// HandleRecipe serves GET /v1/recipe?mass=1000&flour=White:60&flour=Rye:40
// and POST /v1/recipe with a JSON or YAML body. Errors keep their codes and
// are mapped to HTTP statuses by pkg/server.
//
// # Metrics
//
//   - crumb_recipe_build_duration_seconds
//   - crumb_recipe_build_failures_total{code}
//   - crumb_recipe_preferments_total{kind}
package recipe
