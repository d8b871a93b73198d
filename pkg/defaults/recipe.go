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

package defaults

// Recipe defaults applied when a request leaves a field unset.
const (
	// RecipeMass is the default total flour mass in grams.
	RecipeMass = 600

	// RecipeHydration is the default dough hydration in percent.
	RecipeHydration = 70

	// RecipeFlour is the default flour mix descriptor.
	RecipeFlour = "White:100"

	// RecipeSalt is the default salt in percent of total flour.
	RecipeSalt = 2
)

// Server limits.
const (
	// ServerRateLimit is the sustained number of requests per second.
	ServerRateLimit = 100

	// ServerRateLimitBurst is the number of requests allowed in a burst.
	ServerRateLimitBurst = 200

	// ServerPort is the port the API server listens on when PORT is unset.
	ServerPort = 8080

	// MaxRequestBodyBytes caps the size of a recipe request body.
	MaxRequestBodyBytes = 1 << 20
)
