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

// Package defaults provides centralized configuration constants for crumb.
//
// This package defines timeout values, server limits and the recipe values
// used when a request leaves a field unset. Centralizing these values keeps
// the CLI and the API server in agreement.
//
// # Timeout Categories
//
//   - Handler timeouts: For HTTP request processing
//   - Server timeouts: For HTTP server configuration
//   - HTTP client timeouts: For fetching remote recipe files
//   - CLI timeouts: For command-line operations
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.RecipeBuildTimeout)
//	defer cancel()
//
// # Recipe Defaults
//
// A request without a mass produces 600 g of dough at 70% hydration,
// all white flour and 2% salt.
package defaults
