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

// Package api wires the crumbd HTTP API.
//
// Serve configures structured logging, registers the recipe routes and hands
// the lifecycle to pkg/server:
//
//	func main() {
//	    if err := api.Serve(); err != nil {
//	        os.Exit(1)
//	    }
//	}
//
// # Endpoints
//
//	GET  /v1/recipe?mass=1000&flour=White:60&flour=Rye:40&preferment=starter:10:100
//	POST /v1/recipe       JSON or YAML request body
//	GET  /v1/preferments  registered preferment ids
//
// Health, readiness and metrics endpoints come from pkg/server.
package api
