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

// Package server provides the HTTP server behind crumbd.
//
// # Architecture
//
// The server is stateless. Each API handler is wrapped in a middleware chain:
//
//   - Prometheus request metrics (crumb_http_*)
//   - API version negotiation via Accept: application/vnd.crumb.v1+json
//   - Request ID propagation via X-Request-Id
//   - Panic recovery
//   - Token bucket rate limiting (golang.org/x/time/rate)
//   - Request logging at debug level
//
// System endpoints are served without the chain:
//
//	GET /         server name, version, readiness and routes
//	GET /health   liveness
//	GET /ready    readiness, 503 while starting or shutting down
//	GET /metrics  Prometheus metrics
//
// # Usage
//
//	s := server.New(
//	    server.WithName("crumbd"),
//	    server.WithVersion(version),
//	    server.WithHandler(map[string]http.HandlerFunc{
//	        "/v1/recipe": builder.HandleRecipe,
//	    }),
//	)
//	if err := s.Run(ctx); err != nil {
//	    return err
//	}
//
// Run returns after ctx is canceled and in-flight requests have drained or
// the shutdown timeout elapsed.
//
// # Configuration
//
//	PORT                      listen port (default 8080)
//	SHUTDOWN_TIMEOUT_SECONDS  graceful shutdown timeout (default 30)
//
// # Errors
//
// Handlers report failures with WriteError or WriteErrorFromErr. Structured
// errors keep their code; recipe input errors map to 400 or 422, and anything
// unstructured becomes a retryable 500:
//
//	{
//	  "code": "INSUFFICIENT_FLOUR",
//	  "message": "insufficient flour: available 300.00 g, requested 400.00 g",
//	  "details": {"available": "300.00 g", "requested": "400.00 g"},
//	  "requestId": "6f1c...",
//	  "timestamp": "2025-01-01T00:00:00Z",
//	  "retryable": false
//	}
package server
