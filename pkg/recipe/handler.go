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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/crumbworks/crumb/pkg/defaults"
	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/serializer"
	"github.com/crumbworks/crumb/pkg/server"
)

var (
	// recipeCacheTTL can be overridden for testing or custom configurations
	recipeCacheTTL = defaults.RecipeCacheTTL
)

// HandleRecipe calculates a recipe from GET query parameters or a POST body
// in JSON or YAML. The same request always yields the same quantities, so
// responses are cacheable.
func (b *Builder) HandleRecipe(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecipeHandlerTimeout)
	defer cancel()

	var (
		req *Request
		err error
	)

	switch r.Method {
	case http.MethodGet:
		req, err = ParseRequestFromValues(r.URL.Query())
	case http.MethodPost:
		body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)
		defer body.Close()
		req, err = ParseRequestFromBody(body, r.Header.Get("Content-Type"))
	default:
		w.Header().Set("Allow", "GET, POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET", "POST"},
			})
		return
	}

	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid recipe request", nil)
		return
	}

	slog.Debug("recipe request",
		"mass", req.Mass.String(),
		"flours", req.Flours,
		"preferments", req.Preferments,
		"enrichments", req.Enrichments,
	)

	buildCtx, buildCancel := context.WithTimeout(ctx, defaults.RecipeBuildTimeout)
	defer buildCancel()

	result, err := b.Build(buildCtx, req)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to build recipe", nil)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(recipeCacheTTL/time.Second)))
	serializer.RespondJSON(w, http.StatusOK, result)
}

// HandlePreferments lists the registered preferment ids.
func (b *Builder) HandlePreferments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, cerrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{"method": r.Method})
		return
	}
	serializer.RespondJSON(w, http.StatusOK, map[string]any{
		"preferments": b.registry.List(),
	})
}
