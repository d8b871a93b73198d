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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/crumbworks/crumb/pkg/ingredient"
	"github.com/crumbworks/crumb/pkg/logging"
	"github.com/crumbworks/crumb/pkg/recipe"
	"github.com/crumbworks/crumb/pkg/server"
)

const (
	name           = "crumbd"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags, e.g.
	// -X "github.com/crumbworks/crumb/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until SIGINT or SIGTERM.
func Serve() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	s := server.New(
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandler(routes(recipe.NewBuilder(
			recipe.WithVersion(version),
			recipe.WithPrefermentRegistry(ingredient.DefaultRegistry()),
		))),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

func routes(b *recipe.Builder) map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/recipe":      b.HandleRecipe,
		"/v1/preferments": b.HandlePreferments,
	}
}
