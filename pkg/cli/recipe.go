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

package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/crumbworks/crumb/pkg/defaults"
	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/ingredient"
	"github.com/crumbworks/crumb/pkg/measure"
	"github.com/crumbworks/crumb/pkg/recipe"
)

func recipeCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recipe",
		EnableShellCompletion: true,
		Usage:                 "Calculate a recipe from a flour mass and baker's percentages",
		Description: `Calculate ingredient quantities from:
  - Total flour mass, preferment flour included
  - Dough hydration
  - Flour mix, as name:percent descriptors totalling 100%
  - Salt
  - Preferments, as id:portion:hydration descriptors
  - Enrichments, as name:grams or name%percent descriptors

A request file (YAML or JSON, local path or http(s) URL) can supply the same
values. Flags set on the command line override the file.

The recipe can be output in JSON, YAML, or table format.

# Examples

  crumb recipe --mass 1000 --flour White:60 --flour Rye:40 --preferment starter:10:100
  crumb recipe -m 500 -p poolish:20:100 -e Butter%10 --format yaml
  crumb recipe --request brioche.yaml --hydration 65`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mass",
				Aliases: []string{"m"},
				Value:   strconv.Itoa(defaults.RecipeMass),
				Usage:   "Total flour mass in grams, preferment flour included",
				Sources: cli.EnvVars("CRUMB_MASS"),
			},
			&cli.StringFlag{
				Name:    "hydration",
				Aliases: []string{"d"},
				Value:   strconv.Itoa(defaults.RecipeHydration),
				Usage:   "Dough hydration in percent of total flour",
				Sources: cli.EnvVars("CRUMB_HYDRATION"),
			},
			&cli.StringSliceFlag{
				Name:    "flour",
				Aliases: []string{"f"},
				Value:   []string{defaults.RecipeFlour},
				Usage:   "Flour descriptor name:percent, repeatable",
				Sources: cli.EnvVars("CRUMB_FLOUR"),
			},
			&cli.StringFlag{
				Name:    "salt",
				Aliases: []string{"s"},
				Value:   strconv.Itoa(defaults.RecipeSalt),
				Usage:   "Salt in percent of total flour",
				Sources: cli.EnvVars("CRUMB_SALT"),
			},
			&cli.StringSliceFlag{
				Name:    "preferment",
				Aliases: []string{"p"},
				Usage:   "Preferment descriptor id:portion:hydration, repeatable",
				Sources: cli.EnvVars("CRUMB_PREFERMENT"),
			},
			&cli.StringSliceFlag{
				Name:    "enrichment",
				Aliases: []string{"e"},
				Usage:   "Enrichment descriptor name:grams or name%percent, repeatable",
				Sources: cli.EnvVars("CRUMB_ENRICHMENT"),
			},
			&cli.StringFlag{
				Name:    "request",
				Aliases: []string{"r"},
				Usage:   "Path or http(s) URL of a YAML or JSON recipe request",
			},
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := parseOutputFormat(cmd); err != nil {
				return err
			}

			req, err := buildRequestFromCmd(ctx, cmd)
			if err != nil {
				return fmt.Errorf("error parsing recipe input: %w", err)
			}

			buildCtx, cancel := context.WithTimeout(ctx, defaults.CLIRecipeTimeout)
			defer cancel()

			rec, err := recipe.NewBuilder(recipe.WithVersion(version)).Build(buildCtx, req)
			if err != nil {
				return fmt.Errorf("error building recipe: %w", err)
			}

			return writeOutput(ctx, cmd, rec)
		},
	}
}

// buildRequestFromCmd constructs a recipe.Request from the --request file, if
// any, and the command flags. Without a file every flag applies, defaults
// included. With a file only explicitly set flags override it.
func buildRequestFromCmd(ctx context.Context, cmd *cli.Command) (*recipe.Request, error) {
	req := &recipe.Request{}

	path := cmd.String("request")
	if path != "" {
		loaded, err := recipe.LoadRequest(ctx, path)
		if err != nil {
			return nil, err
		}
		req = loaded
	}

	apply := func(flag string) bool {
		return path == "" || cmd.IsSet(flag)
	}

	if apply("mass") {
		s := cmd.String("mass")
		m := measure.ParseGram(s)
		if m.IsZero() {
			return nil, cerrors.NewWithContext(cerrors.ErrCodeInvalidRequest,
				fmt.Sprintf("invalid flour mass %q", s), map[string]any{"mass": s})
		}
		req.Mass = &m
	}

	if apply("hydration") {
		h, err := measure.ParsePercent[ingredient.DoughHydrationBounds](cmd.String("hydration"))
		if err != nil {
			return nil, err
		}
		req.Hydration = &h
	}

	if apply("salt") {
		s, err := measure.ParsePercent[ingredient.SaltBounds](cmd.String("salt"))
		if err != nil {
			return nil, err
		}
		req.Salt = &s
	}

	if apply("flour") {
		if flours := cmd.StringSlice("flour"); len(flours) > 0 {
			req.Flours = flours
		}
	}
	if apply("preferment") {
		req.Preferments = cmd.StringSlice("preferment")
	}
	if apply("enrichment") {
		req.Enrichments = cmd.StringSlice("enrichment")
	}

	req.ApplyDefaults()
	return req, nil
}
