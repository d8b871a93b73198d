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
	"io"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/crumbworks/crumb/pkg/header"
	"github.com/crumbworks/crumb/pkg/ingredient"
)

// prefermentList is the output of the preferments command.
type prefermentList struct {
	header.Header `json:",inline" yaml:",inline"`

	Preferments []prefermentInfo `json:"preferments" yaml:"preferments"`
}

type prefermentInfo struct {
	ID         string `json:"id" yaml:"id"`
	Descriptor string `json:"descriptor" yaml:"descriptor"`
}

// WriteTable renders one preferment per line.
func (l prefermentList) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDESCRIPTOR")
	for _, p := range l.Preferments {
		fmt.Fprintf(tw, "%s\t%s\n", p.ID, p.Descriptor)
	}
	return tw.Flush()
}

func newPrefermentList(r *ingredient.Registry) prefermentList {
	ids := r.List()
	l := prefermentList{Preferments: make([]prefermentInfo, 0, len(ids))}
	for _, id := range ids {
		l.Preferments = append(l.Preferments, prefermentInfo{
			ID:         id,
			Descriptor: id + ":<portion>:<hydration>",
		})
	}
	l.Init(header.KindPrefermentList, header.APIVersion, version)
	return l
}

func prefermentsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "preferments",
		EnableShellCompletion: true,
		Usage:                 "List the supported preferments",
		Flags: []cli.Flag{
			outputFlag(),
			formatFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeOutput(ctx, cmd, newPrefermentList(ingredient.DefaultRegistry()))
		},
	}
}
