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

package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/crumbworks/crumb/pkg/measure"
)

// Row is a single line of a recipe report. Top level ingredient rows carry a
// Name; component rows (the flour and water of a preferment, the fractions of
// a flour mix) leave Name empty and set Component instead.
type Row struct {
	Name      string         `json:"name,omitempty" yaml:"name,omitempty"`
	Component string         `json:"component,omitempty" yaml:"component,omitempty"`
	Mass      measure.Gram   `json:"mass" yaml:"mass"`
	OfFlour   *measure.Ratio `json:"ofFlour,omitempty" yaml:"ofFlour,omitempty"`
	OfTotal   measure.Ratio  `json:"ofTotal" yaml:"ofTotal"`
	Comment   string         `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// Report collects the rows every ingredient appends about itself.
// Percent-of-flour shares are computed against TotalFlour.
type Report struct {
	TotalFlour measure.Gram `json:"totalFlour" yaml:"totalFlour"`
	Rows       []Row        `json:"rows" yaml:"rows"`
}

// New creates an empty report for a recipe with the given total flour.
func New(totalFlour measure.Gram) *Report {
	return &Report{
		TotalFlour: totalFlour,
		Rows:       make([]Row, 0),
	}
}

// Add appends rows to the report.
func (r *Report) Add(rows ...Row) {
	r.Rows = append(r.Rows, rows...)
}

// Len returns the number of rows.
func (r *Report) Len() int {
	return len(r.Rows)
}

// FlourShare returns g as a percentage of the report's total flour,
// or nil when the total flour is zero.
func (r *Report) FlourShare(g measure.Gram) *measure.Ratio {
	if r.TotalFlour.IsZero() {
		return nil
	}
	share := g.RatioOf(r.TotalFlour)
	return &share
}

// Find returns the first top level row with the given name, ignoring case.
func (r *Report) Find(name string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Name != "" && strings.EqualFold(row.Name, name) {
			return row, true
		}
	}
	return Row{}, false
}

// WriteTable renders the report as an aligned text table.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "INGREDIENT\tCOMPONENT\tMASS\tFLOUR %\tTOTAL %\tCOMMENT")
	for _, row := range r.Rows {
		ofFlour := ""
		if row.OfFlour != nil {
			ofFlour = row.OfFlour.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Name, row.Component, row.Mass, ofFlour, row.OfTotal, row.Comment)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush report table: %w", err)
	}
	return nil
}
