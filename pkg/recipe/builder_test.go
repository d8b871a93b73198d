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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/header"
	"github.com/crumbworks/crumb/pkg/ingredient"
	"github.com/crumbworks/crumb/pkg/measure"
)

func newRequest(mass int64, flours []string, preferments ...string) *Request {
	req := NewRequest()
	m := measure.MustGram(mass)
	req.Mass = &m
	req.Flours = flours
	req.Preferments = preferments
	return req
}

func TestBuilder_BuildEndToEnd(t *testing.T) {
	req := newRequest(1000, []string{"f1:60", "f2:40"}, "starter:10:100")

	rec, err := NewBuilder(WithVersion("v1.2.3")).Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "v1.2.3", rec.Version())
	assert.Equal(t, header.KindRecipe, rec.Kind)
	assert.True(t, rec.Summary.Flour.Equal(measure.MustGram(1000)))
	assert.True(t, rec.Summary.Water.Equal(measure.MustGram(700)))
	assert.True(t, rec.Summary.Salt.Equal(measure.MustGram(20)))
	assert.True(t, rec.Summary.TotalWeight.Equal(measure.MustGram(1720)))
	assert.True(t, rec.Summary.PrefermentFlour.Equal(measure.MustGram(100)))
	assert.True(t, rec.Summary.PrefermentWater.Equal(measure.MustGram(100)))
	assert.Equal(t, uint64(70), rec.Summary.Hydration.Encoded())
	assert.Nil(t, rec.Summary.WaterExcess)

	flour, ok := rec.Report.Find("flour")
	require.True(t, ok)
	assert.True(t, flour.Mass.Equal(measure.MustGram(900)))

	water, ok := rec.Report.Find("water")
	require.True(t, ok)
	assert.True(t, water.Mass.Equal(measure.MustGram(600)))

	starter, ok := rec.Report.Find("starter")
	require.True(t, ok)
	assert.True(t, starter.Mass.Equal(measure.MustGram(200)))

	var mix ingredient.FlourMix
	for _, it := range rec.Ingredients() {
		if m, isMix := it.(ingredient.FlourMix); isMix {
			mix = m
		}
	}
	require.Equal(t, 2, mix.Len())
	assert.True(t, mix.FractionFlour(0).Equal(measure.MustGram(500)))
	assert.True(t, mix.FractionFlour(1).Equal(measure.MustGram(400)))
}

func TestBuilder_BuildDefaults(t *testing.T) {
	rec, err := NewBuilder().Build(context.Background(), NewRequest())
	require.NoError(t, err)

	assert.True(t, rec.Summary.Flour.Equal(measure.MustGram(600)))
	assert.True(t, rec.Summary.Water.Equal(measure.MustGram(420)))
	assert.True(t, rec.Summary.Salt.Equal(measure.MustGram(12)))
	assert.True(t, rec.Summary.TotalWeight.Equal(measure.MustGram(1032)))

	row, ok := rec.Report.Find("flour")
	require.True(t, ok)
	assert.Equal(t, uint64(100), row.OfFlour.Encoded())
	assert.Equal(t, "White", rec.Report.Rows[1].Component)
}

func TestBuilder_BuildPreferments(t *testing.T) {
	tests := []struct {
		name        string
		preferments []string
		wantWater   int64 // water still to add
		wantOther   int64
		wantTotal   int64
	}{
		{name: "poolish adds yeast", preferments: []string{"poolish:20:100"}, wantWater: 500, wantOther: 22, wantTotal: 1722},
		{name: "tangzhong default hydration", preferments: []string{"tangzhong:5"}, wantWater: 600, wantOther: 20, wantTotal: 1720},
		{name: "starter and tangzhong", preferments: []string{"starter:10:100", "tangzhong:5:200"}, wantWater: 500, wantOther: 20, wantTotal: 1720},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(1000, []string{"White:100"}, tt.preferments...)
			rec, err := NewBuilder().Build(context.Background(), req)
			require.NoError(t, err)

			water, ok := rec.Report.Find("water")
			require.True(t, ok)
			assert.True(t, water.Mass.Equal(measure.MustGram(tt.wantWater)), water.Mass.String())
			assert.True(t, rec.Summary.Other.Equal(measure.MustGram(tt.wantOther)), rec.Summary.Other.String())
			assert.True(t, rec.Summary.TotalWeight.Equal(measure.MustGram(tt.wantTotal)), rec.Summary.TotalWeight.String())
			assert.True(t, rec.Summary.Flour.Equal(measure.MustGram(1000)))
		})
	}
}

func TestBuilder_BuildWaterExcess(t *testing.T) {
	req := newRequest(1000, []string{"White:100"}, "starter:30:300")
	h := measure.MustPercent[ingredient.DoughHydrationBounds](50)
	req.Hydration = &h

	rec, err := NewBuilder().Build(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, rec.Summary.WaterExcess)
	assert.True(t, rec.Summary.WaterExcess.Equal(measure.MustGram(400)))
	water, ok := rec.Report.Find("water")
	require.True(t, ok)
	assert.True(t, water.Mass.IsZero())
	assert.Contains(t, water.Comment, "exceed")
}

func TestBuilder_BuildEnrichments(t *testing.T) {
	req := newRequest(1000, []string{"White:100"})
	req.Enrichments = []string{"Butter%10", "Egg:50"}

	rec, err := NewBuilder().Build(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, rec.Summary.Other.Equal(measure.MustGram(170)))
	butter, ok := rec.Report.Find("butter")
	require.True(t, ok)
	assert.True(t, butter.Mass.Equal(measure.MustGram(100)))
}

func TestBuilder_BuildOversizedEnrichment(t *testing.T) {
	req := newRequest(10, []string{"White:100"})
	req.Enrichments = []string{"seeds:2000000"}

	rec, err := NewBuilder().Build(context.Background(), req)
	require.NoError(t, err)

	seeds, ok := rec.Report.Find("seeds")
	require.True(t, ok)
	require.NotNil(t, seeds.OfFlour)
	assert.Equal(t, uint64(10_000_000), seeds.OfFlour.Encoded())
	assert.False(t, seeds.OfTotal.IsZero())
}

func TestBuilder_BuildErrors(t *testing.T) {
	tests := []struct {
		name        string
		flours      []string
		preferments []string
		enrichments []string
		wantCode    cerrors.ErrorCode
	}{
		{name: "incomplete mix", flours: []string{"White:60"}, wantCode: cerrors.ErrCodeInsufficientFlourRatios},
		{name: "overfull mix", flours: []string{"White:60", "Rye:50"}, wantCode: cerrors.ErrCodeInvalidFlourRatios},
		{name: "bad flour", flours: []string{"White"}, wantCode: cerrors.ErrCodeInvalidFlourDescriptor},
		{name: "unknown preferment", flours: []string{"White:100"}, preferments: []string{"levain:10:100"}, wantCode: cerrors.ErrCodeUnknownPreferment},
		{name: "bad preferment", flours: []string{"White:100"}, preferments: []string{"starter"}, wantCode: cerrors.ErrCodeInvalidPrefermentDescriptor},
		{name: "bad preferment args", flours: []string{"White:100"}, preferments: []string{"starter:ten:100"}, wantCode: cerrors.ErrCodeInvalidPrefermentArgs},
		{name: "portion out of range", flours: []string{"White:100"}, preferments: []string{"starter:40:100"}, wantCode: cerrors.ErrCodeInvalidRatio},
		{
			name:        "preferments take more than the mix",
			flours:      []string{"White:100"},
			preferments: []string{"starter:30:100", "starter:30:100", "starter:30:100", "starter:30:100"},
			wantCode:    cerrors.ErrCodeInsufficientFlour,
		},
		{name: "bad enrichment", flours: []string{"White:100"}, enrichments: []string{"Butter"}, wantCode: cerrors.ErrCodeInvalidEnrichmentDescriptor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := newRequest(1000, tt.flours, tt.preferments...)
			req.Enrichments = tt.enrichments

			_, err := NewBuilder().Build(context.Background(), req)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cerrors.CodeOf(err), err.Error())
		})
	}
}

func TestBuilder_BuildCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder().Build(ctx, newRequest(1000, []string{"White:100"}, "starter:10:100"))
	require.Error(t, err)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeTimeout))
}

func TestBuilder_CustomRegistry(t *testing.T) {
	reg := ingredient.NewRegistry()
	reg.MustRegister("levain", ingredient.BuildStarter)

	b := NewBuilder(WithPrefermentRegistry(reg))
	assert.Equal(t, []string{"levain"}, b.Registry().List())

	rec, err := b.Build(context.Background(), newRequest(1000, []string{"White:100"}, "levain:10:100"))
	require.NoError(t, err)
	assert.True(t, rec.Summary.PrefermentFlour.Equal(measure.MustGram(100)))

	_, err = b.Build(context.Background(), newRequest(1000, []string{"White:100"}, "starter:10:100"))
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeUnknownPreferment))
}

func TestRecipe_WriteTable(t *testing.T) {
	rec, err := NewBuilder().Build(context.Background(), newRequest(1000, []string{"White:60", "Rye:40"}, "starter:10:100"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, rec.WriteTable(&buf))
	out := buf.String()

	for _, want := range []string{"SUMMARY", "1720.00 g", "INGREDIENT", "FLOUR", "White", "Rye", "STARTER", "SALT"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "FLOUR"), strings.Index(out, "STARTER"))
}
