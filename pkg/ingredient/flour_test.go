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

package ingredient

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/measure"
)

func mustMix(t *testing.T, total int64, descs ...string) FlourMix {
	t.Helper()
	mix := NewFlourMix(measure.MustGram(total))
	for _, d := range descs {
		var err error
		mix, err = mix.AddFlourDescriptor(d)
		require.NoError(t, err, d)
	}
	return mix
}

// partition splits sum into n positive parts.
func partition(r *rand.Rand, sum, n int) []uint64 {
	parts := make([]uint64, 0, n)
	remaining := sum
	for i := 0; i < n-1; i++ {
		hi := remaining - (n - 1 - i)
		p := 1 + r.IntN(hi)
		parts = append(parts, uint64(p))
		remaining -= p
	}
	return append(parts, uint64(remaining))
}

func TestParseFlourDescriptor(t *testing.T) {
	tests := []struct {
		name     string
		desc     string
		wantName string
		wantPct  uint64
		wantCode cerrors.ErrorCode
	}{
		{name: "simple", desc: "white:80", wantName: "white", wantPct: 80},
		{name: "spaces", desc: " whole wheat : 20 ", wantName: "whole wheat", wantPct: 20},
		{name: "no separator", desc: "white", wantCode: cerrors.ErrCodeInvalidFlourDescriptor},
		{name: "no name", desc: ":80", wantCode: cerrors.ErrCodeInvalidFlourDescriptor},
		{name: "not a number", desc: "white:lots", wantCode: cerrors.ErrCodeInvalidFlourDescriptor},
		{name: "fraction", desc: "white:80.5", wantCode: cerrors.ErrCodeInvalidFlourDescriptor},
		{name: "zero", desc: "white:0", wantCode: cerrors.ErrCodeInvalidRatio},
		{name: "above range", desc: "white:101", wantCode: cerrors.ErrCodeInvalidRatio},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, pct, err := ParseFlourDescriptor(tt.desc)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, cerrors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantPct, pct.Encoded())
		})
	}
}

func TestFlourMix_AddFlour(t *testing.T) {
	mix := NewFlourMix(measure.MustGram(1000))

	next, err := mix.AddFlour("white", measure.MustPercent[FlourBounds](60))
	require.NoError(t, err)
	assert.Equal(t, 0, mix.Len(), "receiver must not change")
	assert.Equal(t, 1, next.Len())
	assert.Equal(t, "White", next.Fraction(0).Name())

	_, err = next.AddFlour("rye", FlourPercent{})
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInvalidRatio, cerrors.CodeOf(err))

	over, err := next.AddFlour("rye", measure.MustPercent[FlourBounds](41))
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInvalidFlourRatios, cerrors.CodeOf(err))
	assert.Contains(t, err.Error(), "101")
	assert.Equal(t, 1, over.Len())

	full, err := next.AddFlour("rye", measure.MustPercent[FlourBounds](40))
	require.NoError(t, err)
	assert.Equal(t, 2, full.Len())
	assert.Equal(t, 1, next.Len())
}

func TestFlourMix_AddFlourSharesNoState(t *testing.T) {
	base := mustMix(t, 1000, "white:50")
	a, err := base.AddFlourDescriptor("rye:50")
	require.NoError(t, err)
	b, err := base.AddFlourDescriptor("spelt:50")
	require.NoError(t, err)

	assert.Equal(t, "Rye", a.Fraction(1).Name())
	assert.Equal(t, "Spelt", b.Fraction(1).Name())
}

func TestFlourMix_Capitalize(t *testing.T) {
	mix := mustMix(t, 100, "WHITE:50", "whole wheat:50")
	assert.Equal(t, "White", mix.Fraction(0).Name())
	assert.Equal(t, "Whole Wheat", mix.Fraction(1).Name())
}

func TestFlourMix_TotalRatio(t *testing.T) {
	_, err := NewFlourMix(measure.MustGram(500)).TotalRatio()
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInsufficientFlourRatios, cerrors.CodeOf(err))

	mix := mustMix(t, 500, "white:70", "rye:20")
	_, err = mix.TotalRatio()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "got 90%")

	var se *cerrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "90", se.Context["actual"])
}

func TestFlourMix_TotalRatioPartitions(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 100))
	for i := 0; i < 200; i++ {
		n := 1 + r.IntN(10)
		mix := NewFlourMix(measure.MustGram(1000))
		for j, p := range partition(r, 100, n) {
			var err error
			mix, err = mix.AddFlour(string(rune('a'+j)), measure.MustPercent[FlourBounds](p))
			require.NoError(t, err)
		}
		total, err := mix.TotalRatio()
		require.NoError(t, err)
		assert.Equal(t, uint64(100), total.Encoded())

		sum := 10 + r.IntN(90)
		short := NewFlourMix(measure.MustGram(1000))
		for j, p := range partition(r, sum, min(n, sum)) {
			short, err = short.AddFlour(string(rune('a'+j)), measure.MustPercent[FlourBounds](p))
			require.NoError(t, err)
		}
		_, err = short.TotalRatio()
		require.Error(t, err)
		var se *cerrors.StructuredError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, strconv.Itoa(sum), se.Context["actual"])
	}
}

func TestFlourMix_GrossFlour(t *testing.T) {
	mix := mustMix(t, 1000, "white:60", "rye:40")
	assert.True(t, mix.GrossFlour(0).Equal(measure.MustGram(600)))
	assert.True(t, mix.GrossFlour(1).Equal(measure.MustGram(400)))
	assert.True(t, mix.Flour().Equal(measure.MustGram(1000)))
}

func TestFlourMix_RepurposeEndToEnd(t *testing.T) {
	mix := mustMix(t, 1000, "f1:60", "f2:40")
	_, err := mix.TotalRatio()
	require.NoError(t, err)

	starter, err := DefaultRegistry().Build("starter:10:100", mix.TotalFlour())
	require.NoError(t, err)
	require.True(t, starter.Flour().Equal(measure.MustGram(100)))

	out, err := mix.Repurpose(starter)
	require.NoError(t, err)

	assert.True(t, out.FractionFlour(0).Equal(measure.MustGram(500)), out.FractionFlour(0).String())
	assert.True(t, out.FractionFlour(1).Equal(measure.MustGram(400)), out.FractionFlour(1).String())
	assert.True(t, out.Flour().Equal(measure.MustGram(900)))
	assert.True(t, out.Fraction(0).Repurposed().Equal(measure.MustGram(100)))

	// the receiver mix is untouched
	assert.True(t, mix.FractionFlour(0).Equal(measure.MustGram(600)))
}

func TestFlourMix_RepurposeFIFOSpill(t *testing.T) {
	mix := mustMix(t, 1000, "a:10", "b:10", "c:80")
	first := NewTangzhong(measure.MustGram(150))
	second := NewTangzhong(measure.MustGram(100))

	out, err := mix.RepurposeAll(first, second)
	require.NoError(t, err)

	assert.True(t, out.FractionFlour(0).IsZero())
	assert.True(t, out.FractionFlour(1).IsZero())
	assert.True(t, out.FractionFlour(2).Equal(measure.MustGram(750)))
	assert.True(t, out.Fraction(1).Repurposed().Equal(measure.MustGram(100)))
	assert.True(t, out.Fraction(2).Repurposed().Equal(measure.MustGram(50)))
}

func TestFlourMix_RepurposeRequiresCompleteMix(t *testing.T) {
	mix := mustMix(t, 1000, "white:60")
	out, err := mix.Repurpose(NewTangzhong(measure.MustGram(10)))
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInsufficientFlourRatios, cerrors.CodeOf(err))
	assert.Equal(t, mix, out)
}

func TestFlourMix_RepurposeOverDemand(t *testing.T) {
	mix := mustMix(t, 100, "white:50", "rye:50")
	mix, err := mix.Repurpose(NewTangzhong(measure.MustGram(60)))
	require.NoError(t, err)

	before := mix.Fractions()
	out, err := mix.Repurpose(NewTangzhong(measure.MustGram(41)))
	require.Error(t, err)
	assert.Equal(t, cerrors.ErrCodeInsufficientFlour, cerrors.CodeOf(err))
	assert.Contains(t, err.Error(), "available 40.00 g, requested 41.00 g")

	assert.Equal(t, before, out.Fractions())
	assert.Equal(t, before, mix.Fractions())
	_, err = out.TotalRatio()
	assert.NoError(t, err)

	_, err = mix.RepurposeAll(NewTangzhong(measure.MustGram(10)), NewTangzhong(measure.MustGram(31)))
	require.Error(t, err)
	assert.Equal(t, before, mix.Fractions())
}

func TestFlourMix_Conservation(t *testing.T) {
	r := rand.New(rand.NewPCG(42, 1))
	reg := DefaultRegistry()
	ids := []string{"starter", "poolish", "tangzhong"}
	hydration := map[string]int{"starter": 50, "poolish": 50, "tangzhong": 100}

	for i := 0; i < 300; i++ {
		total := measure.MustGram(int64(10 + r.IntN(4991)))
		mix := NewFlourMix(total)
		for j, p := range partition(r, 100, 1+r.IntN(6)) {
			var err error
			mix, err = mix.AddFlour(string(rune('a'+j)), measure.MustPercent[FlourBounds](p))
			require.NoError(t, err)
		}

		var prefs []Ingredient
		budget := 100
		for budget > 0 && len(prefs) < 4 {
			portion := 1 + r.IntN(min(30, budget))
			budget -= portion
			id := ids[r.IntN(len(ids))]
			h := hydration[id] + r.IntN(200)
			p, err := reg.Build(id+":"+strconv.Itoa(portion)+":"+strconv.Itoa(h), total)
			require.NoError(t, err)
			prefs = append(prefs, p)
		}

		out, err := mix.RepurposeAll(prefs...)
		require.NoError(t, err)

		prefFlour := Tally(prefs...).Flour
		assert.True(t, out.Flour().Add(prefFlour).Equal(total),
			"added %s + preferments %s != total %s", out.Flour(), prefFlour, total)

		sum := measure.Zero
		for k := 0; k < out.Len(); k++ {
			sum = sum.Add(out.FractionFlour(k))
		}
		expected, err := total.Sub(prefFlour)
		require.NoError(t, err)
		assert.True(t, sum.Equal(expected))
	}
}

func TestFlourMix_ConservationByWeight(t *testing.T) {
	mix := mustMix(t, 1000, "white:70", "rye:30")
	starter, err := NewStarter(measure.MustGram(200), measure.MustPercent[HydrationBounds](70))
	require.NoError(t, err)
	poolish, err := NewPoolish(measure.MustGram(150), measure.MustPercent[PoolishHydrationBounds](130))
	require.NoError(t, err)

	out, err := mix.RepurposeAll(starter, poolish)
	require.NoError(t, err)
	assert.True(t, out.Flour().Add(starter.Flour()).Add(poolish.Flour()).Equal(measure.MustGram(1000)))
}
