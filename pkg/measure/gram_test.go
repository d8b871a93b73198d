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

package measure

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func gram(t *testing.T, s string) Gram {
	t.Helper()
	g, err := NewGram(dec(s))
	require.NoError(t, err)
	return g
}

func TestNewGram(t *testing.T) {
	g, err := NewGram(dec("312.5"))
	require.NoError(t, err)
	assert.Equal(t, "312.50 g", g.String())

	_, err = NewGram(dec("-0.01"))
	require.Error(t, err)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeNegativeMass))

	_, err = GramFromInt(-1)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeNegativeMass))

	assert.Panics(t, func() { MustGram(-5) })
	assert.True(t, Zero.IsZero())
}

func TestParseGram(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "integer", in: "600", want: "600.00 g"},
		{name: "decimal", in: "41.04", want: "41.04 g"},
		{name: "unit suffix", in: "250 g", want: "250.00 g"},
		{name: "padded", in: "  12 ", want: "12.00 g"},
		{name: "garbage resolves to zero", in: "lots", want: "0.00 g"},
		{name: "empty resolves to zero", in: "", want: "0.00 g"},
		{name: "negative resolves to zero", in: "-3", want: "0.00 g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseGram(tt.in).String())
		})
	}
}

func TestGram_Add(t *testing.T) {
	assert.True(t, gram(t, "11.3").Add(gram(t, "11")).Equal(gram(t, "22.3")))
	assert.True(t, SumGrams(gram(t, "1"), gram(t, "2.5"), gram(t, "3")).Equal(gram(t, "6.5")))
	assert.True(t, SumGrams().IsZero())
}

func TestGram_Sub(t *testing.T) {
	got, err := gram(t, "600").Sub(gram(t, "100"))
	require.NoError(t, err)
	assert.True(t, got.Equal(gram(t, "500")))

	got, err = gram(t, "100").Sub(gram(t, "100"))
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = gram(t, "100").Sub(gram(t, "100.01"))
	require.Error(t, err)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeNegativeMass))
	assert.Contains(t, err.Error(), "100.00 g - 100.01 g")
}

func TestGram_Mul(t *testing.T) {
	got, err := gram(t, "11.4").Mul(dec("3.6"))
	require.NoError(t, err)
	assert.True(t, got.Equal(gram(t, "41.04")))

	_, err = gram(t, "1").Mul(dec("-1"))
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeNegativeMass))
}

func TestGram_MulRatio(t *testing.T) {
	p := MustPercent[RatioBounds](60)
	assert.True(t, MustGram(1000).MulRatio(p).Equal(MustGram(600)))
	assert.True(t, p.Of(MustGram(1000)).Equal(MustGram(600)))
}

func TestGram_DivScalar(t *testing.T) {
	got, err := gram(t, "41.04").DivScalar(dec("3.6"))
	require.NoError(t, err)
	assert.True(t, got.Equal(gram(t, "11.4")))

	_, err = gram(t, "1").DivScalar(decimal.Zero)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeInvalidRatio))
}

func TestGram_DivRatio(t *testing.T) {
	got, err := MustGram(100).DivRatio(MustPercent[RatioBounds](10))
	require.NoError(t, err)
	assert.True(t, got.Equal(MustGram(1000)))

	_, err = MustGram(100).DivRatio(Ratio{})
	assert.Error(t, err)
}

func TestGram_Div(t *testing.T) {
	tests := []struct {
		name string
		a, b int64
		want uint64
	}{
		{name: "equal", a: 100, b: 100, want: 100},
		{name: "half", a: 50, b: 100, want: 50},
		{name: "above one hundred", a: 200, b: 100, want: 200},
		{name: "rounds", a: 1, b: 3, want: 33},
		{name: "rounds up", a: 2, b: 3, want: 67},
		{name: "zero", a: 0, b: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := MustGram(tt.a).Div(MustGram(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Encoded())
		})
	}

	_, err := MustGram(1).Div(Zero)
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeInvalidRatio))
	assert.True(t, MustGram(1).RatioOf(Zero).IsZero())
}

func TestGram_RatioOfSaturates(t *testing.T) {
	_, err := MustGram(1_000_000).Div(MustGram(1))
	assert.True(t, cerrors.IsCode(err, cerrors.ErrCodeInvalidRatio))

	r := MustGram(1_000_000).RatioOf(MustGram(1))
	assert.Equal(t, uint64(10_000_000), r.Encoded())
	assert.Equal(t, "10000000%", r.String())

	r = MustGram(100_000).RatioOf(MustGram(1))
	assert.Equal(t, uint64(10_000_000), r.Encoded())
}

func TestGram_Compare(t *testing.T) {
	a, b := MustGram(1), MustGram(2)
	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.Equal(t, -1, a.Cmp(b))
	assert.True(t, MinGram(a, b).Equal(a))
	assert.True(t, MinGram(b, a).Equal(a))
	assert.True(t, gram(t, "1.0").Equal(gram(t, "1.00")))
}

func TestGram_Round(t *testing.T) {
	assert.Equal(t, "33.33 g", gram(t, "33.333333").Round(2).String())
	assert.Equal(t, "0.01 g", gram(t, "0.005").Round(2).String())
}

func TestGram_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Mass Gram `json:"mass"`
	}{Mass: gram(t, "12.5")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"mass": 12.50}`, string(b))

	var in struct {
		A Gram `json:"a"`
		B Gram `json:"b"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 7.25, "b": "3"}`), &in))
	assert.True(t, in.A.Equal(gram(t, "7.25")))
	assert.True(t, in.B.Equal(gram(t, "3")))

	var bad struct {
		A Gram `json:"a"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"a": -1}`), &bad))
}

func TestGram_YAML(t *testing.T) {
	out, err := yaml.Marshal(map[string]Gram{"mass": gram(t, "600")})
	require.NoError(t, err)
	assert.Equal(t, "mass: 600.00\n", string(out))

	var in map[string]Gram
	require.NoError(t, yaml.Unmarshal([]byte("mass: 41.04\n"), &in))
	assert.True(t, in["mass"].Equal(gram(t, "41.04")))

	assert.Error(t, yaml.Unmarshal([]byte("mass: heavy\n"), &in))
}
