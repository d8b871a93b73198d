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
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
)

// displayPlaces is the number of fraction digits used when rendering a Gram.
const displayPlaces = 2

var hundred = decimal.NewFromInt(100)

// Zero is the zero mass.
var Zero = Gram{}

// Gram is a non-negative mass in grams backed by an arbitrary precision decimal.
// Gram values are immutable; every operation returns a new value.
//
// The zero value is 0 g and ready to use.
type Gram struct {
	value decimal.Decimal
}

// Fractional is implemented by values that can act as a multiplier,
// such as any Percent.
type Fractional interface {
	AsDecimal() decimal.Decimal
}

// NewGram creates a Gram from a decimal, rejecting negative values.
func NewGram(d decimal.Decimal) (Gram, error) {
	if d.IsNegative() {
		return Zero, negativeMass(d.String())
	}
	return Gram{value: d}, nil
}

// GramFromInt creates a Gram from a whole number of grams.
func GramFromInt(v int64) (Gram, error) {
	return NewGram(decimal.NewFromInt(v))
}

// MustGram is like GramFromInt but panics on a negative value.
// It is meant for constants and tests.
func MustGram(v int64) Gram {
	g, err := GramFromInt(v)
	if err != nil {
		panic(fmt.Sprintf("invalid gram: %v", err))
	}
	return g
}

// ParseGram converts user supplied text into a Gram.
//
// This is the only lenient conversion in the package: text that cannot be
// represented as a non-negative decimal resolves to Zero. Every other
// constructor reports an error instead.
func ParseGram(text string) Gram {
	s := strings.TrimSpace(text)
	s = strings.TrimSuffix(s, "g")
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return Zero
	}
	return Gram{value: d}
}

// SumGrams returns the sum of all given masses.
func SumGrams(gs ...Gram) Gram {
	total := Zero
	for _, g := range gs {
		total = total.Add(g)
	}
	return total
}

// MinGram returns the smaller of a and b.
func MinGram(a, b Gram) Gram {
	if a.LessThan(b) {
		return a
	}
	return b
}

// Decimal returns the underlying decimal value.
func (g Gram) Decimal() decimal.Decimal { return g.value }

// IsZero reports whether g is 0 g.
func (g Gram) IsZero() bool { return g.value.IsZero() }

// Cmp compares g and o: -1 if g < o, 0 if equal, +1 if g > o.
func (g Gram) Cmp(o Gram) int { return g.value.Cmp(o.value) }

// Equal reports whether g and o represent the same mass regardless of scale.
func (g Gram) Equal(o Gram) bool { return g.value.Equal(o.value) }

// LessThan reports whether g < o.
func (g Gram) LessThan(o Gram) bool { return g.value.LessThan(o.value) }

// GreaterThan reports whether g > o.
func (g Gram) GreaterThan(o Gram) bool { return g.value.GreaterThan(o.value) }

// Add returns g + o.
func (g Gram) Add(o Gram) Gram {
	return Gram{value: g.value.Add(o.value)}
}

// Sub returns g - o. A result below zero is rejected with NEGATIVE_MASS.
func (g Gram) Sub(o Gram) (Gram, error) {
	diff := g.value.Sub(o.value)
	if diff.IsNegative() {
		return Zero, cerrors.NewWithContext(cerrors.ErrCodeNegativeMass,
			fmt.Sprintf("negative mass not allowed: %s - %s", g, o),
			map[string]any{
				"minuend":    g.String(),
				"subtrahend": o.String(),
			})
	}
	return Gram{value: diff}, nil
}

// Mul scales g by a non-negative factor.
func (g Gram) Mul(factor decimal.Decimal) (Gram, error) {
	if factor.IsNegative() {
		return Zero, negativeMass(g.value.Mul(factor).String())
	}
	return Gram{value: g.value.Mul(factor)}, nil
}

// MulRatio scales g by the true fractional value of f (80% scales by 0.8).
func (g Gram) MulRatio(f Fractional) Gram {
	return Gram{value: g.value.Mul(f.AsDecimal())}
}

// DivScalar returns g / divisor. The divisor must be positive.
func (g Gram) DivScalar(divisor decimal.Decimal) (Gram, error) {
	if !divisor.IsPositive() {
		return Zero, divisionByZero(g, divisor.String())
	}
	return Gram{value: g.value.Div(divisor)}, nil
}

// DivRatio returns the mass of which g is the given fraction,
// i.e. g / f.AsDecimal(). A zero fraction is rejected.
func (g Gram) DivRatio(f Fractional) (Gram, error) {
	return g.DivScalar(f.AsDecimal())
}

// Div returns g as a whole percentage of o. The result may exceed 100%.
func (g Gram) Div(o Gram) (Ratio, error) {
	if o.IsZero() {
		return Ratio{}, divisionByZero(g, o.String())
	}
	pct := g.value.Mul(hundred).DivRound(o.value, 0)
	return PercentFromDecimal[RatioBounds](pct)
}

// RatioOf is like Div but never fails: a zero divisor yields 0% and a
// ratio above the RatioBounds maximum saturates at that maximum.
func (g Gram) RatioOf(o Gram) Ratio {
	if o.IsZero() {
		return Ratio{}
	}
	r, err := g.Div(o)
	if err != nil {
		return MustPercent[RatioBounds](RatioBounds{}.Max())
	}
	return r
}

// Round returns g rounded half away from zero to the given number of places.
func (g Gram) Round(places int32) Gram {
	return Gram{value: g.value.Round(places)}
}

// String renders the mass with two fraction digits and a unit suffix.
func (g Gram) String() string {
	return g.value.StringFixed(displayPlaces) + " g"
}

// MarshalJSON encodes the mass as a JSON number with two fraction digits.
func (g Gram) MarshalJSON() ([]byte, error) {
	return []byte(g.value.StringFixed(displayPlaces)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal.
func (g *Gram) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*g = Zero
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return fmt.Errorf("failed to decode mass: %w", err)
		}
		s = str
	}
	return g.set(s)
}

// MarshalYAML encodes the mass as a YAML float with two fraction digits.
func (g Gram) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   "!!float",
		Value: g.value.StringFixed(displayPlaces),
	}, nil
}

// UnmarshalYAML decodes a YAML scalar into a mass.
func (g *Gram) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("mass must be a scalar, got node kind %d", node.Kind)
	}
	return g.set(node.Value)
}

func (g *Gram) set(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid mass %q: %w", s, err)
	}
	v, err := NewGram(d)
	if err != nil {
		return err
	}
	*g = v
	return nil
}

func negativeMass(value string) error {
	return cerrors.NewWithContext(cerrors.ErrCodeNegativeMass,
		fmt.Sprintf("negative mass not allowed: %s g", value),
		map[string]any{"value": value})
}

func divisionByZero(g Gram, divisor string) error {
	return cerrors.NewWithContext(cerrors.ErrCodeInvalidRatio,
		fmt.Sprintf("cannot divide %s by %s", g, divisor),
		map[string]any{
			"dividend": g.String(),
			"divisor":  divisor,
		})
}
