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
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
)

// Bounds describes the inclusive range, in whole percents, and the number of
// fraction digits of a Percent. Implementations are empty structs so that
// each use site gets its own Percent type.
type Bounds interface {
	Min() uint64
	Max() uint64
	Decimals() uint8
}

// RatioBounds is the range of a mass-to-mass ratio: 0% to 10,000,000%, whole percents.
type RatioBounds struct{}

func (RatioBounds) Min() uint64     { return 0 }
func (RatioBounds) Max() uint64     { return 10_000_000 }
func (RatioBounds) Decimals() uint8 { return 0 }

// Ratio is the result of dividing one mass by another.
type Ratio = Percent[RatioBounds]

// Percent is a fixed-point percentage bounded by B.
//
// The value is stored as an integer scaled by 10^Decimals, so 12.5% with one
// decimal is encoded as 125. Construction always validates
// Min*mult <= encoded <= Max*mult.
type Percent[B Bounds] struct {
	encoded uint64
}

// NewPercent validates an encoded value against B.
func NewPercent[B Bounds](encoded uint64) (Percent[B], error) {
	if p, ok := ValidPercent[B](encoded); ok {
		return p, nil
	}
	return Percent[B]{}, invalidRatio[B](fromUint(encoded).Shift(-int32(bounds[B]().Decimals())))
}

// ValidPercent is the non-failing variant of NewPercent.
func ValidPercent[B Bounds](encoded uint64) (Percent[B], bool) {
	b := bounds[B]()
	mult := multiplier(b)
	if b.Min()*mult <= encoded && encoded <= b.Max()*mult {
		return Percent[B]{encoded: encoded}, true
	}
	return Percent[B]{}, false
}

// PercentOf builds a Percent from a whole percentage, e.g. 10 for 10%.
func PercentOf[B Bounds](whole uint64) (Percent[B], error) {
	b := bounds[B]()
	if whole > b.Max() {
		return Percent[B]{}, invalidRatio[B](fromUint(whole))
	}
	return NewPercent[B](whole * multiplier(b))
}

// MustPercent is like PercentOf but panics when whole is out of bounds.
// It is meant for package level defaults.
func MustPercent[B Bounds](whole uint64) Percent[B] {
	p, err := PercentOf[B](whole)
	if err != nil {
		panic(fmt.Sprintf("invalid percent: %v", err))
	}
	return p
}

// PercentFromDecimal builds a Percent from a percentage expressed as a
// decimal (12.25 for 12.25%), rounding half away from zero to B's decimals.
func PercentFromDecimal[B Bounds](pct decimal.Decimal) (Percent[B], error) {
	b := bounds[B]()
	scaled := pct.Shift(int32(b.Decimals())).Round(0)
	if scaled.IsNegative() || scaled.GreaterThan(fromUint(b.Max()*multiplier(b))) {
		return Percent[B]{}, invalidRatio[B](pct)
	}
	return NewPercent[B](uint64(scaled.IntPart()))
}

// ParsePercent parses text such as "12.5" or "12.5%" into a Percent.
func ParsePercent[B Bounds](text string) (Percent[B], error) {
	s := strings.TrimSuffix(strings.TrimSpace(text), "%")
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Percent[B]{}, cerrors.WrapWithContext(cerrors.ErrCodeInvalidRatio,
			fmt.Sprintf("invalid percentage %q", text), err,
			map[string]any{"value": text})
	}
	return PercentFromDecimal[B](d)
}

// Range returns the inclusive whole-percent bounds of B.
func Range[B Bounds]() (lo, hi uint64) {
	b := bounds[B]()
	return b.Min(), b.Max()
}

// SumPercents folds the given percents into their total, in percent units.
// The total is not bounded by B, which lets callers detect a set of flour
// fractions that overshoots 100%.
func SumPercents[B Bounds](ps ...Percent[B]) decimal.Decimal {
	var total uint64
	for _, p := range ps {
		total += p.encoded
	}
	return fromUint(total).Shift(-int32(bounds[B]().Decimals()))
}

// Encoded returns the raw fixed-point value.
func (p Percent[B]) Encoded() uint64 { return p.encoded }

// IsZero reports whether p is 0%.
func (p Percent[B]) IsZero() bool { return p.encoded == 0 }

// Value returns the percentage in percent units (80% -> 80).
func (p Percent[B]) Value() decimal.Decimal {
	return fromUint(p.encoded).Shift(-int32(bounds[B]().Decimals()))
}

// AsDecimal returns the percentage as a fraction (80% -> 0.8).
func (p Percent[B]) AsDecimal() decimal.Decimal {
	return p.Value().Div(hundred)
}

// Of returns the share of g that p represents.
func (p Percent[B]) Of(g Gram) Gram {
	return g.MulRatio(p)
}

// String renders the percentage with B's number of fraction digits.
func (p Percent[B]) String() string {
	return p.Value().StringFixed(int32(bounds[B]().Decimals())) + "%"
}

// MarshalJSON encodes the percentage as a number in percent units.
func (p Percent[B]) MarshalJSON() ([]byte, error) {
	return []byte(p.Value().StringFixed(int32(bounds[B]().Decimals()))), nil
}

// UnmarshalJSON decodes and validates a percentage in percent units.
func (p *Percent[B]) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to decode percentage: %w", err)
		}
	}
	v, err := ParsePercent[B](s)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// MarshalYAML encodes the percentage as a YAML number in percent units.
func (p Percent[B]) MarshalYAML() (any, error) {
	tag := "!!int"
	if bounds[B]().Decimals() > 0 {
		tag = "!!float"
	}
	return &yaml.Node{
		Kind:  yaml.ScalarNode,
		Tag:   tag,
		Value: p.Value().StringFixed(int32(bounds[B]().Decimals())),
	}, nil
}

// UnmarshalYAML decodes and validates a YAML scalar percentage.
func (p *Percent[B]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("percentage must be a scalar, got node kind %d", node.Kind)
	}
	v, err := ParsePercent[B](node.Value)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func bounds[B Bounds]() B {
	var b B
	return b
}

func fromUint(v uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(v), 0)
}

func multiplier(b Bounds) uint64 {
	mult := uint64(1)
	for i := uint8(0); i < b.Decimals(); i++ {
		mult *= 10
	}
	return mult
}

func invalidRatio[B Bounds](value decimal.Decimal) error {
	b := bounds[B]()
	return cerrors.NewWithContext(cerrors.ErrCodeInvalidRatio,
		fmt.Sprintf("percentage value %s%% must be between %d%% and %d%% inclusive",
			value.String(), b.Min(), b.Max()),
		map[string]any{
			"value": value.String(),
			"min":   b.Min(),
			"max":   b.Max(),
		})
}
