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

import "github.com/crumbworks/crumb/pkg/measure"

// FlourBounds limits a flour fraction to 1%..100% of total flour.
type FlourBounds struct{}

func (FlourBounds) Min() uint64     { return 1 }
func (FlourBounds) Max() uint64     { return 100 }
func (FlourBounds) Decimals() uint8 { return 0 }

// PortionBounds limits a preferment's flour to 1%..30% of total flour.
type PortionBounds struct{}

func (PortionBounds) Min() uint64     { return 1 }
func (PortionBounds) Max() uint64     { return 30 }
func (PortionBounds) Decimals() uint8 { return 0 }

// HydrationBounds is the water to flour range of a sourdough starter.
type HydrationBounds struct{}

func (HydrationBounds) Min() uint64     { return 50 }
func (HydrationBounds) Max() uint64     { return 500 }
func (HydrationBounds) Decimals() uint8 { return 0 }

// TangzhongHydrationBounds is one part flour to between one and five parts water.
type TangzhongHydrationBounds struct{}

func (TangzhongHydrationBounds) Min() uint64     { return 100 }
func (TangzhongHydrationBounds) Max() uint64     { return 500 }
func (TangzhongHydrationBounds) Decimals() uint8 { return 0 }

// PoolishHydrationBounds is the water to flour range of a poolish.
type PoolishHydrationBounds struct{}

func (PoolishHydrationBounds) Min() uint64     { return 50 }
func (PoolishHydrationBounds) Max() uint64     { return 300 }
func (PoolishHydrationBounds) Decimals() uint8 { return 0 }

// DoughHydrationBounds is the overall water to flour range of a dough.
type DoughHydrationBounds struct{}

func (DoughHydrationBounds) Min() uint64     { return 50 }
func (DoughHydrationBounds) Max() uint64     { return 120 }
func (DoughHydrationBounds) Decimals() uint8 { return 0 }

// SaltBounds is 1.0%..4.0% of total flour with one fraction digit.
type SaltBounds struct{}

func (SaltBounds) Min() uint64     { return 1 }
func (SaltBounds) Max() uint64     { return 4 }
func (SaltBounds) Decimals() uint8 { return 1 }

// EnrichmentBounds is 1.0%..100.0% of total flour with one fraction digit.
type EnrichmentBounds struct{}

func (EnrichmentBounds) Min() uint64     { return 1 }
func (EnrichmentBounds) Max() uint64     { return 100 }
func (EnrichmentBounds) Decimals() uint8 { return 1 }

type (
	FlourPercent              = measure.Percent[FlourBounds]
	PortionPercent            = measure.Percent[PortionBounds]
	HydrationPercent          = measure.Percent[HydrationBounds]
	TangzhongHydrationPercent = measure.Percent[TangzhongHydrationBounds]
	PoolishHydrationPercent   = measure.Percent[PoolishHydrationBounds]
	DoughHydrationPercent     = measure.Percent[DoughHydrationBounds]
	SaltPercent               = measure.Percent[SaltBounds]
	EnrichmentPercent         = measure.Percent[EnrichmentBounds]
)

// Fixed ratios used when a descriptor leaves them out.
var (
	DefaultTangzhongHydration = measure.MustPercent[TangzhongHydrationBounds](200)
	// PoolishYeast is the instant yeast of a poolish relative to its water.
	PoolishYeast = measure.MustPercent[measure.RatioBounds](1)
)
