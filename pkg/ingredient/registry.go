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
	"fmt"
	"sort"
	"strings"
	"sync"

	cerrors "github.com/crumbworks/crumb/pkg/errors"
	"github.com/crumbworks/crumb/pkg/measure"
)

// Builder creates a preferment from its descriptor arguments and the
// recipe's total flour.
type Builder func(args string, totalFlour measure.Gram) (Preferment, error)

// Registry maps case-insensitive preferment ids to builders.
// It is safe for concurrent use.
type Registry struct {
	builders map[string]Builder
	mu       sync.RWMutex
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]Builder),
	}
}

// NewDefaultRegistry creates a Registry with the starter, tangzhong and
// poolish builders.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(string(PrefermentStarter), BuildStarter)
	r.MustRegister(string(PrefermentTangzhong), BuildTangzhong)
	r.MustRegister(string(PrefermentPoolish), BuildPoolish)
	return r
}

var defaultRegistry = NewDefaultRegistry()

// DefaultRegistry returns the shared registry of built-in preferments.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a builder under id.
// Returns an error if the id is empty or already registered.
func (r *Registry) Register(id string, b Builder) error {
	key := normalizeID(id)
	if key == "" {
		return fmt.Errorf("preferment id cannot be empty")
	}
	if b == nil {
		return fmt.Errorf("preferment %s has no builder", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.builders[key]; exists {
		return fmt.Errorf("preferment %s already registered", key)
	}
	r.builders[key] = b
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(id string, b Builder) {
	if err := r.Register(id, b); err != nil {
		panic(err)
	}
}

// Get returns the builder registered under id.
func (r *Registry) Get(id string) (Builder, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.builders[normalizeID(id)]
	return b, ok
}

// List returns the registered ids in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.builders))
	for id := range r.builders {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Build parses a "<id>:<args>" descriptor and runs the matching builder.
func (r *Registry) Build(desc string, totalFlour measure.Gram) (Preferment, error) {
	id, args, ok := strings.Cut(strings.TrimSpace(desc), ":")
	if !ok || strings.TrimSpace(id) == "" {
		return Preferment{}, cerrors.NewWithContext(cerrors.ErrCodeInvalidPrefermentDescriptor,
			fmt.Sprintf("invalid preferment descriptor %q, expected <id>:<args>", desc),
			map[string]any{"descriptor": desc})
	}

	b, found := r.Get(id)
	if !found {
		return Preferment{}, cerrors.NewWithContext(cerrors.ErrCodeUnknownPreferment,
			fmt.Sprintf("unknown preferment: %s", id),
			map[string]any{"id": id, "known": r.List()})
	}
	return b(args, totalFlour)
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// BuildStarter handles "<portion>:<hydration>".
func BuildStarter(args string, totalFlour measure.Gram) (Preferment, error) {
	portion, hydration, err := ParsePrefermentArgs(args)
	if err != nil {
		return Preferment{}, err
	}
	p, err := measure.PercentOf[PortionBounds](portion)
	if err != nil {
		return Preferment{}, err
	}
	h, err := measure.PercentOf[HydrationBounds](hydration)
	if err != nil {
		return Preferment{}, err
	}
	return StarterFromPortion(totalFlour, p, h), nil
}

// BuildPoolish handles "<portion>:<hydration>".
func BuildPoolish(args string, totalFlour measure.Gram) (Preferment, error) {
	portion, hydration, err := ParsePrefermentArgs(args)
	if err != nil {
		return Preferment{}, err
	}
	p, err := measure.PercentOf[PortionBounds](portion)
	if err != nil {
		return Preferment{}, err
	}
	h, err := measure.PercentOf[PoolishHydrationBounds](hydration)
	if err != nil {
		return Preferment{}, err
	}
	return PoolishFromPortion(totalFlour, p, h), nil
}

// BuildTangzhong handles "<portion>:<hydration>" and "<portion>", the latter
// at the default hydration.
func BuildTangzhong(args string, totalFlour measure.Gram) (Preferment, error) {
	if !strings.Contains(args, ":") {
		args = fmt.Sprintf("%s:%d", args, DefaultTangzhongHydration.Encoded())
	}
	portion, hydration, err := ParsePrefermentArgs(args)
	if err != nil {
		return Preferment{}, err
	}
	p, err := measure.PercentOf[PortionBounds](portion)
	if err != nil {
		return Preferment{}, err
	}
	h, err := measure.PercentOf[TangzhongHydrationBounds](hydration)
	if err != nil {
		return Preferment{}, err
	}
	return TangzhongFromPortion(totalFlour, p, h), nil
}
