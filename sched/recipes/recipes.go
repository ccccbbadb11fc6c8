// Package recipes provides the built-in library of named noise-layer stacks
// and name-based schedule construction on top of it.
package recipes

import (
	"sort"

	"github.com/runningoverglowies/algo-noisesched/sched/schedule"
)

// Library maps recipe names to their layer stacks. Lookups are by exact name;
// all accessors copy, so the underlying table can never be mutated through a
// Library value.
type Library map[string][]schedule.Layer

// Built-in recipe layer stacks, grouped by the step count they were tuned for.

var recipesNineStep = Library{
	"9-Step: Composition Kicker (Chaos Start)": {
		{Threshold: 0.35, Strength: 3.0},
		{Threshold: 0.12, Strength: 15.0},
	},
	"9-Step: Texture Fader (High Detail)": {
		{Threshold: 0.45, Strength: 2.0},
		{Threshold: 0.23, Strength: 4.0},
	},
	"9-Step: Negative Scrambler (Fix Poses)": {
		{Threshold: 0.55, Strength: 2.0},
		{Threshold: 0.15, Strength: 5.0},
	},
	"9-Step: The Steep Cliff (Cleanest)": {
		{Threshold: 0.45, Strength: 1.0},
		{Threshold: 0.34, Strength: 3.0},
		{Threshold: 0.23, Strength: 5.0},
		{Threshold: 0.12, Strength: 8.0},
	},
	"9-Step: The Plateau (Stubborn Prompts)": {
		{Threshold: 0.45, Strength: 1.0},
		{Threshold: 0.34, Strength: 2.0},
		{Threshold: 0.23, Strength: 6.0},
		{Threshold: 0.23, Strength: 6.0},
	},
}

var recipesTwelveStep = Library{
	"12-Step: Dream Shifter (Variation)": {
		{Threshold: 0.35, Strength: 2.0},
		{Threshold: 0.09, Strength: 12.0},
	},
	"12-Step: Grit Gradient (Texture)": {
		{Threshold: 0.42, Strength: 3.0},
		{Threshold: 0.18, Strength: 5.0},
	},
	"12-Step: Logarithmic Decay (Natural)": {
		{Threshold: 0.45, Strength: 1.0},
		{Threshold: 0.26, Strength: 3.0},
		{Threshold: 0.10, Strength: 8.0},
	},
	"12-Step: Hallucination Engine (Surreal)": {
		{Threshold: 0.55, Strength: 2.0},
		{Threshold: 0.35, Strength: 4.0},
		{Threshold: 0.18, Strength: 6.0},
	},
	"12-Step: The Golden Curve (Best General)": {
		{Threshold: 0.51, Strength: 1.0},
		{Threshold: 0.34, Strength: 2.0},
		{Threshold: 0.18, Strength: 4.0},
		{Threshold: 0.09, Strength: 8.0},
	},
	"12-Step: The Delayed Drop (Painterly)": {
		{Threshold: 0.51, Strength: 2.0},
		{Threshold: 0.42, Strength: 2.0},
		{Threshold: 0.26, Strength: 4.0},
		{Threshold: 0.17, Strength: 6.0},
	},
}

// Default returns a fresh Library with every built-in recipe. Callers may add
// or replace entries without affecting the built-in table.
func Default() Library {
	lib := make(Library, len(recipesNineStep)+len(recipesTwelveStep))

	for name, layers := range recipesNineStep {
		lib[name] = copyLayers(layers)
	}

	for name, layers := range recipesTwelveStep {
		lib[name] = copyLayers(layers)
	}

	return lib
}

// Lookup returns a copy of the layer stack for name.
func (l Library) Lookup(name string) ([]schedule.Layer, bool) {
	layers, ok := l[name]
	if !ok {
		return nil, false
	}

	return copyLayers(layers), true
}

// Build flattens the named recipe into a schedule. An unknown name yields the
// zero schedule and false rather than an error: a stale recipe name should
// disable injection, not abort a generation the caller already started.
func (l Library) Build(name string, opts ...schedule.Option) (*schedule.Schedule, bool, error) {
	layers, ok := l[name]
	if !ok {
		return schedule.Zero(), false, nil
	}

	s, err := schedule.Flatten(layers, opts...)
	if err != nil {
		return nil, true, err
	}

	return s, true, nil
}

// Names returns the recipe names in sorted order, for menus and listings.
func (l Library) Names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func copyLayers(layers []schedule.Layer) []schedule.Layer {
	out := make([]schedule.Layer, len(layers))
	copy(out, layers)
	return out
}
