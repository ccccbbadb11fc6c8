package recipes

import (
	"testing"

	"github.com/runningoverglowies/algo-noisesched/sched/schedule"
)

func TestDefaultRecipesAreValid(t *testing.T) {
	lib := Default()

	if len(lib) != 11 {
		t.Fatalf("built-in recipe count = %d, want 11", len(lib))
	}

	for _, name := range lib.Names() {
		t.Run(name, func(t *testing.T) {
			s, ok, err := lib.Build(name)
			if err != nil {
				t.Fatalf("Build() error: %v", err)
			}

			if !ok {
				t.Fatal("Build() reported miss for built-in recipe")
			}

			if !s.Active() {
				t.Error("built-in recipe flattened to an all-zero schedule")
			}

			segs := s.Segments()
			if segs[len(segs)-1].Strength != 0 {
				t.Error("built-in recipe should end with a clean tail segment")
			}
		})
	}
}

func TestLookupCopies(t *testing.T) {
	lib := Default()

	layers, ok := lib.Lookup("9-Step: Texture Fader (High Detail)")
	if !ok {
		t.Fatal("Lookup() miss for built-in recipe")
	}

	layers[0].Strength = 99

	again, _ := lib.Lookup("9-Step: Texture Fader (High Detail)")
	if again[0].Strength == 99 {
		t.Error("Lookup() result aliases the library table")
	}
}

func TestBuildMiss(t *testing.T) {
	lib := Default()

	s, ok, err := lib.Build("no such recipe")
	if err != nil {
		t.Fatalf("Build() miss error: %v", err)
	}

	if ok {
		t.Error("Build() reported hit for unknown name")
	}

	if s.Active() {
		t.Error("Build() miss should yield the zero schedule")
	}
}

func TestBuildScale(t *testing.T) {
	lib := Default()

	s, _, err := lib.Build("12-Step: Dream Shifter (Variation)", schedule.WithStrengthScale(2))
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	// Layers (0.35, 2) and (0.09, 12): the head segment doubles to 28.
	if got := s.StrengthAt(0); got != 28 {
		t.Errorf("scaled head strength = %v, want 28", got)
	}
}

func TestBuildBadScale(t *testing.T) {
	lib := Default()

	_, ok, err := lib.Build("12-Step: Dream Shifter (Variation)", schedule.WithStrengthScale(-1))
	if err == nil {
		t.Error("expected error for negative scale")
	}

	if !ok {
		t.Error("hit/miss flag should still report the lookup hit")
	}
}

func TestDefaultIsIndependent(t *testing.T) {
	a := Default()
	a["custom"] = []schedule.Layer{{Threshold: 0.5, Strength: 1}}

	b := Default()
	if _, ok := b["custom"]; ok {
		t.Error("mutating one Default() copy leaked into another")
	}
}
