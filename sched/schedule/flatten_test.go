package schedule

import (
	"reflect"
	"testing"
)

// checkCoverage verifies the segment-coverage invariants: sorted, contiguous,
// starting at 0 and ending at 1.
func checkCoverage(t *testing.T, s *Schedule) {
	t.Helper()

	segs := s.Segments()
	if len(segs) == 0 {
		t.Fatal("schedule has no segments")
	}

	if segs[0].Start != 0 {
		t.Errorf("first segment starts at %v, want 0", segs[0].Start)
	}

	if segs[len(segs)-1].End != 1 {
		t.Errorf("last segment ends at %v, want 1", segs[len(segs)-1].End)
	}

	for i, seg := range segs {
		if !(seg.Start < seg.End) {
			t.Errorf("segment %d has non-positive width [%v, %v)", i, seg.Start, seg.End)
		}

		if i > 0 && segs[i-1].End != seg.Start {
			t.Errorf("gap/overlap between segment %d and %d: %v vs %v", i-1, i, segs[i-1].End, seg.Start)
		}
	}
}

func TestFlattenSteepCliff(t *testing.T) {
	layers := []Layer{
		{Threshold: 0.45, Strength: 1.0},
		{Threshold: 0.34, Strength: 3.0},
		{Threshold: 0.12, Strength: 8.0},
	}

	s, err := Flatten(layers)
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	want := []Segment{
		{Start: 0.00, End: 0.12, Strength: 12.0},
		{Start: 0.12, End: 0.34, Strength: 4.0},
		{Start: 0.34, End: 0.45, Strength: 1.0},
		{Start: 0.45, End: 1.00, Strength: 0.0},
	}

	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}

	if s.MaxStrength() != 12.0 {
		t.Errorf("MaxStrength() = %v, want 12", s.MaxStrength())
	}

	checkCoverage(t, s)
}

func TestFlattenEmpty(t *testing.T) {
	s, err := Flatten(nil)
	if err != nil {
		t.Fatalf("Flatten(nil) error: %v", err)
	}

	want := []Segment{{Start: 0, End: 1, Strength: 0}}
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}

	if s.Active() {
		t.Error("empty schedule should not be active")
	}
}

func TestFlattenAdditivity(t *testing.T) {
	layers := []Layer{
		{Threshold: 0.35, Strength: 3.0},
		{Threshold: 0.12, Strength: 15.0},
	}

	s, err := Flatten(layers)
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	segs := s.Segments()

	// Before the smallest threshold every layer is active.
	if got := segs[0].Strength; got != 18.0 {
		t.Errorf("first segment strength = %v, want 18", got)
	}

	// Past the largest threshold no layer is active.
	if got := segs[len(segs)-1].Strength; got != 0 {
		t.Errorf("last segment strength = %v, want 0", got)
	}
}

func TestFlattenScaleLinearity(t *testing.T) {
	layers := []Layer{
		{Threshold: 0.42, Strength: 3.0},
		{Threshold: 0.18, Strength: 5.0},
	}

	base, err := Flatten(layers)
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	scaled, err := Flatten(layers, WithStrengthScale(2.5))
	if err != nil {
		t.Fatalf("Flatten(scale) error: %v", err)
	}

	baseSegs := base.Segments()
	scaledSegs := scaled.Segments()

	if len(baseSegs) != len(scaledSegs) {
		t.Fatalf("segment count changed under scaling: %d vs %d", len(baseSegs), len(scaledSegs))
	}

	for i := range baseSegs {
		if scaledSegs[i].Strength != baseSegs[i].Strength*2.5 {
			t.Errorf("segment %d: scaled strength = %v, want %v", i, scaledSegs[i].Strength, baseSegs[i].Strength*2.5)
		}
	}

	zero, err := Flatten(layers, WithStrengthScale(0))
	if err != nil {
		t.Fatalf("Flatten(scale 0) error: %v", err)
	}

	if zero.Active() {
		t.Error("scale 0 should yield an all-zero schedule")
	}
}

func TestFlattenDuplicateThresholds(t *testing.T) {
	// The plateau stack repeats a threshold; deduplication must avoid a
	// zero-width segment.
	layers := []Layer{
		{Threshold: 0.45, Strength: 1.0},
		{Threshold: 0.34, Strength: 2.0},
		{Threshold: 0.23, Strength: 6.0},
		{Threshold: 0.23, Strength: 6.0},
	}

	s, err := Flatten(layers)
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}

	want := []Segment{
		{Start: 0.00, End: 0.23, Strength: 15.0},
		{Start: 0.23, End: 0.34, Strength: 3.0},
		{Start: 0.34, End: 0.45, Strength: 1.0},
		{Start: 0.45, End: 1.00, Strength: 0.0},
	}

	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}

	checkCoverage(t, s)
}

func TestFlattenBoundaryRule(t *testing.T) {
	// Strict activation: the segment starting exactly at a layer's threshold
	// is not covered by that layer.
	s, err := Flatten([]Layer{{Threshold: 0.5, Strength: 4.0}})
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	if got := s.StrengthAt(0.499); got != 4.0 {
		t.Errorf("StrengthAt(0.499) = %v, want 4", got)
	}

	if got := s.StrengthAt(0.5); got != 0 {
		t.Errorf("StrengthAt(0.5) = %v, want 0", got)
	}
}

func TestFlattenThresholdAboveOne(t *testing.T) {
	s, err := Flatten([]Layer{{Threshold: 1.5, Strength: 2.0}})
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	want := []Segment{{Start: 0, End: 1, Strength: 2.0}}
	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestFlattenRisingStrengths(t *testing.T) {
	// Larger strength at a later threshold is valid input, not an error.
	layers := []Layer{
		{Threshold: 0.3, Strength: 1.0},
		{Threshold: 0.6, Strength: 5.0},
	}

	s, err := Flatten(layers)
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	want := []Segment{
		{Start: 0.0, End: 0.3, Strength: 6.0},
		{Start: 0.3, End: 0.6, Strength: 5.0},
		{Start: 0.6, End: 1.0, Strength: 0.0},
	}

	if got := s.Segments(); !reflect.DeepEqual(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}
}

func TestFlattenErrors(t *testing.T) {
	tests := []struct {
		name   string
		layers []Layer
		opts   []Option
	}{
		{name: "negative strength", layers: []Layer{{Threshold: 0.5, Strength: -1}}},
		{name: "zero threshold", layers: []Layer{{Threshold: 0, Strength: 1}}},
		{name: "negative threshold", layers: []Layer{{Threshold: -0.2, Strength: 1}}},
		{name: "nan threshold", layers: []Layer{{Threshold: nan(), Strength: 1}}},
		{name: "nan strength", layers: []Layer{{Threshold: 0.5, Strength: nan()}}},
		{
			name:   "negative scale",
			layers: []Layer{{Threshold: 0.5, Strength: 1}},
			opts:   []Option{WithStrengthScale(-1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Flatten(tt.layers, tt.opts...)
			if err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestFlattenIdempotence(t *testing.T) {
	layers := []Layer{
		{Threshold: 0.51, Strength: 1.0},
		{Threshold: 0.34, Strength: 2.0},
		{Threshold: 0.18, Strength: 4.0},
		{Threshold: 0.09, Strength: 8.0},
	}

	a, err := Flatten(layers, WithStrengthScale(1.3))
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	b, err := Flatten(layers, WithStrengthScale(1.3))
	if err != nil {
		t.Fatalf("Flatten() error: %v", err)
	}

	if !reflect.DeepEqual(a.Segments(), b.Segments()) {
		t.Error("identical inputs produced different segment lists")
	}
}

func TestFlattenNilOption(t *testing.T) {
	_, err := Flatten([]Layer{{Threshold: 0.5, Strength: 1}}, nil)
	if err != nil {
		t.Fatalf("Flatten() with nil option error: %v", err)
	}
}
